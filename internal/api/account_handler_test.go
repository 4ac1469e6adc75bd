package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geovannycode/banking-api/internal/api"
	"github.com/geovannycode/banking-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccountService struct {
	createResult service.ApiResult[uuid.UUID]
	findResult   service.ApiResult[service.AccountOverviewDTO]
}

func (s *stubAccountService) CreateAccount(context.Context, uuid.UUID, service.AccountDTO) service.ApiResult[uuid.UUID] {
	return s.createResult
}

func (s *stubAccountService) FindAccountByID(context.Context, uuid.UUID) service.ApiResult[service.AccountOverviewDTO] {
	return s.findResult
}

func newAccountRouter(svc service.AccountService) http.Handler {
	handler := api.NewAccountHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/api/users/{userID}/accounts", handler.CreateAccount)
	r.Get("/api/accounts/{accountID}", handler.GetAccount)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	userID := uuid.New()

	t.Run("maps success to 201 with the new ID", func(t *testing.T) {
		accountID := uuid.New()
		router := newAccountRouter(&stubAccountService{createResult: service.Success(accountID)})

		body, _ := json.Marshal(service.AccountDTO{Name: "My Account", Dispo: -100, Limit: 100})
		req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID.String()+"/accounts", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, accountID.String(), resp["account_id"])
	})

	t.Run("maps ACCOUNT_ALREADY_EXIST to 409", func(t *testing.T) {
		router := newAccountRouter(&stubAccountService{
			createResult: service.Failure[uuid.UUID](service.ErrorAccountExists),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID.String()+"/accounts",
			bytes.NewReader([]byte(`{"name":"My Account","dispo":-100,"limit":100}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "ACCOUNT_ALREADY_EXIST")
	})

	t.Run("rejects a malformed owner ID", func(t *testing.T) {
		router := newAccountRouter(&stubAccountService{})

		req := httptest.NewRequest(http.MethodPost, "/api/users/nope/accounts",
			bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Run("maps ACCOUNT_NOT_FOUND to 404", func(t *testing.T) {
		router := newAccountRouter(&stubAccountService{
			findResult: service.Failure[service.AccountOverviewDTO](service.ErrorAccountNotFound),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
