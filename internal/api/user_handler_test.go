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

// stubUserService returns canned results per operation.
type stubUserService struct {
	createResult   service.ApiResult[uuid.UUID]
	updateResult   service.ApiResult[uuid.UUID]
	deleteResult   service.ApiResult[uuid.UUID]
	findResult     service.ApiResult[service.UserOverviewDTO]
	passwordResult service.ApiResult[uuid.UUID]
}

func (s *stubUserService) CreateUser(context.Context, service.UserDTO) service.ApiResult[uuid.UUID] {
	return s.createResult
}

func (s *stubUserService) UpdateUser(context.Context, service.UserDTO) service.ApiResult[uuid.UUID] {
	return s.updateResult
}

func (s *stubUserService) DeleteUser(context.Context, string) service.ApiResult[uuid.UUID] {
	return s.deleteResult
}

func (s *stubUserService) FindUserByUserID(context.Context, uuid.UUID) service.ApiResult[service.UserOverviewDTO] {
	return s.findResult
}

func (s *stubUserService) UpdatePassword(context.Context, uuid.UUID, string, string) service.ApiResult[uuid.UUID] {
	return s.passwordResult
}

func newUserRouter(svc service.UserService) http.Handler {
	handler := api.NewUserHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/api/users", handler.CreateUser)
	r.Get("/api/users/{userID}", handler.GetUser)
	r.Delete("/api/users/{userID}", handler.DeleteUser)
	r.Put("/api/users/{userID}/password", handler.UpdatePassword)
	return r
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("maps success to 201 with the new ID", func(t *testing.T) {
		userID := uuid.New()
		router := newUserRouter(&stubUserService{createResult: service.Success(userID)})

		body, _ := json.Marshal(service.UserDTO{
			FirstName: "Geovanny",
			LastName:  "Mendoza",
			BirthDate: "20.02.1999",
			Password:  "Ta1&tudol3lal54e",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp["user_id"])
	})

	t.Run("maps MAPPING_ERROR to 400", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			createResult: service.Failure[uuid.UUID](service.ErrorMapping),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MAPPING_ERROR")
	})

	t.Run("maps DATABASE_ERROR to 500 without leaking details", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			createResult: service.Failure[uuid.UUID](service.ErrorDatabase),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
		assert.NotContains(t, rec.Body.String(), "SQLSTATE")
	})

	t.Run("rejects a malformed body before the service runs", func(t *testing.T) {
		router := newUserRouter(&stubUserService{})

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(`{not json`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("maps USER_NOT_FOUND to 404", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			findResult: service.Failure[service.UserOverviewDTO](service.ErrorUserNotFound),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects a malformed user ID", func(t *testing.T) {
		router := newUserRouter(&stubUserService{})

		req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	// The raw path segment goes to the service; a malformed token is the
	// service's MAPPING_ERROR, not a router 404.
	router := newUserRouter(&stubUserService{
		deleteResult: service.Failure[uuid.UUID](service.ErrorMapping),
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/invalid_userId", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MAPPING_ERROR")
}

func TestMapErrorCodeToStatus(t *testing.T) {
	cases := map[service.ErrorCode]int{
		service.ErrorUserNotFound:      http.StatusNotFound,
		service.ErrorAccountNotFound:   http.StatusNotFound,
		service.ErrorAccountExists:     http.StatusConflict,
		service.ErrorTransactionExists: http.StatusConflict,
		service.ErrorMapping:           http.StatusBadRequest,
		service.ErrorPassword:          http.StatusBadRequest,
		service.ErrorDatabase:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, api.MapErrorCodeToStatus(code), string(code))
	}
}
