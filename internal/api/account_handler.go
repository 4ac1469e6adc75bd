package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/geovannycode/banking-api/internal/api/shared"
	"github.com/geovannycode/banking-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AccountHandler exposes the account service over HTTP.
type AccountHandler struct {
	accounts service.AccountService
	logger   *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts service.AccountService, log *slog.Logger) *AccountHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AccountHandler{
		accounts: accounts,
		logger:   log.With(slog.String("component", "account_handler")),
	}
}

// CreateAccount handles POST /api/users/{userID}/accounts.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid user ID")
		return
	}

	var dto service.AccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}

	result := h.accounts.CreateAccount(r.Context(), userID, dto)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{
		"account_id": result.Value(),
	})
}

// GetAccount handles GET /api/accounts/{accountID}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid account ID")
		return
	}

	result := h.accounts.FindAccountByID(r.Context(), id)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result.Value())
}
