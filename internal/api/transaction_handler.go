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

// TransactionHandler exposes the transaction service over HTTP.
type TransactionHandler struct {
	transactions service.TransactionService
	logger       *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions service.TransactionService, log *slog.Logger) *TransactionHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TransactionHandler{
		transactions: transactions,
		logger:       log.With(slog.String("component", "transaction_handler")),
	}
}

// CreateTransaction handles POST /api/transactions.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var dto service.TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}

	result := h.transactions.CreateTransaction(r.Context(), dto)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{
		"transaction_id": result.Value(),
	})
}

// ListByAccount handles GET /api/accounts/{accountID}/transactions.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid account ID")
		return
	}

	result := h.transactions.FindTransactionsByAccount(r.Context(), id)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"transactions": result.Value(),
	})
}
