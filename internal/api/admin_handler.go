package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/geovannycode/banking-api/internal/api/shared"
	"github.com/geovannycode/banking-api/internal/service"
)

// AdminHandler exposes the administrator service over HTTP.
type AdminHandler struct {
	admins service.AdminService
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admins service.AdminService, log *slog.Logger) *AdminHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AdminHandler{
		admins: admins,
		logger: log.With(slog.String("component", "admin_handler")),
	}
}

// adminRequest is the request body for administrator creation and login.
type adminRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateAdministrator handles POST /api/administrators.
func (h *AdminHandler) CreateAdministrator(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}

	result := h.admins.CreateAdministrator(r.Context(), req.Name, req.Password)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{
		"admin_id": result.Value(),
	})
}

// Login handles POST /api/administrators/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}

	result := h.admins.Login(r.Context(), req.Name, req.Password)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"admin_id": result.Value(),
	})
}
