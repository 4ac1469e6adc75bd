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

// UserHandler exposes the user service over HTTP.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: log.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto service.UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}

	result := h.users.CreateUser(r.Context(), dto)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{
		"user_id": result.Value(),
	})
}

// UpdateUser handles PUT /api/users/{userID}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid user ID")
		return
	}

	var dto service.UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}
	dto.UserID = &id

	result := h.users.UpdateUser(r.Context(), dto)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"user_id": result.Value(),
	})
}

// DeleteUser handles DELETE /api/users/{userID}.
// The raw path segment is passed through: malformed identity tokens are the
// service's MAPPING_ERROR case, not a routing 404.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result := h.users.DeleteUser(r.Context(), chi.URLParam(r, "userID"))
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"user_id": result.Value(),
	})
}

// GetUser handles GET /api/users/{userID}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid user ID")
		return
	}

	result := h.users.FindUserByUserID(r.Context(), id)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result.Value())
}

// passwordUpdateRequest is the request body for password changes.
type passwordUpdateRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdatePassword handles PUT /api/users/{userID}/password.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid user ID")
		return
	}

	var req passwordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			string(service.ErrorMapping), "invalid request body")
		return
	}

	result := h.users.UpdatePassword(r.Context(), id, req.OldPassword, req.NewPassword)
	if !result.IsSuccess() {
		respondFailure(w, r, result.Code())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"user_id": result.Value(),
	})
}

// respondFailure maps a service failure code to its fixed status and safe
// message.
func respondFailure(w http.ResponseWriter, r *http.Request, code service.ErrorCode) {
	shared.RespondWithError(w, r, MapErrorCodeToStatus(code), string(code), SafeErrorMessage(code))
}
