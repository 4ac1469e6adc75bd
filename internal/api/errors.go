package api

import (
	"net/http"

	"github.com/geovannycode/banking-api/internal/service"
)

// MapErrorCodeToStatus maps each service error code to a fixed HTTP status.
// The transport never inspects error types; the closed ErrorCode set is the
// whole contract.
func MapErrorCodeToStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorUserNotFound, service.ErrorAccountNotFound:
		return http.StatusNotFound
	case service.ErrorAccountExists, service.ErrorTransactionExists:
		return http.StatusConflict
	case service.ErrorMapping, service.ErrorPassword:
		return http.StatusBadRequest
	case service.ErrorDatabase:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorMessages supplies a safe, fixed message per code so internal error
// details never leak to clients.
var errorMessages = map[service.ErrorCode]string{
	service.ErrorUserNotFound:      "user not found",
	service.ErrorAccountNotFound:   "account not found",
	service.ErrorAccountExists:     "account already exists",
	service.ErrorTransactionExists: "transaction already exists",
	service.ErrorMapping:           "invalid input",
	service.ErrorPassword:          "password rejected",
	service.ErrorDatabase:          "internal storage error",
}

// SafeErrorMessage returns the fixed client-facing message for a code.
func SafeErrorMessage(code service.ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "internal error"
}
