package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/dto"
)

// errorResponse maps a domain error to an HTTP status and client message
func errorResponse(err error) (int, dto.ErrorResponse) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount):
		status, message = http.StatusBadRequest, "Please enter a valid amount"
	case errors.Is(err, domainerr.ErrInvalidRequest):
		status, message = http.StatusBadRequest, "Invalid request"
	case errors.Is(err, domainerr.ErrUnauthenticated), errors.Is(err, domainerr.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "Sign in required"
	case errors.Is(err, domainerr.ErrAccountNotFound):
		status, message = http.StatusNotFound, "Account not found"
	case errors.Is(err, domainerr.ErrDuplicateDeposit):
		status, message = http.StatusConflict, "Idempotency key already used"
	case errors.Is(err, domainerr.ErrSubmitInFlight):
		status, message = http.StatusConflict, "Add funds already in progress"
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		status, message = http.StatusServiceUnavailable, "Service temporarily unavailable"
	}

	return status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
}
