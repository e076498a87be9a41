package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeDuplicateDeposit  = 4004
	CodeSubmitInFlight    = 4009
	CodeUnauthenticated   = 4010
	CodeAccountNotFound   = 4040
	CodeTradeNotFound     = 4041
	CodeEventNotFound     = 4042
	CodeInvalidRequest    = 4000
	CodeDialogNotOpen     = 4091
	CodeConstraintViolate = 4005

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is not a number or is not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the identity ID is empty
	ErrInvalidUserID = errors.New("user ID must not be empty")

	// ErrUnauthenticated is returned when an operation requires a signed-in identity
	ErrUnauthenticated = errors.New("no signed-in identity")

	// ErrAccountNotFound is returned when no account document exists for an identity
	ErrAccountNotFound = errors.New("account not found")

	// ErrTradeNotFound is returned when a trade document referenced by an account is missing
	ErrTradeNotFound = errors.New("trade not found")

	// ErrEventNotFound is returned when the event referenced by a trade is missing
	ErrEventNotFound = errors.New("event not found")

	// ErrDuplicateDeposit is returned when a deposit with the same idempotency key already exists
	ErrDuplicateDeposit = errors.New("deposit with this idempotency key already exists")

	// ErrSubmitInFlight is returned when the add-funds dialog is asked to act during a submit
	ErrSubmitInFlight = errors.New("add funds submit already in progress")

	// ErrDialogNotOpen is returned when a submit arrives while the dialog is closed
	ErrDialogNotOpen = errors.New("add funds dialog is not open")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidToken is returned when an identity token cannot be verified
	ErrInvalidToken = errors.New("invalid identity token")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidToken):
		return CodeUnauthenticated
	case errors.Is(err, ErrDuplicateDeposit):
		return CodeDuplicateDeposit
	case errors.Is(err, ErrSubmitInFlight):
		return CodeSubmitInFlight
	case errors.Is(err, ErrDialogNotOpen):
		return CodeDialogNotOpen
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTradeNotFound):
		return CodeTradeNotFound
	case errors.Is(err, ErrEventNotFound):
		return CodeEventNotFound
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolate
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// LoadError describes a failed profile load cycle
type LoadError struct {
	UserID     string
	Generation uint64
	Stage      string
	Err        error
}

// Error implements the error interface for LoadError
func (e *LoadError) Error() string {
	return fmt.Sprintf("profile load failed for user %s (generation %d, stage %s): %v",
		e.UserID, e.Generation, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LoadError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "load_error",
		"user_id":    e.UserID,
		"generation": e.Generation,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLoadError creates a detailed profile load error
func NewLoadError(userID string, generation uint64, stage string, err error) error {
	return &LoadError{
		UserID:     userID,
		Generation: generation,
		Stage:      stage,
		Err:        err,
	}
}

// FundsError represents a failed balance update
type FundsError struct {
	UserID         string
	Amount         string
	IdempotencyKey string
	Err            error
}

// Error implements the error interface for FundsError
func (e *FundsError) Error() string {
	return fmt.Sprintf("add funds failed for user %s (amount: %s): %v", e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *FundsError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *FundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "funds_error",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"idempotency_key": e.IdempotencyKey,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewFundsError creates a detailed add-funds error
func NewFundsError(userID, amount, idempotencyKey string, err error) error {
	return &FundsError{
		UserID:         userID,
		Amount:         amount,
		IdempotencyKey: idempotencyKey,
		Err:            err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTradeNotFound) ||
		errors.Is(err, ErrEventNotFound)
}

// IsUnauthenticatedError checks if the error means no identity was present
func IsUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrInvalidToken)
}
