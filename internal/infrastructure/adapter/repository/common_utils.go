package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/database"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return database.IsTransientError(err)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "lock wait timeout") ||
		strings.Contains(err.Error(), "could not serialize access") ||
		strings.Contains(err.Error(), "database is locked")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "connection") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "network")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "constraint") ||
		strings.Contains(err.Error(), "violates") ||
		strings.Contains(err.Error(), "foreign key") ||
		strings.Contains(err.Error(), "not null")
}

// errorHandler standardizes how repositories turn driver errors into
// domain errors
type errorHandler struct {
	logger     coreport.Logger
	classifier *ErrorClassifier
	mapper     *database.ErrorMapper
	entityType database.EntityType
}

func newErrorHandler(logger coreport.Logger, entityType database.EntityType) errorHandler {
	return errorHandler{
		logger:     logger,
		classifier: NewErrorClassifier(),
		mapper:     database.NewErrorMapper(),
		entityType: entityType,
	}
}

// handle logs err and maps it. Missing rows are expected during loads
// and only logged at debug level.
func (h errorHandler) handle(operation string, err error, id string) error {
	fields := map[string]any{
		string(h.entityType) + "_id": id,
		"error":                      err.Error(),
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Debug(fmt.Sprintf("%s not found", h.entityType), fields)
		return h.mapper.MapEntityNotFoundError(err, h.entityType)
	}

	switch h.classifier.Classify(err) {
	case DuplicateKeyError:
		h.logger.Warn(fmt.Sprintf("Duplicate %s when %s", h.entityType, operation), fields)
		if h.entityType == database.EntityTypeDeposit {
			return errs.ErrDuplicateDeposit
		}
		return fmt.Errorf("%w: %s already exists", errs.ErrConstraintViolation, h.entityType)
	case ConstraintError:
		h.logger.Warn(fmt.Sprintf("Constraint violated when %s", operation), fields)
		return errs.ErrConstraintViolation
	case LockError, TransientError, ConnectionError:
		h.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	h.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return h.mapper.MapError(err, operation)
}
