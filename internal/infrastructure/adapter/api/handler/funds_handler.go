package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/middleware"
)

// IdempotencyKeyHeader carries the client's key for JSON add-funds calls
const IdempotencyKeyHeader = "Idempotency-Key"

// FundsHandler drives the add-funds dialog and the JSON add-funds API
type FundsHandler struct {
	logger coreport.Logger
}

// NewFundsHandler creates a new funds handler instance
func NewFundsHandler(logger coreport.Logger) *FundsHandler {
	return &FundsHandler{logger: logger}
}

// Open handles POST /profile/funds/open
func (h *FundsHandler) Open(c *gin.Context) {
	if err := middleware.PageFrom(c).OpenFunds(); err != nil {
		h.logger.Debug("Add funds dialog not opened", map[string]any{"error": err.Error()})
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Close handles POST /profile/funds/close
func (h *FundsHandler) Close(c *gin.Context) {
	if err := middleware.PageFrom(c).CloseFunds(); err != nil {
		h.logger.Debug("Add funds dialog not closed", map[string]any{"error": err.Error()})
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Submit handles POST /profile/funds. The outcome is kept in the dialog
// state, so every path redirects back to the page.
func (h *FundsHandler) Submit(c *gin.Context) {
	page := middleware.PageFrom(c)

	// A resubmitted form carries the token of a dialog that is gone
	if token := c.PostForm("token"); token == "" || token != page.DialogToken() {
		h.logger.Debug("Ignoring stale add funds form", map[string]any{
			"path": c.Request.URL.Path,
		})
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	// The credit must not be abandoned halfway when the browser disconnects
	ctx := context.WithoutCancel(c.Request.Context())
	if err := page.AddFunds(ctx, c.PostForm("amount")); err != nil && !errors.Is(err, domainerr.ErrInvalidAmount) {
		h.logger.Warn("Add funds submit failed", map[string]any{"error": err.Error()})
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// AddFunds handles POST /api/profile/funds
func (h *FundsHandler) AddFunds(c *gin.Context) {
	var req dto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	page := middleware.PageFrom(c)
	ctx := context.WithoutCancel(c.Request.Context())

	balance, err := page.Credit(ctx, req.Amount, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Add funds request failed", map[string]any{"error": err.Error()})
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.AddFundsResponse{
		Balance:          balance.StringFixed(entity.MoneyDecimalPlaces),
		FormattedBalance: entity.FormatUSD(balance),
	})
}
