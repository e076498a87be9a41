package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/middleware"
)

// TokenIssuer signs identity tokens
type TokenIssuer interface {
	Issue(identity *entity.Identity, ttl time.Duration) (string, error)
}

// AuthHandler handles sign-out and, in development, sign-in
type AuthHandler struct {
	issuer        TokenIssuer
	cookieName    string
	tokenTTL      time.Duration
	secureCookies bool
	logger        coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(issuer TokenIssuer, cookieName string, tokenTTL time.Duration, secureCookies bool, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		issuer:        issuer,
		cookieName:    cookieName,
		tokenTTL:      tokenTTL,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.PageFrom(c).SignOut()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusSeeOther, "/profile")
}

// DevLogin handles GET /dev/login?sub=...&name=...&email=... by issuing
// a token for the given principal. Only routed when enabled.
func (h *AuthHandler) DevLogin(c *gin.Context) {
	identity := &entity.Identity{
		ID:          c.Query("sub"),
		DisplayName: c.DefaultQuery("name", "Demo Bettor"),
		Email:       c.DefaultQuery("email", "demo@example.com"),
		AvatarURL:   c.Query("picture"),
	}

	token, err := h.issuer.Issue(identity, h.tokenTTL)
	if err != nil {
		status, body := errorResponse(err)
		if identity.ID == "" {
			status = http.StatusBadRequest
			body.Message = "sub is required"
		}
		c.JSON(status, body)
		return
	}

	h.logger.Info("Development sign-in", map[string]any{"user_id": identity.ID})
	middleware.PageFrom(c).SignIn(identity)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.tokenTTL.Seconds()), "/", "", h.secureCookies, true)
	c.Redirect(http.StatusSeeOther, "/profile")
}
