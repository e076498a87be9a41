package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// TokenVerifier turns an identity token into an identity
type TokenVerifier interface {
	Verify(token string) (*entity.Identity, error)
}

// Auth derives the session identity from the bearer token in the
// Authorization header or the auth cookie. A missing or invalid token
// signs the session out. Must run after Session, and reuses the
// identity Session already verified for a principal session.
func Auth(verifier TokenVerifier, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := PageFrom(c)

		var identity *entity.Identity
		if verified, ok := c.Get(headerIdentityKey); ok {
			identity, _ = verified.(*entity.Identity)
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(cookieName)
		}

		if identity == nil && token != "" {
			verified, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("Rejected identity token", map[string]any{
					"error": err.Error(),
					"path":  c.Request.URL.Path,
				})
			} else {
				identity = verified
			}
		}

		if identity == nil && page.Identity() != nil {
			page.SignOut()
		} else {
			page.SignIn(identity)
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
