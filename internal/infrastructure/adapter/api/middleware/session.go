package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/session"
)

const (
	// PageKey is the gin context key holding the session's profile page
	PageKey = "profile.page"

	headerIdentityKey = "profile.header_identity"
)

// SessionOptions configures the session cookie
type SessionOptions struct {
	CookieName string
	MaxAge     int // seconds
	Secure     bool
	// Verifier resolves bearer tokens of requests without a session
	// cookie; nil disables principal sessions
	Verifier TokenVerifier
}

// Session resolves the browser session cookie to its profile page,
// starting a new session when the cookie is missing or unknown. A
// request with no known session cookie but a valid bearer token is
// served from its principal's shared session, and no cookie is set.
func Session(registry *session.Registry, opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Cookie(opts.CookieName)

		if page, ok := registry.Get(current); ok {
			c.Set(PageKey, page)
			c.Next()
			return
		}

		if identity := headerIdentity(c, opts.Verifier); identity != nil {
			c.Set(headerIdentityKey, identity)
			c.Set(PageKey, registry.ForPrincipal(identity.ID))
			c.Next()
			return
		}

		id, page := registry.GetOrCreate(current)
		if id != current {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(opts.CookieName, id, opts.MaxAge, "/", "", opts.Secure, true)
		}

		c.Set(PageKey, page)
		c.Next()
	}
}

func headerIdentity(c *gin.Context, verifier TokenVerifier) *entity.Identity {
	if verifier == nil {
		return nil
	}
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		return nil
	}
	identity, err := verifier.Verify(token)
	if err != nil {
		return nil
	}
	return identity
}

// PageFrom returns the session page stored by Session
func PageFrom(c *gin.Context) *profile.Page {
	page, _ := c.MustGet(PageKey).(*profile.Page)
	return page
}
