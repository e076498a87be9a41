package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// Claims are the identity claims carried by the provider's token
type Claims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// TokenService verifies HMAC-signed identity tokens
type TokenService struct {
	secret       []byte
	issuer       string
	timeProvider coreport.TimeProvider
}

// NewTokenService creates a token service. An empty issuer accepts any.
func NewTokenService(secret, issuer string, timeProvider coreport.TimeProvider) *TokenService {
	return &TokenService{
		secret:       []byte(secret),
		issuer:       issuer,
		timeProvider: timeProvider,
	}
}

// Verify parses a token and returns the identity it carries
func (s *TokenService) Verify(tokenString string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: missing subject", errs.ErrInvalidToken)
	}

	return &entity.Identity{
		ID:          subject,
		DisplayName: claims.Name,
		Email:       claims.Email,
		AvatarURL:   claims.Picture,
	}, nil
}

// Issue signs a token for identity valid for ttl. Used by the
// development sign-in route and tests.
func (s *TokenService) Issue(identity *entity.Identity, ttl time.Duration) (string, error) {
	if identity == nil || identity.ID == "" {
		return "", errors.New("identity with an ID is required")
	}

	now := s.timeProvider.Now()
	claims := Claims{
		Name:    identity.DisplayName,
		Email:   identity.Email,
		Picture: identity.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
