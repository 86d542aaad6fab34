// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weightwise/config"
	"weightwise/internal/domain/service"
)

// cookieSigner signs session ids into compact JWTs used as cookie values.
// The session itself lives in the database; the token only proves the sid
// was issued by us.
type cookieSigner struct {
	secret string
	ttl    time.Duration
}

// NewCookieSigner is the constructor for cookieSigner.
func NewCookieSigner(cfg *config.Config) (service.SessionSigner, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &cookieSigner{
		secret: cfg.Session.Secret,
		ttl:    cfg.Session.TTL,
	}, nil
}

// Sign wraps the session id in a signed token suitable for a cookie value.
func (s *cookieSigner) Sign(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Parse verifies a cookie value and returns the embedded session id.
func (s *cookieSigner) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("token missing sid claim")
	}

	return sid, nil
}
