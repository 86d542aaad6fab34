// Package middleware holds the HTTP-specific middlewares: session auth,
// error translation and request metrics.
package middleware

import (
	"weightwise/config"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID  = "userID"
	ContextKeySession = "session"
)

// SessionMiddleware authenticates requests by resolving the session cookie
// to a database-backed session.
type SessionMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUsecase usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	cookieName := cfg.Session.CookieName
	if cookieName == "" {
		cookieName = "ww_session"
	}

	return &SessionMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
	}
}

// Authenticate rejects requests without a live session and stores the user
// id and session on the echo context for handlers.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthorized
		}

		session, err := m.authUsecase.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUserID, session.UserID)
		c.Set(ContextKeySession, session)

		return next(c)
	}
}

// UserID returns the authenticated user id set by Authenticate.
func UserID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyUserID).(string); ok {
		return id
	}

	return ""
}
