// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"weightwise/internal/domain/entity"
)

// --- Output DTOs ---

// LoginResult carries everything the handler needs to finish a login:
// the upserted user and the signed cookie value with its expiry.
type LoginResult struct {
	User        *entity.User
	CookieValue string
	ExpiresAt   time.Time
}

// AuthUsecase drives the OAuth login flow and session lifecycle.
type AuthUsecase interface {
	// BeginLogin mints a CSRF state and returns the provider consent URL.
	BeginLogin(ctx context.Context) (authURL string, err error)

	// CompleteLogin validates the state, exchanges the code, upserts the
	// user and creates a session row, all in one transaction.
	CompleteLogin(ctx context.Context, state, code string) (*LoginResult, error)

	// Authenticate resolves a cookie value to a live session. Expired or
	// unknown sessions yield ErrSessionInvalid.
	Authenticate(ctx context.Context, cookieValue string) (*entity.Session, error)

	// Logout deletes the session behind the cookie value. Unknown cookies
	// log out successfully; there is nothing to protect.
	Logout(ctx context.Context, cookieValue string) error

	// CurrentUser returns the user record for an authenticated session.
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}
