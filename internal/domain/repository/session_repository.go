package repository

import (
	"context"
	"time"

	"weightwise/internal/domain/entity"
	"weightwise/internal/errors"
)

// ErrSessionNotFound is returned when the session id has no row, usually
// because it was logged out or swept after expiry.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists login sessions backing the session cookie.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	FindBySID(ctx context.Context, sid string) (*entity.Session, error)

	Delete(ctx context.Context, sid string) error

	// DeleteExpired removes sessions whose expiry is before now and returns
	// the number of rows swept.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
