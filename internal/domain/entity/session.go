package entity

import "time"

// Session is a database-persisted login session. The SID travels in a
// signed HTTP-only cookie; the row is the source of truth for expiry.
type Session struct {
	SID       string
	UserID    string
	Data      map[string]any // Provider claims snapshot (email, name, avatar).
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
