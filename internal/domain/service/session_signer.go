package service

// SessionSigner signs session ids into tamper-evident cookie values and
// recovers them, keyed by the configured session secret.
type SessionSigner interface {
	// Sign wraps the session id in a signed token suitable for a cookie value.
	Sign(sid string) (string, error)

	// Parse verifies a cookie value and returns the embedded session id.
	Parse(token string) (string, error)
}
