// Package service declares the infrastructure-facing contracts of the domain:
// OAuth, cookie signing, upload storage, detection, events and QR codes.
package service

import "context"

// OAuthUser represents the identity returned by the OAuth provider after a
// successful login. Subject is the stable key users are stored under.
type OAuthUser struct {
	Subject       string // Provider-unique user id ('sub' claim).
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthService drives the server-side authorization code flow. The whole
// login dance is delegated here; the rest of the service only ever sees the
// resulting OAuthUser.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's consent URL carrying
	// the given CSRF state parameter.
	BuildAuthorizationURL(state string) string

	// GenerateState mints a single-use CSRF state and remembers it.
	GenerateState() string

	// ValidateState consumes a state parameter, reporting whether it was
	// issued by us and has not expired or been used.
	ValidateState(state string) bool

	// Exchange swaps an authorization code for a verified user identity.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)
}
