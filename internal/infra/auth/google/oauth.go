// Package google implements the OAuth login flow against Google's endpoints.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"weightwise/config"
	"weightwise/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

const (
	googleOAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"

	// stateTTL bounds how long a consent round-trip may take.
	stateTTL = 10 * time.Minute
)

// tokenVerifier validates a raw ID token against the expected audience.
// Swapped out in tests.
type tokenVerifier func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)

// OAuthService drives the authorization code flow against Google.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	httpClient *http.Client
	verify     tokenVerifier

	// In-memory CSRF state store. States are single use.
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a Google OAuth service from configuration.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	oauthCfg := cfg.GoogleOAuth
	if oauthCfg == nil {
		oauthCfg = &config.GoogleOAuthConfig{}
	}

	return &OAuthService{
		clientID:     oauthCfg.ClientID,
		clientSecret: oauthCfg.ClientSecret,
		redirectURI:  oauthCfg.RedirectURI,
		scopes:       oauthCfg.Scopes,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		verify:       idtoken.Validate,
		stateStore:   make(map[string]time.Time),
	}
}

// GenerateState mints a cryptographically random state parameter and
// remembers it for later validation.
func (s *OAuthService) GenerateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	state := hex.EncodeToString(bytes)

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)
	s.cleanupExpiredStates()

	return state
}

// cleanupExpiredStates removes stale entries. Caller holds stateMutex.
func (s *OAuthService) cleanupExpiredStates() {
	now := time.Now()
	for state, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, state)
		}
	}
}

// BuildAuthorizationURL constructs the Google consent URL carrying the state.
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode()
}

// ValidateState consumes a state parameter. A state validates exactly once;
// replays and expired states are rejected.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// Exchange swaps an authorization code for tokens and verifies the returned
// ID token, yielding the authenticated user's identity.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	rawIDToken, err := s.exchangeCodeForIDToken(ctx, code)
	if err != nil {
		return nil, err
	}

	payload, err := s.verify(ctx, rawIDToken, s.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	return &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}, nil
}

// exchangeCodeForIDToken performs the token endpoint POST.
func (s *OAuthService) exchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		IDToken     string `json:"id_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	if tokenResponse.IDToken == "" {
		return "", errors.New("token response missing id_token")
	}

	return tokenResponse.IDToken, nil
}

func claimString(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}

func claimBool(claims map[string]any, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}

	return false
}
