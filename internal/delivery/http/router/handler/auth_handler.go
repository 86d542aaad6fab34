package handler

import (
	"log/slog"
	"net/http"
	"time"

	"weightwise/config"
	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler drives the OAuth login round-trip and session endpoints.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	cookieName := params.Config.Session.CookieName
	if cookieName == "" {
		cookieName = "ww_session"
	}

	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieName:   cookieName,
		cookieSecure: params.Config.Session.Secure,
		logger:       params.Logger,
	}
}

// Login redirects the browser to the provider's consent page. API clients
// can pass ?redirect=false to receive the URL as JSON instead.
func (h *AuthHandler) Login(c echo.Context) error {
	authURL, err := h.authUC.BeginLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{"authUrl": authURL}, "Authorization URL created")
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// Callback finishes the login: state check, code exchange, user upsert,
// session cookie. The provider reports user denial via the error parameter.
func (h *AuthHandler) Callback(c echo.Context) error {
	if providerErr := c.QueryParam("error"); providerErr != "" {
		return response.Unauthorized(c, "OAUTH_DENIED", "Authorization was denied: "+providerErr)
	}

	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return response.BadRequest(c, "OAUTH_CALLBACK_INVALID", "Missing state or code parameter")
	}

	result, err := h.authUC.CompleteLogin(c.Request().Context(), state, code)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    result.CookieValue,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

// Logout deletes the session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.authUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

// CurrentUser returns the authenticated user's record.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, err := h.authUC.CurrentUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
