package impl

import (
	"context"
	"log/slog"
	"time"

	"weightwise/config"
	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/domain/service"
	"weightwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	oauth       service.OAuthService
	signer      service.SessionSigner
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	OAuth       service.OAuthService
	Signer      service.SessionSigner
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	ttl := params.Config.Session.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		oauth:       params.OAuth,
		signer:      params.Signer,
		sessionTTL:  ttl,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin mints a CSRF state and returns the provider consent URL.
func (srv *authService) BeginLogin(ctx context.Context) (string, error) {
	state := srv.oauth.GenerateState()
	authURL := srv.oauth.BuildAuthorizationURL(state)

	srv.log(ctx).Debug("Login started", slog.String("state", state))

	return authURL, nil
}

// CompleteLogin validates the state, exchanges the code and establishes a
// session. The user upsert and session insert commit atomically.
func (srv *authService) CompleteLogin(ctx context.Context, state, code string) (*usecase.LoginResult, error) {
	if !srv.oauth.ValidateState(state) {
		return nil, domainerrors.ErrOAuthStateMismatch
	}

	oauthUser, err := srv.oauth.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		ID:        oauthUser.Subject,
		Email:     oauthUser.Email,
		Name:      oauthUser.Name,
		AvatarURL: oauthUser.AvatarURL,
	}

	session := &entity.Session{
		SID:    uuid.NewString(),
		UserID: oauthUser.Subject,
		Data: map[string]any{
			"sub":    oauthUser.Subject,
			"email":  oauthUser.Email,
			"name":   oauthUser.Name,
			"avatar": oauthUser.AvatarURL,
		},
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().Upsert(ctx, user); err != nil {
			return errors.Wrap(err, "failed to upsert user")
		}

		if err := repos.SessionRepo().Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction",
			slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	cookieValue, err := srv.signer.Sign(session.SID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session cookie")
	}

	srv.log(ctx).Info("Login completed", slog.String("userID", user.ID))

	return &usecase.LoginResult{
		User:        user,
		CookieValue: cookieValue,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// Authenticate resolves a cookie value to a live session.
func (srv *authService) Authenticate(ctx context.Context, cookieValue string) (*entity.Session, error) {
	sid, err := srv.signer.Parse(cookieValue)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	session, err := srv.sessionRepo.FindBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.Expired(time.Now()) {
		// Sweep the dead row eagerly; the hourly sweeper would catch it anyway.
		if err := srv.sessionRepo.Delete(ctx, sid); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return nil, domainerrors.ErrSessionInvalid
	}

	return session, nil
}

// Logout deletes the session behind the cookie value.
func (srv *authService) Logout(ctx context.Context, cookieValue string) error {
	sid, err := srv.signer.Parse(cookieValue)
	if err != nil {
		// An unparseable cookie carries no session to delete.
		return nil
	}

	if err := srv.sessionRepo.Delete(ctx, sid); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Logout completed", slog.String("sid", sid))

	return nil
}

// CurrentUser returns the user record for an authenticated session.
func (srv *authService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
