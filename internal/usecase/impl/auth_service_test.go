package impl

import (
	"context"
	"testing"
	"time"

	"weightwise/config"
	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/domain/service"
	mockRepo "weightwise/internal/mocks/repository"
	mockSvc "weightwise/internal/mocks/service"
	"weightwise/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	oauth       *mockSvc.MockOAuthService
	signer      *mockSvc.MockSessionSigner
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	oauth := mockSvc.NewMockOAuthService(t)
	signer := mockSvc.NewMockSessionSigner(t)

	cfg := &config.Config{
		Session: config.SessionConfig{TTL: time.Hour},
	}

	authService := NewAuthService(AuthServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		OAuth:       oauth,
		Signer:      signer,
		Config:      cfg,
		Logger:      testLogger(),
	})

	return authServiceFixtures{
		service:     authService,
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		oauth:       oauth,
		signer:      signer,
	}
}

func TestAuthService_BeginLogin(t *testing.T) {
	fx := createTestAuthService(t)

	fx.oauth.On("GenerateState").Return("state-1")
	fx.oauth.On("BuildAuthorizationURL", "state-1").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=state-1")

	authURL, err := fx.service.BeginLogin(context.Background())

	require.NoError(t, err)
	assert.Contains(t, authURL, "state=state-1")
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.oauth.On("ValidateState", "state-1").Return(true)
	fx.oauth.On("Exchange", ctx, "code-1").Return(&service.OAuthUser{
		Subject:   "sub-1",
		Email:     "user@example.com",
		Name:      "Test User",
		AvatarURL: "https://example.com/avatar.png",
	}, nil)

	var createdSession *entity.Session
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txSessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.On("UserRepo").Return(txUserRepo)
			factory.On("SessionRepo").Return(txSessionRepo)

			txUserRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					user := args.Get(1).(*entity.User)
					assert.Equal(t, "sub-1", user.ID)
					assert.Equal(t, "user@example.com", user.Email)
				}).
				Return(nil)

			txSessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(args mock.Arguments) {
					createdSession = args.Get(1).(*entity.Session)
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	fx.signer.On("Sign", mock.AnythingOfType("string")).Return("signed-cookie", nil)

	result, err := fx.service.CompleteLogin(ctx, "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, "sub-1", result.User.ID)
	assert.Equal(t, "signed-cookie", result.CookieValue)

	require.NotNil(t, createdSession)
	assert.Equal(t, "sub-1", createdSession.UserID)
	assert.NotEmpty(t, createdSession.SID)
	assert.Equal(t, "user@example.com", createdSession.Data["email"])
	assert.WithinDuration(t, time.Now().Add(time.Hour), createdSession.ExpiresAt, time.Minute)
}

func TestAuthService_CompleteLogin_StateMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	fx.oauth.On("ValidateState", "forged").Return(false)

	result, err := fx.service.CompleteLogin(context.Background(), "forged", "code-1")

	require.ErrorIs(t, err, domainerrors.ErrOAuthStateMismatch)
	assert.Nil(t, result)
}

func TestAuthService_CompleteLogin_ExchangeFailed(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.oauth.On("ValidateState", "state-1").Return(true)
	fx.oauth.On("Exchange", ctx, "bad-code").Return(nil, errors.New("invalid_grant"))

	result, err := fx.service.CompleteLogin(ctx, "state-1", "bad-code")

	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OAUTH_FAILED", appErr.ErrorCode())
	assert.Equal(t, "invalid_grant", appErr.Details())
}

func TestAuthService_CompleteLogin_TransactionFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.oauth.On("ValidateState", "state-1").Return(true)
	fx.oauth.On("Exchange", ctx, "code-1").Return(&service.OAuthUser{Subject: "sub-1"}, nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	result, err := fx.service.CompleteLogin(ctx, "state-1", "code-1")

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.signer.On("Parse", "signed-cookie").Return("sid-1", nil)
	fx.sessionRepo.On("FindBySID", ctx, "sid-1").Return(&entity.Session{
		SID:       "sid-1",
		UserID:    "sub-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	session, err := fx.service.Authenticate(ctx, "signed-cookie")

	require.NoError(t, err)
	assert.Equal(t, "sub-1", session.UserID)
}

func TestAuthService_Authenticate_BadCookie(t *testing.T) {
	fx := createTestAuthService(t)

	fx.signer.On("Parse", "garbage").Return("", errors.New("token is malformed"))

	session, err := fx.service.Authenticate(context.Background(), "garbage")

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Nil(t, session)
}

func TestAuthService_Authenticate_SessionNotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.signer.On("Parse", "signed-cookie").Return("sid-gone", nil)
	fx.sessionRepo.On("FindBySID", ctx, "sid-gone").Return(nil, repository.ErrSessionNotFound)

	session, err := fx.service.Authenticate(ctx, "signed-cookie")

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Nil(t, session)
}

func TestAuthService_Authenticate_ExpiredSessionDeleted(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.signer.On("Parse", "signed-cookie").Return("sid-old", nil)
	fx.sessionRepo.On("FindBySID", ctx, "sid-old").Return(&entity.Session{
		SID:       "sid-old",
		UserID:    "sub-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	fx.sessionRepo.On("Delete", ctx, "sid-old").Return(nil)

	session, err := fx.service.Authenticate(ctx, "signed-cookie")

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Nil(t, session)
	fx.sessionRepo.AssertCalled(t, "Delete", ctx, "sid-old")
}

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.signer.On("Parse", "signed-cookie").Return("sid-1", nil)
	fx.sessionRepo.On("Delete", ctx, "sid-1").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "signed-cookie"))
}

func TestAuthService_Logout_BadCookieIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	fx.signer.On("Parse", "garbage").Return("", errors.New("token is malformed"))

	require.NoError(t, fx.service.Logout(context.Background(), "garbage"))
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, "ghost")

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}
