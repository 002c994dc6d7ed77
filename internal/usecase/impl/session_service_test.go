package impl

import (
	"context"
	"testing"
	"time"

	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	mockRepo "meatly/internal/mocks/repository"
	mockSvc "meatly/internal/mocks/service"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	identityRepo *mockRepo.MockIdentityRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *sessionMocks) {
	m := &sessionMocks{
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	service := NewSessionService(SessionServiceParams{
		IdentityRepo: m.identityRepo,
		SessionRepo:  m.sessionRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       discardLogger(),
	})

	return service, m
}

func TestSessionService_Login_Success(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:           uuid.New(),
		Phone:        "+919876543210",
		PasswordHash: "hashed",
		Active:       true,
	}

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, "+919876543210", "+919876543210").
		Return(identity, nil)
	m.hasher.EXPECT().Check("secret", "hashed").Return(true)
	m.tokenService.EXPECT().
		GenerateTokens(identity.ID, []string{"vendor"}).
		Return("access-token", "session-token", nil)
	m.tokenService.EXPECT().HashToken("session-token").Return("token-hash")
	m.tokenService.EXPECT().SessionDuration().Return(7 * 24 * time.Hour)
	m.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, identity.ID, session.IdentityID)
			assert.Equal(t, "token-hash", session.TokenHash)
			assert.True(t, session.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	output, err := service.Login(ctx, usecase.LoginInput{Contact: "+919876543210", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, identity.ID, output.Identity.ID)
}

func TestSessionService_Login_UnknownContact(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, "nobody@example.com", "nobody@example.com").
		Return(nil, repository.ErrIdentityNotFound)

	output, err := service.Login(ctx, usecase.LoginInput{Contact: "nobody@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), PasswordHash: "hashed", Active: true}

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, "+919876543210", "+919876543210").
		Return(identity, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := service.Login(ctx, usecase.LoginInput{Contact: "+919876543210", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestSessionService_Login_InactiveAccount(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), PasswordHash: "hashed", Active: false}

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, "+919876543210", "+919876543210").
		Return(identity, nil)
	m.hasher.EXPECT().Check("secret", "hashed").Return(true)

	output, err := service.Login(ctx, usecase.LoginInput{Contact: "+919876543210", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	assert.Nil(t, output)
}

func TestSessionService_Logout_Success(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	session := &entity.Session{ID: uuid.New(), TokenHash: "token-hash"}

	m.tokenService.EXPECT().HashToken("session-token").Return("token-hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(session, nil)
	m.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	err := service.Logout(ctx, "session-token")

	require.NoError(t, err)
}

func TestSessionService_Logout_UnknownSession(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	m.tokenService.EXPECT().HashToken("stale-token").Return("stale-hash")
	m.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "stale-hash").
		Return(nil, repository.ErrSessionNotFound)

	err := service.Logout(ctx, "stale-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_Logout_LookupFailure(t *testing.T) {
	service, m := newSessionServiceForTest(t)

	ctx := context.Background()
	m.tokenService.EXPECT().HashToken("session-token").Return("token-hash")
	m.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "token-hash").
		Return(nil, errors.New("connection reset"))

	err := service.Logout(ctx, "session-token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
