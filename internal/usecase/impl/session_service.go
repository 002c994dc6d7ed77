package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "meatly/internal/delivery/context"
	"meatly/internal/domain/constants"
	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	"meatly/internal/domain/service"
	"meatly/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityRepo repository.IdentityRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identityRepo: params.IdentityRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a vendor by phone or email and opens a session.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	identity, err := srv.identityRepo.FindByPhoneOrEmail(ctx, input.Contact, input.Contact)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			// Same answer as a bad password; never reveal which part failed.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up identity")
	}

	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !identity.Active {
		return nil, domainerrors.ErrAccountInactive
	}

	accessToken, sessionToken, err := srv.tokenService.GenerateTokens(identity.ID, []string{constants.RoleVendor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.Session{
		IdentityID: identity.ID,
		TokenHash:  srv.tokenService.HashToken(sessionToken),
		ExpiresAt:  time.Now().Add(srv.tokenService.SessionDuration()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Vendor signed in", slog.Any("identityID", identity.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		SessionToken: sessionToken,
		Identity:     identity,
	}, nil
}

// Logout invalidates the session identified by the raw session token.
func (srv *sessionService) Logout(ctx context.Context, sessionToken string) error {
	tokenHash := srv.tokenService.HashToken(sessionToken)

	if _, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return errors.Wrap(err, "failed to look up session")
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
