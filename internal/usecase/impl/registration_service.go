package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"unicode"

	"meatly/config"
	deliverycontext "meatly/internal/delivery/context"
	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	"meatly/internal/domain/service"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface. It is the
// single orchestrator of the onboarding pipeline; no other component writes
// identities, profiles and shops together.
type registrationService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	hasher       service.PasswordHasher
	publisher    service.EventPublisher
	ingestor     *assetIngestor
	materializer *shopMaterializer
	logger       *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	ProfileRepo  repository.ProfileRepository
	ActivityRepo repository.ActivityRepository
	Hasher       service.PasswordHasher
	Publisher    service.EventPublisher
	Store        service.ObjectStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		profileRepo:  params.ProfileRepo,
		activityRepo: params.ActivityRepo,
		hasher:       params.Hasher,
		publisher:    params.Publisher,
		ingestor:     newAssetIngestor(params.Store, params.Config, params.Logger),
		materializer: newShopMaterializer(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterVendor runs the onboarding pipeline end to end.
func (srv *registrationService) RegisterVendor(ctx context.Context, input usecase.RegisterVendorInput) (*usecase.RegisterVendorOutput, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting vendor registration",
		slog.String("phone", input.Phone),
		slog.String("shop", input.ShopName),
	)

	// Duplicate pre-check before any write. The unique indexes remain the
	// authority; this check only produces a friendlier early answer.
	if _, err := srv.identityRepo.FindByPhoneOrEmail(ctx, input.Phone, input.Email); err == nil {
		return nil, domainerrors.ErrAlreadyRegistered
	} else if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.Wrap(err, "failed to check existing registration")
	}

	identity, err := srv.provisionIdentity(ctx, input)
	if err != nil {
		return nil, err
	}

	// Profile creation is best effort. A failure here leaves an identity
	// without its projection, which the diagnostics tooling can later heal;
	// it must never undo a committed account.
	profileCreated := srv.provisionProfile(ctx, identity)

	documents, docsDegraded := srv.ingestor.ingestDocuments(ctx, identity.ID, input.Documents)
	photos, photosDegraded := srv.ingestor.ingestPhotos(ctx, identity.ID, input.Photos)

	shop, err := srv.persistShop(ctx, identity, input, documents, photos)
	if err != nil {
		srv.compensateIdentity(ctx, identity, profileCreated)

		return nil, err
	}

	srv.appendActivity(ctx, identity.ID, entity.ActionVendorRegistered, "shop "+shop.ID.String())
	srv.publishRegistered(ctx, identity, shop)

	srv.log(ctx).Info("Vendor registration completed",
		slog.Any("identityID", identity.ID),
		slog.Any("shopID", shop.ID),
		slog.Bool("uploadDegraded", docsDegraded || photosDegraded),
	)

	return &usecase.RegisterVendorOutput{
		Identity:       identity,
		Shop:           shop,
		UploadDegraded: docsDegraded || photosDegraded,
	}, nil
}

// provisionIdentity hashes the credential and creates the account row.
func (srv *registrationService) provisionIdentity(ctx context.Context, input usecase.RegisterVendorInput) (*entity.Identity, error) {
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrIdentityCreationFailed.WrapMessage("failed to hash password")
	}

	identity := &entity.Identity{
		Name:         input.OwnerName,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Active:       true,
		Verified:     false,
	}

	if err := srv.identityRepo.Create(ctx, identity); err != nil {
		srv.log(ctx).Error("Failed to create identity",
			slog.String("phone", input.Phone),
			slog.Any("error", err),
		)

		return nil, err
	}

	return identity, nil
}

// provisionProfile projects the identity into the profiles table. Errors are
// logged and swallowed.
func (srv *registrationService) provisionProfile(ctx context.Context, identity *entity.Identity) bool {
	profile := entity.ProjectProfile(identity)
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		srv.log(ctx).Warn("Profile projection failed, account left for diagnostics repair",
			slog.Any("identityID", identity.ID),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// persistShop materializes and upserts the shop record inside one transaction.
// Re-registration against an existing shop row keeps its ID and CreatedAt.
func (srv *registrationService) persistShop(
	ctx context.Context,
	identity *entity.Identity,
	input usecase.RegisterVendorInput,
	documents entity.Documents,
	photos []string,
) (*entity.Shop, error) {
	shop := srv.materializer.materialize(identity, input)
	shop.Documents = documents
	shop.Photos = photos

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		existing, err := shopRepo.FindByContact(ctx, shop.Phone, shop.Email)
		if err == nil {
			shop.ID = existing.ID
			shop.CreatedAt = existing.CreatedAt

			return shopRepo.Update(ctx, shop)
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to check existing shop")
		}

		return shopRepo.Create(ctx, shop)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist shop record",
			slog.Any("identityID", identity.ID),
			slog.Any("error", err),
		)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrShopPersistenceFailed.WrapMessage(err.Error())
	}

	return shop, nil
}

// compensateIdentity undoes the provisioning steps after a shop persistence
// failure: profile first, then identity. Both deletes are best effort; if they
// fail the account remains as an orphaned identity for diagnostics.
func (srv *registrationService) compensateIdentity(ctx context.Context, identity *entity.Identity, profileCreated bool) {
	if profileCreated {
		if err := srv.profileRepo.Delete(ctx, identity.ID); err != nil {
			srv.log(ctx).Error("Compensating profile delete failed",
				slog.Any("identityID", identity.ID),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.identityRepo.Delete(ctx, identity.ID); err != nil {
		srv.log(ctx).Error("Compensating identity delete failed, orphaned identity remains",
			slog.Any("identityID", identity.ID),
			slog.Any("error", err),
		)
	}
}

// appendActivity records an audit entry. Best effort.
func (srv *registrationService) appendActivity(ctx context.Context, actorID uuid.UUID, action, detail string) {
	log := &entity.ActivityLog{
		ActorID: actorID,
		Action:  action,
		Detail:  detail,
	}
	if err := srv.activityRepo.Append(ctx, log); err != nil {
		srv.log(ctx).Warn("Failed to append activity log",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

// publishRegistered emits the registration event. Best effort.
func (srv *registrationService) publishRegistered(ctx context.Context, identity *entity.Identity, shop *entity.Shop) {
	event := &service.VendorEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       service.EventVendorRegistered,
		IdentityID: identity.ID.String(),
		ShopID:     shop.ID.String(),
		ShopName:   shop.Name,
		City:       shop.City,
	}
	if err := srv.publisher.PublishVendorEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish registration event",
			slog.Any("identityID", identity.ID),
			slog.Any("error", err),
		)
	}
}

// validateRegistration checks the wizard submission before any side effect.
func validateRegistration(input usecase.RegisterVendorInput) error {
	var missing []string
	if strings.TrimSpace(input.OwnerName) == "" {
		missing = append(missing, "owner name")
	}
	if strings.TrimSpace(input.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.Password) == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(input.ShopName) == "" {
		missing = append(missing, "shop name")
	}
	if strings.TrimSpace(input.Plot) == "" {
		missing = append(missing, "plot")
	}
	if strings.TrimSpace(input.Building) == "" {
		missing = append(missing, "building")
	}
	if strings.TrimSpace(input.Pincode) == "" {
		missing = append(missing, "pincode")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	if countDigits(input.Phone) < minPhoneDigits {
		return domainerrors.ErrValidationFailed.WithDetails("phone must contain at least 10 digits")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed email address")
	}
	if len(input.Pincode) != pincodeLength || countDigits(input.Pincode) != pincodeLength {
		return domainerrors.ErrValidationFailed.WithDetails("pincode must be exactly 6 digits")
	}

	submitted := make(map[entity.DocumentKind]bool, len(input.Documents))
	for _, doc := range input.Documents {
		if !doc.Kind.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown document kind: " + doc.Kind.String())
		}
		submitted[doc.Kind] = true
	}

	for _, required := range entity.RequiredDocumentKinds() {
		if !submitted[required] {
			return domainerrors.ErrValidationFailed.WithDetails("missing required document: " + required.String())
		}
	}

	return nil
}

const (
	minPhoneDigits = 10
	pincodeLength  = 6
)

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}

	return n
}
