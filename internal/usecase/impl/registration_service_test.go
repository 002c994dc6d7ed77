package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type registrationMocks struct {
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	profileRepo  *mockRepo.MockProfileRepository
	activityRepo *mockRepo.MockActivityRepository
	hasher       *mockSvc.MockPasswordHasher
	publisher    *mockSvc.MockEventPublisher
	store        *mockSvc.MockObjectStore
}

func newRegistrationService(t *testing.T) (usecase.RegistrationUsecase, *registrationMocks) {
	m := &registrationMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		store:        mockSvc.NewMockObjectStore(t),
	}

	service := NewRegistrationService(RegistrationServiceParams{
		TxManager:    m.txManager,
		IdentityRepo: m.identityRepo,
		ProfileRepo:  m.profileRepo,
		ActivityRepo: m.activityRepo,
		Hasher:       m.hasher,
		Publisher:    m.publisher,
		Store:        m.store,
		Logger:       discardLogger(),
	})

	return service, m
}

func validRegistrationInput() usecase.RegisterVendorInput {
	return usecase.RegisterVendorInput{
		OwnerName: "Ravi Kumar",
		Phone:     "+919876543210",
		Email:     "ravi@example.com",
		Password:  "secret-password",
		ShopName:  "Ravi Meats",
		Plot:      "12",
		Building:  "Sky Tower",
		Area:      "Benz Circle",
		City:      "Vijayawada",
		Pincode:   "520010",
		Documents: []usecase.DocumentUpload{
			{Kind: entity.DocumentPAN, Ref: "https://cdn.example.com/pan.pdf"},
			{Kind: entity.DocumentFSSAI, Ref: "https://cdn.example.com/fssai.pdf"},
			{Kind: entity.DocumentAadhaar, Ref: "https://cdn.example.com/aadhaar.pdf"},
		},
	}
}

func TestRegistrationService_RegisterVendor_Success(t *testing.T) {
	service, m := newRegistrationService(t)

	ctx := context.Background()
	input := validRegistrationInput()
	identityID := uuid.New()
	shopID := uuid.New()

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, input.Phone, input.Email).
		Return(nil, repository.ErrIdentityNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.identityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(ctx context.Context, identity *entity.Identity) {
			identity.ID = identityID
		}).
		Return(nil)
	m.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	// Already-remote document refs pass through without touching the store.
	m.store.EXPECT().IsRemote("https://cdn.example.com/pan.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/fssai.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/aadhaar.pdf").Return(true)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().
				FindByContact(ctx, input.Phone, input.Email).
				Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Shop")).
				Run(func(ctx context.Context, shop *entity.Shop) {
					shop.ID = shopID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)
	m.publisher.EXPECT().
		PublishVendorEvent(ctx, mock.AnythingOfType("*service.VendorEvent")).
		Return(nil)

	output, err := service.RegisterVendor(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, identityID, output.Identity.ID)
	assert.Equal(t, shopID, output.Shop.ID)
	assert.False(t, output.UploadDegraded)
	assert.False(t, output.Shop.Active)
	assert.False(t, output.Shop.Approved)
	assert.Equal(t, "https://cdn.example.com/pan.pdf", output.Shop.Documents[entity.DocumentPAN])
}

func TestRegistrationService_RegisterVendor_DuplicateContact(t *testing.T) {
	service, m := newRegistrationService(t)

	ctx := context.Background()
	input := validRegistrationInput()

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, input.Phone, input.Email).
		Return(&entity.Identity{ID: uuid.New(), Phone: input.Phone}, nil)

	output, err := service.RegisterVendor(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
	assert.Nil(t, output)
}

func TestRegistrationService_RegisterVendor_MissingRequiredFields(t *testing.T) {
	service, _ := newRegistrationService(t)

	input := validRegistrationInput()
	input.Password = ""
	input.ShopName = ""

	output, err := service.RegisterVendor(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestRegistrationService_RegisterVendor_MalformedContact(t *testing.T) {
	service, _ := newRegistrationService(t)

	input := validRegistrationInput()
	input.Phone = "12345"

	output, err := service.RegisterVendor(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)

	input = validRegistrationInput()
	input.Pincode = "52001"

	output, err = service.RegisterVendor(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestRegistrationService_RegisterVendor_MissingRequiredDocument(t *testing.T) {
	service, _ := newRegistrationService(t)

	input := validRegistrationInput()
	input.Documents = input.Documents[:2] // drop aadhaar

	output, err := service.RegisterVendor(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestRegistrationService_RegisterVendor_CompensatesOnShopFailure(t *testing.T) {
	service, m := newRegistrationService(t)

	ctx := context.Background()
	input := validRegistrationInput()
	identityID := uuid.New()

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, input.Phone, input.Email).
		Return(nil, repository.ErrIdentityNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.identityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(ctx context.Context, identity *entity.Identity) {
			identity.ID = identityID
		}).
		Return(nil)
	m.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	m.store.EXPECT().IsRemote("https://cdn.example.com/pan.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/fssai.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/aadhaar.pdf").Return(true)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	// Saga compensation: the profile goes first, then the identity.
	m.profileRepo.EXPECT().Delete(ctx, identityID).Return(nil)
	m.identityRepo.EXPECT().Delete(ctx, identityID).Return(nil)

	output, err := service.RegisterVendor(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopPersistenceFailed)
	assert.Nil(t, output)
}

func TestRegistrationService_RegisterVendor_ProfileFailureDoesNotAbort(t *testing.T) {
	service, m := newRegistrationService(t)

	ctx := context.Background()
	input := validRegistrationInput()
	identityID := uuid.New()

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, input.Phone, input.Email).
		Return(nil, repository.ErrIdentityNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.identityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(ctx context.Context, identity *entity.Identity) {
			identity.ID = identityID
		}).
		Return(nil)

	// The projection fails; the account is left for diagnostics repair.
	m.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(errors.New("insert failed"))

	m.store.EXPECT().IsRemote("https://cdn.example.com/pan.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/fssai.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/aadhaar.pdf").Return(true)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().
				FindByContact(ctx, input.Phone, input.Email).
				Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Shop")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)
	m.publisher.EXPECT().
		PublishVendorEvent(ctx, mock.AnythingOfType("*service.VendorEvent")).
		Return(nil)

	output, err := service.RegisterVendor(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, identityID, output.Identity.ID)
}

func TestRegistrationService_RegisterVendor_ReusesExistingShopRecord(t *testing.T) {
	service, m := newRegistrationService(t)

	ctx := context.Background()
	input := validRegistrationInput()
	identityID := uuid.New()
	existingShopID := uuid.New()

	m.identityRepo.EXPECT().
		FindByPhoneOrEmail(ctx, input.Phone, input.Email).
		Return(nil, repository.ErrIdentityNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.identityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(ctx context.Context, identity *entity.Identity) {
			identity.ID = identityID
		}).
		Return(nil)
	m.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	m.store.EXPECT().IsRemote("https://cdn.example.com/pan.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/fssai.pdf").Return(true)
	m.store.EXPECT().IsRemote("https://cdn.example.com/aadhaar.pdf").Return(true)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().
				FindByContact(ctx, input.Phone, input.Email).
				Return(&entity.Shop{ID: existingShopID, Phone: input.Phone}, nil)
			mockShopRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Shop")).
				Run(func(ctx context.Context, shop *entity.Shop) {
					assert.Equal(t, existingShopID, shop.ID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)
	m.publisher.EXPECT().
		PublishVendorEvent(ctx, mock.AnythingOfType("*service.VendorEvent")).
		Return(nil)

	output, err := service.RegisterVendor(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existingShopID, output.Shop.ID)
}
