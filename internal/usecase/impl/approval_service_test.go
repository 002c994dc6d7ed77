package impl

import (
	"context"
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

type approvalMocks struct {
	txManager    *mockRepo.MockTransactionManager
	shopRepo     *mockRepo.MockShopRepository
	identityRepo *mockRepo.MockIdentityRepository
	activityRepo *mockRepo.MockActivityRepository
	publisher    *mockSvc.MockEventPublisher
	qrService    *mockSvc.MockQRCodeService
}

func newApprovalServiceForTest(t *testing.T) (usecase.ApprovalUsecase, *approvalMocks) {
	m := &approvalMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
	}

	service := NewApprovalService(ApprovalServiceParams{
		TxManager:    m.txManager,
		ShopRepo:     m.shopRepo,
		IdentityRepo: m.identityRepo,
		ActivityRepo: m.activityRepo,
		Publisher:    m.publisher,
		QRService:    m.qrService,
		Logger:       discardLogger(),
	})

	return service, m
}

func TestApprovalService_Approve_Success(t *testing.T) {
	service, m := newApprovalServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shopID := uuid.New()
	shop := &entity.Shop{ID: shopID, OwnerID: ownerID, Name: "Fresh Cuts"}
	owner := &entity.Identity{ID: ownerID, Name: "Ravi Kumar"}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)

			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(shop, nil)
			mockShopRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Shop")).
				Run(func(ctx context.Context, updated *entity.Shop) {
					assert.True(t, updated.Active)
					assert.True(t, updated.Approved)
				}).
				Return(nil)
			mockIdentityRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
			mockIdentityRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, updated *entity.Identity) {
					assert.True(t, updated.Verified)
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
	m.qrService.EXPECT().GenerateShopQR(shopID).Return([]byte("png-bytes"), nil)

	output, err := service.Approve(ctx, shopID)

	require.NoError(t, err)
	assert.True(t, output.Shop.Active)
	assert.True(t, output.Shop.Approved)
	assert.Equal(t, []byte("png-bytes"), output.QRCode)
}

func TestApprovalService_Approve_QRFailureDoesNotUnwind(t *testing.T) {
	service, m := newApprovalServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shopID := uuid.New()
	shop := &entity.Shop{ID: shopID, OwnerID: ownerID, Name: "Fresh Cuts"}
	owner := &entity.Identity{ID: ownerID}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)

			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(shop, nil)
			mockShopRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)
			mockIdentityRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
			mockIdentityRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)
	m.publisher.EXPECT().
		PublishVendorEvent(ctx, mock.AnythingOfType("*service.VendorEvent")).
		Return(nil)
	m.qrService.EXPECT().GenerateShopQR(shopID).Return(nil, errors.New("render failed"))

	output, err := service.Approve(ctx, shopID)

	require.NoError(t, err)
	assert.True(t, output.Shop.Approved)
	assert.Nil(t, output.QRCode)
}

func TestApprovalService_Approve_ShopNotFound(t *testing.T) {
	service, m := newApprovalServiceForTest(t)

	ctx := context.Background()
	shopID := uuid.New()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockRepo.NewMockIdentityRepository(t))

			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrShopNotFound)

	output, err := service.Approve(ctx, shopID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	assert.Nil(t, output)
}

func TestApprovalService_Reject_ClearsFlags(t *testing.T) {
	service, m := newApprovalServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shopID := uuid.New()
	shop := &entity.Shop{ID: shopID, OwnerID: ownerID, Name: "Fresh Cuts", Active: true, Approved: true}

	m.shopRepo.EXPECT().FindByID(ctx, shopID).Return(shop, nil)
	m.shopRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Shop")).
		Run(func(ctx context.Context, updated *entity.Shop) {
			assert.False(t, updated.Active)
			assert.False(t, updated.Approved)
		}).
		Return(nil)
	m.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(ctx context.Context, activity *entity.ActivityLog) {
			assert.Contains(t, activity.Detail, "incomplete documents")
		}).
		Return(nil)
	m.publisher.EXPECT().
		PublishVendorEvent(ctx, mock.AnythingOfType("*service.VendorEvent")).
		Return(nil)

	result, err := service.Reject(ctx, shopID, "incomplete documents")

	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.False(t, result.Approved)
}
