package impl

import (
	"context"
	"testing"

	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	mockRepo "meatly/internal/mocks/repository"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetShop_Success(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	service := NewCatalogService(shopRepo)

	ctx := context.Background()
	shopID := uuid.New()
	shop := &entity.Shop{
		ID:          shopID,
		Name:        "Fresh Cuts",
		OwnerName:   "Ravi Kumar",
		Phone:       "+919876543210",
		FullAddress: "12, Benz Circle, Vijayawada",
		Latitude:    16.51,
		Longitude:   80.65,
		Active:      true,
		Approved:    true,
	}

	shopRepo.EXPECT().FindVisibleByID(ctx, shopID).Return(shop, nil)

	result, err := service.GetShop(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, shopID, result.ID)
	assert.Equal(t, "Ravi Kumar", result.Vendor.Name)
	assert.Empty(t, result.FormattedDistance)
}

func TestCatalogService_GetShop_HiddenLooksLikeMissing(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	service := NewCatalogService(shopRepo)

	ctx := context.Background()
	shopID := uuid.New()

	shopRepo.EXPECT().FindVisibleByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	result, err := service.GetShop(ctx, shopID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	assert.Nil(t, result)
}

func TestCatalogService_ListShops_NoViewerLocation(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	service := NewCatalogService(shopRepo)

	ctx := context.Background()
	shops := []*entity.Shop{
		{ID: uuid.New(), Name: "A", Latitude: 16.51, Longitude: 80.65, Active: true, Approved: true},
		{ID: uuid.New(), Name: "B", Latitude: 16.52, Longitude: 80.66, Active: true, Approved: true},
	}

	shopRepo.EXPECT().ListVisible(ctx).Return(shops, nil)

	result, err := service.ListShops(ctx, usecase.ListShopsInput{})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Empty(t, result[0].FormattedDistance)
	assert.Empty(t, result[1].FormattedDistance)
}

func TestCatalogService_ListShops_SortsNearestFirst(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	service := NewCatalogService(shopRepo)

	ctx := context.Background()
	farID := uuid.New()
	nearID := uuid.New()
	fallbackID := uuid.New()

	// Viewer stands at the near shop; the far one is roughly 11 km north.
	shops := []*entity.Shop{
		{ID: farID, Name: "Far", Latitude: 16.6062, Longitude: 80.6480, Active: true, Approved: true},
		{ID: fallbackID, Name: "Unknown", Latitude: 16.5062, Longitude: 80.6480, NeedsGeocoding: true, Active: true, Approved: true},
		{ID: nearID, Name: "Near", Latitude: 16.5080, Longitude: 80.6480, Active: true, Approved: true},
	}

	shopRepo.EXPECT().ListVisible(ctx).Return(shops, nil)

	lat, lon := 16.5062, 80.6480
	result, err := service.ListShops(ctx, usecase.ListShopsInput{Latitude: &lat, Longitude: &lon})

	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, nearID, result[0].ID)
	assert.Equal(t, farID, result[1].ID)

	// Fallback coordinates are untrustworthy: the shop sorts last and
	// carries no distance label.
	assert.Equal(t, fallbackID, result[2].ID)
	assert.Empty(t, result[2].FormattedDistance)

	assert.NotEmpty(t, result[0].FormattedDistance)
	assert.NotEmpty(t, result[1].FormattedDistance)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "450 m", formatDistance(450.4))
	assert.Equal(t, "999 m", formatDistance(999.4))
	assert.Equal(t, "1.00 km", formatDistance(999.6))
	assert.Equal(t, "1.50 km", formatDistance(1500))
	assert.Equal(t, "12.35 km", formatDistance(12345))
}
