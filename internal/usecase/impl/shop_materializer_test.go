package impl

import (
	"testing"

	"meatly/config"
	"meatly/internal/domain/entity"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShopMaterializer_FullAddressJoinsPresentParts(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}

	shop := m.materialize(owner, usecase.RegisterVendorInput{
		ShopName: "Fresh Cuts",
		Plot:     "12",
		Building: "Sky Tower",
		Area:     "  Benz Circle ",
		City:     "Vijayawada",
	})

	assert.Equal(t, "12, Sky Tower, Benz Circle, Vijayawada", shop.FullAddress)
}

func TestShopMaterializer_EmptyAddressGetsPlaceholder(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}

	shop := m.materialize(owner, usecase.RegisterVendorInput{ShopName: "Fresh Cuts"})

	assert.Equal(t, "Address not provided", shop.FullAddress)
}

func TestShopMaterializer_MissingCoordinatesUseFallback(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}

	shop := m.materialize(owner, usecase.RegisterVendorInput{ShopName: "Fresh Cuts"})

	assert.InDelta(t, 16.5062, shop.Latitude, 0.0001)
	assert.InDelta(t, 80.6480, shop.Longitude, 0.0001)
	assert.True(t, shop.NeedsGeocoding)
}

func TestShopMaterializer_SuppliedCoordinatesKept(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}
	lat, lon := 17.3850, 78.4867

	shop := m.materialize(owner, usecase.RegisterVendorInput{
		ShopName:  "Fresh Cuts",
		Latitude:  &lat,
		Longitude: &lon,
	})

	assert.Equal(t, lat, shop.Latitude)
	assert.Equal(t, lon, shop.Longitude)
	assert.False(t, shop.NeedsGeocoding)
}

func TestShopMaterializer_LoneCoordinateTreatedAsMissing(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}
	lat := 17.3850

	shop := m.materialize(owner, usecase.RegisterVendorInput{
		ShopName: "Fresh Cuts",
		Latitude: &lat,
	})

	assert.True(t, shop.NeedsGeocoding)
	assert.InDelta(t, 16.5062, shop.Latitude, 0.0001)
}

func TestShopMaterializer_HoursResolutionOrder(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}

	// Common hours win over per-day hours.
	shop := m.materialize(owner, usecase.RegisterVendorInput{
		ShopName:  "Fresh Cuts",
		OpenTime:  "08:00",
		CloseTime: "20:00",
		DayHours: []usecase.DayHours{
			{Day: "monday", OpenTime: "10:00", CloseTime: "18:00"},
		},
	})
	assert.Equal(t, "08:00", shop.OpenTime)
	assert.Equal(t, "20:00", shop.CloseTime)

	// First complete per-day window is used when no common hours exist.
	shop = m.materialize(owner, usecase.RegisterVendorInput{
		ShopName: "Fresh Cuts",
		DayHours: []usecase.DayHours{
			{Day: "monday", OpenTime: "10:00"},
			{Day: "tuesday", OpenTime: "11:00", CloseTime: "19:00"},
		},
	})
	assert.Equal(t, "11:00", shop.OpenTime)
	assert.Equal(t, "19:00", shop.CloseTime)

	// Defaults apply when nothing usable was collected.
	shop = m.materialize(owner, usecase.RegisterVendorInput{ShopName: "Fresh Cuts"})
	assert.Equal(t, "09:00", shop.OpenTime)
	assert.Equal(t, "21:00", shop.CloseTime)
}

func TestShopMaterializer_ShopStartsInvisible(t *testing.T) {
	m := newShopMaterializer(nil)
	owner := &entity.Identity{ID: uuid.New()}

	shop := m.materialize(owner, usecase.RegisterVendorInput{ShopName: "Fresh Cuts"})

	assert.False(t, shop.Active)
	assert.False(t, shop.Approved)
	assert.Equal(t, owner.ID, shop.OwnerID)
}

func TestShopMaterializer_ConfigOverridesDefaults(t *testing.T) {
	cfg := &config.Config{
		Onboarding: &config.OnboardingConfig{
			FallbackLatitude:  12.9716,
			FallbackLongitude: 77.5946,
			DefaultOpenTime:   "07:30",
			DefaultCloseTime:  "22:30",
		},
	}
	m := newShopMaterializer(cfg)
	owner := &entity.Identity{ID: uuid.New()}

	shop := m.materialize(owner, usecase.RegisterVendorInput{ShopName: "Fresh Cuts"})

	assert.InDelta(t, 12.9716, shop.Latitude, 0.0001)
	assert.InDelta(t, 77.5946, shop.Longitude, 0.0001)
	assert.Equal(t, "07:30", shop.OpenTime)
	assert.Equal(t, "22:30", shop.CloseTime)
}
