package impl

import (
	"context"
	"fmt"
	"math"
	"sort"

	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface. It is the only read
// path into shops and enforces the visibility gate at the query level.
type catalogService struct {
	shopRepo repository.ShopRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(shopRepo repository.ShopRepository) usecase.CatalogUsecase {
	return &catalogService{shopRepo: shopRepo}
}

// ListShops returns all visible shops, nearest first when the caller supplied
// a location. Shops carrying fallback coordinates sort last and get no
// distance label.
func (s *catalogService) ListShops(ctx context.Context, input usecase.ListShopsInput) ([]*usecase.VisibleShop, error) {
	shops, err := s.shopRepo.ListVisible(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visible shops")
	}

	result := make([]*usecase.VisibleShop, 0, len(shops))
	for _, shop := range shops {
		result = append(result, projectVisibleShop(shop))
	}

	if input.Latitude == nil || input.Longitude == nil {
		return result, nil
	}

	viewer := orb.Point{*input.Longitude, *input.Latitude}
	for i, shop := range shops {
		if shop.NeedsGeocoding {
			continue
		}

		meters := geo.Distance(viewer, orb.Point{shop.Longitude, shop.Latitude})
		result[i].DistanceMeters = meters
		result[i].FormattedDistance = formatDistance(meters)
	}

	sort.SliceStable(result, func(i, j int) bool {
		// Entries without a trustworthy distance sort after everything else.
		if result[i].DistanceMeters < 0 {
			return false
		}
		if result[j].DistanceMeters < 0 {
			return true
		}

		return result[i].DistanceMeters < result[j].DistanceMeters
	})

	return result, nil
}

// GetShop returns one visible shop.
func (s *catalogService) GetShop(ctx context.Context, id uuid.UUID) (*usecase.VisibleShop, error) {
	shop, err := s.shopRepo.FindVisibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to get shop")
	}

	return projectVisibleShop(shop), nil
}

// projectVisibleShop maps a shop entity to its public projection. Documents
// and the raw visibility flags never leave this layer.
func projectVisibleShop(shop *entity.Shop) *usecase.VisibleShop {
	return &usecase.VisibleShop{
		ID:          shop.ID,
		Name:        shop.Name,
		FullAddress: shop.FullAddress,
		Area:        shop.Area,
		City:        shop.City,
		Latitude:    shop.Latitude,
		Longitude:   shop.Longitude,
		WorkingDays: shop.WorkingDays,
		OpenTime:    shop.OpenTime,
		CloseTime:   shop.CloseTime,
		Photos:      shop.Photos,
		Vendor: usecase.VendorDetails{
			Name:  shop.OwnerName,
			Phone: shop.Phone,
			Email: shop.Email,
		},
		DistanceMeters: -1,
	}
}

// formatDistance renders a distance in meters below one kilometer and in
// two-decimal kilometers above it. The meter branch decides on the rounded
// value so 999.6 becomes "1.00 km", not "1000 m".
func formatDistance(meters float64) string {
	rounded := int(math.Round(meters))
	if rounded < 1000 {
		return fmt.Sprintf("%d m", rounded)
	}

	return fmt.Sprintf("%.2f km", meters/1000)
}
