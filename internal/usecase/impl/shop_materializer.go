package impl

import (
	"strings"

	"meatly/config"
	"meatly/internal/domain/entity"
	"meatly/internal/usecase"
)

// Fallback values applied when the onboarding configuration leaves them unset.
const (
	fallbackLatitude  = 16.5062 // Vijayawada
	fallbackLongitude = 80.6480

	defaultOpenTime  = "09:00"
	defaultCloseTime = "21:00"

	missingAddressPlaceholder = "Address not provided"
)

// shopMaterializer derives a complete, non-null shop record from whatever the
// wizard managed to collect. Every gap gets a deterministic default so the
// catalog never sees a partial row.
type shopMaterializer struct {
	fallbackLat  float64
	fallbackLon  float64
	defaultOpen  string
	defaultClose string
}

func newShopMaterializer(cfg *config.Config) *shopMaterializer {
	m := &shopMaterializer{
		fallbackLat:  fallbackLatitude,
		fallbackLon:  fallbackLongitude,
		defaultOpen:  defaultOpenTime,
		defaultClose: defaultCloseTime,
	}

	if cfg != nil && cfg.Onboarding != nil {
		ob := cfg.Onboarding
		if ob.FallbackLatitude != 0 || ob.FallbackLongitude != 0 {
			m.fallbackLat = ob.FallbackLatitude
			m.fallbackLon = ob.FallbackLongitude
		}
		if ob.DefaultOpenTime != "" {
			m.defaultOpen = ob.DefaultOpenTime
		}
		if ob.DefaultCloseTime != "" {
			m.defaultClose = ob.DefaultCloseTime
		}
	}

	return m
}

// materialize builds the shop entity for a registration. The record is always
// created invisible: Active and Approved stay false until admin review.
func (m *shopMaterializer) materialize(owner *entity.Identity, input usecase.RegisterVendorInput) *entity.Shop {
	lat, lon, needsGeocoding := m.resolveCoordinates(input)
	open, closeT := m.resolveHours(input)

	return &entity.Shop{
		OwnerID:        owner.ID,
		Name:           input.ShopName,
		OwnerName:      input.OwnerName,
		Plot:           input.Plot,
		Floor:          input.Floor,
		Building:       input.Building,
		AddressLine:    input.AddressLine,
		Area:           input.Area,
		City:           input.City,
		Pincode:        input.Pincode,
		FullAddress:    buildFullAddress(input),
		Latitude:       lat,
		Longitude:      lon,
		NeedsGeocoding: needsGeocoding,
		Phone:          input.Phone,
		Email:          input.Email,
		WorkingDays:    input.WorkingDays,
		OpenTime:       open,
		CloseTime:      closeT,
		Active:         false,
		Approved:       false,
	}
}

// buildFullAddress joins the present address parts in display order.
// An entirely empty address yields a placeholder, never an empty string.
func buildFullAddress(input usecase.RegisterVendorInput) string {
	parts := []string{
		input.Plot,
		input.Floor,
		input.Building,
		input.AddressLine,
		input.Area,
		input.City,
		input.Pincode,
	}

	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			present = append(present, trimmed)
		}
	}

	if len(present) == 0 {
		return missingAddressPlaceholder
	}

	return strings.Join(present, ", ")
}

// resolveCoordinates substitutes the fixed fallback location when the wizard
// captured none. The needs_geocoding flag marks the row for later correction
// during approval review.
func (m *shopMaterializer) resolveCoordinates(input usecase.RegisterVendorInput) (lat, lon float64, needsGeocoding bool) {
	if input.Latitude != nil && input.Longitude != nil {
		return *input.Latitude, *input.Longitude, false
	}

	return m.fallbackLat, m.fallbackLon, true
}

// resolveHours picks the shop-wide opening window: common hours win, then the
// first selected day's hours, then the configured defaults.
func (m *shopMaterializer) resolveHours(input usecase.RegisterVendorInput) (open, closeT string) {
	if input.OpenTime != "" && input.CloseTime != "" {
		return input.OpenTime, input.CloseTime
	}

	for _, day := range input.DayHours {
		if day.OpenTime != "" && day.CloseTime != "" {
			return day.OpenTime, day.CloseTime
		}
	}

	return m.defaultOpen, m.defaultClose
}
