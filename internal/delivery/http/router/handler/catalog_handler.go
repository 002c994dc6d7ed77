package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"meatly/internal/delivery/http/response"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListShops returns all publicly visible shops. Optional lat/lon query
// parameters enrich the result with distances and nearest-first ordering.
func (h *CatalogHandler) ListShops(c echo.Context) error {
	var input usecase.ListShopsInput

	lat, err := queryFloat(c, "lat")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lat query parameter")
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lon query parameter")
	}

	// Distance enrichment needs both coordinates; a lone one is ignored.
	if lat != nil && lon != nil {
		input.Latitude = lat
		input.Longitude = lon
	}

	shops, err := h.uc.ListShops(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// GetShop returns a single visible shop by ID.
func (h *CatalogHandler) GetShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	shop, err := h.uc.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &value, nil
}
