// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"meatly/internal/delivery/http/response"
	"meatly/internal/domain/entity"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationHandler holds dependencies for vendor onboarding handlers.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

// registeredVendor is the response payload. The identity's credential hash
// never leaves the server.
type registeredVendor struct {
	IdentityID     uuid.UUID `json:"identity_id"`
	ShopID         uuid.UUID `json:"shop_id"`
	ShopName       string    `json:"shop_name"`
	FullAddress    string    `json:"full_address"`
	NeedsGeocoding bool      `json:"needs_geocoding,omitempty"`
	UploadDegraded bool      `json:"upload_degraded,omitempty"`
}

// Register handles the vendor registration request. The wizard submits either
// a JSON body with embedded document data or a multipart form with file parts.
func (h *RegistrationHandler) Register(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	var input usecase.RegisterVendorInput
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		bound, err := bindMultipartRegistration(c)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid registration form")
		}
		input = *bound
	} else {
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
		}
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.RegisterVendor(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registeredVendor{
		IdentityID:     output.Identity.ID,
		ShopID:         output.Shop.ID,
		ShopName:       output.Shop.Name,
		FullAddress:    output.Shop.FullAddress,
		NeedsGeocoding: output.Shop.NeedsGeocoding,
		UploadDegraded: output.UploadDegraded,
	}, "Vendor registered successfully")
}

// bindMultipartRegistration maps the wizard's multipart form onto the usecase
// input. Document file parts are named "document_<kind>", photos "photo".
func bindMultipartRegistration(c echo.Context) (*usecase.RegisterVendorInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	input := &usecase.RegisterVendorInput{
		OwnerName:   c.FormValue("owner_name"),
		Phone:       c.FormValue("phone"),
		Email:       c.FormValue("email"),
		Password:    c.FormValue("password"),
		ShopName:    c.FormValue("shop_name"),
		Plot:        c.FormValue("plot"),
		Floor:       c.FormValue("floor"),
		Building:    c.FormValue("building"),
		AddressLine: c.FormValue("address_line"),
		Area:        c.FormValue("area"),
		City:        c.FormValue("city"),
		Pincode:     c.FormValue("pincode"),
		OpenTime:    c.FormValue("open_time"),
		CloseTime:   c.FormValue("close_time"),
	}

	if days, ok := form.Value["working_days"]; ok {
		input.WorkingDays = days
	}

	if lat, err := parseOptionalFloat(c.FormValue("latitude")); err == nil {
		input.Latitude = lat
	}
	if lon, err := parseOptionalFloat(c.FormValue("longitude")); err == nil {
		input.Longitude = lon
	}

	for field, files := range form.File {
		kindName, isDocument := strings.CutPrefix(field, "document_")
		for _, fileHeader := range files {
			data, err := readFilePart(fileHeader)
			if err != nil {
				return nil, err
			}

			if isDocument {
				input.Documents = append(input.Documents, usecase.DocumentUpload{
					Kind:        entity.DocumentKind(kindName),
					FileName:    fileHeader.Filename,
					ContentType: fileHeader.Header.Get(echo.HeaderContentType),
					Data:        data,
				})

				continue
			}

			if field == "photo" {
				input.Photos = append(input.Photos, usecase.PhotoUpload{
					FileName:    fileHeader.Filename,
					ContentType: fileHeader.Header.Get(echo.HeaderContentType),
					Data:        data,
				})
			}
		}
	}

	return input, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &value, nil
}

func readFilePart(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
