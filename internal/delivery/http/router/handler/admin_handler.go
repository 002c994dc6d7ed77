package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"meatly/internal/delivery/http/response"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the review and diagnostics handlers.
type AdminHandler struct {
	approvalUc    usecase.ApprovalUsecase
	diagnosticsUc usecase.DiagnosticsUsecase
	logger        *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(approvalUc usecase.ApprovalUsecase, diagnosticsUc usecase.DiagnosticsUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		approvalUc:    approvalUc,
		diagnosticsUc: diagnosticsUc,
		logger:        logger,
	}
}

type approvedShop struct {
	ShopID   uuid.UUID `json:"shop_id"`
	Active   bool      `json:"active"`
	Approved bool      `json:"approved"`

	// QRCode is the PNG storefront code, base64 encoded. Empty when
	// generation failed; the approval itself still stands.
	QRCode string `json:"qr_code,omitempty"`
}

// ApproveShop flips a shop's visibility flags on, publishing it to the catalog.
func (h *AdminHandler) ApproveShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	output, err := h.approvalUc.Approve(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	result := approvedShop{
		ShopID:   output.Shop.ID,
		Active:   output.Shop.Active,
		Approved: output.Shop.Approved,
	}
	if len(output.QRCode) > 0 {
		result.QRCode = base64.StdEncoding.EncodeToString(output.QRCode)
	}

	return response.Success(c, http.StatusOK, result, "Shop approved successfully")
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectShop clears a shop's visibility flags, hiding it from the catalog.
func (h *AdminHandler) RejectShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	var input rejectRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	shop, err := h.approvalUc.Reject(c.Request().Context(), shopID, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, approvedShop{
		ShopID:   shop.ID,
		Active:   shop.Active,
		Approved: shop.Approved,
	}, "Shop rejected successfully")
}

type diagnosisResult struct {
	Phone          string `json:"phone"`
	Classification string `json:"classification"`
	HasIdentity    bool   `json:"has_identity"`
	HasProfile     bool   `json:"has_profile"`
}

// DiagnoseAccount classifies the consistency state of a phone number.
func (h *AdminHandler) DiagnoseAccount(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Phone number is required")
	}

	report, err := h.diagnosticsUc.Diagnose(c.Request().Context(), phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, diagnosisResult{
		Phone:          report.Phone,
		Classification: string(report.Classification),
		HasIdentity:    report.Identity != nil,
		HasProfile:     report.Profile != nil,
	}, "Diagnosis complete")
}

type repairStepResult struct {
	Target string `json:"target"`
	Done   bool   `json:"done"`
	Error  string `json:"error,omitempty"`
}

type repairResult struct {
	Phone          string             `json:"phone"`
	Classification string             `json:"classification"`
	Succeeded      bool               `json:"succeeded"`
	Steps          []repairStepResult `json:"steps"`
}

// RepairAccount fixes an orphaned identity or profile for a phone number.
func (h *AdminHandler) RepairAccount(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Phone number is required")
	}

	result, err := h.diagnosticsUc.Repair(c.Request().Context(), phone)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := repairResult{
		Phone:          result.Phone,
		Classification: string(result.Classification),
		Succeeded:      result.Succeeded(),
	}
	for _, step := range result.Steps {
		stepResult := repairStepResult{Target: step.Target, Done: step.Done}
		if step.Err != nil {
			stepResult.Error = step.Err.Error()
		}
		payload.Steps = append(payload.Steps, stepResult)
	}

	return response.Success(c, http.StatusOK, payload, "Repair complete")
}
