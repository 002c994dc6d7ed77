package handler

import (
	"log/slog"
	"net/http"

	"meatly/internal/delivery/http/response"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for sign-in and sign-out handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginResult struct {
	AccessToken  string    `json:"access_token"`
	SessionToken string    `json:"session_token"`
	IdentityID   uuid.UUID `json:"identity_id"`
	Name         string    `json:"name"`
}

// Login handles the vendor login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResult{
		AccessToken:  output.AccessToken,
		SessionToken: output.SessionToken,
		IdentityID:   output.Identity.ID,
		Name:         output.Identity.Name,
	}, "Login successful")
}

type logoutRequest struct {
	SessionToken string `json:"session_token" validate:"required"`
}

// Logout handles the vendor logout request.
func (h *SessionHandler) Logout(c echo.Context) error {
	var input logoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.Logout(c.Request().Context(), input.SessionToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
