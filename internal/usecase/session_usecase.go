package usecase

import (
	"context"

	"meatly/internal/domain/entity"
)

// LoginInput defines the data required for a vendor to sign in.
// Contact accepts either the phone number or the email address.
type LoginInput struct {
	Contact  string `json:"contact" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string           `json:"access_token"`
	SessionToken string           `json:"session_token"`
	Identity     *entity.Identity `json:"identity"`
}

// SessionUsecase defines vendor sign-in and sign-out operations.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout invalidates the session identified by the raw session token.
	Logout(ctx context.Context, sessionToken string) error
}
