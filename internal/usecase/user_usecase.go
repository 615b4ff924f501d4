// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to sign up.
type RegisterUserInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries the raw reset token and the new password.
type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// ChangePasswordInput is used by a logged-in user to rotate their password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// AuthOutput returns the user together with a freshly issued access token.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines account and credential operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	// ForgotPassword issues a reset token and hands it to the notification sender.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*AuthOutput, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) (*AuthOutput, error)

	// Reactivate re-enables a deactivated account after checking its credentials.
	Reactivate(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
