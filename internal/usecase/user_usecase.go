// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"farmlease/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
// An empty Role registers a farmer.
type RegisterUserInput struct {
	Name     string      `json:"name" validate:"required,max=100"`
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,max=72"`
	Role     entity.Role `json:"role" validate:"omitempty,oneof=landowner farmer"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token to rotate.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	// EnsureAdmin creates the bootstrap admin account unless the email is
	// already registered.
	EnsureAdmin(ctx context.Context, name, email, password string) (*entity.User, error)
}
