// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SignupInput defines the data required to register a new account.
// Role defaults to buyer when empty.
type SignupInput struct {
	Name      string           `json:"name" validate:"required"`
	Email     string           `json:"email" validate:"required,email"`
	Password  string           `json:"password" validate:"required"`
	Role      string           `json:"role"`
	Phone     string           `json:"phone"`
	Addresses []entity.Address `json:"addresses"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued token and the account it belongs to.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthUsecase defines the interface for signup and login operations.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
