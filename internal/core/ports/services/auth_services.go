package services

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// GoogleUserInfo is the subset of the Google userinfo payload the auth
// service needs to find or create an operator account.
type GoogleUserInfo struct {
	Subject string
	Email   string
	Name    string
}

// AuthService registers and authenticates operator accounts.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login verifies the credentials and returns the user plus a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
	// LoginWithGoogle finds or creates the account bound to the Google
	// subject and returns it plus a signed token.
	LoginWithGoogle(ctx context.Context, info GoogleUserInfo) (*domain.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
