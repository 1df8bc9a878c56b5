package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/roadstead/vehicle_rental_app/internal/utils"
)

const (
	providerLocal  = "local"
	providerGoogle = "google"
)

// authService implements the AuthService interface.
type authService struct {
	BaseService
	userRepo  portsrepo.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepository, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthService = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateKeyError("User", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuthProvider: providerLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, "", err
	}
	if user.AuthProvider != providerLocal || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return nil, "", err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, info portssvc.GoogleUserInfo) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, providerGoogle, info.Subject)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up Google user")
			return nil, "", err
		}

		now := time.Now()
		created := domain.User{
			UserID:       uuid.NewString(),
			Name:         info.Name,
			Email:        info.Email,
			AuthProvider: providerGoogle,
			ProviderID:   info.Subject,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := s.userRepo.SaveUser(ctx, created); err != nil {
			s.LogError(ctx, err, "Failed to create Google user", slog.String("email", info.Email))
			return nil, "", err
		}
		s.LogInfo(ctx, "User registered via Google", slog.String("user_id", created.UserID))
		user = &created
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return nil, "", err
	}

	s.LogInfo(ctx, "User logged in via Google", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
