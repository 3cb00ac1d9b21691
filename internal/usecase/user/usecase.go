package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "trading-dashboard/internal/domain/user"
	apperrors "trading-dashboard/pkg/errors"
	"trading-dashboard/pkg/logger"
)

// Repository defines the read access the lookup needs.
// Both methods return (nil, nil) when no row matches the email.
type Repository interface {
	GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) // Retrieve the public projection
	GetByEmail(ctx context.Context, email string) (*domain.User, error)          // Retrieve the full account record
}

// Service implements Usecase. Every call re-queries the repository;
// nothing is cached or written.
type Service struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// validateEmail checks the request carrying the email. The email is used
// exactly as given: only an empty value is invalid, and padded or
// whitespace-only values go to the store and miss there.
func (uc *Service) validateEmail(ctx context.Context, req any) error {
	if err := uc.validate.StructCtx(ctx, req); err != nil {
		logger.WithContext(ctx, uc.log).Warn("validate failed", zap.Error(err))
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// GetProfile returns the public profile of the user identified by email.
func (uc *Service) GetProfile(ctx context.Context, in GetProfileRequest) (*GetProfileResponse, error) {
	if err := uc.validateEmail(ctx, &in); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx, uc.log).With(zap.String("email", in.Email))
	log.Debug("looking up user profile")

	p, err := uc.repo.GetProfileByEmail(ctx, in.Email)
	if err != nil {
		log.Error("failed to get user profile", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to get user profile", err)
	}
	if p == nil {
		log.Info("user not found")
		return nil, apperrors.ErrUserNotFound
	}

	return &GetProfileResponse{
		FullName:     p.FullName,
		Email:        p.Email,
		ProfileImage: p.ProfileImage,
	}, nil
}

// GetAccountData returns the full account record with trading stats for the dashboard.
func (uc *Service) GetAccountData(ctx context.Context, in GetAccountDataRequest) (*GetAccountDataResponse, error) {
	if err := uc.validateEmail(ctx, &in); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx, uc.log).With(zap.String("email", in.Email))
	log.Debug("loading account data")

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		log.Error("failed to get account data", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to get account data", err)
	}
	if u == nil {
		log.Info("user not found")
		return nil, apperrors.ErrUserNotFound
	}

	return &GetAccountDataResponse{User: u}, nil
}
