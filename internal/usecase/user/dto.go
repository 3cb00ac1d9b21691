package user

import domain "trading-dashboard/internal/domain/user"

// GetProfileRequest represents the lookup of a single user by email.
type GetProfileRequest struct {
	Email string `validate:"required"`
}

// GetProfileResponse carries exactly the three public profile fields.
type GetProfileResponse struct {
	FullName     string
	Email        string
	ProfileImage string
}

// GetAccountDataRequest represents the dashboard's fetch of the full account record.
type GetAccountDataRequest struct {
	Email string `validate:"required"`
}

// GetAccountDataResponse wraps the account record and its trading stats.
type GetAccountDataResponse struct {
	User *domain.User
}
