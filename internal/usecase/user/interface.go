package user

import "context"

// Usecase defines the read-only user lookup operations.
type Usecase interface {
	GetProfile(ctx context.Context, in GetProfileRequest) (*GetProfileResponse, error)
	GetAccountData(ctx context.Context, in GetAccountDataRequest) (*GetAccountDataResponse, error)
}
