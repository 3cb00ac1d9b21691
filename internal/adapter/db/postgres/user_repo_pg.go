package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trading-dashboard/internal/domain/user"
	"trading-dashboard/pkg/logger"
)

// UserRepoPG implements the read-only user Repository using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// Registration, funding and the trading engine own the rows.
type UserSchema struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	Email            string          `gorm:"not null;uniqueIndex"`
	FullName         string          `gorm:"not null;default:''"`
	ProfileImage     string          `gorm:"not null;default:''"`
	Balance          decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Leverage         string          `gorm:"not null;default:''"`
	Credit           decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	TotalDeposits    decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	PnL              decimal.Decimal `gorm:"column:pnl;type:numeric(20,2);not null;default:0"`
	Profit           int64           `gorm:"not null;default:0"`
	Loss             int64           `gorm:"not null;default:0"`
	ProfitableOrders string          `gorm:"not null;default:''"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// profileColumns are the only columns the lookup projection reads.
var profileColumns = []string{"full_name", "email", "profile_image"}

// AutoMigrate creates or updates the users table. Intended for local
// development; production schemas are managed by the owning systems.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserSchema{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}

// GetProfileByEmail reads the lookup projection for email.
// It returns (nil, nil) when no row matches.
func (r *UserRepoPG) GetProfileByEmail(ctx context.Context, email string) (*user.Profile, error) {
	var model UserSchema
	err := r.db.WithContext(ctx).
		Select(profileColumns).
		Where("email = ?", email).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx, r.log).Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		logger.WithContext(ctx, r.log).Error("failed to get user profile from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return &user.Profile{
		FullName:     model.FullName,
		Email:        model.Email,
		ProfileImage: model.ProfileImage,
	}, nil
}

// GetByEmail reads the full account record for email.
// It returns (nil, nil) when no row matches.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx, r.log).Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		logger.WithContext(ctx, r.log).Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toDomain(&model), nil
}

func toDomain(m *UserSchema) *user.User {
	return &user.User{
		ID:            m.ID,
		Email:         m.Email,
		FullName:      m.FullName,
		ProfileImage:  m.ProfileImage,
		Balance:       m.Balance,
		Leverage:      m.Leverage,
		Credit:        m.Credit,
		TotalDeposits: m.TotalDeposits,
		Stats: user.Stats{
			PnL:              m.PnL,
			Profit:           m.Profit,
			Loss:             m.Loss,
			ProfitableOrders: m.ProfitableOrders,
		},
	}
}
