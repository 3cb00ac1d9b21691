package user

import "github.com/shopspring/decimal"

// User represents a customer account record as read from the store.
// The record is owned by registration, funding and trading systems; this
// service never writes it.
type User struct {
	ID            int64           // ID is the unique identifier for the user
	Email         string          // Email is the unique lookup key
	FullName      string          // FullName is the display name
	ProfileImage  string          // ProfileImage is a URI or path, possibly empty
	Balance       decimal.Decimal // Balance is the account balance in account currency
	Leverage      string          // Leverage is the display ratio, e.g. "1:500"
	Credit        decimal.Decimal // Credit is the broker credit on the account
	TotalDeposits decimal.Decimal // TotalDeposits is the lifetime deposited amount
	Stats         Stats           // Stats are the trading statistics for the account
}

// Profile is the public projection of a user returned by the lookup.
type Profile struct {
	FullName     string
	Email        string
	ProfileImage string
}

// Stats holds the trading statistics displayed on the dashboard.
type Stats struct {
	PnL              decimal.Decimal // PnL is the realised profit and loss
	Profit           int64           // Profit is the number of profitable closed orders
	Loss             int64           // Loss is the number of losing closed orders
	ProfitableOrders string          // ProfitableOrders is a display string, e.g. "12/20"
}

// Profile projects the user onto the lookup fields.
func (u *User) Profile() Profile {
	return Profile{
		FullName:     u.FullName,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}
