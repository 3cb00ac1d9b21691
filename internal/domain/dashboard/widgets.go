package dashboard

import (
	"github.com/shopspring/decimal"

	"trading-dashboard/internal/domain/user"
)

const exchangeRateNote = "* using current exchange rate"

// StatCard is a single headline figure on the overview.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Note  string `json:"note,omitempty"`
}

// AccountPanel shows balance, leverage and credit for the trading account.
type AccountPanel struct {
	Balance  string `json:"balance"`
	Leverage string `json:"leverage"`
	Credit   string `json:"credit"`
}

// SuccessRate is the profit/loss split rendered as a ring chart.
type SuccessRate struct {
	Profit        int64   `json:"profit"`
	Loss          int64   `json:"loss"`
	Total         int64   `json:"total"`
	ProfitPercent float64 `json:"profitPercent"`
	LossPercent   float64 `json:"lossPercent"`
}

// Order is a row of the trading results table.
type Order struct {
	Symbol string `json:"symbol"`
	Side   string `json:"side"`
	Volume string `json:"volume"`
	Profit string `json:"profit"`
}

// TradingResults is the order table. Order history is owned by the trading
// engine and not served here, so the table is always empty.
type TradingResults struct {
	Orders []Order `json:"orders"`
}

// Panel is the static body of a secondary view.
type Panel struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Overview is the content of ViewMain.
type Overview struct {
	Cards          []StatCard     `json:"cards"`
	SuccessRate    SuccessRate    `json:"successRate"`
	TradingResults TradingResults `json:"tradingResults"`
	AccountPanel   AccountPanel   `json:"accountPanel"`
}

// NewStatCards builds the four overview cards.
func NewStatCards(u *user.User) []StatCard {
	return []StatCard{
		{Title: "Total Balance", Value: FormatCurrency(u.Balance), Icon: "wallet", Note: exchangeRateNote},
		{Title: "Total PNL", Value: FormatCurrency(u.Stats.PnL), Icon: "coins", Note: exchangeRateNote},
		{Title: "Profitable Orders", Value: u.Stats.ProfitableOrders, Icon: "money-bag"},
		{Title: "Total Deposits", Value: FormatCurrency(u.TotalDeposits), Icon: "bank", Note: exchangeRateNote},
	}
}

// NewAccountPanel formats the account block.
func NewAccountPanel(u *user.User) AccountPanel {
	return AccountPanel{
		Balance:  FormatCurrency(u.Balance),
		Leverage: u.Leverage,
		Credit:   FormatCurrency(u.Credit),
	}
}

// NewSuccessRate computes the profit/loss percentages rounded to one decimal.
// With no closed orders both percentages are zero.
func NewSuccessRate(profit, loss int64) SuccessRate {
	sr := SuccessRate{Profit: profit, Loss: loss, Total: profit + loss}
	if sr.Total <= 0 {
		return sr
	}

	total := decimal.NewFromInt(sr.Total)
	hundred := decimal.NewFromInt(100)
	sr.ProfitPercent = decimal.NewFromInt(profit).Mul(hundred).Div(total).Round(1).InexactFloat64()
	sr.LossPercent = decimal.NewFromInt(loss).Mul(hundred).Div(total).Round(1).InexactFloat64()
	return sr
}

// NewOverview assembles the ViewMain content.
func NewOverview(u *user.User) *Overview {
	return &Overview{
		Cards:          NewStatCards(u),
		SuccessRate:    NewSuccessRate(u.Stats.Profit, u.Stats.Loss),
		TradingResults: TradingResults{Orders: []Order{}},
		AccountPanel:   NewAccountPanel(u),
	}
}

var panels = map[View]Panel{
	ViewVerification: {Title: "Verification", Description: "Upload your identity and address documents to verify your account."},
	ViewWithdrawal:   {Title: "Withdrawal", Description: "Request a withdrawal to one of your verified payment methods."},
	ViewAccounts:     {Title: "Accounts", Description: "Manage your trading accounts and switch between them."},
	ViewLiveChat:     {Title: "Live Chat", Description: "Talk to our support team."},
	ViewSavings:      {Title: "Savings", Description: "Put idle balance to work in a savings plan."},
	ViewDeposit:      {Title: "Deposit", Description: "Fund your account with card, bank transfer or crypto."},
}

// PanelFor returns the static panel of a secondary view. ViewMain and
// ViewSettings have dedicated content and report false.
func PanelFor(v View) (Panel, bool) {
	p, ok := panels[v]
	return p, ok
}
