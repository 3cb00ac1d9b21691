package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-dashboard/internal/domain/user"
)

func TestFormatCurrency(t *testing.T) {
	tests := map[string]string{
		"0":       "$0.00",
		"1234.5":  "$1234.50",
		"10.005":  "$10.01",
		"-42.1":   "$-42.10",
		"99.994":  "$99.99",
		"1000000": "$1000000.00",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestNewSuccessRate(t *testing.T) {
	sr := NewSuccessRate(2, 1)
	assert.Equal(t, int64(3), sr.Total)
	assert.Equal(t, 66.7, sr.ProfitPercent)
	assert.Equal(t, 33.3, sr.LossPercent)

	zero := NewSuccessRate(0, 0)
	assert.Zero(t, zero.ProfitPercent)
	assert.Zero(t, zero.LossPercent)
}

func TestNewOverview(t *testing.T) {
	u := &user.User{
		Balance:       decimal.RequireFromString("1500.5"),
		Leverage:      "1:500",
		Credit:        decimal.RequireFromString("25"),
		TotalDeposits: decimal.RequireFromString("2000"),
		Stats: user.Stats{
			PnL:              decimal.RequireFromString("-499.5"),
			Profit:           3,
			Loss:             1,
			ProfitableOrders: "3/4",
		},
	}

	o := NewOverview(u)

	require.Len(t, o.Cards, 4)
	assert.Equal(t, StatCard{Title: "Total Balance", Value: "$1500.50", Icon: "wallet", Note: "* using current exchange rate"}, o.Cards[0])
	assert.Equal(t, "$-499.50", o.Cards[1].Value)
	assert.Equal(t, "3/4", o.Cards[2].Value)
	assert.Empty(t, o.Cards[2].Note)
	assert.Equal(t, "$2000.00", o.Cards[3].Value)

	assert.Equal(t, AccountPanel{Balance: "$1500.50", Leverage: "1:500", Credit: "$25.00"}, o.AccountPanel)
	assert.Equal(t, 75.0, o.SuccessRate.ProfitPercent)
	assert.NotNil(t, o.TradingResults.Orders)
	assert.Empty(t, o.TradingResults.Orders)
}

func TestPanelFor(t *testing.T) {
	for _, v := range Views() {
		_, ok := PanelFor(v)
		switch v {
		case ViewMain, ViewSettings:
			assert.False(t, ok, v.String())
		default:
			assert.True(t, ok, v.String())
		}
	}
}

func TestParseTimeframe(t *testing.T) {
	tf, err := ParseTimeframe("", "1d")
	require.NoError(t, err)
	assert.Equal(t, "D", tf.Interval())

	tf, err = ParseTimeframe("4h", "1d")
	require.NoError(t, err)
	assert.Equal(t, "240", tf.Interval())

	_, err = ParseTimeframe("2h", "1d")
	assert.Error(t, err)

	w := NewChartWidget("", tf)
	assert.Equal(t, DefaultSymbol, w.Symbol)
	assert.Equal(t, ChartScriptURL, w.ScriptURL)
	assert.Equal(t, "240", w.Interval)
}
