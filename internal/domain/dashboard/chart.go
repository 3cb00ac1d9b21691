package dashboard

import "fmt"

// TradingView widget constants. The script runs in a browser context this
// service does not control; if it fails to load the container stays empty.
const (
	ChartScriptURL   = "https://s3.tradingview.com/tv.js"
	ChartContainerID = "tradingview_chart"
	DefaultSymbol    = "OANDA:XAUUSD"
)

// Timeframe is a chart resolution as shown in the toolbar.
type Timeframe string

var timeframeIntervals = map[Timeframe]string{
	"1m":  "1",
	"5m":  "5",
	"15m": "15",
	"1h":  "60",
	"4h":  "240",
	"1d":  "D",
}

// Timeframes lists the toolbar choices in display order.
func Timeframes() []Timeframe {
	return []Timeframe{"1m", "5m", "15m", "1h", "4h", "1d"}
}

// ParseTimeframe validates a toolbar value; empty selects fallback.
func ParseTimeframe(s, fallback string) (Timeframe, error) {
	if s == "" {
		s = fallback
	}
	tf := Timeframe(s)
	if _, ok := timeframeIntervals[tf]; !ok {
		return "", fmt.Errorf("unknown timeframe %q", s)
	}
	return tf, nil
}

// Interval returns the widget interval code, e.g. "60" for "1h".
func (t Timeframe) Interval() string {
	return timeframeIntervals[t]
}

// ChartWidget is the configuration handed to the embedded widget script.
type ChartWidget struct {
	ScriptURL   string    `json:"scriptUrl"`
	ContainerID string    `json:"containerId"`
	Symbol      string    `json:"symbol"`
	Timeframe   Timeframe `json:"timeframe"`
	Interval    string    `json:"interval"`
	Timezone    string    `json:"timezone"`
	Theme       string    `json:"theme"`
	Locale      string    `json:"locale"`
}

// NewChartWidget returns the widget config for symbol at tf.
func NewChartWidget(symbol string, tf Timeframe) ChartWidget {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return ChartWidget{
		ScriptURL:   ChartScriptURL,
		ContainerID: ChartContainerID,
		Symbol:      symbol,
		Timeframe:   tf,
		Interval:    tf.Interval(),
		Timezone:    "Etc/UTC",
		Theme:       "dark",
		Locale:      "en",
	}
}
