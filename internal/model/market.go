package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// IndicatorVector holds the most recent technical indicator row for one ticker.
// Window-based fields are nil until the series has enough history for them.
type IndicatorVector struct {
	Close      float64
	Volume     float64
	RSI14      *float64
	SMA20      *float64
	SMA50      *float64
	MACD       *float64
	MACDSignal *float64
	BBUpper    *float64
	BBLower    *float64
}

// FundamentalVector holds the tracked fundamental metrics for one ticker.
// Each field is independently nil when the provider omits it.
type FundamentalVector struct {
	PERatio       *float64
	EPS           *float64
	MarketCap     *float64
	DividendYield *float64
	PEGRatio      *float64
}

// TickerResult is the per-ticker outcome of a market-data fetch: either both
// vectors, or an error message when the fetch failed.
type TickerResult struct {
	Indicators   *IndicatorVector
	Fundamentals *FundamentalVector
	Err          string
}

// Failed reports whether this ticker's fetch failed.
func (r TickerResult) Failed() bool { return r.Err != "" }

// MarketSnapshot maps each favorite ticker to its fetch outcome.
type MarketSnapshot map[string]TickerResult
