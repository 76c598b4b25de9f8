package collector

import "StockAdvisor/internal/model"

// MarketDataFetcher fetches a raw price series for a ticker.
type MarketDataFetcher interface {
	FetchDailyBars(ticker string, days int) ([]model.OHLCV, error)
	Name() string
}

// FundamentalsFetcher fetches a raw key-value fundamentals snapshot for a
// ticker. Keys follow the provider's naming; any key may be absent.
type FundamentalsFetcher interface {
	FetchFundamentals(ticker string) (map[string]float64, error)
}

// NewsFetcher fetches recent business headlines.
type NewsFetcher interface {
	FetchHeadlines(limit int) ([]string, error)
}
