package report

import (
	"testing"

	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/model"
)

type countingMarketData struct {
	calls int
	bars  []model.OHLCV
}

func (c *countingMarketData) Name() string { return "counting" }

func (c *countingMarketData) FetchDailyBars(_ string, _ int) ([]model.OHLCV, error) {
	c.calls++
	return c.bars, nil
}

func TestCachedMarketSource_MemoizesPerTicker(t *testing.T) {
	fetcher := &countingMarketData{bars: collector.GenerateMockBars(100, 60)}
	col := collector.NewCollector(fetcher, &collector.MockFundamentals{})
	src := NewCachedMarketSource(col, 32)

	first, err := src.Indicators("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := src.Indicators("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("upstream fetched %d times for one ticker, want 1", fetcher.calls)
	}
	if first != second {
		t.Error("expected identical cached result on repeat lookup")
	}

	if _, err := src.Indicators("MSFT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 2 {
		t.Errorf("upstream fetched %d times for two tickers, want 2", fetcher.calls)
	}
}
