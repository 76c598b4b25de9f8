package collector

import (
	"time"

	"StockAdvisor/internal/model"
)

// MockMarketData returns controllable fixed bars for development and testing.
type MockMarketData struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockMarketData) Name() string { return "mock" }

func (m *MockMarketData) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

// MockFundamentals returns a fixed fundamentals snapshot.
type MockFundamentals struct {
	Data map[string]float64
	Err  error
}

func (m *MockFundamentals) FetchFundamentals(_ string) (map[string]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data, nil
}

// MockNews returns fixed headlines.
type MockNews struct {
	Headlines []string
	Err       error
}

func (m *MockNews) FetchHeadlines(limit int) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Headlines) > limit {
		return m.Headlines[:limit], nil
	}
	return m.Headlines, nil
}

// GenerateMockBars produces a gently trending series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
