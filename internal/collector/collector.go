package collector

import (
	"fmt"

	"StockAdvisor/internal/calculator"
	"StockAdvisor/internal/model"
)

// seriesDays is the price-series depth fetched per ticker, roughly three
// months of trading days so the 50-period windows have headroom.
const seriesDays = 90

// Collector turns raw provider data into per-ticker indicator and fundamental
// vectors. Both methods are pure apart from the upstream fetch.
type Collector struct {
	Market MarketDataFetcher
	Fund   FundamentalsFetcher
}

// NewCollector creates a new Collector.
func NewCollector(market MarketDataFetcher, fund FundamentalsFetcher) *Collector {
	return &Collector{Market: market, Fund: fund}
}

// Indicators fetches the ticker's daily price series and computes the latest
// indicator row. Window-based indicators are nil when the series is too short;
// an empty series or one without usable closes fails with ErrDataUnavailable.
func (c *Collector) Indicators(ticker string) (*model.IndicatorVector, error) {
	bars, err := c.Market.FetchDailyBars(ticker, seriesDays)
	if err != nil {
		return nil, fmt.Errorf("%w: no data returned for %s: %v", model.ErrDataUnavailable, ticker, err)
	}

	closes := make([]float64, 0, len(bars))
	var lastClose, lastVolume float64
	for _, b := range bars {
		if b.Close == 0 {
			continue
		}
		closes = append(closes, b.Close)
		lastClose = b.Close
		lastVolume = b.Volume
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("%w: no data returned for %s", model.ErrDataUnavailable, ticker)
	}

	v := &model.IndicatorVector{Close: lastClose, Volume: lastVolume}
	v.RSI14 = calculator.RSI(closes, 14)
	v.SMA20 = calculator.SMA(closes, 20)
	v.SMA50 = calculator.SMA(closes, 50)
	v.MACD, v.MACDSignal = calculator.MACD(closes)
	v.BBUpper, v.BBLower = calculator.Bollinger(closes, 20, 2)
	return v, nil
}

// Fundamentals projects the five tracked metrics from the provider snapshot.
// A missing key maps to nil; only a provider failure is an error.
func (c *Collector) Fundamentals(ticker string) (*model.FundamentalVector, error) {
	raw, err := c.Fund.FetchFundamentals(ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: fundamentals for %s: %v", model.ErrFetchFailed, ticker, err)
	}

	pick := func(key string) *float64 {
		if v, ok := raw[key]; ok {
			return &v
		}
		return nil
	}
	return &model.FundamentalVector{
		PERatio:       pick("trailingPE"),
		EPS:           pick("trailingEps"),
		MarketCap:     pick("marketCap"),
		DividendYield: pick("dividendYield"),
		PEGRatio:      pick("pegRatio"),
	}, nil
}
