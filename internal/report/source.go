package report

import (
	"StockAdvisor/internal/cache"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/model"
)

// CachedMarketSource memoizes collector results in bounded LRU caches, one per
// vector kind, so repeated cycles within a process lifetime skip the upstream
// calls. Only successful results are cached; a failed ticker is retried on the
// next request.
type CachedMarketSource struct {
	collector    *collector.Collector
	indicators   *cache.LRU[*model.IndicatorVector]
	fundamentals *cache.LRU[*model.FundamentalVector]
}

// NewCachedMarketSource wraps the collector with caches of the given capacity.
func NewCachedMarketSource(c *collector.Collector, capacity int) *CachedMarketSource {
	return &CachedMarketSource{
		collector:    c,
		indicators:   cache.New[*model.IndicatorVector](capacity),
		fundamentals: cache.New[*model.FundamentalVector](capacity),
	}
}

func (s *CachedMarketSource) Indicators(ticker string) (*model.IndicatorVector, error) {
	return s.indicators.Get(ticker, func() (*model.IndicatorVector, error) {
		return s.collector.Indicators(ticker)
	})
}

func (s *CachedMarketSource) Fundamentals(ticker string) (*model.FundamentalVector, error) {
	return s.fundamentals.Get(ticker, func() (*model.FundamentalVector, error) {
		return s.collector.Fundamentals(ticker)
	})
}
