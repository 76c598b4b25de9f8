package report

import (
	"strings"
	"testing"

	"StockAdvisor/internal/model"
)

func fptr(v float64) *float64 { return &v }

func okResult() model.TickerResult {
	return model.TickerResult{
		Indicators: &model.IndicatorVector{
			Close:  187.32,
			Volume: 54000000,
			RSI14:  fptr(61.2),
			SMA20:  fptr(182.1),
		},
		Fundamentals: &model.FundamentalVector{
			PERatio: fptr(29.4),
		},
	}
}

func TestBuildPrompt_ContainsSections(t *testing.T) {
	favorites := []string{"AAPL", "MSFT"}
	snapshot := model.MarketSnapshot{
		"AAPL": okResult(),
		"MSFT": {Err: "data unavailable: no data returned for MSFT"},
	}
	headlines := []string{"Fed holds rates steady", "Chip demand surges"}

	prompt := BuildPrompt(favorites, snapshot, headlines)

	for _, want := range []string{
		"AAPL, MSFT",
		"AAPL: Close=187.32",
		"MSFT: error: data unavailable",
		"- Fed holds rates steady",
		"- Chip demand surges",
		"大盤趨勢：<大盤趨勢>",
		"推薦新的股票：<推薦的股票代碼> : <推薦理由>",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_NilFieldsRenderNA(t *testing.T) {
	prompt := BuildPrompt([]string{"AAPL"}, model.MarketSnapshot{"AAPL": okResult()}, nil)

	for _, want := range []string{"SMA_50=n/a", "MACD=n/a", "EPS=n/a", "PEG_ratio=n/a"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q for nil field", want)
		}
	}
	if !strings.Contains(prompt, "RSI=61.2") {
		t.Error("prompt should render present RSI value")
	}
}

func TestBuildPrompt_EmptyHeadlines(t *testing.T) {
	prompt := BuildPrompt([]string{"AAPL"}, model.MarketSnapshot{"AAPL": okResult()}, nil)
	if !strings.Contains(prompt, "headlines:") {
		t.Error("prompt should keep the headlines section even when empty")
	}
}
