package report

import (
	"fmt"
	"strconv"
	"strings"

	"StockAdvisor/internal/model"
)

// advisorPersona is the system message sent ahead of the rolling history.
const advisorPersona = "You are a helpful financial advisor."

// emailSubject is the fixed subject for every report email.
const emailSubject = "Daily Stock Report"

// noFavoritesNotice is sent instead of a report when no tickers are tracked.
const noFavoritesNotice = "⚠️ No favorite stocks found. Please add stocks to your favorite list."

// instructionTemplate is the fixed response-format block appended to every
// prompt. The email body is consumed as-is, so the labels must stay stable.
const instructionTemplate = `跟我說大盤趨勢跟買或賣的建議。請根據以下格式回答：
大盤趨勢：<大盤趨勢>
買或賣建議：根據favorite stocks的市場數據，分別給出每支股票的買或賣建議，並且在最後給出建倉分配的比例。同時著重分析technical指標。
格式如下：
大盤趨勢：<大盤趨勢>
股票代碼：<買或賣建議> <建倉比例分配>
資金: <剩餘資金比例分配>
總資金加碼或減碼的建議(投入美股的總資金)：<加碼或減碼建議>
推薦新的股票：<推薦的股票代碼> : <推薦理由>`

// BuildPrompt assembles the user prompt from the favorites list, the
// per-ticker snapshot, and the headlines. Pure string assembly; never fails.
func BuildPrompt(favorites []string, snapshot model.MarketSnapshot, headlines []string) string {
	var b strings.Builder

	b.WriteString("You are a personal stock advisor bot. The user's favorite stock list is:\n")
	b.WriteString(strings.Join(favorites, ", "))
	b.WriteString("\n\nThe market data is:\n")
	for _, ticker := range favorites {
		res := snapshot[ticker]
		if res.Failed() {
			b.WriteString(fmt.Sprintf("%s: error: %s\n", ticker, res.Err))
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", ticker, formatTickerData(res)))
	}

	b.WriteString("\nBased on these current internet search headlines:\n")
	for _, h := range headlines {
		b.WriteString("- ")
		b.WriteString(h)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(instructionTemplate)
	b.WriteString("\n")
	return b.String()
}

func formatTickerData(res model.TickerResult) string {
	ind := res.Indicators
	fund := res.Fundamentals
	parts := []string{
		fmt.Sprintf("Close=%.2f", ind.Close),
		fmt.Sprintf("Volume=%.0f", ind.Volume),
		"RSI=" + fmtFloat(ind.RSI14),
		"SMA_20=" + fmtFloat(ind.SMA20),
		"SMA_50=" + fmtFloat(ind.SMA50),
		"MACD=" + fmtFloat(ind.MACD),
		"MACD_signal=" + fmtFloat(ind.MACDSignal),
		"BB_upper=" + fmtFloat(ind.BBUpper),
		"BB_lower=" + fmtFloat(ind.BBLower),
		"PE_ratio=" + fmtFloat(fund.PERatio),
		"EPS=" + fmtFloat(fund.EPS),
		"Market_cap=" + fmtFloat(fund.MarketCap),
		"Dividend_yield=" + fmtFloat(fund.DividendYield),
		"PEG_ratio=" + fmtFloat(fund.PEGRatio),
	}
	return strings.Join(parts, " ")
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
