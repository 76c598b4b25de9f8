package report

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/history"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/recorder"
)

// MarketSource produces per-ticker vectors, normally the collector wrapped by
// the LRU caches.
type MarketSource interface {
	Indicators(ticker string) (*model.IndicatorVector, error)
	Fundamentals(ticker string) (*model.FundamentalVector, error)
}

// Completer generates one completion from a role-tagged message list.
type Completer interface {
	Complete(ctx context.Context, messages []model.ChatMessage) (string, error)
}

// Mailer delivers one plain-text email.
type Mailer interface {
	Send(subject, body, to string) error
}

// FavoriteSource returns the tracked ticker list.
type FavoriteSource interface {
	Load() []string
}

// Orchestrator runs one report cycle end to end: load favorites and history,
// gather headlines and market data, compose the prompt, call the completion
// service, persist the history, send the email.
type Orchestrator struct {
	Favorites FavoriteSource
	History   *history.Window
	News      collector.NewsFetcher
	Market    MarketSource
	Completer Completer
	Mailer    Mailer
	Recorder  recorder.Recorder
	Recipient string

	HeadlineLimit int
	FetchWorkers  int

	mu sync.Mutex // serializes overlapping trigger firings
}

// Run executes one report cycle. A trigger that fires while a run is in flight
// waits for it to finish.
//
// Per-ticker fetch failures and a news failure degrade the report; a
// completion failure aborts the cycle before any history mutation or email.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	start := time.Now()
	rec := &recorder.CycleRecord{StartedAt: start}
	defer func() {
		rec.Duration = time.Since(start)
		o.record(rec)
	}()

	favorites := o.Favorites.Load()
	o.History.Load()

	if len(favorites) == 0 {
		log.Println("[WARN] favorite list empty, sending notice instead of report")
		rec.ShortCircuit = true
		o.History.Append(model.ChatMessage{Role: model.RoleAssistant, Content: noFavoritesNotice})
		if err := o.History.Save(); err != nil {
			log.Printf("[ERROR] save chat history: %v", err)
		}
		o.sendReport(rec, noFavoritesNotice)
		return nil
	}
	rec.TickerCount = len(favorites)

	headlines := o.fetchHeadlines()
	rec.HeadlineCount = len(headlines)

	snapshot := o.fetchMarketData(favorites, rec)

	prompt := BuildPrompt(favorites, snapshot, headlines)
	o.History.Append(model.ChatMessage{Role: model.RoleUser, Content: prompt})
	o.History.Trim()

	messages := append(
		[]model.ChatMessage{{Role: model.RoleSystem, Content: advisorPersona}},
		o.History.Messages()...,
	)
	reportText, err := o.Completer.Complete(ctx, messages)
	if err != nil {
		rec.Err = err.Error()
		return fmt.Errorf("completion: %w", err)
	}

	o.History.Append(model.ChatMessage{Role: model.RoleAssistant, Content: reportText})
	if err := o.History.Save(); err != nil {
		log.Printf("[ERROR] save chat history: %v", err)
	}

	o.sendReport(rec, reportText)
	return nil
}

// fetchHeadlines degrades to an empty list on failure; news is best-effort.
func (o *Orchestrator) fetchHeadlines() []string {
	limit := o.HeadlineLimit
	if limit <= 0 {
		limit = 30
	}
	headlines, err := o.News.FetchHeadlines(limit)
	if err != nil {
		log.Printf("[WARN] fetch headlines: %v, continuing without news", err)
		return nil
	}
	return headlines
}

// fetchMarketData gathers both vectors for every favorite. Tickers are fetched
// concurrently; a failed ticker gets an error marker and never aborts the
// batch.
func (o *Orchestrator) fetchMarketData(favorites []string, rec *recorder.CycleRecord) model.MarketSnapshot {
	snapshot := make(model.MarketSnapshot, len(favorites))
	var mu sync.Mutex

	g := new(errgroup.Group)
	workers := o.FetchWorkers
	if workers <= 0 {
		workers = 4
	}
	g.SetLimit(workers)

	for _, ticker := range favorites {
		ticker := ticker
		g.Go(func() error {
			res := o.fetchTicker(ticker)
			mu.Lock()
			snapshot[ticker] = res
			if res.Failed() {
				rec.FailedTickers = append(rec.FailedTickers, ticker)
			}
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return snapshot
}

func (o *Orchestrator) fetchTicker(ticker string) model.TickerResult {
	ind, err := o.Market.Indicators(ticker)
	if err != nil {
		log.Printf("[WARN] market data for %s: %v", ticker, err)
		return model.TickerResult{Err: err.Error()}
	}
	fund, err := o.Market.Fundamentals(ticker)
	if err != nil {
		log.Printf("[WARN] fundamentals for %s: %v", ticker, err)
		return model.TickerResult{Err: err.Error()}
	}
	return model.TickerResult{Indicators: ind, Fundamentals: fund}
}

// sendReport dispatches exactly one email for the cycle. A dispatch failure is
// logged, not retried; the persisted history already holds the report.
func (o *Orchestrator) sendReport(rec *recorder.CycleRecord, body string) {
	if err := o.Mailer.Send(emailSubject, body, o.Recipient); err != nil {
		log.Printf("[ERROR] send report email: %v", err)
		return
	}
	rec.EmailSent = true
	log.Println("[INFO] report email sent")
}

func (o *Orchestrator) record(rec *recorder.CycleRecord) {
	if o.Recorder == nil {
		return
	}
	if err := o.Recorder.RecordCycle(rec); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
}
