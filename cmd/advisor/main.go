package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/config"
	"StockAdvisor/internal/history"
	"StockAdvisor/internal/llm"
	"StockAdvisor/internal/notifier"
	"StockAdvisor/internal/recorder"
	"StockAdvisor/internal/report"
	"StockAdvisor/internal/scheduler"
	"StockAdvisor/internal/store"
	"StockAdvisor/internal/web"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockAdvisor starting...")

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	for _, p := range []string{cfg.Storage.HistoryFile, cfg.Storage.FavoritesFile} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatalf("[FATAL] create data directory: %v", err)
			}
		}
	}

	// Data providers
	yahoo := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] market data source: %s", yahoo.Name())
	news := collector.NewNewsAPIFetcher(cfg.News.APIKey, cfg.Proxy)

	col := collector.NewCollector(yahoo, yahoo)
	market := report.NewCachedMarketSource(col, cfg.Report.CacheCapacity)

	// Stores
	favorites := store.NewFavorites(cfg.Storage.FavoritesFile)
	window := history.NewWindow(cfg.Storage.HistoryFile, cfg.Report.MaxHistory)

	// Completion and email
	completer := llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.Proxy)
	mailer := notifier.NewPostmarkNotifier(cfg.Postmark.ServerToken, cfg.Postmark.Sender, cfg.Proxy)

	// Recorder
	var rec recorder.Recorder
	if cfg.Storage.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Storage.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	orch := &report.Orchestrator{
		Favorites:     favorites,
		History:       window,
		News:          news,
		Market:        market,
		Completer:     completer,
		Mailer:        mailer,
		Recorder:      rec,
		Recipient:     cfg.Postmark.Recipient,
		HeadlineLimit: cfg.News.PageSize,
		FetchWorkers:  cfg.Report.FetchWorkers,
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scheduler
	sched, err := scheduler.NewScheduler(ctx, orch, cfg.Schedule.Timezone)
	if err != nil {
		log.Fatalf("[FATAL] init scheduler: %v", err)
	}
	if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
		log.Fatalf("[FATAL] register report task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Favorites web form
	mux := http.NewServeMux()
	mux.Handle("/", web.NewServer(favorites))
	go func() {
		log.Printf("[INFO] favorites form listening on %s", cfg.Server.ListenAddr)
		if err := http.ListenAndServe(cfg.Server.ListenAddr, mux); err != nil {
			log.Printf("[ERROR] web server: %v", err)
		}
	}()

	// Immediate report on startup
	go sched.RunNow()

	log.Println("[INFO] StockAdvisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockAdvisor stopped")
}
