package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	OpenAI struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"openai"`
	Postmark struct {
		ServerToken string `yaml:"server_token"`
		Sender      string `yaml:"sender"`
		Recipient   string `yaml:"recipient"`
	} `yaml:"postmark"`
	News struct {
		APIKey   string `yaml:"api_key"`
		PageSize int    `yaml:"page_size"`
	} `yaml:"news"`
	Storage struct {
		HistoryFile   string `yaml:"history_file"`
		FavoritesFile string `yaml:"favorites_file"`
		SQLitePath    string `yaml:"sqlite_path"`
	} `yaml:"storage"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
		Timezone   string `yaml:"timezone"`
	} `yaml:"schedule"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Report struct {
		MaxHistory    int `yaml:"max_history"`
		CacheCapacity int `yaml:"cache_capacity"`
		FetchWorkers  int `yaml:"fetch_workers"`
	} `yaml:"report"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("POSTMARK_API_KEY"); v != "" {
		cfg.Postmark.ServerToken = v
	}
	if v := os.Getenv("POSTMARK_SENDER_EMAIL"); v != "" {
		cfg.Postmark.Sender = v
	}
	if v := os.Getenv("RECIPIENT_EMAIL"); v != "" {
		cfg.Postmark.Recipient = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("REPORT_CRON"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4.1-mini"
	}
	if cfg.News.PageSize == 0 {
		cfg.News.PageSize = 30
	}
	if cfg.Storage.HistoryFile == "" {
		cfg.Storage.HistoryFile = "data/chat_history.json"
	}
	if cfg.Storage.FavoritesFile == "" {
		cfg.Storage.FavoritesFile = "data/favorite_stocks.json"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/stock_advisor.db"
	}
	if cfg.Schedule.ReportCron == "" {
		// Two report runs daily, matching the noon and evening deliveries.
		cfg.Schedule.ReportCron = "0 0 12,21 * * *"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Asia/Taipei"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":6837"
	}
	if cfg.Report.MaxHistory == 0 {
		cfg.Report.MaxHistory = 20
	}
	if cfg.Report.CacheCapacity == 0 {
		cfg.Report.CacheCapacity = 32
	}
	if cfg.Report.FetchWorkers == 0 {
		cfg.Report.FetchWorkers = 4
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.Postmark.ServerToken == "" {
		return fmt.Errorf("postmark.server_token is required")
	}
	if c.Postmark.Sender == "" {
		return fmt.Errorf("postmark.sender is required")
	}
	if c.Postmark.Recipient == "" {
		return fmt.Errorf("postmark.recipient is required")
	}
	return nil
}
