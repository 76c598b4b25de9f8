package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// NewsAPIFetcher fetches business headlines from the NewsAPI top-headlines
// endpoint.
type NewsAPIFetcher struct {
	APIKey  string
	Client  *http.Client
	BaseURL string
}

const newsAPIBaseURL = "https://newsapi.org"

// NewNewsAPIFetcher creates a headline fetcher with optional proxy support.
func NewNewsAPIFetcher(apiKey, proxyURL string) *NewsAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NewsAPIFetcher{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: newsAPIBaseURL,
	}
}

// FetchHeadlines returns up to `limit` recent business headline titles.
func (f *NewsAPIFetcher) FetchHeadlines(limit int) ([]string, error) {
	u := fmt.Sprintf("%s/v2/top-headlines?category=business&pageSize=%d&language=en&apiKey=%s",
		f.BaseURL, limit, url.QueryEscape(f.APIKey))

	resp, err := f.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read headlines: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Articles []struct {
			Title string `json:"title"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode headlines: %w", err)
	}

	headlines := make([]string, 0, len(result.Articles))
	for _, a := range result.Articles {
		if a.Title != "" {
			headlines = append(headlines, a.Title)
		}
	}
	return headlines, nil
}
