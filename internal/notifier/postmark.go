package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const postmarkURL = "https://api.postmarkapp.com/email"

// PostmarkNotifier sends plain-text email through the Postmark API.
type PostmarkNotifier struct {
	ServerToken string
	From        string
	Client      *http.Client
	URL         string
}

// NewPostmarkNotifier creates a notifier with optional proxy support.
func NewPostmarkNotifier(serverToken, from, proxyURL string) *PostmarkNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PostmarkNotifier{
		ServerToken: serverToken,
		From:        from,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		URL: postmarkURL,
	}
}

// Send delivers one message to the recipient.
func (n *PostmarkNotifier) Send(subject, body, to string) error {
	payload := map[string]string{
		"From":          n.From,
		"To":            to,
		"Subject":       subject,
		"TextBody":      body,
		"MessageStream": "outbound",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", n.URL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", n.ServerToken)

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("postmark API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (n *PostmarkNotifier) SendWithRetry(ctx context.Context, subject, body, to string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := n.Send(subject, body, to); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Printf("[WARN] email send failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries+1, err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}
