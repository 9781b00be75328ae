package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marketlens/options-radar/src/models"
)

// Some public finance endpoints reject requests without browser headers.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.9",
}

// GetJSON fetches url and decodes the response body into out. An HTTP 429
// surfaces as models.RateLimitedErr so callers can treat the symbol as
// temporarily unavailable.
func GetJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to create request: %w", err)
	}

	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GetJSON: request failed: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("GetJSON: %s: %w", url, models.RateLimitedErr)
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("GetJSON: %s: unexpected status %s", url, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GetJSON: failed to unmarshal response: %w", err)
	}

	return nil
}
