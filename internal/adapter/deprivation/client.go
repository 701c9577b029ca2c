// Package deprivation fetches the index of multiple deprivation for a
// location, normalized to a 0-10 scale.
package deprivation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
)

// Client implements domain.DeprivationSource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a deprivation index client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Index returns the 0-10 deprivation index for the location.
func (c *Client) Index(ctx context.Context, key domain.LocationKey) (float64, error) {
	params := url.Values{"postcode": {key.String()}}
	fullURL := c.baseURL + "/deprivation?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, domain.WrapFetchError("deprivation index", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, domain.StatusError("deprivation index", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, domain.WrapFetchError("deprivation index: decode response", err)
	}

	return payload.Index, nil
}

type response struct {
	Index float64 `json:"index"`
}
