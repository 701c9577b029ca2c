// Package police fetches street-level crime statistics for a location.
package police

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

// Client implements domain.CrimeSource against the crime statistics service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a crime statistics client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// CrimeCounts returns street-crime counts for the recent reporting period and
// the comparable prior period around the given location.
func (c *Client) CrimeCounts(ctx context.Context, key domain.LocationKey) (domain.CrimeStats, error) {
	params := url.Values{"location": {key.String()}}
	fullURL := c.baseURL + "/street-crime?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.CrimeStats{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.CrimeStats{}, domain.WrapFetchError("street crime", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.CrimeStats{}, domain.StatusError("street crime", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.CrimeStats{}, domain.WrapFetchError("street crime: decode response", err)
	}

	return domain.CrimeStats{
		RecentCount: payload.RecentCount,
		PriorCount:  payload.PriorCount,
	}, nil
}

type response struct {
	RecentCount int `json:"recent_count"`
	PriorCount  int `json:"prior_count"`
}
