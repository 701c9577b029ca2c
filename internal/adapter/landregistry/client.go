// Package landregistry fetches annual house-price change for a locality and
// its surrounding region.
package landregistry

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

// Client implements domain.HousePriceSource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a house-price index client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// PriceChange returns the annual percent change for the immediate locality
// and for its region. The region is the control the aggregator subtracts.
func (c *Client) PriceChange(ctx context.Context, key domain.LocationKey) (domain.HousePriceStats, error) {
	params := url.Values{"location": {key.String()}}
	fullURL := c.baseURL + "/house-prices?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.HousePriceStats{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.HousePriceStats{}, domain.WrapFetchError("house prices", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.HousePriceStats{}, domain.StatusError("house prices", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.HousePriceStats{}, domain.WrapFetchError("house prices: decode response", err)
	}

	return domain.HousePriceStats{
		LocalChangePct:    payload.LocalChangePct,
		RegionalChangePct: payload.RegionalChangePct,
	}, nil
}

type response struct {
	LocalChangePct    float64 `json:"local_annual_change_pct"`
	RegionalChangePct float64 `json:"regional_annual_change_pct"`
}
