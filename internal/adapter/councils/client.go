// Package councils resolves the responsible local authority for a location
// via a postcodes.io-style lookup, with deterministic .gov.uk URL fallbacks.
package councils

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

// contactDirectory holds known fly-tipping contact numbers per district.
// Districts not listed fall back to the generic council number.
var contactDirectory = map[string]string{
	"Westminster": "020 7641 6000",
	"Leeds":       "0113 222 4444",
	"Manchester":  "0161 234 5000",
	"Birmingham":  "0121 303 1112",
}

// Client implements domain.CouncilSource against a postcode lookup service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a council directory client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Lookup resolves the council responsible for the location. The reporting URL
// follows the official .gov.uk slug pattern; recommendations are left to the
// aggregator, which appends the shared guidance list.
func (c *Client) Lookup(ctx context.Context, key domain.LocationKey) (domain.CouncilInfo, error) {
	fullURL := fmt.Sprintf("%s/postcodes/%s", c.baseURL, url.PathEscape(key.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.CouncilInfo{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.CouncilInfo{}, domain.WrapFetchError("council lookup", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.CouncilInfo{}, domain.StatusError("council lookup", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.CouncilInfo{}, domain.WrapFetchError("council lookup: decode response", err)
	}

	district := payload.Result.AdminDistrict
	if district == "" {
		return domain.CouncilInfo{}, fmt.Errorf("%w: council lookup: no admin district for %s",
			domain.ErrAdapterUnavailable, key)
	}

	contact, ok := contactDirectory[district]
	if !ok {
		contact = domain.BaselineContactNumber
	}

	slug := domain.CouncilSlug(district)
	return domain.CouncilInfo{
		Name:          district + " Council",
		ReportingURL:  fmt.Sprintf("https://www.%s.gov.uk/report-fly-tipping", slug),
		ContactNumber: contact,
	}, nil
}

// postcodes.io response shape (only the fields we read).

type response struct {
	Status int    `json:"status"`
	Result result `json:"result"`
}

type result struct {
	AdminDistrict string `json:"admin_district"`
}
