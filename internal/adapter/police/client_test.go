package police

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
)

func testClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(baseURL, timeout, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCrimeCounts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/street-crime", r.URL.Path)
		assert.Equal(t, "SW1A1AA", r.URL.Query().Get("location"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response{RecentCount: 54, PriorCount: 48}))
	}))
	defer srv.Close()

	stats, err := testClient(srv.URL, 5*time.Second).CrimeCounts(context.Background(), "SW1A1AA")
	require.NoError(t, err)
	assert.Equal(t, 54, stats.RecentCount)
	assert.Equal(t, 48, stats.PriorCount)
}

func TestCrimeCounts_Non2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 5*time.Second).CrimeCounts(context.Background(), "SW1A1AA")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)
	assert.Contains(t, err.Error(), "429")
}

func TestCrimeCounts_MalformedPayloadIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 5*time.Second).CrimeCounts(context.Background(), "SW1A1AA")
	assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)
}

func TestCrimeCounts_TimeoutIsBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 50*time.Millisecond).CrimeCounts(context.Background(), "SW1A1AA")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdapterTimeout)
}

func TestCrimeCounts_CallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL, 5*time.Second).CrimeCounts(ctx, "SW1A1AA")
	require.Error(t, err)
}
