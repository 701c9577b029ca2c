// Package resolver applies the per-source fallback policy: live value if the
// adapter succeeded, else a recent cached value, else the deterministic
// synthetic baseline. No failure escapes a resolution.
package resolver

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/observability"
)

// Resolver wraps the short-lived cross-request cache shared by all sources.
// Entries are keyed by (source, location key); keys are independent, so
// last-writer-wins per key is sufficient.
type Resolver struct {
	cache   *ttlCache
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Resolver with a bounded TTL cache. The clock is injectable
// for tests; pass clockwork.NewRealClock() in production.
func New(ttl time.Duration, maxEntries int, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Resolver {
	return &Resolver{
		cache:   newTTLCache(maxEntries, ttl, clock),
		logger:  logger,
		metrics: metrics,
	}
}

// Resolve converts an adapter outcome into a usable value, never an error.
// Policy, in order: live value (refreshing the cache), cached value younger
// than the TTL, deterministic synthetic baseline.
func Resolve[T any](r *Resolver, source string, key domain.LocationKey, result domain.SourceResult[T], baseline func() T) domain.SourceResult[T] {
	cacheKey := source + "|" + key.String()

	if result.Origin == domain.OriginLive {
		r.cache.put(cacheKey, result.Value)
		r.metrics.FallbackResolutions.WithLabelValues(source, string(domain.OriginLive)).Inc()
		return result
	}

	r.logger.Warn("source unavailable, applying fallback",
		"source", source,
		"location", key.String(),
		"reason", result.Reason,
	)

	if raw, ok := r.cache.get(cacheKey); ok {
		if value, ok := raw.(T); ok {
			r.metrics.FallbackResolutions.WithLabelValues(source, string(domain.OriginCached)).Inc()
			return domain.Cached(value)
		}
	}

	r.metrics.FallbackResolutions.WithLabelValues(source, string(domain.OriginSynthetic)).Inc()
	return domain.Synthetic(baseline())
}
