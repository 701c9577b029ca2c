package domain

// Origin tags how a per-source value was obtained.
type Origin string

const (
	// OriginLive marks a value fetched from the upstream source this request.
	OriginLive Origin = "live"
	// OriginCached marks a value served from the short-lived fallback cache.
	OriginCached Origin = "cached"
	// OriginSynthetic marks a value taken from the baseline table.
	OriginSynthetic Origin = "synthetic"
	// OriginUnavailable marks a failed fetch prior to fallback resolution.
	// It never survives past the resolver.
	OriginUnavailable Origin = "unavailable"
)

// SourceResult is the tagged outcome of one adapter fetch. Adapter failures
// cross component boundaries as Unavailable results, never as bare errors.
type SourceResult[T any] struct {
	Value  T
	Origin Origin
	Reason error // populated only for OriginUnavailable
}

// Live wraps a successful upstream value.
func Live[T any](value T) SourceResult[T] {
	return SourceResult[T]{Value: value, Origin: OriginLive}
}

// Cached wraps a value served from the fallback cache.
func Cached[T any](value T) SourceResult[T] {
	return SourceResult[T]{Value: value, Origin: OriginCached}
}

// Synthetic wraps a baseline-table value.
func Synthetic[T any](value T) SourceResult[T] {
	return SourceResult[T]{Value: value, Origin: OriginSynthetic}
}

// Unavailable records a normalized adapter failure.
func Unavailable[T any](reason error) SourceResult[T] {
	return SourceResult[T]{Origin: OriginUnavailable, Reason: reason}
}

// FromFetch converts an idiomatic (value, error) adapter return into a
// SourceResult.
func FromFetch[T any](value T, err error) SourceResult[T] {
	if err != nil {
		return Unavailable[T](err)
	}
	return Live(value)
}

// Resolved reports whether the result carries a usable value.
func (r SourceResult[T]) Resolved() bool { return r.Origin != OriginUnavailable }
