// Package impact orchestrates one assessment request: concurrent source
// fan-out, fallback resolution, aggregation, and narrative synthesis.
package impact

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/observability"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/resolver"
)

// Sources bundles the five signal adapters feeding an assessment.
type Sources struct {
	Crime       domain.CrimeSource
	Deprivation domain.DeprivationSource
	HousePrice  domain.HousePriceSource
	Environment domain.EnvironmentSource
	Council     domain.CouncilSource
}

// Service runs assessments. Stateless apart from the resolver's shared cache;
// safe for concurrent use.
type Service struct {
	sources   Sources
	resolver  *resolver.Resolver
	generator domain.NarrativeGenerator // nil disables AI generation
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewService wires the assessment pipeline. Pass a nil generator to always
// use the templated narrative.
func NewService(sources Sources, res *resolver.Resolver, generator domain.NarrativeGenerator, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		sources:   sources,
		resolver:  res,
		generator: generator,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether the service can serve traffic. The pipeline
// degrades to synthetic data when upstreams fail, so readiness only requires
// construction to have completed.
func (s *Service) CheckReadiness(_ context.Context) error { return nil }

// Assess produces the impact record and narrative for one report. Upstream
// failures never surface here; the only possible error is an internal
// contract violation in the aggregated record.
func (s *Service) Assess(ctx context.Context, key domain.LocationKey, assessment domain.DumpingAssessment) (domain.ImpactRecord, domain.ImpactNarrative, error) {
	start := time.Now()
	s.metrics.ImpactRequests.Inc()

	sig := s.gatherSignals(ctx, key)

	record := domain.Aggregate(sig, assessment)
	if err := domain.ValidateRecord(record); err != nil {
		s.logger.Error("aggregated record violates contract", "location", key.String(), "error", err)
		return domain.ImpactRecord{}, domain.ImpactNarrative{}, err
	}

	narrative := s.synthesize(ctx, record, assessment)
	if err := domain.ValidateNarrative(narrative); err != nil {
		s.logger.Error("narrative violates contract", "location", key.String(), "error", err)
		return domain.ImpactRecord{}, domain.ImpactNarrative{}, err
	}

	s.metrics.ImpactDuration.Observe(time.Since(start).Seconds())
	return record, narrative, nil
}

// gatherSignals fans out to all sources concurrently and joins once every
// call has settled. Each source bounds its own timeout, so the join cannot
// block past the slowest source's deadline; caller cancellation propagates
// through ctx. Each goroutine writes a distinct field.
func (s *Service) gatherSignals(ctx context.Context, key domain.LocationKey) domain.Signals {
	sig := domain.Signals{Key: key}

	var g errgroup.Group
	g.Go(func() error {
		stats, err := s.fetchCrime(ctx, key)
		sig.Crime = resolver.Resolve(s.resolver, "crime", key, domain.FromFetch(stats, err),
			func() domain.CrimeStats { return domain.BaselineCrime })
		return nil
	})
	g.Go(func() error {
		index, err := s.fetchDeprivation(ctx, key)
		sig.Deprivation = resolver.Resolve(s.resolver, "deprivation", key, domain.FromFetch(index, err),
			func() float64 { return domain.BaselineDeprivation })
		return nil
	})
	g.Go(func() error {
		stats, err := s.fetchHousePrice(ctx, key)
		sig.HousePrice = resolver.Resolve(s.resolver, "house_price", key, domain.FromFetch(stats, err),
			func() domain.HousePriceStats { return domain.BaselineHousePrice })
		return nil
	})
	g.Go(func() error {
		metrics, err := s.fetchEnvironment(ctx, key)
		sig.Environment = resolver.Resolve(s.resolver, "environment", key, domain.FromFetch(metrics, err),
			func() domain.CountyMetrics { return domain.BaselineCountyMetrics })
		return nil
	})
	g.Go(func() error {
		info, err := s.fetchCouncil(ctx, key)
		sig.Council = resolver.Resolve(s.resolver, "council", key, domain.FromFetch(info, err),
			func() domain.CouncilInfo { return domain.BaselineCouncilFor(key) })
		return nil
	})
	_ = g.Wait() // goroutines never return errors; failures are resolved away

	return sig
}

func (s *Service) fetchCrime(ctx context.Context, key domain.LocationKey) (domain.CrimeStats, error) {
	start := time.Now()
	stats, err := s.sources.Crime.CrimeCounts(ctx, key)
	s.observeSource("crime", start, err)
	return stats, err
}

func (s *Service) fetchDeprivation(ctx context.Context, key domain.LocationKey) (float64, error) {
	start := time.Now()
	index, err := s.sources.Deprivation.Index(ctx, key)
	s.observeSource("deprivation", start, err)
	return index, err
}

func (s *Service) fetchHousePrice(ctx context.Context, key domain.LocationKey) (domain.HousePriceStats, error) {
	start := time.Now()
	stats, err := s.sources.HousePrice.PriceChange(ctx, key)
	s.observeSource("house_price", start, err)
	return stats, err
}

func (s *Service) fetchEnvironment(ctx context.Context, key domain.LocationKey) (domain.CountyMetrics, error) {
	start := time.Now()
	metrics, err := s.sources.Environment.Metrics(ctx, key)
	s.observeSource("environment", start, err)
	return metrics, err
}

func (s *Service) fetchCouncil(ctx context.Context, key domain.LocationKey) (domain.CouncilInfo, error) {
	start := time.Now()
	info, err := s.sources.Council.Lookup(ctx, key)
	s.observeSource("council", start, err)
	return info, err
}

func (s *Service) observeSource(source string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.SourceRequests.WithLabelValues(source, outcome).Inc()
	s.metrics.SourceDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// synthesize produces the narrative, preferring the generation collaborator
// (one retry on failure) and falling back to the deterministic template.
func (s *Service) synthesize(ctx context.Context, record domain.ImpactRecord, assessment domain.DumpingAssessment) domain.ImpactNarrative {
	prompt := domain.BuildNarrativePrompt(record, assessment)

	statement, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("falling back to templated narrative", "error", err)
		s.metrics.NarrativeOutcomes.WithLabelValues("fallback").Inc()
		statement = domain.TemplatedStatement(record, assessment)
	} else {
		s.metrics.NarrativeOutcomes.WithLabelValues("generated").Inc()
	}

	return domain.BuildNarrative(statement, record)
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", domain.ErrNarrativeGeneration
	}

	statement, err := s.generator.Generate(ctx, prompt)
	if err == nil && statement != "" {
		return statement, nil
	}

	// One retry on transient failure, then give up to the template.
	statement, err = s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", domain.ErrNarrativeGeneration
	}
	if statement == "" {
		return "", domain.ErrNarrativeGeneration
	}
	return statement, nil
}
