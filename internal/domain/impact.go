package domain

import (
	"context"
	"fmt"
	"math"
)

// CrimeStats holds street-level crime counts for the recent reporting period
// and the comparable prior period (the area control).
type CrimeStats struct {
	RecentCount int
	PriorCount  int
}

// HousePriceStats holds annual house-price change for the immediate locality
// and its surrounding region (the area control), both in percent.
type HousePriceStats struct {
	LocalChangePct    float64
	RegionalChangePct float64
}

// CountyMetrics is one row of the county fly-tipping metrics dataset.
type CountyMetrics struct {
	County              string
	AirQualityImpact    float64 // 0.0-1.0
	CO2EmissionKG       float64 // base kg per incident at scale 1
	QualityOfLifeImpact float64 // 0.0-1.0
	RecyclingRatePct    float64
}

// EnvironmentalImpact is the scale-adjusted environmental portion of a record.
type EnvironmentalImpact struct {
	CO2Emissions  float64 // kg
	WasteVolume   float64 // tonnes
	RecyclingRate float64 // percent
}

// CouncilInfo identifies the responsible authority and how to report to it.
type CouncilInfo struct {
	Name            string
	ReportingURL    string
	ContactNumber   string
	Recommendations []string
}

// ImpactRecord is the merged, externally-shaped impact of one dumping report.
// Every numeric field is always populated; sources that fail resolve to the
// synthetic baseline table rather than to nulls.
type ImpactRecord struct {
	CrimeChange         float64 // percent, signed
	DeprivationIndex    float64 // 0-10
	HousePriceImpact    float64 // percent, signed
	EnvironmentalImpact EnvironmentalImpact
	CouncilInfo         CouncilInfo
}

// ImpactNarrative is the human-readable companion to an ImpactRecord.
type ImpactNarrative struct {
	Statement         string
	RemediationSteps  []string
	DisposalLocations []string
	ReportingLink     string
}

// Signals bundles the five resolved per-source results feeding aggregation.
type Signals struct {
	Key         LocationKey
	Crime       SourceResult[CrimeStats]
	Deprivation SourceResult[float64]
	HousePrice  SourceResult[HousePriceStats]
	Environment SourceResult[CountyMetrics]
	Council     SourceResult[CouncilInfo]
}

// Source adapter contracts. Implementations live under internal/adapter and
// must bound their own timeouts; all failure modes surface as errors which
// the resolver absorbs.

// CrimeSource reports street-level crime counts for a location.
type CrimeSource interface {
	CrimeCounts(ctx context.Context, key LocationKey) (CrimeStats, error)
}

// DeprivationSource reports the 0-10 deprivation index for a location.
type DeprivationSource interface {
	Index(ctx context.Context, key LocationKey) (float64, error)
}

// HousePriceSource reports local and regional house-price change.
type HousePriceSource interface {
	PriceChange(ctx context.Context, key LocationKey) (HousePriceStats, error)
}

// EnvironmentSource reports the county fly-tipping metrics for a location.
type EnvironmentSource interface {
	Metrics(ctx context.Context, key LocationKey) (CountyMetrics, error)
}

// CouncilSource resolves the responsible council for a location.
type CouncilSource interface {
	Lookup(ctx context.Context, key LocationKey) (CouncilInfo, error)
}

// NarrativeGenerator produces free text from a prompt. Treated as a boundary
// service with its own timeout; the synthesizer retries once and then falls
// back to the templated statement.
type NarrativeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Classifier assigns a dumping assessment to a report image. External
// collaborator; the core only consumes its output.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (DumpingAssessment, error)
}

// ValidateRecord enforces the fully-populated invariant. A failure here is an
// internal defect, not an expected upstream condition.
func ValidateRecord(rec ImpactRecord) error {
	for name, v := range map[string]float64{
		"crimeChange":      rec.CrimeChange,
		"deprivationIndex": rec.DeprivationIndex,
		"housePriceImpact": rec.HousePriceImpact,
		"co2Emissions":     rec.EnvironmentalImpact.CO2Emissions,
		"wasteVolume":      rec.EnvironmentalImpact.WasteVolume,
		"recyclingRate":    rec.EnvironmentalImpact.RecyclingRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: field %s is not finite", ErrInternalContractViolation, name)
		}
	}
	if rec.DeprivationIndex < 0 || rec.DeprivationIndex > 10 {
		return fmt.Errorf("%w: deprivationIndex %.2f outside 0-10", ErrInternalContractViolation, rec.DeprivationIndex)
	}
	ci := rec.CouncilInfo
	if ci.Name == "" || ci.ReportingURL == "" || ci.ContactNumber == "" {
		return fmt.Errorf("%w: councilInfo incomplete", ErrInternalContractViolation)
	}
	if len(ci.Recommendations) == 0 {
		return fmt.Errorf("%w: councilInfo.recommendations empty", ErrInternalContractViolation)
	}
	return nil
}

// ValidateNarrative enforces the narrative side of the response contract.
func ValidateNarrative(n ImpactNarrative) error {
	if n.Statement == "" {
		return fmt.Errorf("%w: narrative statement empty", ErrInternalContractViolation)
	}
	if n.ReportingLink == "" {
		return fmt.Errorf("%w: narrative reportingLink empty", ErrInternalContractViolation)
	}
	return nil
}
