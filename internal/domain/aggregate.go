package domain

import (
	"fmt"
	"math"
)

// Aggregate merges the resolved per-source signals into one ImpactRecord.
// Pure function of its inputs: no I/O, no errors. Any malformed value that
// slipped past resolution degrades to the baseline for that field, keeping
// the record fully populated.
func Aggregate(sig Signals, assessment DumpingAssessment) ImpactRecord {
	mult := ScaleMultiplier(assessment.Scale)

	rec := ImpactRecord{
		CrimeChange:      crimeChangePct(sig.Crime.Value),
		DeprivationIndex: deprivationIndex(sig.Deprivation.Value),
		HousePriceImpact: housePriceImpactPct(sig.HousePrice.Value),
	}

	env := sig.Environment.Value
	if env.CO2EmissionKG <= 0 || !finite(env.CO2EmissionKG) || !finite(env.RecyclingRatePct) {
		env = BaselineCountyMetrics
	}
	rec.EnvironmentalImpact = EnvironmentalImpact{
		CO2Emissions:  round1(env.CO2EmissionKG * mult),
		WasteVolume:   round2(WasteVolumeBaseTonnes * mult),
		RecyclingRate: round1(clamp(env.RecyclingRatePct, 0, 100)),
	}

	council := sig.Council.Value
	if council.Name == "" || council.ReportingURL == "" {
		council = BaselineCouncilFor(sig.Key)
	}
	if council.ContactNumber == "" {
		council.ContactNumber = BaselineContactNumber
	}
	if len(council.Recommendations) == 0 {
		council.Recommendations = append([]string(nil), baseRecommendations...)
	}
	council.Recommendations = append(council.Recommendations,
		fmt.Sprintf("Fly-tipping at this scale costs your council around £%d to clear - reporting it helps reduce that burden",
			int(ClearanceCostBaseGBP*mult)))
	rec.CouncilInfo = council

	return rec
}

// crimeChangePct computes the signed percent change of recent street-crime
// counts against the prior-period control, degrading to the baseline when the
// control is unusable.
func crimeChangePct(stats CrimeStats) float64 {
	if stats.PriorCount <= 0 || stats.RecentCount < 0 {
		stats = BaselineCrime
	}
	change := float64(stats.RecentCount-stats.PriorCount) / float64(stats.PriorCount) * 100
	return round1(change)
}

func deprivationIndex(index float64) float64 {
	if !finite(index) {
		index = BaselineDeprivation
	}
	return round1(clamp(index, 0, 10))
}

// housePriceImpactPct exposes only the delta between local and regional
// annual change, isolating the dumping-attributable effect.
func housePriceImpactPct(stats HousePriceStats) float64 {
	if !finite(stats.LocalChangePct) || !finite(stats.RegionalChangePct) {
		stats = BaselineHousePrice
	}
	return round1(stats.LocalChangePct - stats.RegionalChangePct)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
