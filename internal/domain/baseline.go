package domain

import "fmt"

// Scale multipliers for magnitude-sensitive environmental figures. Scale 1
// uses the base estimate unmodified; scale 3 applies the largest multiplier.
// Values follow the per-bag-size clearance model (small 1.0, medium 2.5,
// large 5.0).
var scaleMultipliers = map[Scale]float64{
	ScaleSmall:  1.0,
	ScaleMedium: 2.5,
	ScaleLarge:  5.0,
}

// ScaleMultiplier returns the environmental multiplier for a scale. Invalid
// scales fall back to the medium multiplier, matching the classifier default.
func ScaleMultiplier(s Scale) float64 {
	if m, ok := scaleMultipliers[s]; ok {
		return m
	}
	return scaleMultipliers[ScaleMedium]
}

// Synthetic baseline table. Used verbatim when a source is unavailable and no
// cache entry exists, so repeated failures reproduce the same record. See the
// package doc for the policy.
var (
	// BaselineCrime yields a +7.5% change after control subtraction.
	BaselineCrime = CrimeStats{RecentCount: 43, PriorCount: 40}

	// BaselineDeprivation is the national mid-to-high deprivation figure on
	// the 0-10 index.
	BaselineDeprivation = 6.5

	// BaselineHousePrice yields a -2.2% impact after control subtraction.
	BaselineHousePrice = HousePriceStats{LocalChangePct: 1.3, RegionalChangePct: 3.5}

	// BaselineCountyMetrics mirrors the dataset's Greater London row.
	BaselineCountyMetrics = CountyMetrics{
		County:              DefaultCounty,
		AirQualityImpact:    0.62,
		CO2EmissionKG:       38.0,
		QualityOfLifeImpact: 0.55,
		RecyclingRatePct:    42.0,
	}
)

// Per-incident estimates used by the aggregator.
const (
	// WasteVolumeBaseTonnes is the scale-1 volume estimate (roughly 50kg).
	WasteVolumeBaseTonnes = 0.05
	// ClearanceCostBaseGBP is the scale-1 council clearance cost estimate.
	ClearanceCostBaseGBP = 200
	// BaselineContactNumber is the generic council contact number used when
	// no directory entry is available.
	BaselineContactNumber = "0300 123 4567"
)

// baseRecommendations is the council guidance attached to every record ahead
// of the scale-specific clearance-cost line.
var baseRecommendations = []string{
	"Report fly-tipping incidents immediately via the council website",
	"Use licensed waste carriers - check the Environment Agency register",
	"Take bulky waste to your local household recycling centre",
	"Consider using the council's bulky waste collection service",
}

// BaselineCouncilFor derives the synthetic council entry for a location from
// its postcode area. Deterministic per key.
func BaselineCouncilFor(key LocationKey) CouncilInfo {
	county := CountyFor(key)
	slug := CouncilSlug(county)
	return CouncilInfo{
		Name:            county + " Council",
		ReportingURL:    fmt.Sprintf("https://www.%s.gov.uk/report-fly-tipping", slug),
		ContactNumber:   BaselineContactNumber,
		Recommendations: append([]string(nil), baseRecommendations...),
	}
}
