// Package domain models fly-tipping (illegal waste dumping) impact data for
// street-level UK locations.
//
// # Location keys
//
// Locations arrive as free-text postcodes or street addresses. They are
// normalized into a LocationKey by uppercasing and stripping all whitespace,
// so "sw1a 1aa" and "SW1A1AA" address the same cache entries and produce the
// same impact record. County resolution uses the postcode area prefix
// (longest match wins, so "LS" beats "L"); unmatched inputs default to
// Greater London, mirroring the historical behaviour of the metrics dataset.
//
// # Dumping scale
//
// The image classifier assigns each report a severity scale of 1-3:
//
//	1 - a single bag or equivalent
//	2 - a medium pile, roughly a wheelie bin's worth
//	3 - a large pile or van-sized load
//
// Magnitude-sensitive environmental figures grow with scale using fixed
// multipliers (1.0, 2.5, 5.0). The multipliers trace back to the per-bag-size
// clearance model; crime, deprivation and house-price figures describe the
// area rather than the single incident and are not scale-adjusted.
//
// # Synthetic baselines
//
// Every numeric field of an ImpactRecord must be populated even when all
// upstream sources are down. The baseline* constants in baseline.go are the
// documented fallback table: deterministic, location-independent values (the
// council baseline derives deterministically from the postcode prefix).
// Repeated failures for the same input therefore reproduce the same record.
//
// # Control for average in area
//
// Where a source exposes both a local figure and a comparable baseline figure
// (prior-period crime counts, regional house-price change), only the delta is
// published, isolating the impact attributable to dumping from the area's
// background trend.
package domain
