// Package environment serves the county fly-tipping metrics dataset. Unlike
// the network adapters this is a static table shipped with the binary; the
// resolver still wraps it so a lookup miss degrades like any other source.
package environment

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
)

//go:embed county_metrics.csv
var countyMetricsCSV []byte

// Dataset implements domain.EnvironmentSource over the embedded county table.
type Dataset struct {
	rows map[string]domain.CountyMetrics
	mean domain.CountyMetrics
}

// Load parses the embedded dataset and precomputes the column means used for
// counties missing from the table.
func Load() (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(countyMetricsCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse county metrics: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("county metrics dataset is empty")
	}

	rows := make(map[string]domain.CountyMetrics, len(records)-1)
	var mean domain.CountyMetrics
	for _, record := range records[1:] {
		if len(record) != 5 {
			return nil, fmt.Errorf("county metrics: malformed row %q", record)
		}
		m := domain.CountyMetrics{County: record[0]}
		for i, dst := range []*float64{
			&m.AirQualityImpact, &m.CO2EmissionKG, &m.QualityOfLifeImpact, &m.RecyclingRatePct,
		} {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("county metrics: row %s: %w", record[0], err)
			}
			*dst = v
		}
		rows[m.County] = m
		mean.AirQualityImpact += m.AirQualityImpact
		mean.CO2EmissionKG += m.CO2EmissionKG
		mean.QualityOfLifeImpact += m.QualityOfLifeImpact
		mean.RecyclingRatePct += m.RecyclingRatePct
	}

	n := float64(len(rows))
	mean.County = "National Average"
	mean.AirQualityImpact /= n
	mean.CO2EmissionKG /= n
	mean.QualityOfLifeImpact /= n
	mean.RecyclingRatePct /= n

	return &Dataset{rows: rows, mean: mean}, nil
}

// Metrics returns the county row for the location's postcode area, or the
// dataset mean when the county is not listed.
func (d *Dataset) Metrics(_ context.Context, key domain.LocationKey) (domain.CountyMetrics, error) {
	county := domain.CountyFor(key)
	if m, ok := d.rows[county]; ok {
		return m, nil
	}
	return d.mean, nil
}
