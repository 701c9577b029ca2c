package environment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesEmbeddedDataset(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, ds.rows)
}

func TestMetrics_KnownCounty(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	m, err := ds.Metrics(context.Background(), "SW1A1AA")
	require.NoError(t, err)
	assert.Equal(t, "Greater London", m.County)
	assert.Equal(t, 38.0, m.CO2EmissionKG)
	assert.Equal(t, 42.0, m.RecyclingRatePct)
}

func TestMetrics_CountyMissingFromDatasetUsesMean(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	// Durham (DH) is in the postcode table but not in the dataset.
	m, err := ds.Metrics(context.Background(), "DH11AA")
	require.NoError(t, err)
	assert.Equal(t, "National Average", m.County)
	assert.Greater(t, m.CO2EmissionKG, 0.0)
	assert.Greater(t, m.RecyclingRatePct, 0.0)
}
