package extract_test

import (
	"errors"
	"testing"

	"github.com/oceandata/argodb/pkg/extract"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMeasurements(t *testing.T) {
	ds := &fakeDataset{
		vars: []string{"PRES", "TEMP", "PSAL"},
		values: map[string]any{
			"PRES": []float64{5, 100, 200},
			"TEMP": []float64{28.5, 15.2, 8.1},
			"PSAL": []float64{35.0, 35.1, 34.9},
		},
		dims: map[string]int{"N_LEVELS": 3},
	}

	e := &extract.MeasurementExtractor{}
	ms := e.Extract(ds)

	require.Len(t, ms, 3)
	require.NotNil(t, ms[0].Temperature)
	assert.InDelta(t, 28.5, *ms[0].Temperature, 1e-9)
	require.NotNil(t, ms[2].Salinity)
	assert.InDelta(t, 34.9, *ms[2].Salinity, 1e-9)

	// No depth variable: depth is backfilled from pressure.
	for i, m := range ms {
		require.NotNil(t, m.Depth, i)
		assert.Equal(t, *m.Pressure, *m.Depth, i)
		assert.Equal(t, profile.QualityGood, m.QualityFlag, i)
	}
}

func TestExtractMeasurementsFillValue(t *testing.T) {
	ds := &fakeDataset{
		vars: []string{"PRES", "TEMP"},
		values: map[string]any{
			"PRES": []float64{5, 100},
			"TEMP": []float64{28.5, 99999.0},
		},
		varAttrs: map[string]map[string]any{
			"TEMP": {"_FillValue": 99999.0},
		},
		dims: map[string]int{"N_LEVELS": 2},
	}

	e := &extract.MeasurementExtractor{}
	ms := e.Extract(ds)

	require.Len(t, ms, 2)
	assert.NotNil(t, ms[0].Temperature)
	assert.Nil(t, ms[1].Temperature)
	assert.NotNil(t, ms[1].Pressure)
}

func TestExtractMeasurementsTwoDimensional(t *testing.T) {
	// Profile files often carry [N_PROF][N_LEVELS] arrays; only the
	// first profile is read.
	ds := &fakeDataset{
		vars: []string{"TEMP"},
		values: map[string]any{
			"TEMP": [][]float64{{10.5, 99.0}, {11.5, 98.0}},
		},
		dims: map[string]int{"N_LEVELS": 2, "N_PROF": 2},
	}

	e := &extract.MeasurementExtractor{}
	ms := e.Extract(ds)

	require.Len(t, ms, 2)
	require.NotNil(t, ms[0].Temperature)
	assert.InDelta(t, 10.5, *ms[0].Temperature, 1e-9)
	require.NotNil(t, ms[1].Temperature)
	assert.InDelta(t, 11.5, *ms[1].Temperature, 1e-9)
}

func TestExtractMeasurementsLargestDimensionFallback(t *testing.T) {
	ds := &fakeDataset{
		vars: []string{"TEMP"},
		values: map[string]any{
			"TEMP": []float64{1, 2, 3, 4, 5},
		},
		dims: map[string]int{"obs": 5, "x": 2},
	}

	e := &extract.MeasurementExtractor{}
	ms := e.Extract(ds)
	assert.Len(t, ms, 5)
}

func TestExtractMeasurementsNoDimensions(t *testing.T) {
	e := &extract.MeasurementExtractor{}
	ms := e.Extract(&fakeDataset{vars: []string{"TEMP"}})
	assert.Empty(t, ms)
}

func TestExtractMeasurementsValidateHook(t *testing.T) {
	ds := &fakeDataset{
		vars: []string{"PRES", "TEMP"},
		values: map[string]any{
			"PRES": []float64{5, 100, 200},
			"TEMP": []float64{28.5, -100.0, 8.1},
		},
		dims: map[string]int{"N_LEVELS": 3},
	}

	e := &extract.MeasurementExtractor{
		Validate: func(m *profile.Measurement) error {
			if m.Temperature != nil && *m.Temperature < -5 {
				return errors.New("temperature out of range")
			}
			return nil
		},
	}
	ms := e.Extract(ds)

	// The invalid level is dropped, the rest of the profile survives.
	require.Len(t, ms, 2)
	assert.InDelta(t, 28.5, *ms[0].Temperature, 1e-9)
	assert.InDelta(t, 8.1, *ms[1].Temperature, 1e-9)
}
