package profile_test

import (
	"testing"

	"github.com/oceandata/argodb/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementValueRoundTrip(t *testing.T) {
	var m profile.Measurement

	for i, field := range profile.MeasurementFields() {
		want := float64(i) + 0.5
		m.SetValue(field, profile.Float(want))

		got := m.Value(field)
		require.NotNil(t, got, string(field))
		assert.InDelta(t, want, *got, 1e-9, string(field))
	}

	assert.Nil(t, m.Value("bogus"))
}

func TestMeasurementFieldsOrder(t *testing.T) {
	fields := profile.MeasurementFields()
	require.Len(t, fields, 8)
	assert.Equal(t, profile.FieldPressure, fields[0])
	assert.Equal(t, profile.FieldChlorophyll, fields[7])
}

func TestProvenanceResolved(t *testing.T) {
	p := profile.Provenance{
		"float_id": profile.SourceVariable,
		"latitude": profile.SourceAttribute,
		"cycle":    profile.SourceDefault,
	}

	assert.True(t, p.Resolved("float_id"))
	assert.True(t, p.Resolved("latitude"))
	assert.False(t, p.Resolved("cycle"))
	assert.False(t, p.Resolved("never_looked_up"))
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "variable", profile.SourceVariable.String())
	assert.Equal(t, "attribute", profile.SourceAttribute.String())
	assert.Equal(t, "default", profile.SourceDefault.String())
}

func TestGoodQuality(t *testing.T) {
	assert.True(t, profile.GoodQuality(profile.QualityGood))
	assert.True(t, profile.GoodQuality(profile.QualityProbablyGood))
	assert.False(t, profile.GoodQuality(profile.QualityBad))
	assert.False(t, profile.GoodQuality(profile.QualityMissing))
}
