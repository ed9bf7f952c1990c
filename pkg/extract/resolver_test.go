package extract_test

import (
	"testing"

	"github.com/oceandata/argodb/pkg/extract"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/stretchr/testify/assert"
)

func TestResolveVariableExact(t *testing.T) {
	ds := &fakeDataset{vars: []string{"PRES", "TEMP", "PSAL"}}

	tests := []struct {
		field profile.Field
		want  string
	}{
		{profile.FieldTemperature, "TEMP"},
		{profile.FieldPressure, "PRES"},
		{profile.FieldSalinity, "PSAL"},
	}

	for _, tt := range tests {
		name, ok := extract.ResolveVariable(ds, tt.field)
		assert.True(t, ok, string(tt.field))
		assert.Equal(t, tt.want, name, string(tt.field))
	}
}

func TestResolveVariableExactBeatsAdjusted(t *testing.T) {
	// Both raw and adjusted variants present: the first alias wins.
	ds := &fakeDataset{vars: []string{"TEMP_ADJUSTED", "TEMP"}}

	name, ok := extract.ResolveVariable(ds, profile.FieldTemperature)
	assert.True(t, ok)
	assert.Equal(t, "TEMP", name)
}

func TestResolveVariableCaseInsensitive(t *testing.T) {
	ds := &fakeDataset{vars: []string{"Temp", "Psal"}}

	name, ok := extract.ResolveVariable(ds, profile.FieldTemperature)
	assert.True(t, ok)
	assert.Equal(t, "Temp", name)

	name, ok = extract.ResolveVariable(ds, profile.FieldSalinity)
	assert.True(t, ok)
	assert.Equal(t, "Psal", name)
}

func TestResolveVariableSubstring(t *testing.T) {
	ds := &fakeDataset{vars: []string{"water_temp_deg"}}

	name, ok := extract.ResolveVariable(ds, profile.FieldTemperature)
	assert.True(t, ok)
	assert.Equal(t, "water_temp_deg", name)
}

func TestResolveVariableByAttribute(t *testing.T) {
	ds := &fakeDataset{
		vars: []string{"VAR1"},
		varAttrs: map[string]map[string]any{
			"VAR1": {"standard_name": "sea_water_salinity"},
		},
	}

	name, ok := extract.ResolveVariable(ds, profile.FieldSalinity)
	assert.True(t, ok)
	assert.Equal(t, "VAR1", name)
}

func TestResolveVariableNotFound(t *testing.T) {
	ds := &fakeDataset{vars: []string{"VAR1"}}

	name, ok := extract.ResolveVariable(ds, profile.FieldOxygen)
	assert.False(t, ok)
	assert.Equal(t, "", name)
}

func TestResolveVariableBioGeoChemical(t *testing.T) {
	ds := &fakeDataset{
		vars: []string{"DOXY", "NITRATE", "PH_IN_SITU_TOTAL", "CHLA"},
	}

	tests := []struct {
		field profile.Field
		want  string
	}{
		{profile.FieldOxygen, "DOXY"},
		{profile.FieldNitrate, "NITRATE"},
		{profile.FieldPH, "PH_IN_SITU_TOTAL"},
		{profile.FieldChlorophyll, "CHLA"},
	}

	for _, tt := range tests {
		name, ok := extract.ResolveVariable(ds, tt.field)
		assert.True(t, ok, string(tt.field))
		assert.Equal(t, tt.want, name, string(tt.field))
	}
}
