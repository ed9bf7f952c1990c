package extract_test

import (
	"testing"

	"github.com/oceandata/argodb/pkg/extract"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		ds   *fakeDataset
		want profile.FileType
	}{
		{
			"all three float variables",
			&fakeDataset{vars: []string{"PRES", "TEMP", "PSAL"}},
			profile.FileTypeArgoProfile,
		},
		{
			"two of three is enough",
			&fakeDataset{vars: []string{"PRES", "PSAL"}},
			profile.FileTypeArgoProfile,
		},
		{
			"one float variable is not enough",
			&fakeDataset{vars: []string{"PRES"}},
			profile.FileTypeGeneral,
		},
		{
			"ocean keyword in variable name",
			&fakeDataset{vars: []string{"ocean_depth"}},
			profile.FileTypeOceanographic,
		},
		{
			"ocean keyword in long_name",
			&fakeDataset{
				vars: []string{"VAR1"},
				varAttrs: map[string]map[string]any{
					"VAR1": {"long_name": "Sea_water potential density"},
				},
			},
			profile.FileTypeOceanographic,
		},
		{
			"nothing recognizable",
			&fakeDataset{vars: []string{"x", "y"}},
			profile.FileTypeGeneral,
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extract.Classify(tt.ds), tt.msg)
	}
}

func TestHasAnyArgoVariable(t *testing.T) {
	assert.True(t, extract.HasAnyArgoVariable(
		&fakeDataset{vars: []string{"TEMP"}}))
	assert.False(t, extract.HasAnyArgoVariable(
		&fakeDataset{vars: []string{"temp"}}))
}
