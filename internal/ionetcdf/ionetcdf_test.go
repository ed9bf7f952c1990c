package ionetcdf

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/oceandata/argodb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDataset implements extract.Dataset with a fixed variable list.
type stubDataset struct {
	vars []string
}

func (d *stubDataset) Variables() []string { return d.vars }
func (d *stubDataset) HasVariable(name string) bool {
	return slices.Contains(d.vars, name)
}
func (d *stubDataset) Values(string) (any, error)         { return nil, nil }
func (d *stubDataset) VarAttr(string, string) (any, bool) { return nil, false }
func (d *stubDataset) GlobalAttr(string) (any, bool)      { return nil, false }
func (d *stubDataset) GlobalAttrs() map[string]any        { return nil }
func (d *stubDataset) Dimensions() map[string]int         { return nil }

func TestFileHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "float.nc")
	content := []byte("not really netcdf, hashing does not care")
	require.NoError(t, os.WriteFile(path, content, 0644))

	sum := sha256.Sum256(content)
	want := hex.EncodeToString(sum[:])

	got, err := FileHash(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// same content, different name, same digest
	path2 := filepath.Join(dir, "copy.nc")
	require.NoError(t, os.WriteFile(path2, content, 0644))
	got2, err := FileHash(path2)
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}

func TestFileHashMissingFile(t *testing.T) {
	_, err := FileHash(filepath.Join(t.TempDir(), "no-such.nc"))
	assert.Error(t, err)
}

func TestListDataFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"b.nc", "a.NC", "c.netcdf", "d.nc4", "readme.txt", "data.csv",
	} {
		require.NoError(t,
			os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.nc"), 0755))

	paths, err := listDataFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	// sorted, extension match is case-insensitive, directories skipped
	assert.Equal(t, filepath.Join(dir, "a.NC"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.nc"), paths[1])
	assert.Equal(t, filepath.Join(dir, "c.netcdf"), paths[2])
	assert.Equal(t, filepath.Join(dir, "d.nc4"), paths[3])
}

func TestListDataFilesMissingDir(t *testing.T) {
	_, err := listDataFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestValueShape(t *testing.T) {
	tests := []struct {
		name   string
		values any
		shape  []int
	}{
		{"1d float64", []float64{1, 2, 3}, []int{3}},
		{"2d float64", [][]float64{{1, 2}, {3, 4}}, []int{2, 2}},
		{"1d string stays atomic", []string{"ab", "cd"}, []int{2}},
		{"empty slice", []float64{}, []int{0}},
		{"scalar", 3.14, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shape, valueShape(tt.values))
		})
	}
}

// TestValidateDataset verifies the mode rule: argo mode needs one
// profiling variable to resolve, every other mode passes any dataset
// with at least one variable. Classification never rejects a file.
func TestValidateDataset(t *testing.T) {
	tests := []struct {
		name string
		mode string
		vars []string
		ok   bool
	}{
		{"argo with a full profile", config.ModeArgo,
			[]string{"PRES", "TEMP", "PSAL"}, true},
		{"argo with a single required variable", config.ModeArgo,
			[]string{"TEMP"}, true},
		{"argo without profiling variables", config.ModeArgo,
			[]string{"ozone"}, false},
		{"auto passes a general file", config.ModeAuto,
			[]string{"ozone"}, true},
		{"flexible passes a general file", config.ModeFlexible,
			[]string{"ozone"}, true},
		{"no variables fails in every mode", config.ModeFlexible,
			nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &stubDataset{vars: tt.vars}
			err := validateDataset("float.nc", tt.mode, ds)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateFileRejectsNonNetCDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.nc")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	p := NewProcessor(config.New(), nil)
	assert.Error(t, p.ValidateFile(path))
	assert.Error(t, p.ValidateFile(filepath.Join(dir, "missing.nc")))
	assert.Error(t, p.ValidateFile(dir))
}
