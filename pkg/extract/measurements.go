package extract

import (
	"log/slog"

	"github.com/oceandata/argodb/pkg/profile"
)

// verticalDims are conventional vertical-dimension names, tried in order.
// When none is present the dataset's largest dimension becomes the
// vertical axis.
var verticalDims = []string{"N_LEVELS", "n_levels", "depth", "time", "level", "z"}

// fillValueAttrs are the attribute names producers use to mark missing
// values inside variable data.
var fillValueAttrs = []string{"_FillValue", "missing_value"}

// MeasurementExtractor walks the vertical dimension of a dataset and
// builds one Measurement per depth level.
//
// Validate, when set, is called for every record; a non-nil error drops
// that record with a log line but never aborts the profile.
type MeasurementExtractor struct {
	Validate func(*profile.Measurement) error
}

// Extract returns the ordered measurement records of a dataset. A missing
// or empty vertical dimension yields an empty slice, not an error.
// A field that fails to extract at one level is nil at that level only.
func (e *MeasurementExtractor) Extract(ds Dataset) []profile.Measurement {
	dim, levels := verticalDimension(ds)
	if levels == 0 {
		return nil
	}

	// Resolve each canonical field once per profile, not per level.
	type column struct {
		field  profile.Field
		values any
		fill   *float64
	}
	var columns []column
	for _, field := range profile.MeasurementFields() {
		name, ok := ResolveVariable(ds, field)
		if !ok {
			continue
		}
		values, err := ds.Values(name)
		if err != nil {
			slog.Warn("Could not read variable",
				"variable", name, "field", string(field), "error", err)
			continue
		}
		columns = append(columns, column{
			field:  field,
			values: values,
			fill:   fillValue(ds, name),
		})
	}

	measurements := make([]profile.Measurement, 0, levels)
	dropped := 0
	for i := 0; i < levels; i++ {
		var m profile.Measurement
		for _, col := range columns {
			if v, ok := scalarAt(col.values, i); ok && usable(v, col.fill) {
				m.SetValue(col.field, profile.Float(v))
			}
		}

		// Depth is backfilled from pressure when the file has no depth
		// variable; for float data the two are numerically close.
		if m.Depth == nil && m.Pressure != nil {
			m.Depth = profile.Float(*m.Pressure)
		}

		m.QualityFlag = profile.QualityGood

		if e.Validate != nil {
			if err := e.Validate(&m); err != nil {
				slog.Warn("Measurement rejected by validation",
					"level", i, "error", err)
				dropped++
				continue
			}
		}
		measurements = append(measurements, m)
	}

	slog.Info("Extracted measurements",
		"dimension", dim, "levels", levels,
		"records", len(measurements), "dropped", dropped)
	return measurements
}

// verticalDimension picks the dataset axis indexing depth levels.
func verticalDimension(ds Dataset) (string, int) {
	dims := ds.Dimensions()

	for _, name := range verticalDims {
		if size, ok := dims[name]; ok {
			return name, size
		}
	}

	var best string
	var bestSize int
	for name, size := range dims {
		if size > bestSize || (size == bestSize && name < best) {
			best, bestSize = name, size
		}
	}
	return best, bestSize
}

// fillValue returns the declared missing-value marker of a variable.
func fillValue(ds Dataset, varName string) *float64 {
	for _, attr := range fillValueAttrs {
		if v, ok := ds.VarAttr(varName, attr); ok {
			if f, ok := attrFloat(v); ok {
				return &f
			}
		}
	}
	return nil
}

// usable reports whether an extracted value is real data: finite and not
// the variable's declared fill value.
func usable(v float64, fill *float64) bool {
	if !finite(v) {
		return false
	}
	if fill != nil && v == *fill {
		return false
	}
	return true
}
