// Package extract turns a NetCDF dataset into profile metadata and
// per-level measurement records. It contains the variable resolver, the
// file classifier and the two extractors.
//
// The package is pure: it operates on the Dataset interface and performs
// no file I/O, so all matching and fallback logic is testable with an
// in-memory dataset. The NetCDF-backed implementation lives in
// internal/ionetcdf.
package extract

import (
	"math"
	"reflect"
)

// Dataset is an opened scientific data file: named multi-dimensional
// variables with attributes, plus global file-level attributes.
type Dataset interface {
	// Variables lists all variable names in file order.
	Variables() []string

	// HasVariable reports whether a variable exists (case-sensitive).
	HasVariable(name string) bool

	// Values returns the raw value of a variable: a scalar, a typed
	// slice, or nested slices for multi-dimensional variables.
	Values(name string) (any, error)

	// VarAttr returns one attribute of a variable.
	VarAttr(varName, attr string) (any, bool)

	// GlobalAttr returns one file-level attribute.
	GlobalAttr(name string) (any, bool)

	// GlobalAttrs returns all file-level attributes.
	GlobalAttrs() map[string]any

	// Dimensions maps dimension names to their sizes.
	Dimensions() map[string]int
}

// toFloat converts a numeric scalar of any width to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}

// scalarAt extracts a numeric scalar from a variable's raw value by
// rank-aware indexing: a 0-D value is constant across levels, a 1-D slice
// is indexed directly, and for 2-D and higher the first dimension is
// indexed and the first element of the remaining dimensions is taken.
//
// The multi-dimensional case assumes the vertical axis is the leading
// dimension. Files with a different dimension order will extract the
// wrong slice; this matches the behavior of the upstream producers this
// pipeline was built against.
func scalarAt(values any, i int) (float64, bool) {
	v := reflect.ValueOf(values)
	if !v.IsValid() {
		return 0, false
	}
	if v.Kind() != reflect.Slice {
		return toFloat(values)
	}
	if i >= v.Len() {
		return 0, false
	}
	elem := v.Index(i)
	for elem.Kind() == reflect.Slice {
		if elem.Len() == 0 {
			return 0, false
		}
		elem = elem.Index(0)
	}
	return toFloat(elem.Interface())
}

// firstScalar extracts the first numeric scalar of a variable.
func firstScalar(values any) (float64, bool) {
	return scalarAt(values, 0)
}

// firstString extracts a string from a variable's raw value: the value
// itself when scalar, otherwise the first element of the outermost
// dimension. NetCDF char arrays surface as strings here.
func firstString(values any) (string, bool) {
	v := reflect.ValueOf(values)
	if !v.IsValid() {
		return "", false
	}
	for v.Kind() == reflect.Slice && v.Type().Elem().Kind() != reflect.Uint8 {
		if v.Len() == 0 {
			return "", false
		}
		v = v.Index(0)
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Slice: // []byte
		return string(v.Bytes()), true
	}
	return "", false
}

// finite reports whether v is a usable number (not NaN or Inf).
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
