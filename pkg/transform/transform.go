// Package transform cleans extracted measurement records and computes
// derived oceanographic quantities. All functions are pure and operate on
// in-memory records; persistence is the caller's concern.
package transform

import (
	"math"
	"sort"

	"github.com/oceandata/argodb/pkg/profile"
)

// Range is a physically-plausible closed interval for one parameter.
type Range struct {
	Min float64
	Max float64
}

// ParameterRanges are sanity thresholds per canonical field. Values
// outside the range are nulled and the record is flagged bad. These are
// documented thresholds, not a scientific quality-control procedure.
var ParameterRanges = map[profile.Field]Range{
	profile.FieldTemperature: {-5, 50},   // Celsius
	profile.FieldSalinity:    {0, 50},    // PSU
	profile.FieldPressure:    {0, 10000}, // dbar
	profile.FieldDepth:       {0, 10000}, // meters
	profile.FieldOxygen:      {0, 500},   // micromole/kg
	profile.FieldNitrate:     {0, 100},   // micromole/kg
	profile.FieldPH:          {6, 9},     // pH units
	profile.FieldChlorophyll: {0, 100},   // mg/m3
}

// cleanFields are the fields whose joint absence makes a record empty.
// Depth alone does not keep a record alive.
var cleanFields = []profile.Field{
	profile.FieldTemperature, profile.FieldSalinity, profile.FieldPressure,
	profile.FieldOxygen, profile.FieldNitrate, profile.FieldPH,
	profile.FieldChlorophyll,
}

// Clean produces the cleaned copy of raw measurement records:
//
//  1. records with no measurement values at all are discarded
//  2. out-of-range values are nulled and the record flagged bad (4)
//  3. duplicate depths are removed, first occurrence wins
//  4. records are sorted ascending by depth, or by pressure when depth is
//     wholly absent
func Clean(ms []profile.Measurement) []profile.Measurement {
	res := make([]profile.Measurement, 0, len(ms))
	for _, m := range ms {
		if allMissing(&m) {
			continue
		}
		clipRanges(&m)
		res = append(res, m)
	}

	res = dedupeDepths(res)

	if hasDepth(res) {
		sortByField(res, profile.FieldDepth)
	} else {
		sortByField(res, profile.FieldPressure)
	}

	return res
}

// BackfillDepth fills missing depth values from pressure. For profiling
// floats pressure in dbar approximates depth in meters. Idempotent.
func BackfillDepth(ms []profile.Measurement) {
	for i := range ms {
		if ms[i].Depth == nil && ms[i].Pressure != nil {
			ms[i].Depth = profile.Float(*ms[i].Pressure)
		}
	}
}

func allMissing(m *profile.Measurement) bool {
	for _, f := range cleanFields {
		if m.Value(f) != nil {
			return false
		}
	}
	return true
}

func clipRanges(m *profile.Measurement) {
	for field, r := range ParameterRanges {
		v := m.Value(field)
		if v == nil {
			continue
		}
		if *v < r.Min || *v > r.Max {
			m.SetValue(field, nil)
			m.QualityFlag = profile.QualityBad
		}
	}
}

// dedupeDepths keeps the first record per depth in original order.
// Records without depth form one group of their own.
func dedupeDepths(ms []profile.Measurement) []profile.Measurement {
	if !hasDepth(ms) {
		return ms
	}
	seen := make(map[float64]bool, len(ms))
	seenNil := false
	res := ms[:0]
	for _, m := range ms {
		if m.Depth == nil {
			if seenNil {
				continue
			}
			seenNil = true
		} else {
			if seen[*m.Depth] {
				continue
			}
			seen[*m.Depth] = true
		}
		res = append(res, m)
	}
	return res
}

func hasDepth(ms []profile.Measurement) bool {
	for i := range ms {
		if ms[i].Depth != nil {
			return true
		}
	}
	return false
}

// sortByField sorts records ascending by a field, missing values last.
// The sort is stable so ties keep their original order.
func sortByField(ms []profile.Measurement, field profile.Field) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i].Value(field), ms[j].Value(field)
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// mean of a series; NaN for an empty one.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the sample standard deviation (n-1 denominator); zero when
// fewer than two values.
func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

// quantile computes the p-quantile with linear interpolation between
// order statistics. vals must be non-empty; the input is not modified.
func quantile(vals []float64, p float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// series collects the non-missing values of a field.
func series(ms []profile.Measurement, field profile.Field) []float64 {
	var vals []float64
	for i := range ms {
		if v := ms[i].Value(field); v != nil {
			vals = append(vals, *v)
		}
	}
	return vals
}
