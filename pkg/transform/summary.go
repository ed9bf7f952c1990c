package transform

import (
	"fmt"
	"strings"

	"github.com/oceandata/argodb/pkg/profile"
)

// summaryParams are the parameters included in the textual description,
// with display units.
var summaryParams = []struct {
	field profile.Field
	unit  string
}{
	{profile.FieldTemperature, "°C"},
	{profile.FieldSalinity, "PSU"},
	{profile.FieldOxygen, "μmol/kg"},
}

// Summarize computes the statistical view over one profile's cleaned
// records: per-parameter statistics, depth range, quality fraction,
// mixed-layer depth and a human-readable description.
func Summarize(
	meta profile.Metadata,
	ms []profile.Measurement,
	mld *float64,
) profile.Summary {
	res := profile.Summary{
		Metadata:        meta,
		Statistics:      make(map[profile.Field]profile.Stats),
		MixedLayerDepth: mld,
	}

	if len(ms) == 0 {
		res.SummaryText = "Empty profile with no measurements"
		return res
	}

	for _, field := range profile.MeasurementFields() {
		vals := series(ms, field)
		if len(vals) == 0 {
			continue
		}
		res.Statistics[field] = profile.Stats{
			Min:  minOf(vals),
			Max:  maxOf(vals),
			Mean: mean(vals),
			Std:  stddev(vals),
		}
	}

	if depths := series(ms, profile.FieldDepth); len(depths) > 0 {
		res.DepthRange = &profile.DepthRange{
			MinDepth: minOf(depths),
			MaxDepth: maxOf(depths),
		}
	}

	good := 0
	for i := range ms {
		if profile.GoodQuality(ms[i].QualityFlag) {
			good++
		}
	}
	res.Quality = profile.DataQuality{
		TotalMeasurements: len(ms),
		GoodMeasurements:  good,
		QualityPercentage: float64(good) / float64(len(ms)) * 100,
	}

	res.SummaryText = summaryText(&res)
	return res
}

// summaryText assembles the one-paragraph description from float
// identity, coordinates, date, depth range and parameter ranges.
func summaryText(s *profile.Summary) string {
	parts := []string{
		fmt.Sprintf("ARGO float %s profile at %.2f°N, %.2f°E",
			s.FloatID, s.Latitude, s.Longitude),
	}

	if !s.MeasuredAt.IsZero() {
		parts = append(parts,
			fmt.Sprintf("measured on %s", s.MeasuredAt.Format("2006-01-02")))
	}

	if s.DepthRange != nil {
		parts = append(parts, fmt.Sprintf("depth range %.1fm to %.1fm",
			s.DepthRange.MinDepth, s.DepthRange.MaxDepth))
	}

	for _, p := range summaryParams {
		if st, ok := s.Statistics[p.field]; ok {
			parts = append(parts, fmt.Sprintf("%s %.2f%s to %.2f%s",
				string(p.field), st.Min, p.unit, st.Max, p.unit))
		}
	}

	return strings.Join(parts, ". ") + "."
}

func minOf(vals []float64) float64 {
	res := vals[0]
	for _, v := range vals[1:] {
		if v < res {
			res = v
		}
	}
	return res
}

func maxOf(vals []float64) float64 {
	res := vals[0]
	for _, v := range vals[1:] {
		if v > res {
			res = v
		}
	}
	return res
}
