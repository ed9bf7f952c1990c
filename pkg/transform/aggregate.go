package transform

import (
	"math"
	"sort"

	"github.com/oceandata/argodb/pkg/profile"
)

// StandardDepthLevels are the fixed depths (meters) used for time-series
// extraction.
var StandardDepthLevels = []float64{10, 50, 100, 200, 500, 1000}

// depthTolerance is the maximum distance between a standard level and the
// nearest actual measurement for it to count.
const depthTolerance = 50.0

// AggregateByRegion floor-bins profiles into a lat/lon grid of the given
// cell size, aggregating profile counts, unique floats, date span and
// mean coordinates per cell. Cells are returned ordered south-to-north,
// west-to-east.
func AggregateByRegion(
	profiles []profile.Metadata, gridSize float64,
) []profile.RegionCell {
	if len(profiles) == 0 || gridSize <= 0 {
		return nil
	}

	type key struct{ lat, lon float64 }
	type acc struct {
		count  int
		floats map[string]bool
		cell   profile.RegionCell
		sumLat float64
		sumLon float64
	}

	cells := make(map[key]*acc)
	for _, p := range profiles {
		k := key{
			lat: math.Floor(p.Latitude/gridSize) * gridSize,
			lon: math.Floor(p.Longitude/gridSize) * gridSize,
		}
		a, ok := cells[k]
		if !ok {
			a = &acc{
				floats: make(map[string]bool),
				cell: profile.RegionCell{
					LatGrid:      k.lat,
					LonGrid:      k.lon,
					EarliestDate: p.MeasuredAt,
					LatestDate:   p.MeasuredAt,
				},
			}
			cells[k] = a
		}
		a.count++
		a.floats[p.FloatID] = true
		a.sumLat += p.Latitude
		a.sumLon += p.Longitude
		if p.MeasuredAt.Before(a.cell.EarliestDate) {
			a.cell.EarliestDate = p.MeasuredAt
		}
		if p.MeasuredAt.After(a.cell.LatestDate) {
			a.cell.LatestDate = p.MeasuredAt
		}
	}

	res := make([]profile.RegionCell, 0, len(cells))
	for _, a := range cells {
		a.cell.ProfileCount = a.count
		a.cell.UniqueFloats = len(a.floats)
		a.cell.MeanLatitude = a.sumLat / float64(a.count)
		a.cell.MeanLongitude = a.sumLon / float64(a.count)
		res = append(res, a.cell)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].LatGrid != res[j].LatGrid {
			return res[i].LatGrid < res[j].LatGrid
		}
		return res[i].LonGrid < res[j].LonGrid
	})
	return res
}

// TimeSeries extracts a parameter at the given standard depth levels by
// nearest-neighbor matching within a 50 m tolerance. A nil depthLevels
// uses StandardDepthLevels.
func TimeSeries(
	ms []profile.Measurement,
	param profile.Field,
	depthLevels []float64,
) []profile.TimeSeriesPoint {
	if len(ms) == 0 {
		return nil
	}
	if depthLevels == nil {
		depthLevels = StandardDepthLevels
	}

	var res []profile.TimeSeriesPoint
	for _, level := range depthLevels {
		best := -1
		bestDiff := math.Inf(1)
		for i := range ms {
			if ms[i].Depth == nil {
				continue
			}
			diff := math.Abs(*ms[i].Depth - level)
			if diff < bestDiff {
				best, bestDiff = i, diff
			}
		}
		if best < 0 || bestDiff > depthTolerance {
			continue
		}
		v := ms[best].Value(param)
		if v == nil {
			continue
		}
		res = append(res, profile.TimeSeriesPoint{
			DepthLevel:  level,
			Value:       *v,
			ActualDepth: *ms[best].Depth,
		})
	}
	return res
}
