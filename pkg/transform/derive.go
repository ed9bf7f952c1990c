package transform

import (
	"math"

	"github.com/oceandata/argodb/pkg/profile"
)

// Constants of the derived-quantity approximations. These are deliberate
// first-order simplifications, not the seawater equation of state.
const (
	// potTempCoeff is the adiabatic correction per 1000 dbar.
	potTempCoeff = 0.1

	// Linear density model coefficients around 1000 kg/m3.
	densityBase      = 1000.0
	densitySalCoeff  = 0.8
	densityTempCoeff = 0.2

	// mldSurfaceDepth bounds the near-surface reference layer in meters.
	mldSurfaceDepth = 10.0

	// mldThreshold is the temperature departure defining the mixed layer.
	mldThreshold = 0.2
)

// Derive computes derived quantities on cleaned records, in place:
// potential temperature and density per level, and the profile's
// mixed-layer depth, which is returned (nil when no finite near-surface
// temperature reference exists).
//
// Records are expected to be sorted ascending by depth (see Clean), so
// the first departure from the surface temperature is the shallowest.
func Derive(ms []profile.Measurement) *float64 {
	for i := range ms {
		m := &ms[i]
		if m.Temperature != nil && m.Pressure != nil {
			pt := *m.Temperature - potTempCoeff*(*m.Pressure/1000)
			m.PotentialTemperature = profile.Float(pt)
		}
		if m.Temperature != nil && m.Salinity != nil {
			d := densityBase + densitySalCoeff*(*m.Salinity) -
				densityTempCoeff*(*m.Temperature)
			m.Density = profile.Float(d)
		}
	}

	return mixedLayerDepth(ms)
}

// mixedLayerDepth is the shallowest depth where temperature departs from
// the near-surface (≤10 m) mean temperature by more than 0.2°C.
func mixedLayerDepth(ms []profile.Measurement) *float64 {
	var surface []float64
	for i := range ms {
		m := &ms[i]
		if m.Depth != nil && *m.Depth <= mldSurfaceDepth && m.Temperature != nil {
			surface = append(surface, *m.Temperature)
		}
	}
	surfaceTemp := mean(surface)
	if math.IsNaN(surfaceTemp) {
		return nil
	}

	for i := range ms {
		m := &ms[i]
		if m.Temperature == nil || m.Depth == nil {
			continue
		}
		if math.Abs(*m.Temperature-surfaceTemp) > mldThreshold {
			return profile.Float(*m.Depth)
		}
	}
	return nil
}
