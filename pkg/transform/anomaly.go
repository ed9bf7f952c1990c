package transform

import (
	"math"

	"github.com/oceandata/argodb/pkg/profile"
)

// Anomaly detection thresholds. Both tests run; either one flags a level.
const (
	// anomalyMinSamples is the sample-size floor below which no anomalies
	// are ever flagged -- small profiles give meaningless statistics.
	anomalyMinSamples = 10

	zScoreThreshold = 3.0
	iqrFence        = 1.5
)

// DetectAnomalies flags measurement levels whose parameter value is a
// statistical outlier: |z-score| > 3, or outside the 1.5×IQR fence around
// the first/third quartiles. Fewer than 10 non-missing values yield no
// anomalies. Indices refer to positions in ms.
func DetectAnomalies(
	ms []profile.Measurement, param profile.Field,
) []profile.Anomaly {
	vals := series(ms, param)
	if len(vals) < anomalyMinSamples {
		return nil
	}

	m := mean(vals)
	sd := stddev(vals)
	q1 := quantile(vals, 0.25)
	q3 := quantile(vals, 0.75)
	iqr := q3 - q1
	lower := q1 - iqrFence*iqr
	upper := q3 + iqrFence*iqr

	var res []profile.Anomaly
	for i := range ms {
		v := ms[i].Value(param)
		if v == nil {
			continue
		}
		z := zScore(*v, m, sd)
		if z > zScoreThreshold || *v < lower || *v > upper {
			res = append(res, profile.Anomaly{Index: i, ZScore: z})
		}
	}
	return res
}

// zScore is |v−mean|/std; a zero-spread series scores 0 for values at the
// mean and +Inf otherwise.
func zScore(v, mean, std float64) float64 {
	diff := math.Abs(v - mean)
	if diff == 0 {
		return 0
	}
	if std == 0 {
		return math.Inf(1)
	}
	return diff / std
}
