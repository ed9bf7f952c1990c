package profile

import "time"

// Stats holds min/max/mean/std for one parameter within a profile.
// Std is the sample standard deviation.
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// DepthRange is the vertical extent of a profile in meters.
type DepthRange struct {
	MinDepth float64 `json:"min_depth"`
	MaxDepth float64 `json:"max_depth"`
}

// DataQuality summarizes quality flags over a profile.
type DataQuality struct {
	TotalMeasurements int     `json:"total_measurements"`
	GoodMeasurements  int     `json:"good_quality_measurements"`
	QualityPercentage float64 `json:"quality_percentage"`
}

// Summary is a computed view over one profile's cleaned measurements.
// It is recomputed on demand and never stored as a source of truth.
type Summary struct {
	Metadata

	Statistics      map[Field]Stats `json:"statistics"`
	DepthRange      *DepthRange     `json:"depth_range,omitempty"`
	Quality         DataQuality     `json:"data_quality"`
	MixedLayerDepth *float64        `json:"mixed_layer_depth,omitempty"`

	// SummaryText is a one-paragraph human-readable description assembled
	// from float identity, coordinates, date, depth range and parameter
	// ranges.
	SummaryText string `json:"summary_text"`
}

// VariableSummary describes one variable of a NetCDF file for inspection
// tooling.
type VariableSummary struct {
	Shape      []int          `json:"shape"`
	Dtype      string         `json:"dtype"`
	Attributes map[string]any `json:"attributes"`
}

// FileSummary is the inspection view of a NetCDF file:
// structure plus best-effort extracted metadata.
type FileSummary struct {
	FilePath         string                     `json:"file_path"`
	FileSize         int64                      `json:"file_size"`
	Dimensions       map[string]int             `json:"dimensions"`
	Variables        map[string]VariableSummary `json:"variables"`
	GlobalAttributes map[string]any             `json:"global_attributes"`
	Metadata         Metadata                   `json:"metadata"`
}

// RegionCell is one cell of a geographic grid aggregation over profiles.
type RegionCell struct {
	LatGrid       float64   `json:"lat_grid"`
	LonGrid       float64   `json:"lon_grid"`
	ProfileCount  int       `json:"profile_count"`
	UniqueFloats  int       `json:"unique_floats"`
	EarliestDate  time.Time `json:"earliest_date"`
	LatestDate    time.Time `json:"latest_date"`
	MeanLatitude  float64   `json:"mean_latitude"`
	MeanLongitude float64   `json:"mean_longitude"`
}

// TimeSeriesPoint is a nearest-neighbor parameter value at a standard
// depth level.
type TimeSeriesPoint struct {
	DepthLevel  float64 `json:"depth_level"`
	Value       float64 `json:"value"`
	ActualDepth float64 `json:"actual_depth"`
}

// Anomaly flags one measurement level as a statistical outlier.
type Anomaly struct {
	Index  int     `json:"index"`
	ZScore float64 `json:"z_score"`
}
