package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oceandata/argodb/pkg/profile"
)

// Candidate raw names tried for direct metadata fields. These are not
// alias-resolved: metadata producers use them verbatim.
var (
	platformVars = []string{
		"PLATFORM_NUMBER", "platform_number", "station", "STATION", "id", "ID",
	}
	platformAttrs = []string{"platform_number", "station_id", "id"}

	cycleVars = []string{"CYCLE_NUMBER", "cycle_number", "profile", "PROFILE"}

	latitudeAttrs  = []string{"latitude", "geospatial_lat_min", "lat"}
	longitudeAttrs = []string{"longitude", "geospatial_lon_min", "lon"}

	dataCenterVars  = []string{"DATA_CENTRE", "DATA_CENTER", "data_center", "source", "SOURCE"}
	dataCenterAttrs = []string{"data_center", "source", "institution"}
)

// sinceDateRe pulls the base date out of a time unit string such as
// "seconds since 1970-01-01 00:00:00".
var sinceDateRe = regexp.MustCompile(`since\s+(\d{4}-\d{2}-\d{2})`)

// argoEpoch is the profiling-float time reference ("days since 1950-01-01").
var argoEpoch = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)

// MetadataExtractor builds a ProfileMetadata from a dataset. It never
// fails: each field falls through variables, then global attributes, then
// a documented default, and the chosen tier is recorded in
// Metadata.Sources.
type MetadataExtractor struct {
	clock clockwork.Clock
}

// NewMetadataExtractor creates a metadata extractor. The clock supplies
// the wall-clock default for unresolvable timestamps.
func NewMetadataExtractor(clock clockwork.Clock) *MetadataExtractor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MetadataExtractor{clock: clock}
}

// Extract produces a fully-populated Metadata for the dataset.
func (e *MetadataExtractor) Extract(ds Dataset) profile.Metadata {
	meta := profile.Metadata{
		FileType: Classify(ds),
		Sources:  profile.Provenance{},
	}

	meta.FloatID = e.extractString(
		ds, "float_id", platformVars, platformAttrs, "unknown", &meta.Sources,
	)
	meta.CycleNumber = e.extractCycle(ds, &meta.Sources)
	meta.Latitude = e.extractCoordinate(
		ds, "latitude", profile.FieldLatitude, latitudeAttrs, &meta.Sources,
	)
	meta.Longitude = e.extractCoordinate(
		ds, "longitude", profile.FieldLongitude, longitudeAttrs, &meta.Sources,
	)
	meta.MeasuredAt = e.extractTime(ds, &meta.Sources)
	meta.DataCenter = e.extractString(
		ds, "data_center", dataCenterVars, dataCenterAttrs, "unknown", &meta.Sources,
	)

	meta.Dimensions = ds.Dimensions()
	meta.Variables = ds.Variables()

	return meta
}

// extractString resolves a string field: candidate variables first, then
// global attributes, then the default.
func (e *MetadataExtractor) extractString(
	ds Dataset,
	field string,
	vars, attrs []string,
	def string,
	prov *profile.Provenance,
) string {
	for _, name := range vars {
		if !ds.HasVariable(name) {
			continue
		}
		values, err := ds.Values(name)
		if err != nil {
			continue
		}
		if s, ok := firstString(values); ok && strings.TrimSpace(s) != "" {
			(*prov)[field] = profile.SourceVariable
			return strings.TrimSpace(s)
		}
		if f, ok := firstScalar(values); ok && finite(f) {
			(*prov)[field] = profile.SourceVariable
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	for _, name := range attrs {
		if v, ok := ds.GlobalAttr(name); ok {
			if s := attrString(v); s != "" {
				(*prov)[field] = profile.SourceAttribute
				return s
			}
		}
	}

	slog.Warn("Metadata field not found, using default",
		"field", field, "default", def)
	(*prov)[field] = profile.SourceDefault
	return def
}

func (e *MetadataExtractor) extractCycle(
	ds Dataset, prov *profile.Provenance,
) int {
	for _, name := range cycleVars {
		if !ds.HasVariable(name) {
			continue
		}
		values, err := ds.Values(name)
		if err != nil {
			continue
		}
		if f, ok := firstScalar(values); ok && finite(f) {
			(*prov)["cycle_number"] = profile.SourceVariable
			return int(f)
		}
	}
	(*prov)["cycle_number"] = profile.SourceDefault
	return 0
}

// extractCoordinate resolves latitude or longitude. NaN values from the
// resolved variable count as absent and fall through to attributes.
// Unresolvable coordinates default to 0.0; consumers can tell real
// equator points apart through Sources.
func (e *MetadataExtractor) extractCoordinate(
	ds Dataset,
	field string,
	canonical profile.Field,
	attrs []string,
	prov *profile.Provenance,
) float64 {
	if name, ok := ResolveVariable(ds, canonical); ok {
		if values, err := ds.Values(name); err == nil {
			if f, ok := firstScalar(values); ok && finite(f) {
				(*prov)[field] = profile.SourceVariable
				return f
			}
		}
	}

	for _, name := range attrs {
		if v, ok := ds.GlobalAttr(name); ok {
			if f, ok := attrFloat(v); ok && finite(f) {
				(*prov)[field] = profile.SourceAttribute
				return f
			}
		}
	}

	slog.Warn("Coordinate not found, using default value 0.0", "field", field)
	(*prov)[field] = profile.SourceDefault
	return 0.0
}

func (e *MetadataExtractor) extractTime(
	ds Dataset, prov *profile.Provenance,
) time.Time {
	name, ok := ResolveVariable(ds, profile.FieldTime)
	if !ok {
		(*prov)["measurement_date"] = profile.SourceDefault
		return e.clock.Now()
	}

	values, err := ds.Values(name)
	if err != nil {
		(*prov)["measurement_date"] = profile.SourceDefault
		return e.clock.Now()
	}

	raw, okNum := firstScalar(values)
	if okNum && finite(raw) {
		units, _ := ds.VarAttr(name, "units")
		unitStr, _ := units.(string)
		if ts, ok := convertTime(unitStr, raw); ok {
			(*prov)["measurement_date"] = profile.SourceVariable
			return ts
		}
	}

	// Non-numeric time axis: best-effort parse of a string value.
	if s, ok := firstString(values); ok {
		if ts, ok := parseTimestamp(s); ok {
			(*prov)["measurement_date"] = profile.SourceVariable
			return ts
		}
	}

	slog.Warn("Could not convert time value, using current time", "variable", name)
	(*prov)["measurement_date"] = profile.SourceDefault
	return e.clock.Now()
}

// convertTime converts a raw numeric time value to an absolute timestamp
// using the variable's declared unit string. Recognized patterns are the
// profiling-float epoch convention "days since 1950-01-01", plus
// "seconds since <date>" and "hours since <date>".
func convertTime(units string, value float64) (time.Time, bool) {
	low := strings.ToLower(units)

	switch {
	case strings.Contains(low, "days since 1950"):
		return argoEpoch.Add(durationFrom(value, 24*time.Hour)), true
	case strings.Contains(low, "seconds since"):
		if base, ok := sinceDate(units); ok {
			return base.Add(durationFrom(value, time.Second)), true
		}
	case strings.Contains(low, "hours since"):
		if base, ok := sinceDate(units); ok {
			return base.Add(durationFrom(value, time.Hour)), true
		}
	}

	return time.Time{}, false
}

func sinceDate(units string) (time.Time, bool) {
	m := sinceDateRe.FindStringSubmatch(units)
	if len(m) != 2 {
		return time.Time{}, false
	}
	base, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return base.UTC(), true
}

func durationFrom(value float64, unit time.Duration) time.Duration {
	return time.Duration(value * float64(unit))
}

// parseTimestamp is the generic fallback for unit-less time values.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func attrString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	default:
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return ""
}

func attrFloat(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	// Attributes sometimes arrive as single-element slices.
	return firstScalar(v)
}
