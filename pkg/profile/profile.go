// Package profile provides the domain model for ocean float observations.
// It replaces the loosely-typed records of upstream data producers with
// explicit structs, so default and fallback policies are checkable at
// compile time.
package profile

import "time"

// FileType classifies a NetCDF file by its variable content.
// The classification only drives validation strictness, it never changes
// how data is extracted.
type FileType string

const (
	// FileTypeArgoProfile is a profiling-float file: at least two of the
	// three required variables (pressure, temperature, salinity) present.
	FileTypeArgoProfile FileType = "argo_profile"

	// FileTypeOceanographic is a general ocean-domain file recognized by
	// keywords in variable names or attributes.
	FileTypeOceanographic FileType = "oceanographic"

	// FileTypeGeneral is any other readable NetCDF file.
	FileTypeGeneral FileType = "general"
)

// Field is a canonical measurement field name, independent of
// source-specific variable naming.
type Field string

const (
	FieldTemperature Field = "temperature"
	FieldPressure    Field = "pressure"
	FieldSalinity    Field = "salinity"
	FieldDepth       Field = "depth"
	FieldOxygen      Field = "oxygen"
	FieldNitrate     Field = "nitrate"
	FieldPH          Field = "ph"
	FieldChlorophyll Field = "chlorophyll"
	FieldLatitude    Field = "latitude"
	FieldLongitude   Field = "longitude"
	FieldTime        Field = "time"
)

// MeasurementFields lists the canonical fields stored per depth level, in
// storage column order.
func MeasurementFields() []Field {
	return []Field{
		FieldPressure, FieldDepth, FieldTemperature, FieldSalinity,
		FieldOxygen, FieldNitrate, FieldPH, FieldChlorophyll,
	}
}

// Source records how a metadata field was obtained. It keeps "resolved",
// "defaulted" and "failed" observable instead of collapsing them into a
// silent log line.
type Source int

const (
	// SourceDefault means the documented hard default was substituted.
	SourceDefault Source = iota

	// SourceVariable means the value came from a dataset variable.
	SourceVariable

	// SourceAttribute means the value came from a global file attribute.
	SourceAttribute
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceVariable:
		return "variable"
	case SourceAttribute:
		return "attribute"
	default:
		return "default"
	}
}

// Provenance maps metadata field names to the source each value came from.
// Fields absent from the map were never looked up.
type Provenance map[string]Source

// Resolved reports whether a field came from file content rather than a
// default.
func (p Provenance) Resolved(field string) bool {
	src, ok := p[field]
	return ok && src != SourceDefault
}

// Metadata is the profile-level identity of one ingested file.
// Extraction never fails: every field carries a documented default, and
// Sources records which fields actually resolved.
type Metadata struct {
	FileType     FileType       `json:"file_type"`
	FloatID      string         `json:"float_id"`
	CycleNumber  int            `json:"cycle_number"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	MeasuredAt   time.Time      `json:"measurement_date"`
	DataCenter   string         `json:"data_center"`
	FileHash     string         `json:"file_hash,omitempty"`
	FilePath     string         `json:"file_path,omitempty"`
	Dimensions   map[string]int `json:"dimensions"`
	Variables    []string       `json:"variables"`
	Sources      Provenance     `json:"-"`
}

// Measurement is one vertical level of a profile. Missing fields are nil.
type Measurement struct {
	Pressure    *float64 `json:"pressure"`
	Depth       *float64 `json:"depth"`
	Temperature *float64 `json:"temperature"`
	Salinity    *float64 `json:"salinity"`
	Oxygen      *float64 `json:"oxygen"`
	Nitrate     *float64 `json:"nitrate"`
	PH          *float64 `json:"ph"`
	Chlorophyll *float64 `json:"chlorophyll"`

	// QualityFlag rates the trustworthiness of the level, see QualityFlag
	// constants. New measurements default to QualityGood; no quality
	// information is read from source files.
	QualityFlag int `json:"quality_flag"`

	// Derived quantities, populated by the transform package.
	PotentialTemperature *float64 `json:"potential_temperature,omitempty"`
	Density              *float64 `json:"density,omitempty"`
}

// Value returns the measurement value for a canonical field.
func (m *Measurement) Value(f Field) *float64 {
	switch f {
	case FieldPressure:
		return m.Pressure
	case FieldDepth:
		return m.Depth
	case FieldTemperature:
		return m.Temperature
	case FieldSalinity:
		return m.Salinity
	case FieldOxygen:
		return m.Oxygen
	case FieldNitrate:
		return m.Nitrate
	case FieldPH:
		return m.PH
	case FieldChlorophyll:
		return m.Chlorophyll
	default:
		return nil
	}
}

// SetValue sets the measurement value for a canonical field.
func (m *Measurement) SetValue(f Field, v *float64) {
	switch f {
	case FieldPressure:
		m.Pressure = v
	case FieldDepth:
		m.Depth = v
	case FieldTemperature:
		m.Temperature = v
	case FieldSalinity:
		m.Salinity = v
	case FieldOxygen:
		m.Oxygen = v
	case FieldNitrate:
		m.Nitrate = v
	case FieldPH:
		m.PH = v
	case FieldChlorophyll:
		m.Chlorophyll = v
	}
}

// Float returns a pointer to v. Convenience for building records.
func Float(v float64) *float64 { return &v }
