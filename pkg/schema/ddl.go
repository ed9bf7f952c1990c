package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// ArgoProfile DDL methods
func (p ArgoProfile) TableDDL() string {
	return generateDDL(p, "argo_profiles")
}

func (p ArgoProfile) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_argo_profiles_float_id ON argo_profiles(float_id);",
		"CREATE INDEX IF NOT EXISTS idx_argo_profiles_date ON argo_profiles(measurement_date);",
		"CREATE INDEX IF NOT EXISTS idx_argo_profiles_location ON argo_profiles(latitude, longitude);",
	}
}

func (p ArgoProfile) TableName() string {
	return "argo_profiles"
}

// ArgoMeasurement DDL methods
func (m ArgoMeasurement) TableDDL() string {
	return generateDDL(m, "argo_measurements")
}

func (m ArgoMeasurement) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_argo_measurements_profile_id ON argo_measurements(profile_id);",
		"CREATE INDEX IF NOT EXISTS idx_argo_measurements_depth ON argo_measurements(depth);",
	}
}

func (m ArgoMeasurement) TableName() string {
	return "argo_measurements"
}

// AllDDL returns ordered CREATE TABLE statements for every model.
func AllDDL() []string {
	return []string{
		ArgoProfile{}.TableDDL(),
		ArgoMeasurement{}.TableDDL(),
	}
}

// AllIndexDDL returns every CREATE INDEX statement.
func AllIndexDDL() []string {
	var res []string
	res = append(res, ArgoProfile{}.IndexDDL()...)
	res = append(res, ArgoMeasurement{}.IndexDDL()...)
	return res
}
