package schema_test

import (
	"strings"
	"testing"

	"github.com/oceandata/argodb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDDLGeneratorContract(t *testing.T) {
	var _ schema.DDLGenerator = schema.ArgoProfile{}
	var _ schema.DDLGenerator = schema.ArgoMeasurement{}
}

func TestProfileTableDDL(t *testing.T) {
	ddl := schema.ArgoProfile{}.TableDDL()

	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE argo_profiles ("))
	assert.Contains(t, ddl, "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, ddl, "float_id VARCHAR(50)")
	assert.Contains(t, ddl, "cycle_number INT")
	assert.Contains(t, ddl, "latitude DOUBLE PRECISION")
	assert.Contains(t, ddl, "measurement_date TIMESTAMP")
	assert.Contains(t, ddl, "file_hash VARCHAR(64) UNIQUE")
	assert.Contains(t, ddl, "created_at TIMESTAMP DEFAULT NOW()")
	assert.True(t, strings.HasSuffix(ddl, ");"))
}

func TestMeasurementTableDDL(t *testing.T) {
	ddl := schema.ArgoMeasurement{}.TableDDL()

	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE argo_measurements ("))
	assert.Contains(t, ddl,
		"profile_id BIGINT REFERENCES argo_profiles(id) ON DELETE CASCADE")
	assert.Contains(t, ddl, "quality_flag INT DEFAULT 1")

	// the gorm-only association field must not leak into DDL
	assert.NotContains(t, ddl, "Profile ")

	for _, col := range []string{
		"pressure", "depth", "temperature", "salinity", "oxygen",
		"nitrate", "ph", "chlorophyll", "potential_temperature", "density",
	} {
		assert.Contains(t, ddl, col+" DOUBLE PRECISION", col)
	}
}

func TestIndexDDL(t *testing.T) {
	idx := schema.AllIndexDDL()
	require.Len(t, idx, 5)

	for _, stmt := range idx {
		assert.True(t,
			strings.HasPrefix(stmt, "CREATE INDEX IF NOT EXISTS idx_"), stmt)
	}
}

func TestAllDDLOrder(t *testing.T) {
	ddl := schema.AllDDL()
	require.Len(t, ddl, 2)

	// profiles must come first so the measurement FK resolves
	assert.Contains(t, ddl[0], "argo_profiles")
	assert.Contains(t, ddl[1], "argo_measurements")
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "argo_profiles", schema.ArgoProfile{}.TableName())
	assert.Equal(t, "argo_measurements", schema.ArgoMeasurement{}.TableName())
}

func TestAllModels(t *testing.T) {
	require.Len(t, schema.AllModels(), 2)
}
