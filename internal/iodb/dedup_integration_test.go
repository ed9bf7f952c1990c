package iodb_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oceandata/argodb/internal/iodb"
	"github.com/oceandata/argodb/internal/ioschema"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: This is an integration test that requires PostgreSQL.
//
// Configuration comes from environment variables over built-in
// defaults (postgres/postgres@localhost:5432):
//
//	export ARGODB_DATABASE_HOST=your_host
//	export ARGODB_DATABASE_USER=your_user
//	export ARGODB_DATABASE_PASSWORD=your_password
//
// The database name is always forced to "argo_test" so the test never
// runs against a production database.
//
// Skip with: go test -short

// testConfig returns a configuration for integration tests with the
// database name forced to argo_test.
func testConfig() *config.Config {
	cfg := config.New()
	cfg.Database.Database = "argo_test"
	if v := os.Getenv("ARGODB_DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("ARGODB_DATABASE_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("ARGODB_DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	return cfg
}

func fptr(v float64) *float64 { return &v }

// TestInsertProfile_Deduplication verifies the content-hash contract
// end-to-end: inserting the same hash twice stores one row and returns
// the same id both times, and ProfileIDByHash finds it.
func TestInsertProfile_Deduplication(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := testConfig()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Should connect to database")
	defer op.Close()

	// Start from an empty schema.
	_ = op.DropAllTables(ctx)
	sm := ioschema.NewManager(op)
	err = sm.Create(ctx, cfg)
	require.NoError(t, err, "Schema creation should succeed")

	hash := strings.Repeat("ab", 32)
	meta := &profile.Metadata{
		FloatID:     "5904321",
		CycleNumber: 12,
		Latitude:    -33.5,
		Longitude:   18.2,
		MeasuredAt:  time.Date(2023, 4, 1, 6, 0, 0, 0, time.UTC),
		DataCenter:  "IF",
		FileHash:    hash,
	}

	id1, err := op.InsertProfile(ctx, meta)
	require.NoError(t, err, "First insert should succeed")
	assert.Greater(t, id1, int64(0), "Should assign a profile id")

	// Same content hash: no new row, the existing id comes back.
	id2, err := op.InsertProfile(ctx, meta)
	require.NoError(t, err, "Insert of a duplicate hash should not error")
	assert.Equal(t, id1, id2,
		"Duplicate hash should return the already stored profile id")

	id3, found, err := op.ProfileIDByHash(ctx, hash)
	require.NoError(t, err)
	assert.True(t, found, "Stored hash should be found")
	assert.Equal(t, id1, id3, "Lookup should return the stored id")

	_, found, err = op.ProfileIDByHash(ctx, strings.Repeat("cd", 32))
	require.NoError(t, err)
	assert.False(t, found, "Unknown hash should not be found")

	stats, err := op.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProfiles,
		"Duplicate insert should not create a second profile")
}

// TestInsertMeasurements_RoundTrip verifies bulk insert and the
// depth-ordered read-back of one profile's measurements.
func TestInsertMeasurements_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := testConfig()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Should connect to database")
	defer op.Close()

	_ = op.DropAllTables(ctx)
	sm := ioschema.NewManager(op)
	err = sm.Create(ctx, cfg)
	require.NoError(t, err, "Schema creation should succeed")

	meta := &profile.Metadata{
		FloatID:    "5904322",
		Latitude:   -12.0,
		Longitude:  45.0,
		MeasuredAt: time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC),
		FileHash:   strings.Repeat("ef", 32),
	}
	id, err := op.InsertProfile(ctx, meta)
	require.NoError(t, err)

	ms := []profile.Measurement{
		{
			Depth:       fptr(20),
			Temperature: fptr(14.8),
			Salinity:    fptr(35.1),
			QualityFlag: profile.QualityGood,
		},
		{
			Depth:       fptr(10),
			Temperature: fptr(15.2),
			QualityFlag: profile.QualityGood,
		},
	}

	n, err := op.InsertMeasurements(ctx, id, ms)
	require.NoError(t, err, "Bulk insert should succeed")
	assert.Equal(t, 2, n, "Should report both rows written")

	got, err := op.MeasurementsByProfile(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Read-back is ordered by depth, shallow first.
	assert.Equal(t, 10.0, *got[0].Depth)
	assert.Equal(t, 20.0, *got[1].Depth)
	assert.Equal(t, 15.2, *got[0].Temperature)
	assert.Nil(t, got[1].Oxygen, "Unmeasured field should stay nil")
}
