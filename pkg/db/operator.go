// Package db defines the storage contract for profiles and measurements.
// Implementations live in internal/iodb.
package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/profile"
)

// ProfileFilter narrows profile queries. Zero values mean "no filter".
type ProfileFilter struct {
	FloatID   string
	StartDate time.Time
	EndDate   time.Time
	MinLat    *float64
	MaxLat    *float64
	MinLon    *float64
	MaxLon    *float64
	Limit     int
	Offset    int
}

// ProfileRecord is one stored profile row.
type ProfileRecord struct {
	ID             int64
	FloatID        string
	CycleNumber    int
	Latitude       float64
	Longitude      float64
	MeasuredAt     time.Time
	PlatformNumber string
	DataCenter     string
	CreatedAt      time.Time
}

// DateRange spans the earliest and latest stored measurement dates.
type DateRange struct {
	Earliest *time.Time
	Latest   *time.Time
}

// GeographicCoverage is the bounding box of all stored profiles.
type GeographicCoverage struct {
	MinLatitude  *float64
	MaxLatitude  *float64
	MinLongitude *float64
	MaxLongitude *float64
}

// SummaryStatistics is the database-wide view used by dashboards.
type SummaryStatistics struct {
	TotalProfiles      int64
	TotalMeasurements  int64
	UniqueFloats       int64
	DateRange          DateRange
	GeographicCoverage GeographicCoverage
}

// Operator is the storage collaborator of the ingestion pipeline. It
// provides its own transactional boundary per profile insert; the
// pipeline issues at most one metadata insert and one batch measurement
// insert per profile.
type Operator interface {
	// Connect establishes a connection pool to PostgreSQL.
	Connect(ctx context.Context, cfg *config.DatabaseConfig) error

	// Close releases all database connections.
	Close() error

	// Pool returns the underlying pgxpool.Pool for advanced operations.
	Pool() *pgxpool.Pool

	// HasTables checks if the database has any tables in the public
	// schema.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error

	// InsertProfile stores profile metadata and returns the assigned
	// profile id. The content hash is unique: inserting a profile whose
	// hash was seen before returns the existing profile's id instead of
	// erroring.
	InsertProfile(ctx context.Context, meta *profile.Metadata) (int64, error)

	// InsertMeasurements bulk-inserts the per-depth rows of one profile.
	// Returns the number of rows written.
	InsertMeasurements(
		ctx context.Context, profileID int64, ms []profile.Measurement,
	) (int, error)

	// ProfileIDByHash looks up a profile by content hash.
	ProfileIDByHash(ctx context.Context, hash string) (int64, bool, error)

	// Profiles returns stored profiles matching the filter, newest first.
	Profiles(ctx context.Context, f ProfileFilter) ([]ProfileRecord, error)

	// MeasurementsByProfile returns one profile's measurements ordered by
	// depth.
	MeasurementsByProfile(
		ctx context.Context, profileID int64,
	) ([]profile.Measurement, error)

	// Stats returns database-wide summary statistics.
	Stats(ctx context.Context) (SummaryStatistics, error)
}
