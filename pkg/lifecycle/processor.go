package lifecycle

import (
	"context"

	"github.com/oceandata/argodb/pkg/profile"
)

// ProcessResult reports the outcome of ingesting one NetCDF file.
type ProcessResult struct {
	// Path is the source file path.
	Path string

	// ProfileID is the database id of the stored profile, 0 when the
	// file was skipped or storage is disabled.
	ProfileID int64

	// Duplicate is true when a profile with the same content hash was
	// already stored. No new rows are written in that case.
	Duplicate bool

	// Measurements is the number of measurement rows stored.
	Measurements int

	// Summary is the in-memory view of the ingested profile.
	Summary *profile.Summary
}

// BatchResult aggregates ProcessResults of one directory run.
type BatchResult struct {
	// RunID identifies the batch run in logs.
	RunID string

	// Results holds per-file outcomes in completion order.
	Results []ProcessResult

	// Failed maps file paths to the error that stopped them. A failing
	// file never aborts the batch.
	Failed map[string]error
}

// Processor defines the interface for the NetCDF ingestion pipeline:
// validate, classify, extract, transform and persist oceanographic
// profiles.
type Processor interface {
	// ValidateFile checks that path points to a readable NetCDF file
	// with at least one variable.
	ValidateFile(path string) error

	// ProcessFile ingests a single NetCDF file end to end and returns
	// the outcome.
	ProcessFile(ctx context.Context, path string) (ProcessResult, error)

	// ProcessBatch ingests every supported file in a directory.
	// Individual file failures are collected, not fatal.
	ProcessBatch(ctx context.Context, dir string) (BatchResult, error)

	// FileSummary inspects a NetCDF file without persisting anything.
	FileSummary(path string) (profile.FileSummary, error)
}
