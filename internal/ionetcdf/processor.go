package ionetcdf

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/db"
	"github.com/oceandata/argodb/pkg/extract"
	"github.com/oceandata/argodb/pkg/lifecycle"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/oceandata/argodb/pkg/transform"
)

// ncProcessor implements the lifecycle.Processor interface over
// NetCDF files read with the pure-Go netcdf library.
type ncProcessor struct {
	cfg     *config.Config
	op      db.Operator
	meta    *extract.MetadataExtractor
	measure *extract.MeasurementExtractor
}

// NewProcessor creates a NetCDF ingestion processor. A nil operator
// disables persistence: files are parsed and summarized but nothing is
// stored.
func NewProcessor(cfg *config.Config, op db.Operator) lifecycle.Processor {
	return &ncProcessor{
		cfg:     cfg,
		op:      op,
		meta:    extract.NewMetadataExtractor(clockwork.NewRealClock()),
		measure: &extract.MeasurementExtractor{},
	}
}

// ValidateFile checks that path points to a readable NetCDF file with
// at least one variable. An unconventional extension is logged but not
// an error; the file content decides.
func (p *ncProcessor) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return FileNotFoundError(path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(config.SupportedExtensions, ext) {
		slog.Warn("Unconventional file extension", "path", path, "ext", ext)
	}

	ds, err := OpenDataset(path)
	if err != nil {
		return err
	}
	defer ds.Close()

	return validateDataset(path, p.cfg.Process.Mode, ds)
}

// validateDataset applies the mode rule to an opened dataset. Every
// mode needs at least one variable; argo mode additionally needs one of
// the profiling-float variables to resolve. Classification never
// rejects a file, it only labels it.
func validateDataset(path, mode string, ds extract.Dataset) error {
	if len(ds.Variables()) == 0 {
		return NoVariablesError(path)
	}

	if mode == config.ModeArgo && !extract.HasAnyArgoVariable(ds) {
		return MissingArgoVariablesError(path)
	}

	return nil
}

// ProcessFile ingests one NetCDF file: validate, classify, extract,
// transform and persist. A file whose content hash is already stored
// short-circuits without parsing.
func (p *ncProcessor) ProcessFile(
	ctx context.Context,
	path string,
) (lifecycle.ProcessResult, error) {
	res := lifecycle.ProcessResult{Path: path}

	if err := p.ValidateFile(path); err != nil {
		return res, err
	}

	hash, err := FileHash(path)
	if err != nil {
		return res, err
	}

	if p.op != nil {
		id, found, err := p.op.ProfileIDByHash(ctx, hash)
		if err != nil {
			return res, err
		}
		if found {
			slog.Info("Skipping already ingested file",
				"path", path, "profile_id", id)
			res.ProfileID = id
			res.Duplicate = true
			return res, nil
		}
	}

	ds, err := OpenDataset(path)
	if err != nil {
		return res, err
	}
	defer ds.Close()

	fileType := extract.Classify(ds)

	meta := p.meta.Extract(ds)
	meta.FileType = fileType
	meta.FileHash = hash
	meta.FilePath = path

	ms := p.measure.Extract(ds)
	ms = transform.Clean(ms)
	transform.BackfillDepth(ms)
	mld := transform.Derive(ms)
	flagAnomalies(path, ms)
	summary := transform.Summarize(meta, ms, mld)
	res.Summary = &summary

	if p.op != nil {
		id, err := p.op.InsertProfile(ctx, &meta)
		if err != nil {
			return res, err
		}
		res.ProfileID = id

		n, err := p.op.InsertMeasurements(ctx, id, ms)
		if err != nil {
			return res, err
		}
		res.Measurements = n
	}

	slog.Info("Processed file",
		"path", path,
		"file_type", string(fileType),
		"float_id", meta.FloatID,
		"measurements", len(ms),
	)

	return res, nil
}

// flagAnomalies logs statistical outliers per parameter. Anomalous
// levels are stored as-is; the log line is the only consequence.
func flagAnomalies(path string, ms []profile.Measurement) {
	for _, field := range []profile.Field{
		profile.FieldTemperature,
		profile.FieldSalinity,
	} {
		anomalies := transform.DetectAnomalies(ms, field)
		if len(anomalies) == 0 {
			continue
		}
		slog.Warn("Statistical outliers in profile",
			"path", path,
			"parameter", string(field),
			"count", len(anomalies),
		)
	}
}
