package iodb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oceandata/argodb/pkg/profile"
)

// measurementColumns is the CopyFrom column order for
// argo_measurements.
var measurementColumns = []string{
	"profile_id",
	"pressure",
	"depth",
	"temperature",
	"salinity",
	"oxygen",
	"nitrate",
	"ph",
	"chlorophyll",
	"potential_temperature",
	"density",
	"quality_flag",
}

// InsertProfile stores profile metadata. The file hash column is
// unique; on conflict the insert is a no-op and the id of the already
// stored profile is returned instead.
func (p *pgxOperator) InsertProfile(
	ctx context.Context,
	meta *profile.Metadata,
) (int64, error) {
	if p.pool == nil {
		return 0, NotConnectedError()
	}

	query := `
		INSERT INTO argo_profiles
			(float_id, cycle_number, latitude, longitude,
			 measurement_date, platform_number, data_center, file_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (file_hash) DO NOTHING
		RETURNING id
	`

	var id int64
	err := p.pool.QueryRow(ctx, query,
		meta.FloatID,
		meta.CycleNumber,
		meta.Latitude,
		meta.Longitude,
		meta.MeasuredAt,
		meta.FloatID,
		meta.DataCenter,
		meta.FileHash,
	).Scan(&id)

	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, InsertProfileError(meta.FloatID, err)
	}

	// Conflict path: another run already stored this file.
	id, found, err := p.ProfileIDByHash(ctx, meta.FileHash)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, InsertProfileError(
			meta.FloatID,
			errors.New("conflict on insert but hash not found"),
		)
	}
	return id, nil
}

// InsertMeasurements bulk-inserts measurement rows with pgx CopyFrom,
// chunked by the configured batch size.
func (p *pgxOperator) InsertMeasurements(
	ctx context.Context,
	profileID int64,
	ms []profile.Measurement,
) (int, error) {
	if p.pool == nil {
		return 0, NotConnectedError()
	}
	if len(ms) == 0 {
		return 0, nil
	}

	var total int
	for _, chunk := range measurementChunks(ms, p.batchSize) {
		rows := make([][]any, 0, len(chunk))
		for _, m := range chunk {
			rows = append(rows, measurementRow(profileID, m))
		}

		n, err := p.pool.CopyFrom(
			ctx,
			pgx.Identifier{"argo_measurements"},
			measurementColumns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return total, InsertMeasurementsError(profileID, err)
		}
		total += int(n)
	}

	return total, nil
}

// measurementChunks splits measurements into batches of at most size.
// A non-positive size yields a single batch.
func measurementChunks(
	ms []profile.Measurement,
	size int,
) [][]profile.Measurement {
	if size <= 0 {
		size = len(ms)
	}

	var chunks [][]profile.Measurement
	for start := 0; start < len(ms); start += size {
		end := min(start+size, len(ms))
		chunks = append(chunks, ms[start:end])
	}
	return chunks
}

// measurementRow builds one CopyFrom row in measurementColumns order.
func measurementRow(profileID int64, m profile.Measurement) []any {
	return []any{
		profileID,
		m.Pressure,
		m.Depth,
		m.Temperature,
		m.Salinity,
		m.Oxygen,
		m.Nitrate,
		m.PH,
		m.Chlorophyll,
		m.PotentialTemperature,
		m.Density,
		m.QualityFlag,
	}
}
