package iodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/oceandata/argodb/pkg/db"
	"github.com/oceandata/argodb/pkg/profile"
)

// ProfileIDByHash looks up a profile by its content hash.
func (p *pgxOperator) ProfileIDByHash(
	ctx context.Context,
	hash string,
) (int64, bool, error) {
	if p.pool == nil {
		return 0, false, NotConnectedError()
	}

	query := `SELECT id FROM argo_profiles WHERE file_hash = $1`

	var id int64
	err := p.pool.QueryRow(ctx, query, hash).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, QueryError("profile by hash", err)
	}
	return id, true, nil
}

// Profiles returns stored profiles matching the filter, newest first.
func (p *pgxOperator) Profiles(
	ctx context.Context,
	f db.ProfileFilter,
) ([]db.ProfileRecord, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	var where []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.FloatID != "" {
		add("float_id = $%d", f.FloatID)
	}
	if !f.StartDate.IsZero() {
		add("measurement_date >= $%d", f.StartDate)
	}
	if !f.EndDate.IsZero() {
		add("measurement_date <= $%d", f.EndDate)
	}
	if f.MinLat != nil {
		add("latitude >= $%d", *f.MinLat)
	}
	if f.MaxLat != nil {
		add("latitude <= $%d", *f.MaxLat)
	}
	if f.MinLon != nil {
		add("longitude >= $%d", *f.MinLon)
	}
	if f.MaxLon != nil {
		add("longitude <= $%d", *f.MaxLon)
	}

	query := `
		SELECT id, float_id, cycle_number, latitude, longitude,
		       measurement_date, platform_number, data_center, created_at
		FROM argo_profiles
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY measurement_date DESC, id DESC"

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, QueryError("profiles", err)
	}
	defer rows.Close()

	var res []db.ProfileRecord
	for rows.Next() {
		var rec db.ProfileRecord
		err = rows.Scan(
			&rec.ID, &rec.FloatID, &rec.CycleNumber,
			&rec.Latitude, &rec.Longitude, &rec.MeasuredAt,
			&rec.PlatformNumber, &rec.DataCenter, &rec.CreatedAt,
		)
		if err != nil {
			return nil, QueryError("scan profile", err)
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("read profiles", err)
	}

	return res, nil
}

// MeasurementsByProfile returns one profile's measurements ordered by
// depth, NULL depths last.
func (p *pgxOperator) MeasurementsByProfile(
	ctx context.Context,
	profileID int64,
) ([]profile.Measurement, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT pressure, depth, temperature, salinity, oxygen,
		       nitrate, ph, chlorophyll, potential_temperature,
		       density, quality_flag
		FROM argo_measurements
		WHERE profile_id = $1
		ORDER BY depth ASC NULLS LAST, id ASC
	`

	rows, err := p.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, QueryError("measurements", err)
	}
	defer rows.Close()

	var res []profile.Measurement
	for rows.Next() {
		var m profile.Measurement
		err = rows.Scan(
			&m.Pressure, &m.Depth, &m.Temperature, &m.Salinity,
			&m.Oxygen, &m.Nitrate, &m.PH, &m.Chlorophyll,
			&m.PotentialTemperature, &m.Density, &m.QualityFlag,
		)
		if err != nil {
			return nil, QueryError("scan measurement", err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("read measurements", err)
	}

	return res, nil
}

// Stats returns database-wide summary statistics in a single round of
// aggregate queries.
func (p *pgxOperator) Stats(
	ctx context.Context,
) (db.SummaryStatistics, error) {
	var res db.SummaryStatistics
	if p.pool == nil {
		return res, NotConnectedError()
	}

	query := `
		SELECT
			(SELECT COUNT(*) FROM argo_profiles),
			(SELECT COUNT(*) FROM argo_measurements),
			(SELECT COUNT(DISTINCT float_id) FROM argo_profiles),
			(SELECT MIN(measurement_date) FROM argo_profiles),
			(SELECT MAX(measurement_date) FROM argo_profiles),
			(SELECT MIN(latitude) FROM argo_profiles),
			(SELECT MAX(latitude) FROM argo_profiles),
			(SELECT MIN(longitude) FROM argo_profiles),
			(SELECT MAX(longitude) FROM argo_profiles)
	`

	err := p.pool.QueryRow(ctx, query).Scan(
		&res.TotalProfiles,
		&res.TotalMeasurements,
		&res.UniqueFloats,
		&res.DateRange.Earliest,
		&res.DateRange.Latest,
		&res.GeographicCoverage.MinLatitude,
		&res.GeographicCoverage.MaxLatitude,
		&res.GeographicCoverage.MinLongitude,
		&res.GeographicCoverage.MaxLongitude,
	)
	if err != nil {
		return res, QueryError("stats", err)
	}

	return res, nil
}
