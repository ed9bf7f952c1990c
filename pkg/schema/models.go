// Package schema provides database schema models for argodb.
// Column layout matches the reference ARGO ingestion schema so existing
// dashboards keep working.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// ArgoProfile stores one profile's metadata. FileHash is the SHA-256
// content hash of the source file and is unique, so re-ingesting the
// same file is a no-op.
type ArgoProfile struct {
	// ID is the surrogate key assigned on insert.
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY" gorm:"primaryKey"`

	// FloatID identifies the ARGO float that produced the profile.
	FloatID string `db:"float_id" ddl:"VARCHAR(50)" gorm:"type:varchar(50);index:idx_argo_profiles_float_id"`

	// CycleNumber is the float's measurement cycle counter.
	CycleNumber int `db:"cycle_number" ddl:"INT"`

	// Latitude of the profile in decimal degrees.
	Latitude float64 `db:"latitude" ddl:"DOUBLE PRECISION" gorm:"index:idx_argo_profiles_location"`

	// Longitude of the profile in decimal degrees.
	Longitude float64 `db:"longitude" ddl:"DOUBLE PRECISION" gorm:"index:idx_argo_profiles_location"`

	// MeasurementDate is when the profile was measured.
	MeasurementDate time.Time `db:"measurement_date" ddl:"TIMESTAMP" gorm:"index:idx_argo_profiles_date"`

	// PlatformNumber is the WMO platform identifier.
	PlatformNumber string `db:"platform_number" ddl:"VARCHAR(50)" gorm:"type:varchar(50)"`

	// DataCenter names the institution that distributed the file.
	DataCenter string `db:"data_center" ddl:"VARCHAR(10)" gorm:"type:varchar(10)"`

	// FileHash is the SHA-256 hex digest of the source file content.
	FileHash string `db:"file_hash" ddl:"VARCHAR(64) UNIQUE" gorm:"type:varchar(64);uniqueIndex"`

	// CreatedAt is the ingestion timestamp.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP DEFAULT NOW()"`
}

// ArgoMeasurement stores one depth level of a profile. Rows cascade on
// profile deletion.
type ArgoMeasurement struct {
	// ID is the surrogate key assigned on insert.
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY" gorm:"primaryKey"`

	// ProfileID references the owning ArgoProfile row.
	ProfileID int64 `db:"profile_id" ddl:"BIGINT REFERENCES argo_profiles(id) ON DELETE CASCADE" gorm:"index:idx_argo_measurements_profile_id"`

	// Profile wires the foreign key for AutoMigrate.
	Profile ArgoProfile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	// Pressure in decibar, NULL when not measured.
	Pressure *float64 `db:"pressure" ddl:"DOUBLE PRECISION"`

	// Depth in meters, NULL when neither measured nor derivable.
	Depth *float64 `db:"depth" ddl:"DOUBLE PRECISION" gorm:"index:idx_argo_measurements_depth"`

	// Temperature in degrees Celsius.
	Temperature *float64 `db:"temperature" ddl:"DOUBLE PRECISION"`

	// Salinity in practical salinity units.
	Salinity *float64 `db:"salinity" ddl:"DOUBLE PRECISION"`

	// Oxygen in micromole per kilogram.
	Oxygen *float64 `db:"oxygen" ddl:"DOUBLE PRECISION"`

	// Nitrate in micromole per kilogram.
	Nitrate *float64 `db:"nitrate" ddl:"DOUBLE PRECISION"`

	// PH on the total scale.
	PH *float64 `db:"ph" ddl:"DOUBLE PRECISION"`

	// Chlorophyll in milligram per cubic meter.
	Chlorophyll *float64 `db:"chlorophyll" ddl:"DOUBLE PRECISION"`

	// PotentialTemperature is derived during ingestion.
	PotentialTemperature *float64 `db:"potential_temperature" ddl:"DOUBLE PRECISION"`

	// Density is derived during ingestion.
	Density *float64 `db:"density" ddl:"DOUBLE PRECISION"`

	// QualityFlag follows ARGO quality conventions, 1 is good.
	QualityFlag int `db:"quality_flag" ddl:"INT DEFAULT 1"`
}
