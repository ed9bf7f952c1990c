// Package errcode enumerates error codes used across argodb.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBDropTableError
	DBInsertProfileError
	DBInsertMeasurementsError
	DBQueryError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaIndexError

	// NetCDF processing errors
	NetCDFFileNotFoundError
	NetCDFOpenError
	NetCDFNoVariablesError
	NetCDFValidationError
	NetCDFHashError
	NetCDFBatchError
)
