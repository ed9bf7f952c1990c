package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/oceandata/argodb/pkg/errcode"
)

func ConnectionError(host string, port int, database string, err error) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d/%s</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Review your configuration file:
     <em>~/.config/argodb/config.yaml</em>`
	vars := []any{host, port, database, host, port}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s:%d/%s: %w",
			fn, host, port, database, err),
	}
}

func NotConnectedError() error {
	msg := "Database operation attempted without connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("from %s: not connected to database", fn),
	}
}

func TableCheckError(err error) error {
	msg := "Cannot verify database state"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("from %s: cannot check tables: %w", fn, err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot drop table %s: %w", fn, table, err),
	}
}

func InsertProfileError(floatID string, err error) error {
	msg := "Cannot store profile for float <em>%s</em>"
	vars := []any{floatID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBInsertProfileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot insert profile for float %s: %w",
			fn, floatID, err),
	}
}

func InsertMeasurementsError(profileID int64, err error) error {
	msg := "Cannot store measurements for profile <em>%d</em>"
	vars := []any{profileID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBInsertMeasurementsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: cannot insert measurements for profile %d: %w",
			fn, profileID, err),
	}
}

func QueryError(what string, err error) error {
	msg := "Database query failed: %s"
	vars := []any{what}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query %s failed: %w", fn, what, err),
	}
}
