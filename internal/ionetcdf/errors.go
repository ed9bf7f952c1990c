package ionetcdf

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/oceandata/argodb/pkg/errcode"
)

func FileNotFoundError(path string, err error) error {
	msg := "Cannot find NetCDF file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if err == nil {
		err = fmt.Errorf("not a regular file")
	}
	return &gn.Error{
		Code: errcode.NetCDFFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot find %s: %w", fn, path, err),
	}
}

func OpenError(path string, err error) error {
	msg := "Cannot open <em>%s</em> as NetCDF"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func NoVariablesError(path string) error {
	msg := "File <em>%s</em> contains no variables"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFNoVariablesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no variables in %s", fn, path),
	}
}

func UnknownVariableError(name string) error {
	msg := "Variable <em>%s</em> does not exist"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown variable %s", fn, name),
	}
}

func ReadVariableError(name string, err error) error {
	msg := "Cannot read variable <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read variable %s: %w", fn, name, err),
	}
}

func MissingArgoVariablesError(path string) error {
	msg := "File <em>%s</em> has no profiling-float variables " +
		"(PRES, TEMP or PSAL)"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no profiling variables in %s", fn, path),
	}
}

func HashError(path string, err error) error {
	msg := "Cannot compute content hash of <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFHashError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot hash %s: %w", fn, path, err),
	}
}

func BatchError(dir string, err error) error {
	msg := "Cannot read directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetCDFBatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read dir %s: %w", fn, dir, err),
	}
}
