// Package ionetcdf reads NetCDF files and runs the ingestion pipeline.
// This is an impure I/O package that implements contracts defined in
// pkg/.
package ionetcdf

import (
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/oceandata/argodb/pkg/extract"
)

// ncDataset adapts a NetCDF group to the extract.Dataset interface.
// Variable values are read lazily and cached: classification and
// metadata extraction touch only a handful of variables, so eager
// loading would waste memory on large files.
type ncDataset struct {
	group   api.Group
	vars    []string
	varSet  map[string]struct{}
	getters map[string]api.VarGetter
	values  map[string]any
	dims    map[string]int
}

var _ extract.Dataset = &ncDataset{}

// OpenDataset opens a NetCDF file for reading. The caller must Close it.
func OpenDataset(path string) (*ncDataset, error) {
	group, err := netcdf.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	vars := group.ListVariables()
	varSet := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		varSet[v] = struct{}{}
	}

	return &ncDataset{
		group:   group,
		vars:    vars,
		varSet:  varSet,
		getters: make(map[string]api.VarGetter),
		values:  make(map[string]any),
	}, nil
}

// Close releases the underlying file handle.
func (d *ncDataset) Close() {
	d.group.Close()
}

// Variables lists the dataset's variable names.
func (d *ncDataset) Variables() []string {
	return d.vars
}

// HasVariable reports whether a variable exists under exactly this name.
func (d *ncDataset) HasVariable(name string) bool {
	_, ok := d.varSet[name]
	return ok
}

// Values returns the full data of one variable, cached after the first
// read.
func (d *ncDataset) Values(name string) (any, error) {
	if v, ok := d.values[name]; ok {
		return v, nil
	}

	getter, err := d.getter(name)
	if err != nil {
		return nil, err
	}

	v, err := getter.Values()
	if err != nil {
		return nil, ReadVariableError(name, err)
	}
	d.values[name] = v
	return v, nil
}

// VarAttr returns one attribute of one variable.
func (d *ncDataset) VarAttr(varName, attr string) (any, bool) {
	getter, err := d.getter(varName)
	if err != nil {
		return nil, false
	}
	return getter.Attributes().Get(attr)
}

// GlobalAttr returns one global attribute.
func (d *ncDataset) GlobalAttr(name string) (any, bool) {
	return d.group.Attributes().Get(name)
}

// GlobalAttrs returns all global attributes.
func (d *ncDataset) GlobalAttrs() map[string]any {
	attrs := d.group.Attributes()
	res := make(map[string]any)
	for _, key := range attrs.Keys() {
		if v, ok := attrs.Get(key); ok {
			res[key] = v
		}
	}
	return res
}

// Dimensions maps dimension names to their sizes. The NetCDF API does
// not expose dimensions directly, so they are reconstructed from each
// variable's dimension names and the shape of its data.
func (d *ncDataset) Dimensions() map[string]int {
	if d.dims != nil {
		return d.dims
	}

	dims := make(map[string]int)
	for _, name := range d.vars {
		getter, err := d.getter(name)
		if err != nil {
			continue
		}
		dimNames := getter.Dimensions()
		if len(dimNames) == 0 {
			continue
		}

		values, err := d.Values(name)
		if err != nil {
			continue
		}
		shape := valueShape(values)

		for i, dimName := range dimNames {
			if dimName == "" || i >= len(shape) {
				continue
			}
			dims[dimName] = shape[i]
		}
	}

	d.dims = dims
	return dims
}

func (d *ncDataset) getter(name string) (api.VarGetter, error) {
	if g, ok := d.getters[name]; ok {
		return g, nil
	}
	if !d.HasVariable(name) {
		return nil, UnknownVariableError(name)
	}

	g, err := d.group.GetVarGetter(name)
	if err != nil {
		return nil, ReadVariableError(name, err)
	}
	d.getters[name] = g
	return g, nil
}

// valueShape walks nested slices and returns their lengths per level.
// Strings stay atomic: a []string variable is one-dimensional.
func valueShape(values any) []int {
	var shape []int
	v := reflect.ValueOf(values)
	for v.Kind() == reflect.Slice {
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			break
		}
		v = v.Index(0)
	}
	return shape
}
