package extract_test

import (
	"fmt"

	"github.com/oceandata/argodb/pkg/extract"
)

// fakeDataset is an in-memory Dataset for tests.
type fakeDataset struct {
	vars     []string
	values   map[string]any
	varAttrs map[string]map[string]any
	globals  map[string]any
	dims     map[string]int
}

var _ extract.Dataset = &fakeDataset{}

func (d *fakeDataset) Variables() []string { return d.vars }

func (d *fakeDataset) HasVariable(name string) bool {
	for _, v := range d.vars {
		if v == name {
			return true
		}
	}
	return false
}

func (d *fakeDataset) Values(name string) (any, error) {
	if v, ok := d.values[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no values for %s", name)
}

func (d *fakeDataset) VarAttr(varName, attr string) (any, bool) {
	attrs, ok := d.varAttrs[varName]
	if !ok {
		return nil, false
	}
	v, ok := attrs[attr]
	return v, ok
}

func (d *fakeDataset) GlobalAttr(name string) (any, bool) {
	v, ok := d.globals[name]
	return v, ok
}

func (d *fakeDataset) GlobalAttrs() map[string]any { return d.globals }

func (d *fakeDataset) Dimensions() map[string]int { return d.dims }
