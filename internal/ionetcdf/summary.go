package ionetcdf

import (
	"os"

	"github.com/oceandata/argodb/pkg/profile"
)

// FileSummary inspects a NetCDF file without persisting anything:
// structure, per-variable shape and type, global attributes and the
// metadata the ingestion pipeline would extract.
func (p *ncProcessor) FileSummary(path string) (profile.FileSummary, error) {
	var res profile.FileSummary

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return res, FileNotFoundError(path, err)
	}

	ds, err := OpenDataset(path)
	if err != nil {
		return res, err
	}
	defer ds.Close()

	res.FilePath = path
	res.FileSize = info.Size()
	res.Dimensions = ds.Dimensions()
	res.GlobalAttributes = ds.GlobalAttrs()
	res.Variables = make(map[string]profile.VariableSummary)

	for _, name := range ds.Variables() {
		getter, err := ds.getter(name)
		if err != nil {
			continue
		}

		attrs := make(map[string]any)
		am := getter.Attributes()
		for _, key := range am.Keys() {
			if v, ok := am.Get(key); ok {
				attrs[key] = v
			}
		}

		var shape []int
		if values, err := ds.Values(name); err == nil {
			shape = valueShape(values)
		}

		res.Variables[name] = profile.VariableSummary{
			Shape:      shape,
			Dtype:      getter.GoType(),
			Attributes: attrs,
		}
	}

	meta := p.meta.Extract(ds)
	meta.FilePath = path
	res.Metadata = meta

	return res, nil
}
