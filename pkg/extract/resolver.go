package extract

import (
	"strings"

	"github.com/oceandata/argodb/pkg/profile"
)

// fieldAliases maps each canonical field to its known raw variable names,
// ordered by preference: the conventional uppercase ARGO name first, then
// its adjusted variant, then the looser community spellings. The first
// name present in a file wins.
var fieldAliases = map[profile.Field][]string{
	profile.FieldTemperature: {
		"TEMP", "TEMP_ADJUSTED", "temp_adjusted", "temp", "temperature",
		"T", "sea_water_temperature", "TEMPERATURE",
	},
	profile.FieldPressure: {
		"PRES", "PRES_ADJUSTED", "pres_adjusted", "pres", "pressure",
		"P", "sea_water_pressure", "PRESSURE",
	},
	profile.FieldDepth: {
		"DEPTH", "depth", "z", "Z", "level", "LEVEL",
	},
	profile.FieldSalinity: {
		"PSAL", "PSAL_ADJUSTED", "psal_adjusted", "psal", "salinity",
		"salt", "S", "sea_water_salinity", "SALINITY",
	},
	profile.FieldOxygen: {
		"DOXY", "DOXY_ADJUSTED", "doxy_adjusted", "oxygen", "o2", "O2",
		"dissolved_oxygen", "OXYGEN",
	},
	profile.FieldNitrate: {
		"NITRATE", "NITRATE_ADJUSTED", "nitrate", "no3", "NO3",
	},
	profile.FieldPH: {
		"PH_IN_SITU_TOTAL", "PH_IN_SITU_TOTAL_ADJUSTED", "ph", "pH", "PH",
	},
	profile.FieldChlorophyll: {
		"CHLA", "CHLA_ADJUSTED", "chla", "chlorophyll", "chl", "CHL",
	},
	profile.FieldLatitude: {
		"LATITUDE", "latitude", "lat", "LAT", "y", "Y",
	},
	profile.FieldLongitude: {
		"LONGITUDE", "longitude", "lon", "LON", "x", "X",
	},
	profile.FieldTime: {
		"JULD", "time", "TIME", "t", "T", "date", "DATE",
	},
}

// ResolveVariable finds the raw variable name for a canonical field.
// Data producers disagree on capitalization, suffixes and controlled
// vocabulary, so four passes are tried in strict priority order, first
// success wins:
//
//  1. exact match against the alias list
//  2. case-insensitive exact match
//  3. case-insensitive substring match (alias within variable name)
//  4. alias within the variable's long_name or standard_name attribute
//
// Returns "" and false when all passes fail.
func ResolveVariable(ds Dataset, field profile.Field) (string, bool) {
	aliases, ok := fieldAliases[field]
	if !ok {
		return "", false
	}

	// Pass 1: exact name match.
	for _, alias := range aliases {
		if ds.HasVariable(alias) {
			return alias, true
		}
	}

	varNames := ds.Variables()

	// Pass 2: case-insensitive name match.
	for _, alias := range aliases {
		for _, name := range varNames {
			if strings.EqualFold(alias, name) {
				return name, true
			}
		}
	}

	// Pass 3: alias as substring of the variable name.
	for _, alias := range aliases {
		lowAlias := strings.ToLower(alias)
		for _, name := range varNames {
			if strings.Contains(strings.ToLower(name), lowAlias) {
				return name, true
			}
		}
	}

	// Pass 4: alias within descriptive attributes.
	for _, name := range varNames {
		longName := lowerAttr(ds, name, "long_name")
		stdName := lowerAttr(ds, name, "standard_name")
		for _, alias := range aliases {
			lowAlias := strings.ToLower(alias)
			if strings.Contains(longName, lowAlias) ||
				strings.Contains(stdName, lowAlias) {
				return name, true
			}
		}
	}

	return "", false
}

func lowerAttr(ds Dataset, varName, attr string) string {
	v, ok := ds.VarAttr(varName, attr)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.ToLower(s)
}
