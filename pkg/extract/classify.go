package extract

import (
	"strings"

	"github.com/oceandata/argodb/pkg/profile"
)

// ArgoRequiredVariables are the raw names of the three variables a
// profiling-float file is expected to carry.
var ArgoRequiredVariables = []string{"PRES", "TEMP", "PSAL"}

// oceanKeywords mark a file as ocean-domain when found in variable names
// or descriptive attributes.
var oceanKeywords = []string{"sea_water", "ocean", "marine", "float", "profile"}

// Classify detects the type of a NetCDF file from its variable set.
// At least 2 of the 3 required float variables make it a profile file.
// The result only drives validation strictness, never extraction logic.
func Classify(ds Dataset) profile.FileType {
	var argoVars int
	for _, name := range ArgoRequiredVariables {
		if ds.HasVariable(name) {
			argoVars++
		}
	}
	if argoVars >= 2 {
		return profile.FileTypeArgoProfile
	}

	for _, name := range ds.Variables() {
		lowName := strings.ToLower(name)
		longName := lowerAttr(ds, name, "long_name")
		for _, kw := range oceanKeywords {
			if strings.Contains(lowName, kw) || strings.Contains(longName, kw) {
				return profile.FileTypeOceanographic
			}
		}
	}

	return profile.FileTypeGeneral
}

// HasAnyArgoVariable reports whether at least one required profiling
// variable is present. Used by strict ("argo") mode validation.
func HasAnyArgoVariable(ds Dataset) bool {
	for _, name := range ArgoRequiredVariables {
		if ds.HasVariable(name) {
			return true
		}
	}
	return false
}
