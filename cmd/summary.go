/*
Copyright © 2025 The argodb authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/oceandata/argodb/internal/ionetcdf"
	"github.com/spf13/cobra"
)

// getSummaryCmd returns the summary command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSummaryCmd() *cobra.Command {
	var asJSON bool

	summaryCmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Inspect a NetCDF file without storing anything",
		Long: `Summary prints the structure and extracted metadata of a NetCDF file.

The file is classified and its metadata is extracted exactly as the
process command would, but nothing touches the database. Useful to
check how a file will be interpreted before ingesting it.

Examples:
  argodb summary profile.nc
  argodb summary profile.nc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], asJSON)
		},
	}

	summaryCmd.Flags().BoolVar(&asJSON, "json", false,
		"print the summary as JSON")

	return summaryCmd
}

func runSummary(_ *cobra.Command, path string, asJSON bool) error {
	proc := ionetcdf.NewProcessor(cfg, nil)

	sum, err := proc.FileSummary(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	gn.Info("File:      <em>%s</em>", sum.FilePath)
	gn.Info("Size:      %s", humanize.Bytes(uint64(sum.FileSize)))
	gn.Info("Type:      %s", string(sum.Metadata.FileType))

	gn.Info("Dimensions:")
	for _, name := range sortedKeys(sum.Dimensions) {
		gn.Info("  %s: %d", name, sum.Dimensions[name])
	}

	gn.Info("Variables:")
	varNames := make([]string, 0, len(sum.Variables))
	for name := range sum.Variables {
		varNames = append(varNames, name)
	}
	sort.Strings(varNames)
	for _, name := range varNames {
		v := sum.Variables[name]
		gn.Info("  %s %v (%s)", name, v.Shape, v.Dtype)
	}

	meta := sum.Metadata
	gn.Info("Metadata:")
	gn.Info("  float:  %s, cycle %d", meta.FloatID, meta.CycleNumber)
	gn.Info("  place:  %.3f, %.3f", meta.Latitude, meta.Longitude)
	gn.Info("  time:   %s", meta.MeasuredAt.Format("2006-01-02 15:04:05"))
	gn.Info("  center: %s", meta.DataCenter)

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
