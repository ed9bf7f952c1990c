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
	"context"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/oceandata/argodb/internal/iodb"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/db"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/oceandata/argodb/pkg/transform"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getStatsCmd() *cobra.Command {
	var (
		regions   bool
		profileID int64
		grid      float64
	)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database-wide summary statistics",
		Long: `Stats reports what is stored in the database.

Shows the number of profiles and measurements, unique floats, the
covered date range and the geographic bounding box.

With --regions, profiles are aggregated into a lat/lon grid (cell size
from the process.grid_size setting) with per-cell profile counts,
unique floats and date spans.

With --profile <id>, one stored profile is sampled at standard depth
levels (10, 50, 100, 200, 500, 1000 m) for temperature and salinity.

Examples:
  argodb stats
  argodb stats --regions
  argodb stats --profile 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, regions, profileID, grid)
		},
	}

	statsCmd.Flags().BoolVar(&regions, "regions", false,
		"aggregate profiles into a geographic grid")
	statsCmd.Flags().Int64Var(&profileID, "profile", 0,
		"sample one profile at standard depth levels")
	statsCmd.Flags().Float64Var(&grid, "grid", 0,
		"grid cell size in degrees for --regions")

	return statsCmd
}

func runStats(
	_ *cobra.Command,
	regions bool,
	profileID int64,
	grid float64,
) error {
	ctx := context.Background()

	if grid > 0 {
		cfg.Update([]config.Option{config.OptProcessGridSize(grid)})
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	if regions {
		return statsRegions(ctx, op)
	}
	if profileID > 0 {
		return statsProfile(ctx, op, profileID)
	}

	stats, err := op.Stats(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Profiles:     %s", humanize.Comma(stats.TotalProfiles))
	gn.Info("Measurements: %s", humanize.Comma(stats.TotalMeasurements))
	gn.Info("Floats:       %s", humanize.Comma(stats.UniqueFloats))

	dr := stats.DateRange
	if dr.Earliest != nil && dr.Latest != nil {
		gn.Info("Dates:        %s to %s",
			dr.Earliest.Format("2006-01-02"),
			dr.Latest.Format("2006-01-02"))
	}

	gc := stats.GeographicCoverage
	if gc.MinLatitude != nil {
		gn.Info("Latitude:     %.3f to %.3f",
			*gc.MinLatitude, *gc.MaxLatitude)
		gn.Info("Longitude:    %.3f to %.3f",
			*gc.MinLongitude, *gc.MaxLongitude)
	}

	return nil
}

func statsRegions(ctx context.Context, op db.Operator) error {
	recs, err := op.Profiles(ctx, db.ProfileFilter{})
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	metas := make([]profile.Metadata, len(recs))
	for i, r := range recs {
		metas[i] = profile.Metadata{
			FloatID:    r.FloatID,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			MeasuredAt: r.MeasuredAt,
		}
	}

	cells := transform.AggregateByRegion(metas, cfg.Process.GridSize)
	if len(cells) == 0 {
		gn.Info("No profiles stored.")
		return nil
	}

	gn.Info("Grid cells (%.1f degree cells):", cfg.Process.GridSize)
	for _, c := range cells {
		gn.Info("  [%.1f, %.1f]  profiles: %d  floats: %d  %s to %s",
			c.LatGrid, c.LonGrid, c.ProfileCount, c.UniqueFloats,
			c.EarliestDate.Format("2006-01-02"),
			c.LatestDate.Format("2006-01-02"))
	}

	return nil
}

func statsProfile(ctx context.Context, op db.Operator, id int64) error {
	ms, err := op.MeasurementsByProfile(ctx, id)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(ms) == 0 {
		gn.Info("Profile <em>%d</em> has no measurements.", id)
		return nil
	}

	gn.Info("Profile <em>%d</em>, %d measurements", id, len(ms))
	printSeries(ms, profile.FieldTemperature, "°C")
	printSeries(ms, profile.FieldSalinity, "PSU")
	printQuality(ms)

	return nil
}

func printQuality(ms []profile.Measurement) {
	counts := make(map[int]int)
	for i := range ms {
		counts[ms[i].QualityFlag]++
	}

	flags := make([]int, 0, len(counts))
	for flag := range counts {
		flags = append(flags, flag)
	}
	sort.Ints(flags)

	gn.Info("Quality flags:")
	for _, flag := range flags {
		name, ok := profile.QualityFlags[flag]
		if !ok {
			name = "Unknown"
		}
		gn.Info("  %d (%s): %d", flag, name, counts[flag])
	}
}

func printSeries(ms []profile.Measurement, field profile.Field, unit string) {
	points := transform.TimeSeries(ms, field, nil)
	if len(points) == 0 {
		return
	}

	gn.Info("%s at standard depths:", string(field))
	for _, pt := range points {
		gn.Info("  %6.0fm  %8.3f%s (measured at %.1fm)",
			pt.DepthLevel, pt.Value, unit, pt.ActualDepth)
	}
}
