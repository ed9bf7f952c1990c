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
	"os"

	"github.com/gnames/gn"
	"github.com/oceandata/argodb/internal/iodb"
	"github.com/oceandata/argodb/internal/ionetcdf"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/db"
	"github.com/oceandata/argodb/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getProcessCmd returns the process command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getProcessCmd() *cobra.Command {
	var (
		jobs   int
		mode   string
		dryRun bool
	)

	processCmd := &cobra.Command{
		Use:   "process [path]...",
		Short: "Ingest NetCDF files into the database",
		Long: `Process reads NetCDF files and stores profiles in PostgreSQL.

Each path argument is a file or a directory. For a directory, every
file with a NetCDF extension (.nc, .netcdf, .nc4) is processed. A
failing file is logged and skipped, the run keeps going.

For each file the pipeline:
  1. Validates the file and computes its content hash
  2. Skips files whose hash is already stored
  3. Classifies the file (argo_profile, oceanographic, general)
  4. Extracts metadata and per-depth measurements
  5. Cleans values, flags out-of-range readings, derives potential
     temperature, density and mixed-layer depth
  6. Stores the profile and its measurements

Processing modes (--mode) set validation strictness:
  argo      a file must carry a profiling-float variable
            (PRES, TEMP or PSAL)
  flexible  any file that opens with at least one variable (default)
  auto      like flexible; the classification is recorded per file

Examples:
  argodb process profile.nc
  argodb process a.nc b.nc c.nc
  argodb process /data/argo/ --jobs 8
  argodb process /data/argo/ --mode argo
  argodb process profile.nc --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args, jobs, mode, dryRun)
		},
	}

	processCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"number of files processed concurrently")
	processCmd.Flags().StringVarP(&mode, "mode", "m", "",
		"processing mode: argo, flexible or auto")
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"parse and summarize without writing to the database")

	return processCmd
}

func runProcess(
	_ *cobra.Command,
	paths []string,
	jobs int,
	mode string,
	dryRun bool,
) error {
	ctx := context.Background()

	if jobs > 0 {
		cfg.Update([]config.Option{config.OptJobsNumber(jobs)})
	}
	if mode != "" {
		cfg.Update([]config.Option{config.OptProcessMode(mode)})
	}

	var op db.Operator
	if !dryRun {
		op = iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		defer op.Close()
	}

	proc := ionetcdf.NewProcessor(cfg, op)

	var lastErr error
	for _, path := range paths {
		if err := processPath(ctx, proc, path); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func processPath(
	ctx context.Context,
	proc lifecycle.Processor,
	path string,
) error {
	info, err := os.Stat(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if info.IsDir() {
		return processDir(ctx, proc, path)
	}
	return processFile(ctx, proc, path)
}

func processDir(
	ctx context.Context,
	proc lifecycle.Processor,
	dir string,
) error {
	res, err := proc.ProcessBatch(ctx, dir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var dups, stored int
	for _, r := range res.Results {
		if r.Duplicate {
			dups++
		} else {
			stored++
		}
	}

	gn.Info("Batch <em>%s</em> finished", res.RunID)
	gn.Info("  stored:     %d", stored)
	gn.Info("  duplicates: %d", dups)
	gn.Info("  failed:     %d", len(res.Failed))
	for path := range res.Failed {
		gn.Warn("  failed file: <em>%s</em>", path)
	}

	return nil
}

func processFile(
	ctx context.Context,
	proc lifecycle.Processor,
	path string,
) error {
	res, err := proc.ProcessFile(ctx, path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if res.Duplicate {
		gn.Info("File already ingested as profile <em>%d</em>",
			res.ProfileID)
		return nil
	}

	if res.Summary != nil {
		gn.Info("%s", res.Summary.SummaryText)
	}
	if res.ProfileID > 0 {
		gn.Info("Stored profile <em>%d</em> with %d measurements",
			res.ProfileID, res.Measurements)
	}

	return nil
}
