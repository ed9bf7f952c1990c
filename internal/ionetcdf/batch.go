package ionetcdf

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/lifecycle"
	"golang.org/x/sync/errgroup"
)

// ProcessBatch ingests every supported NetCDF file in a directory.
// A failing file is recorded and skipped; the batch keeps going.
func (p *ncProcessor) ProcessBatch(
	ctx context.Context,
	dir string,
) (lifecycle.BatchResult, error) {
	res := lifecycle.BatchResult{
		RunID:  uuid.NewString(),
		Failed: make(map[string]error),
	}

	paths, err := listDataFiles(dir)
	if err != nil {
		return res, err
	}
	if len(paths) == 0 {
		slog.Warn("No NetCDF files found", "dir", dir)
		return res, nil
	}

	slog.Info("Starting batch run",
		"run_id", res.RunID, "dir", dir, "files", len(paths))

	bar := pb.Full.Start(len(paths))
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	jobs := p.cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}

	var mu sync.Mutex
	record := func(path string, fr lifecycle.ProcessResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			slog.Warn("File failed", "run_id", res.RunID,
				"path", path, "error", err)
			res.Failed[path] = err
		} else {
			res.Results = append(res.Results, fr)
		}
		bar.Increment()
	}

	if jobs == 1 {
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			fr, err := p.ProcessFile(ctx, path)
			record(path, fr, err)
		}
		return res, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fr, err := p.ProcessFile(gCtx, path)
			record(path, fr, err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	return res, nil
}

// listDataFiles returns the sorted paths of files with a NetCDF
// extension directly under dir.
func listDataFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, BatchError(dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.Contains(config.SupportedExtensions, ext) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
