package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/debtmap/debtmap/core/agg"
	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/schema"
)

// DiscoverModules walks the target directory and returns every source file
// matching the configured extension set, as slash-separated paths relative to
// the target. Excluded subtrees are pruned during the walk so they never
// contribute entries; .git is always skipped.
func DiscoverModules(cfg *contract.Config) ([]string, error) {
	extSet := extensionSet(cfg.Extensions)

	var files []string
	err := filepath.WalkDir(cfg.TargetDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(cfg.TargetDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if rel != schema.RootPath && contract.IsExcluded(rel, cfg.Excludes) {
				return filepath.SkipDir
			}
			return nil
		}
		if contract.IsExcluded(rel, cfg.Excludes) {
			return nil
		}
		if agg.Classify(rel, extSet) == schema.ModuleKind {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", cfg.TargetDir, err)
	}
	sort.Strings(files)
	return files, nil
}

// ScoreModules reads and scores each file using a pool of cfg.Workers
// goroutines. Results are folded back into a single slice on the caller's
// goroutine. Any read failure aborts the run.
func ScoreModules(ctx context.Context, cfg *contract.Config, scorer contract.Scorer, files []string) ([]schema.FileMeasurement, error) {
	type scoreResult struct {
		measurement schema.FileMeasurement
		err         error
	}

	fileCh := make(chan string, len(files))
	resultCh := make(chan scoreResult, len(files))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for f := range fileCh {
				if ctx.Err() != nil {
					resultCh <- scoreResult{err: ctx.Err()}
					continue
				}
				source, err := os.ReadFile(filepath.Join(cfg.TargetDir, filepath.FromSlash(f)))
				if err != nil {
					resultCh <- scoreResult{err: fmt.Errorf("failed to read %q: %w", f, err)}
					continue
				}
				resultCh <- scoreResult{measurement: schema.FileMeasurement{
					Path:  f,
					Score: scorer.Score(f, source),
				}}
			}
		})
	}

	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)

	wg.Wait()
	close(resultCh)

	measurements := make([]schema.FileMeasurement, 0, len(files))
	for r := range resultCh {
		if r.err != nil {
			return nil, r.err
		}
		measurements = append(measurements, r.measurement)
	}
	sort.Slice(measurements, func(i, j int) bool {
		return measurements[i].Path < measurements[j].Path
	})
	return measurements, nil
}

// CountChanges fetches the name-only commit log and tallies how many commits
// touched each path. Excluded paths and paths outside the source-extension
// set are dropped line by line, before they can create aggregation entries.
// Any git failure aborts the run.
func CountChanges(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.FileChange, error) {
	out, err := client.GetChangeLog(ctx, cfg.TargetDir, cfg.Since)
	if err != nil {
		return nil, err
	}

	extSet := extensionSet(cfg.Extensions)
	counts := make(map[string]int)
	for line := range strings.SplitSeq(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p := contract.NormalizePath(line)
		if contract.IsExcluded(p, cfg.Excludes) {
			continue
		}
		if agg.Classify(p, extSet) != schema.ModuleKind {
			continue
		}
		counts[p]++
	}

	changes := make([]schema.FileChange, 0, len(counts))
	for p, n := range counts {
		changes = append(changes, schema.FileChange{Path: p, Count: n})
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	return changes, nil
}

// extensionSet builds a lowercase lookup set from the configured extensions.
func extensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}
