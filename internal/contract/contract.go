// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the git operations needed for change counting.
// This allows the core analysis logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns the standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetChangeLog returns the raw name-only commit log for the repository,
	// optionally windowed by a --since date (zero value means full history).
	// Paths in the output are relative to repoPath.
	GetChangeLog(ctx context.Context, repoPath string, since string) ([]byte, error)
}

// Scorer produces a maintainability score for a single source file.
// Scores are expected in (0, 100]; the aggregation layer clamps regardless.
type Scorer interface {
	Score(path string, source []byte) float64
}
