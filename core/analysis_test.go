package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/schema"
)

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		TargetDir:  t.TempDir(),
		Extensions: []string{".go", ".py"},
		Workers:    2,
	}
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestDiscoverModules(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.TargetDir, "main.go", "package main\n")
	writeFile(t, cfg.TargetDir, "pkg/util.go", "package pkg\n")
	writeFile(t, cfg.TargetDir, "pkg/notes.txt", "not source\n")
	writeFile(t, cfg.TargetDir, "scripts/run.py", "print('hi')\n")
	writeFile(t, cfg.TargetDir, ".git/config", "[core]\n")
	writeFile(t, cfg.TargetDir, "vendor/dep/dep.go", "package dep\n")

	cfg.Excludes = []string{"vendor"}
	files, err := DiscoverModules(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go", "pkg/util.go", "scripts/run.py"}, files)
}

func TestDiscoverModulesExcludedFile(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.TargetDir, "a.go", "package a\n")
	writeFile(t, cfg.TargetDir, "b.go", "package b\n")

	cfg.Excludes = []string{"b.go"}
	files, err := DiscoverModules(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go"}, files)
}

func TestScoreModules(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.TargetDir, "a.go", "package a\n\nfunc A() {}\n")
	writeFile(t, cfg.TargetDir, "pkg/b.go", "package pkg\n\nfunc B() {}\n")

	measurements, err := ScoreModules(context.Background(), cfg, NewMaintainabilityScorer(), []string{"a.go", "pkg/b.go"})
	require.NoError(t, err)
	require.Len(t, measurements, 2)
	assert.Equal(t, "a.go", measurements[0].Path)
	assert.Equal(t, "pkg/b.go", measurements[1].Path)
	for _, m := range measurements {
		assert.Greater(t, m.Score, 0.0)
		assert.LessOrEqual(t, m.Score, 100.0)
	}
}

func TestScoreModulesUnreadableFileAborts(t *testing.T) {
	cfg := testConfig(t)
	_, err := ScoreModules(context.Background(), cfg, NewMaintainabilityScorer(), []string{"missing.go"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.go")
}

func TestCountChanges(t *testing.T) {
	cfg := testConfig(t)
	client := &contract.MockGitClient{}
	log := "a.go\npkg/b.go\n\na.go\npkg/b.go\n\na.go\n"
	client.On("GetChangeLog", mock.Anything, cfg.TargetDir, "").Return([]byte(log), nil)

	changes, err := CountChanges(context.Background(), cfg, client)
	require.NoError(t, err)
	assert.Equal(t, []schema.FileChange{
		{Path: "a.go", Count: 3},
		{Path: "pkg/b.go", Count: 2},
	}, changes)
	client.AssertExpectations(t)
}

func TestCountChangesFiltersExcluded(t *testing.T) {
	cfg := testConfig(t)
	cfg.Excludes = []string{"vendor"}
	client := &contract.MockGitClient{}
	log := "a.go\nvendor/dep.go\nvendor/dep.go\n"
	client.On("GetChangeLog", mock.Anything, cfg.TargetDir, "").Return([]byte(log), nil)

	changes, err := CountChanges(context.Background(), cfg, client)
	require.NoError(t, err)
	assert.Equal(t, []schema.FileChange{{Path: "a.go", Count: 1}}, changes)
}

func TestCountChangesSkipsNonSourceFiles(t *testing.T) {
	cfg := testConfig(t)
	client := &contract.MockGitClient{}
	log := "a.go\nREADME.md\nREADME.md\ngo.mod\ndocs/guide.md\na.go\n"
	client.On("GetChangeLog", mock.Anything, cfg.TargetDir, "").Return([]byte(log), nil)

	changes, err := CountChanges(context.Background(), cfg, client)
	require.NoError(t, err)
	assert.Equal(t, []schema.FileChange{{Path: "a.go", Count: 2}}, changes)
}

func TestCountChangesPassesSince(t *testing.T) {
	cfg := testConfig(t)
	cfg.Since = "2026-01-01"
	client := &contract.MockGitClient{}
	client.On("GetChangeLog", mock.Anything, cfg.TargetDir, "2026-01-01").Return([]byte("a.go\n"), nil)

	changes, err := CountChanges(context.Background(), cfg, client)
	require.NoError(t, err)
	assert.Len(t, changes, 1)
	client.AssertExpectations(t)
}

func TestCountChangesGitFailureAborts(t *testing.T) {
	cfg := testConfig(t)
	client := &contract.MockGitClient{}
	client.On("GetChangeLog", mock.Anything, cfg.TargetDir, "").Return([]byte(nil), errors.New("not a git repository"))

	_, err := CountChanges(context.Background(), cfg, client)
	assert.Error(t, err)
}
