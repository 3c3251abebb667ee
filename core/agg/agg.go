// Package agg implements the per-path metrics aggregation over the implicit
// ancestry tree: maintainability min-folds up the ancestor chain, change
// counts sum up it.
package agg

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/debtmap/debtmap/schema"
)

// Classify reports whether a path is a source module or a package, judged
// purely by the final component's extension against the given set.
func Classify(p string, extensions map[string]struct{}) schema.PathKind {
	ext := strings.ToLower(filepath.Ext(p))
	if _, ok := extensions[ext]; ok {
		return schema.ModuleKind
	}
	return schema.PackageKind
}

// Expand returns the path itself followed by each ancestor up to the root
// sentinel: "." for relative paths, "/" for absolute ones. Every level
// appears exactly once.
func Expand(p string) []string {
	p = path.Clean(filepath.ToSlash(p))
	chain := []string{p}
	for p != schema.RootPath && p != "/" {
		p = path.Dir(p)
		chain = append(chain, p)
	}
	return chain
}

// MetricsMap accumulates path metrics in a flat map keyed by path. Entries
// are created lazily as measurements arrive; the root entry always exists.
type MetricsMap struct {
	entries    map[string]*schema.PathMetrics
	extensions map[string]struct{}
}

// NewMetricsMap returns an empty map seeded with the root entry, classifying
// paths against the given extension set.
func NewMetricsMap(extensions []string) *MetricsMap {
	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}
	m := &MetricsMap{
		entries:    make(map[string]*schema.PathMetrics),
		extensions: extSet,
	}
	m.fetchOrCreate(schema.RootPath)
	return m
}

func (m *MetricsMap) fetchOrCreate(p string) *schema.PathMetrics {
	entry, ok := m.entries[p]
	if !ok {
		entry = schema.NewPathMetrics(p, Classify(p, m.extensions))
		m.entries[p] = entry
	}
	return entry
}

// ApplyMaintainability folds one file measurement into the map: the score is
// floored at schema.MinMaintainabilityIndex, then min-merged into the file
// and every ancestor, so a directory's maintainability is the worst of its
// descendants.
func (m *MetricsMap) ApplyMaintainability(fm schema.FileMeasurement) {
	score := max(fm.Score, schema.MinMaintainabilityIndex)
	for _, p := range Expand(fm.Path) {
		entry := m.fetchOrCreate(p)
		entry.Maintainability = min(entry.Maintainability, score)
	}
}

// ApplyChanges folds one change count into the map: the count adds to the
// file and every ancestor, so a directory's changes are the total across its
// descendants.
func (m *MetricsMap) ApplyChanges(fc schema.FileChange) {
	for _, p := range Expand(fc.Path) {
		entry := m.fetchOrCreate(p)
		entry.Changes += fc.Count
	}
}

// Get returns the entry for a path, or nil if nothing contributed to it.
func (m *MetricsMap) Get(p string) *schema.PathMetrics {
	return m.entries[p]
}

// Len returns the number of tracked paths.
func (m *MetricsMap) Len() int {
	return len(m.entries)
}

// Select returns all entries, skipping those whose maintainability is still
// unset unless includeDeleted is true. Order is unspecified; callers sort.
func (m *MetricsMap) Select(includeDeleted bool) []*schema.PathMetrics {
	result := make([]*schema.PathMetrics, 0, len(m.entries))
	for _, entry := range m.entries {
		if entry.IsDeleted() && !includeDeleted {
			continue
		}
		result = append(result, entry)
	}
	return result
}
