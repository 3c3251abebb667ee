// Package schema defines the data types shared across debtmap packages.
package schema

import "math"

// UnsetMaintainability marks a path that has accumulated change counts but
// never received a maintainability measurement (for example a file that only
// appears in git history because it was deleted). It participates in min-folds
// as the identity element.
var UnsetMaintainability = math.Inf(1)

// PathMetrics holds the aggregated measurements for a single path in the tree.
type PathMetrics struct {
	Path            string
	Kind            PathKind
	Maintainability float64
	Changes         int
}

// NewPathMetrics returns a fresh entry for path with unset maintainability
// and zero changes.
func NewPathMetrics(path string, kind PathKind) *PathMetrics {
	return &PathMetrics{
		Path:            path,
		Kind:            kind,
		Maintainability: UnsetMaintainability,
	}
}

// HotspotIndex is changes normalized by maintainability percentage:
// changes / (maintainability / 100). The division is deliberately unguarded;
// IEEE semantics produce 0 for unset maintainability (x/+Inf), +Inf for a
// zero denominator, and NaN for 0/0.
func (p *PathMetrics) HotspotIndex() float64 {
	return float64(p.Changes) / (p.Maintainability / 100.0)
}

// IsDeleted reports whether the path never received a maintainability
// measurement, which happens when it exists only in git history.
func (p *PathMetrics) IsDeleted() bool {
	return math.IsInf(p.Maintainability, 1)
}

// FileMeasurement is one maintainability score for a source file.
type FileMeasurement struct {
	Path  string
	Score float64
}

// FileChange is one change count for a path from git history.
type FileChange struct {
	Path  string
	Count int
}
