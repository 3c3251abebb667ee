package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPathMetrics(t *testing.T) {
	m := NewPathMetrics("a/b.go", ModuleKind)
	assert.Equal(t, "a/b.go", m.Path)
	assert.Equal(t, ModuleKind, m.Kind)
	assert.True(t, math.IsInf(m.Maintainability, 1))
	assert.Zero(t, m.Changes)
	assert.True(t, m.IsDeleted())
}

func TestHotspotIndex(t *testing.T) {
	tests := []struct {
		name    string
		mi      float64
		changes int
		check   func(t *testing.T, got float64)
	}{
		{
			name:    "normal division",
			mi:      50.0,
			changes: 10,
			check: func(t *testing.T, got float64) {
				assert.InDelta(t, 20.0, got, 1e-9)
			},
		},
		{
			name:    "unset maintainability yields zero",
			mi:      UnsetMaintainability,
			changes: 7,
			check: func(t *testing.T, got float64) {
				assert.Zero(t, got)
			},
		},
		{
			name:    "unset maintainability with zero changes yields zero",
			mi:      UnsetMaintainability,
			changes: 0,
			check: func(t *testing.T, got float64) {
				assert.Zero(t, got)
			},
		},
		{
			name:    "zero maintainability yields infinity",
			mi:      0,
			changes: 3,
			check: func(t *testing.T, got float64) {
				assert.True(t, math.IsInf(got, 1))
			},
		},
		{
			name:    "zero over zero yields NaN",
			mi:      0,
			changes: 0,
			check: func(t *testing.T, got float64) {
				assert.True(t, math.IsNaN(got))
			},
		},
		{
			name:    "floor clamp denominator",
			mi:      MinMaintainabilityIndex,
			changes: 1,
			check: func(t *testing.T, got float64) {
				assert.InDelta(t, 10000.0, got, 1e-6)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &PathMetrics{Path: "x", Kind: ModuleKind, Maintainability: tt.mi, Changes: tt.changes}
			tt.check(t, m.HotspotIndex())
		})
	}
}

func TestSortMetrics(t *testing.T) {
	build := func() []*PathMetrics {
		return []*PathMetrics{
			{Path: "b.go", Kind: ModuleKind, Maintainability: 40, Changes: 2},
			{Path: "a", Kind: PackageKind, Maintainability: 40, Changes: 5},
			{Path: "a/c.go", Kind: ModuleKind, Maintainability: 90, Changes: 5},
			{Path: ".", Kind: PackageKind, Maintainability: 40, Changes: 7},
		}
	}

	t.Run("by path ascending", func(t *testing.T) {
		ms := build()
		SortMetrics(ms, SortByPath)
		assert.Equal(t, ".", ms[0].Path)
		assert.Equal(t, "a", ms[1].Path)
		assert.Equal(t, "a/c.go", ms[2].Path)
		assert.Equal(t, "b.go", ms[3].Path)
	})

	t.Run("by changes descending with path tiebreak", func(t *testing.T) {
		ms := build()
		SortMetrics(ms, SortByChanges)
		assert.Equal(t, ".", ms[0].Path)
		assert.Equal(t, "a", ms[1].Path)
		assert.Equal(t, "a/c.go", ms[2].Path)
		assert.Equal(t, "b.go", ms[3].Path)
	})

	t.Run("by hotspot descending", func(t *testing.T) {
		ms := build()
		SortMetrics(ms, SortByHotspot)
		// hotspots: b.go=5, a=12.5, a/c.go≈5.56, .=17.5
		assert.Equal(t, ".", ms[0].Path)
		assert.Equal(t, "a", ms[1].Path)
		assert.Equal(t, "a/c.go", ms[2].Path)
		assert.Equal(t, "b.go", ms[3].Path)
	})

	t.Run("deleted entries sort after finite hotspots", func(t *testing.T) {
		ms := []*PathMetrics{
			{Path: "gone.go", Kind: ModuleKind, Maintainability: UnsetMaintainability, Changes: 9},
			{Path: "live.go", Kind: ModuleKind, Maintainability: 80, Changes: 1},
		}
		SortMetrics(ms, SortByHotspot)
		assert.Equal(t, "live.go", ms[0].Path)
	})
}

func TestLimitMetrics(t *testing.T) {
	ms := []*PathMetrics{{Path: "a"}, {Path: "b"}, {Path: "c"}}
	assert.Len(t, LimitMetrics(ms, 0), 3)
	assert.Len(t, LimitMetrics(ms, -1), 3)
	assert.Len(t, LimitMetrics(ms, 5), 3)
	assert.Len(t, LimitMetrics(ms, 2), 2)
	assert.Equal(t, "a", LimitMetrics(ms, 2)[0].Path)
}
