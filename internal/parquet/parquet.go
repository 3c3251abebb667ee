// Package parquet provides data structures and functions for exporting
// aggregated debt metrics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/debtmap/debtmap/schema"
)

// MetricsRecord represents one aggregated path in the Parquet export.
type MetricsRecord struct {
	// Path is the file or directory path relative to the analysis target
	Path string `parquet:"path,snappy"`

	// Kind is "module" for source files, "package" for directories
	Kind string `parquet:"kind,snappy,dict"`

	// Maintainability is the min-folded maintainability index
	// (nullable: unset for paths that only exist in git history)
	Maintainability *float64 `parquet:"maintainability,optional,snappy"`

	// Changes is the sum-folded commit touch count
	Changes int64 `parquet:"changes,snappy"`

	// HotspotIndex is changes normalized by maintainability percentage
	HotspotIndex float64 `parquet:"hotspot_index,snappy"`
}

// ConvertPathMetrics converts aggregated results to Parquet records. Unset
// maintainability maps to a null column value.
func ConvertPathMetrics(results []*schema.PathMetrics) []MetricsRecord {
	records := make([]MetricsRecord, len(results))
	for i, r := range results {
		rec := MetricsRecord{
			Path:         r.Path,
			Kind:         string(r.Kind),
			Changes:      int64(r.Changes),
			HotspotIndex: r.HotspotIndex(),
		}
		if !r.IsDeleted() {
			mi := r.Maintainability
			rec.Maintainability = &mi
		}
		records[i] = rec
	}
	return records
}

// WriteMetricsParquet writes aggregated results to a Parquet file.
func WriteMetricsParquet(results []*schema.PathMetrics, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the MetricsRecord struct tags
	writer := parquet.NewGenericWriter[MetricsRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertPathMetrics(results)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
