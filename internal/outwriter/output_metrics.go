package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/internal/parquet"
	"github.com/debtmap/debtmap/schema"
)

// metricsJSONRow is the JSON shape of one aggregated path. Maintainability
// is a pointer because encoding/json cannot represent +Inf; unset values
// render as null.
type metricsJSONRow struct {
	Path            string   `json:"path"`
	Kind            string   `json:"kind"`
	Maintainability *float64 `json:"maintainability"`
	Changes         int      `json:"changes"`
	HotspotIndex    float64  `json:"hotspot_index"`
}

// PrintMetricsResults outputs the aggregated report, dispatching on the
// configured output format.
func PrintMetricsResults(results []*schema.PathMetrics, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONMode:
		if err := printJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVMode:
		if err := printCSVResults(results, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetMode:
		if err := parquet.WriteMetricsParquet(results, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		if err := printMetricsTable(results, cfg, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

func printJSONResults(results []*schema.PathMetrics, cfg *contract.Config) error {
	rows := make([]metricsJSONRow, len(results))
	for i, r := range results {
		row := metricsJSONRow{
			Path:         r.Path,
			Kind:         string(r.Kind),
			Changes:      r.Changes,
			HotspotIndex: r.HotspotIndex(),
		}
		if !r.IsDeleted() {
			mi := r.Maintainability
			row.Maintainability = &mi
		}
		rows[i] = row
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote JSON")
}

func printCSVResults(results []*schema.PathMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, schema.MetricsFieldNames, func(csvWriter *csv.Writer) error {
			for _, r := range results {
				record := []string{
					r.Path,
					string(r.Kind),
					formatCSVFloat(r.Maintainability),
					strconv.Itoa(r.Changes),
					formatCSVFloat(r.HotspotIndex()),
				}
				if err := csvWriter.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// formatCSVFloat renders floats at full precision so CSV output parses back
// to the same value. Infinities render as "+Inf"/"-Inf", which
// strconv.ParseFloat round-trips.
func formatCSVFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// printMetricsTable prints the results as a table with severity labels.
func printMetricsTable(results []*schema.PathMetrics, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)
	maxPathWidth := GetMaxTablePathWidth(cfg)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Path", "Kind", "MI", "Changes", "Hotspot", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range results {
		hotspot := r.HotspotIndex()
		label := contract.GetPlainLabel(hotspot)
		if cfg.UseColors {
			label = contract.GetColorLabel(hotspot)
		}
		mi := "-"
		if !r.IsDeleted() {
			mi = fmtFloat(r.Maintainability)
		}
		data = append(data, []string{
			contract.TruncatePath(r.Path, maxPathWidth),
			string(r.Kind),
			mi,
			strconv.Itoa(r.Changes),
			formatTableFloat(hotspot, fmtFloat),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d paths\n", len(results))
	fmt.Printf("Analysis completed in %v with %d workers\n", duration, cfg.Workers)
	return nil
}

func formatTableFloat(v float64, fmtFloat func(float64) string) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmtFloat(v)
}

// ParseMetricsCSV parses CSV output produced by printCSVResults back into
// path metrics. It is the inverse of the CSV writer, modulo float precision.
func ParseMetricsCSV(r io.Reader) ([]*schema.PathMetrics, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV input is empty")
	}

	results := make([]*schema.PathMetrics, 0, len(records)-1)
	for _, record := range records[1:] { // skip header
		if len(record) != len(schema.MetricsFieldNames) {
			return nil, fmt.Errorf("unexpected CSV row length %d", len(record))
		}
		mi, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maintainability %q: %w", record[2], err)
		}
		changes, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("invalid changes %q: %w", record[3], err)
		}
		results = append(results, &schema.PathMetrics{
			Path:            record[0],
			Kind:            schema.PathKind(record[1]),
			Maintainability: mi,
			Changes:         changes,
		})
	}
	return results, nil
}
