package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/schema"
)

type measurementJSONRow struct {
	Path  string  `json:"path"`
	Score float64 `json:"maintainability"`
}

type changeJSONRow struct {
	Path  string `json:"path"`
	Count int    `json:"changes"`
}

// PrintMeasurements outputs the per-file maintainability listing, as JSON
// when configured, otherwise as a table.
func PrintMeasurements(measurements []schema.FileMeasurement, cfg *contract.Config) error {
	if cfg.JSONList {
		rows := make([]measurementJSONRow, len(measurements))
		for i, m := range measurements {
			rows[i] = measurementJSONRow{Path: m.Path, Score: m.Score}
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	}

	fmtFloat := createFormatter(cfg.Precision)
	maxPathWidth := GetMaxTablePathWidth(cfg)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Path", "MI"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range measurements {
		data = append(data, []string{
			contract.TruncatePath(m.Path, maxPathWidth),
			fmtFloat(m.Score),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Scored %d files\n", len(measurements))
	return nil
}

// PrintChanges outputs the per-path change-count listing, as JSON when
// configured, otherwise as a table.
func PrintChanges(changes []schema.FileChange, cfg *contract.Config) error {
	if cfg.JSONList {
		rows := make([]changeJSONRow, len(changes))
		for i, c := range changes {
			rows[i] = changeJSONRow{Path: c.Path, Count: c.Count}
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	}

	maxPathWidth := GetMaxTablePathWidth(cfg)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Path", "Changes"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, c := range changes {
		data = append(data, []string{
			contract.TruncatePath(c.Path, maxPathWidth),
			strconv.Itoa(c.Count),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Counted changes for %d paths\n", len(changes))
	return nil
}
