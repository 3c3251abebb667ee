package schema

// PathKind distinguishes leaf source files from their containing directories.
type PathKind string

const (
	// ModuleKind is a leaf source file.
	ModuleKind PathKind = "module"
	// PackageKind is a directory (or any non-source path).
	PackageKind PathKind = "package"
)

// OutputMode selects the rendering format for results.
type OutputMode string

const (
	TextMode    OutputMode = "text"
	CSVMode     OutputMode = "csv"
	JSONMode    OutputMode = "json"
	ParquetMode OutputMode = "parquet"
)

// ValidOutputModes enumerates the accepted --output values.
var ValidOutputModes = map[OutputMode]bool{
	TextMode:    true,
	CSVMode:     true,
	JSONMode:    true,
	ParquetMode: true,
}

// SortField selects the column that orders rendered results.
type SortField string

const (
	SortByPath            SortField = "path"
	SortByKind            SortField = "kind"
	SortByMaintainability SortField = "maintainability"
	SortByChanges         SortField = "changes"
	SortByHotspot         SortField = "hotspot"
)

// ValidSortFields enumerates the accepted --sort values.
var ValidSortFields = map[SortField]bool{
	SortByPath:            true,
	SortByKind:            true,
	SortByMaintainability: true,
	SortByChanges:         true,
	SortByHotspot:         true,
}

const (
	// RootPath is the relative-tree root sentinel where ancestor walks stop.
	RootPath = "."

	// MinMaintainabilityIndex floors incoming maintainability scores so the
	// hotspot denominator on the normal path never reaches zero.
	MinMaintainabilityIndex = 0.01

	// SinceDateFormat is the only accepted layout for --since values.
	SinceDateFormat = "2006-01-02"
)

// DefaultExtensions are the source-file extensions scored when --ext is not
// given.
var DefaultExtensions = []string{
	".go", ".py", ".js", ".ts", ".jsx", ".tsx",
	".java", ".kt", ".rb", ".rs", ".c", ".h", ".cpp", ".hpp",
	".cs", ".php", ".swift", ".scala",
}

// MetricsFieldNames is the column order for CSV and table output.
var MetricsFieldNames = []string{"path", "kind", "maintainability", "changes", "hotspot_index"}
