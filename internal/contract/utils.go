package contract

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/debtmap/debtmap/schema"
)

// Severity label constants.
const (
	CriticalValue = "Critical"
	HighValue     = "High"
	ModerateValue = "Moderate"
	LowValue      = "Low"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)
	HighColor     = color.New(color.FgMagenta, color.Bold)
	ModerateColor = color.New(color.FgYellow)
	LowColor      = color.New(color.FgCyan)
)

// GetPlainLabel returns a plain text severity label for a hotspot index.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(hotspot float64) string {
	switch {
	case hotspot >= 100:
		return CriticalValue
	case hotspot >= 50:
		return HighValue
	case hotspot >= 10:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored severity label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(hotspot float64) string {
	text := GetPlainLabel(hotspot)

	switch text {
	case CriticalValue:
		return CriticalColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// NormalizePath cleans a path into the slash-separated relative form used as
// map keys throughout the aggregation.
func NormalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// IsExcluded reports whether p equals an excluded path or lies beneath one.
// Containment is judged on whole path segments, so excluding "a/b" does not
// exclude "a/bc". Excluding "." excludes the entire relative tree.
func IsExcluded(p string, excludes []string) bool {
	p = NormalizePath(p)
	for _, ex := range excludes {
		ex = NormalizePath(strings.TrimSpace(ex))
		if ex == "" {
			continue
		}
		if ex == schema.RootPath && !strings.HasPrefix(p, "/") {
			return true
		}
		if p == ex || strings.HasPrefix(p, ex+"/") {
			return true
		}
	}
	return false
}

// SelectOutputFile returns the file handle for output: stdout when no path
// is given, otherwise a freshly created file.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for "..." plus at least one
// character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
