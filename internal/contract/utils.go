package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creditlens/creditlens/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold) // investment grade upper tier
	SolidColor    = color.New(color.FgCyan)              // solid investment grade
	CautionColor  = color.New(color.FgYellow)            // borderline / speculative
	DistressColor = color.New(color.FgRed, color.Bold)   // weak credit
)

// GetPlainRating returns the plain rating text for a band. This is the core
// value used for CSV, JSON, and table printing.
func GetPlainRating(band schema.RatingBand) string {
	return band.Rating
}

// GetColorRating returns a colored rating label for console output (table).
// The band's color hint selects the console color.
func GetColorRating(band schema.RatingBand) string {
	switch band.Color {
	case "green":
		return StrongColor.Sprint(band.Rating)
	case "blue":
		return SolidColor.Sprint(band.Rating)
	case "orange":
		return CautionColor.Sprint(band.Rating)
	default: // "red"
		return DistressColor.Sprint(band.Rating)
	}
}

// GetColorRiskLevel returns a colored risk level for console output.
func GetColorRiskLevel(level schema.RiskLevel) string {
	switch level {
	case schema.LowRisk:
		return StrongColor.Sprint(string(level))
	case schema.MediumRisk:
		return CautionColor.Sprint(string(level))
	default:
		return DistressColor.Sprint(string(level))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when the path is empty.
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

// GetAnalysisDBFilePath returns the path to the SQLite DB file for analysis storage.
func GetAnalysisDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".creditlens_analysis.db"
	}
	return filepath.Join(homeDir, ".creditlens_analysis.db")
}

// TruncateName truncates an institution name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the "..."
// and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
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
