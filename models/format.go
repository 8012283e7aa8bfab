package models

import "fmt"

// OutputFormat selects how a report is presented.
type OutputFormat int

const (
	// FormatBanner prints the framed BOOKBOT report.
	FormatBanner OutputFormat = iota
	FormatSimple                 // Word count plus top-10 characters
	FormatTable                  // Statistics and word tables
	FormatJSON                   // Machine-readable snapshot
)

// ParseOutputFormat maps a flag or config value onto an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "banner":
		return FormatBanner, nil
	case "simple":
		return FormatSimple, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatBanner, fmt.Errorf("unknown output format: %s (use: banner, simple, table, or json)", s)
}

func (f OutputFormat) String() string {
	switch f {
	case FormatSimple:
		return "simple"
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	default:
		return "banner"
	}
}
