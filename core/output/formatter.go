// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of a bill.
package output

import (
	"io"

	"tariffbill/core/tariff"
	"tariffbill/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the bill to w
	Render(w io.Writer, bill *tariff.Bill) error
}

// ForFormat returns the formatter for a format name.
func ForFormat(format string, showDetails bool) (Formatter, error) {
	switch Format(format) {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: showDetails}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported output format: %s", format)
	}
}
