package output

import (
	"encoding/json"
	"io"

	"tariffbill/core/tariff"
)

// JSONFormatter renders a bill as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the bill to w
func (f *JSONFormatter) Render(w io.Writer, bill *tariff.Bill) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bill)
}
