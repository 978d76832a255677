// Package spreadsheet reads delimited electricity-usage spreadsheets and
// turns them into validated usage records. It is the only part of the
// system that touches the filesystem; the tariff engine consumes its
// output read-only.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tariffbill/core/usage"
	"tariffbill/internal/errors"
	"tariffbill/internal/logging"
)

const (
	// ColTimestamp is the required timestamp column name (case sensitive)
	ColTimestamp = "timestamp"

	// ColKWH is the required consumption column name (case sensitive,
	// capital W)
	ColKWH = "kWh"

	// sniffSampleSize is how much of the file is inspected to detect the
	// delimiter
	sniffSampleSize = 1024
)

// ReadUsageFile reads a delimited usage spreadsheet and returns the rows
// that pass validation. Rows with a malformed timestamp or kWh value are
// skipped with a warning rather than failing the whole read.
func ReadUsageFile(path string) ([]usage.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NotFound("usage file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("reading usage file", err).
			WithContext("path", path)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Parsing("parsing usage file", err).
			WithContext("path", path)
	}
	if len(rows) == 0 {
		return nil, errors.Input("usage file is empty").
			WithContext("path", path)
	}

	header := rows[0]
	tsCol, kwhCol := columnIndex(header, ColTimestamp), columnIndex(header, ColKWH)
	if tsCol < 0 || kwhCol < 0 {
		return nil, errors.Newf(errors.TypeInput,
			"required columns %q and %q not found, got: %s",
			ColTimestamp, ColKWH, strings.Join(header, ", "))
	}
	if len(rows) == 1 {
		return nil, errors.Input("usage file has no data rows").
			WithContext("path", path)
	}

	records := make([]usage.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, ok := parseRow(row, tsCol, kwhCol)
		if !ok {
			logging.Warn("skipping invalid usage row",
				zap.Int("row", i),
				zap.String("path", path))
			continue
		}
		records = append(records, rec)
	}

	logging.Info("parsed usage records",
		zap.Int("count", len(records)),
		zap.String("path", path))
	return records, nil
}

// parseRow validates one data row cell by cell.
func parseRow(row []string, tsCol, kwhCol int) (usage.Record, bool) {
	if tsCol >= len(row) || kwhCol >= len(row) {
		return usage.Record{}, false
	}

	ts := strings.TrimSpace(row[tsCol])
	if !validTimestamp(ts) {
		return usage.Record{}, false
	}

	kwh, ok := parseKWH(strings.TrimSpace(row[kwhCol]))
	if !ok {
		return usage.Record{}, false
	}

	return usage.Record{Timestamp: ts, KWH: kwh}, true
}

// validTimestamp accepts "YYYY-MM-DD HH:MM:SS" only.
func validTimestamp(value string) bool {
	if value == "" {
		return false
	}
	_, err := time.Parse(usage.TimestampLayout, value)
	return err == nil
}

// parseKWH accepts non-negative decimal numbers.
func parseKWH(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

// sniffDelimiter inspects the start of the file and picks the most common
// candidate delimiter from the first line, defaulting to a comma.
func sniffDelimiter(data []byte) rune {
	sample := data
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}

	best := ','
	bestCount := 0
	for _, candidate := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(sample, []byte(string(candidate))); n > bestCount {
			best = candidate
			bestCount = n
		}
	}
	return best
}
