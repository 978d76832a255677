// Package usage defines the electricity usage data model.
// Records are created by the ingestion layer after validation and are
// consumed read-only by the tariff calculators.
package usage

import "time"

// TimestampLayout is the wire format of a usage record timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is a single validated electricity usage reading.
type Record struct {
	// Timestamp is the reading time in "YYYY-MM-DD HH:MM:SS" form
	Timestamp string `json:"timestamp"`

	// KWH is the consumed energy for the reading interval, non-negative
	KWH float64 `json:"kwh"`
}

// Time parses the record timestamp.
func (r Record) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, r.Timestamp)
}

// TotalConsumption sums the kWh field over all records.
// An empty input yields 0.
func TotalConsumption(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.KWH
	}
	return total
}
