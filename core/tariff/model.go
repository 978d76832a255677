// Package tariff implements the tariff calculation engine: pure functions
// that take validated usage records plus a tariff configuration and
// deterministically produce a cost breakdown.
package tariff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Model selects the billing scheme
type Model string

const (
	// ModelFlatRate bills all consumption at a single rate
	ModelFlatRate Model = "FLAT_RATE"

	// ModelTiered bills consumption progressively across threshold bands
	ModelTiered Model = "TIERED"

	// ModelTimeOfUse bills each reading by the clock-time window it falls in
	ModelTimeOfUse Model = "TIME_OF_USE"
)

// String returns the string representation
func (m Model) String() string {
	return string(m)
}

// WindowCategory identifies a time-of-use window
type WindowCategory string

const (
	CategoryPeak     WindowCategory = "PEAK"
	CategoryOffPeak  WindowCategory = "OFF_PEAK"
	CategoryShoulder WindowCategory = "SHOULDER"
)

// FlatRateConfig configures single-rate billing
type FlatRateConfig struct {
	// Rate is the price per kWh
	Rate float64 `json:"rate"`
}

// TierThreshold is a consumption band with its own per-kWh rate
type TierThreshold struct {
	// Level is the 1-based tier number
	Level int `json:"level"`

	// LowKWH is the inclusive lower bound of the band
	LowKWH float64 `json:"low_kwh"`

	// HighKWH is the inclusive upper bound of the band. Consumption exactly
	// at the boundary belongs to this tier, not the next.
	HighKWH float64 `json:"high_kwh"`

	// Rate is the price per kWh within the band
	Rate float64 `json:"rate"`
}

// TieredConfig configures threshold-based progressive billing.
// Tier1.HighKWH must be below Tier2.HighKWH; Tier3.HighKWH acts as the
// effectively-unbounded cap (the configured maximum monthly consumption).
type TieredConfig struct {
	Tier1 TierThreshold `json:"tier1"`
	Tier2 TierThreshold `json:"tier2"`
	Tier3 TierThreshold `json:"tier3"`
}

// TimeWindow is a clock-time range with its own per-kWh rate.
// A window whose start is later than its end spans midnight.
type TimeWindow struct {
	// Category identifies the window
	Category WindowCategory `json:"category"`

	// PeriodStart is the inclusive window start in "HH:MM:SS" form
	PeriodStart string `json:"period_start"`

	// PeriodEnd is the inclusive window end in "HH:MM:SS" form
	PeriodEnd string `json:"period_end"`

	// Rate is the price per kWh within the window
	Rate float64 `json:"rate"`
}

// TimeOfUseConfig configures time-window-based billing.
// At most one window may span midnight; together the three windows are
// expected to partition the 24-hour day.
type TimeOfUseConfig struct {
	Peak     TimeWindow `json:"peak"`
	OffPeak  TimeWindow `json:"off_peak"`
	Shoulder TimeWindow `json:"shoulder"`
}

// TierResult is the cost/consumption breakdown for one tier
type TierResult struct {
	Cost        float64 `json:"cost"`
	Consumption float64 `json:"consumption"`
}

// BucketResult is the cost/consumption breakdown for one time-of-use window
type BucketResult struct {
	Cost        float64 `json:"cost"`
	Consumption float64 `json:"consumption"`
}

// FlatRateResult is the bill under the flat-rate model
type FlatRateResult struct {
	TotalCost        float64 `json:"total_cost"`
	TotalConsumption float64 `json:"total_consumption"`
}

// TieredResult is the bill under the tiered model
type TieredResult struct {
	TotalCost        float64    `json:"total_cost"`
	TotalConsumption float64    `json:"total_consumption"`
	Tier1            TierResult `json:"tier1"`
	Tier2            TierResult `json:"tier2"`
	Tier3            TierResult `json:"tier3"`
}

// TimeOfUseResult is the bill under the time-of-use model
type TimeOfUseResult struct {
	TotalCost        float64      `json:"total_cost"`
	TotalConsumption float64      `json:"total_consumption"`
	Peak             BucketResult `json:"peak"`
	OffPeak          BucketResult `json:"off_peak"`
	Shoulder         BucketResult `json:"shoulder"`
}

// timeOfDayLayout is the wire format of a window boundary.
const timeOfDayLayout = "15:04:05"

// secondsOfDay converts a "HH:MM:SS" string to seconds since midnight.
func secondsOfDay(value string) (int, bool) {
	t, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return 0, false
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
}

// round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Rounding happens at sub-result granularity (per tier, per window) before
// summation; summing unrounded values first would shift cent-level results.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
