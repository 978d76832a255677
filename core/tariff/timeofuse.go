package tariff

import (
	"tariffbill/core/usage"
)

// TimeOfUse bills each reading by the clock-time window it falls in.
// Classification precedence per record: peak first, then off-peak, then
// shoulder as the catch-all. Window boundaries are inclusive at both ends,
// so a reading timestamped exactly at a boundary belongs to that window.
//
// Gaps or overlaps between the configured windows are not validated here:
// any reading that matches neither peak nor off-peak lands in shoulder,
// whether or not it is literally inside the configured shoulder window.
// Callers that want the stricter behavior run ValidateWindows first.
func TimeOfUse(records []usage.Record, cfg TimeOfUseConfig, monthlyFee float64) TimeOfUseResult {
	var peak, offPeak, shoulder float64

	for _, r := range records {
		switch classify(r, cfg) {
		case CategoryPeak:
			peak += r.KWH
		case CategoryOffPeak:
			offPeak += r.KWH
		default:
			shoulder += r.KWH
		}
	}

	peakCost := round2(peak * cfg.Peak.Rate)
	offPeakCost := round2(offPeak * cfg.OffPeak.Rate)
	shoulderCost := round2(shoulder * cfg.Shoulder.Rate)

	return TimeOfUseResult{
		TotalCost:        peakCost + offPeakCost + shoulderCost + monthlyFee,
		TotalConsumption: usage.TotalConsumption(records),
		Peak:             BucketResult{Cost: peakCost, Consumption: peak},
		OffPeak:          BucketResult{Cost: offPeakCost, Consumption: offPeak},
		Shoulder:         BucketResult{Cost: shoulderCost, Consumption: shoulder},
	}
}

// classify places one record into exactly one window category.
// Records are validated upstream; a reading whose timestamp fails to parse
// falls into the catch-all bucket like any other unmatched reading.
func classify(r usage.Record, cfg TimeOfUseConfig) WindowCategory {
	t, err := r.Time()
	if err != nil {
		return CategoryShoulder
	}
	recordSec := t.Hour()*3600 + t.Minute()*60 + t.Second()

	if inWindow(recordSec, cfg.Peak) {
		return CategoryPeak
	}
	if inWindow(recordSec, cfg.OffPeak) {
		return CategoryOffPeak
	}
	return CategoryShoulder
}

// inWindow reports whether a time of day falls inside a window, comparing
// the reading against same-day start/end instants. A window whose start is
// later than its end wraps midnight and matches the two half-intervals it
// produces: [start, end-of-day] and [start-of-day, end].
func inWindow(recordSec int, w TimeWindow) bool {
	start, ok := secondsOfDay(w.PeriodStart)
	if !ok {
		return false
	}
	end, ok := secondsOfDay(w.PeriodEnd)
	if !ok {
		return false
	}

	if start > end {
		return recordSec >= start || recordSec <= end
	}
	return recordSec >= start && recordSec <= end
}
