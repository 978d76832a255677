package tariff

import (
	"sort"

	"tariffbill/internal/errors"
)

// ValidateTiers checks the tiered configuration invariants: ascending
// boundaries, sane bands, non-negative rates.
func ValidateTiers(cfg TieredConfig) error {
	tiers := []TierThreshold{cfg.Tier1, cfg.Tier2, cfg.Tier3}
	for i, t := range tiers {
		if t.Rate < 0 {
			return errors.Config("tier rate must be non-negative").
				WithContext("level", t.Level)
		}
		if t.LowKWH > t.HighKWH {
			return errors.Config("tier lower bound exceeds upper bound").
				WithContext("level", t.Level)
		}
		if i > 0 && tiers[i-1].HighKWH >= t.HighKWH {
			return errors.Config("tier boundaries must be strictly ascending").
				WithContext("level", t.Level)
		}
	}
	return nil
}

// ValidateWindows is the opt-in strictness check for time-of-use windows.
// The calculator itself never runs it: unmatched readings silently fall to
// shoulder, which is the behavior billing history depends on. When enabled,
// this verifies that every window parses, that at most one spans midnight,
// and that the three windows partition the 24-hour day with no gap and no
// overlap.
func ValidateWindows(cfg TimeOfUseConfig) error {
	const daySeconds = 24 * 60 * 60

	type span struct{ start, end int }
	var spans []span
	wrapping := 0

	for _, w := range []TimeWindow{cfg.Peak, cfg.OffPeak, cfg.Shoulder} {
		start, ok := secondsOfDay(w.PeriodStart)
		if !ok {
			return errors.Config("window start is not a valid HH:MM:SS time").
				WithContext("category", string(w.Category)).
				WithContext("period_start", w.PeriodStart)
		}
		end, ok := secondsOfDay(w.PeriodEnd)
		if !ok {
			return errors.Config("window end is not a valid HH:MM:SS time").
				WithContext("category", string(w.Category)).
				WithContext("period_end", w.PeriodEnd)
		}

		if start > end {
			// Midnight-spanning window splits into its two half-intervals.
			wrapping++
			spans = append(spans, span{start, daySeconds - 1}, span{0, end})
		} else {
			spans = append(spans, span{start, end})
		}
	}

	if wrapping > 1 {
		return errors.Config("at most one window may span midnight")
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	cursor := 0
	for _, s := range spans {
		if s.start < cursor {
			return errors.Config("time-of-use windows overlap").
				WithContext("second", s.start)
		}
		if s.start > cursor {
			return errors.Config("time-of-use windows leave a gap in the day").
				WithContext("second", cursor)
		}
		cursor = s.end + 1
	}
	if cursor != daySeconds {
		return errors.Config("time-of-use windows leave a gap in the day").
			WithContext("second", cursor)
	}
	return nil
}
