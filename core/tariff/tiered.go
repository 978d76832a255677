package tariff

import (
	"math"

	"tariffbill/core/usage"
)

// Tiered bills aggregate consumption progressively across the three
// configured bands. Only the total matters; per-record attribution and
// record order never affect the result. Consumption exactly at a band's
// upper boundary belongs entirely to that band.
func Tiered(records []usage.Record, cfg TieredConfig, monthlyFee float64) TieredResult {
	total := usage.TotalConsumption(records)

	tier1 := math.Min(total, cfg.Tier1.HighKWH)
	tier2 := clamp(total-cfg.Tier1.HighKWH, 0, cfg.Tier2.HighKWH-cfg.Tier1.HighKWH)
	tier3 := math.Max(0, total-cfg.Tier2.HighKWH)

	cost1 := round2(tier1 * cfg.Tier1.Rate)
	cost2 := round2(tier2 * cfg.Tier2.Rate)
	cost3 := round2(tier3 * cfg.Tier3.Rate)

	return TieredResult{
		TotalCost:        round2(cost1+cost2+cost3) + monthlyFee,
		TotalConsumption: total,
		Tier1:            TierResult{Cost: cost1, Consumption: tier1},
		Tier2:            TierResult{Cost: cost2, Consumption: tier2},
		Tier3:            TierResult{Cost: cost3, Consumption: tier3},
	}
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
