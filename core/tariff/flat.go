package tariff

import "tariffbill/core/usage"

// FlatRate bills total consumption at a single rate. The usage cost is
// rounded to 2 decimals before the monthly fee is added, so the fee is
// never subject to rounding.
func FlatRate(records []usage.Record, cfg FlatRateConfig, monthlyFee float64) FlatRateResult {
	total := usage.TotalConsumption(records)
	return FlatRateResult{
		TotalCost:        round2(total*cfg.Rate) + monthlyFee,
		TotalConsumption: total,
	}
}
