package tariffconfig

import (
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"tariffbill/core/tariff"
	"tariffbill/internal/errors"
)

// hclPlan mirrors the HCL file shape:
//
//	monthly_fee = 10.0
//
//	flat_rate {
//	  rate = 0.25
//	}
//
//	tiered {
//	  tier { level = 1  low_kwh = 0    high_kwh = 100   rate = 0.20 }
//	  tier { level = 2  low_kwh = 101  high_kwh = 300   rate = 0.30 }
//	  tier { level = 3  low_kwh = 301  high_kwh = 10000 rate = 0.40 }
//	}
//
//	time_of_use {
//	  window "peak"     { start = "18:00:00"  end = "21:59:59"  rate = 0.40 }
//	  window "off_peak" { start = "22:00:00"  end = "06:59:59"  rate = 0.12 }
//	  window "shoulder" { start = "07:00:00"  end = "17:59:59"  rate = 0.30 }
//	}
type hclPlan struct {
	MonthlyFee *float64      `hcl:"monthly_fee,optional"`
	FlatRate   *hclFlatRate  `hcl:"flat_rate,block"`
	Tiered     *hclTiered    `hcl:"tiered,block"`
	TimeOfUse  *hclTimeOfUse `hcl:"time_of_use,block"`
}

type hclFlatRate struct {
	Rate float64 `hcl:"rate"`
}

type hclTiered struct {
	Tiers []hclTier `hcl:"tier,block"`
}

type hclTier struct {
	Level   int     `hcl:"level"`
	LowKWH  float64 `hcl:"low_kwh"`
	HighKWH float64 `hcl:"high_kwh"`
	Rate    float64 `hcl:"rate"`
}

type hclTimeOfUse struct {
	Windows []hclWindow `hcl:"window,block"`
}

type hclWindow struct {
	Name  string  `hcl:"name,label"`
	Start string  `hcl:"start"`
	End   string  `hcl:"end"`
	Rate  float64 `hcl:"rate"`
}

func loadHCL(path string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing tariff plan", diags).
			WithContext("path", path)
	}

	var raw hclPlan
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("decoding tariff plan", diags).
			WithContext("path", path)
	}

	plan := &Plan{MonthlyFee: raw.MonthlyFee}

	if raw.FlatRate != nil {
		plan.Flat = &tariff.FlatRateConfig{Rate: raw.FlatRate.Rate}
	}

	if raw.Tiered != nil {
		tiers := make([]tariff.TierThreshold, 0, len(raw.Tiered.Tiers))
		for _, t := range raw.Tiered.Tiers {
			tiers = append(tiers, tariff.TierThreshold{
				Level:   t.Level,
				LowKWH:  t.LowKWH,
				HighKWH: t.HighKWH,
				Rate:    t.Rate,
			})
		}
		cfg, err := tiersFromList(tiers)
		if err != nil {
			return nil, err
		}
		plan.Tiered = cfg
	}

	if raw.TimeOfUse != nil {
		windows := make([]tariff.TimeWindow, 0, len(raw.TimeOfUse.Windows))
		for _, w := range raw.TimeOfUse.Windows {
			windows = append(windows, tariff.TimeWindow{
				Category:    tariff.WindowCategory(strings.ToUpper(w.Name)),
				PeriodStart: w.Start,
				PeriodEnd:   w.End,
				Rate:        w.Rate,
			})
		}
		cfg, err := windowsFromList(windows)
		if err != nil {
			return nil, err
		}
		plan.TimeOfUse = cfg
	}

	return plan, nil
}
