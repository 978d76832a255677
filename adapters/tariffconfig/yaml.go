package tariffconfig

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tariffbill/core/tariff"
	"tariffbill/internal/errors"
)

// yamlPlan mirrors the YAML file shape:
//
//	monthly_fee: 10.0
//	flat_rate:
//	  rate: 0.25
//	tiered:
//	  tiers:
//	    - { level: 1, low_kwh: 0,   high_kwh: 100,   rate: 0.20 }
//	    - { level: 2, low_kwh: 101, high_kwh: 300,   rate: 0.30 }
//	    - { level: 3, low_kwh: 301, high_kwh: 10000, rate: 0.40 }
//	time_of_use:
//	  windows:
//	    - { category: peak,     start: "18:00:00", end: "21:59:59", rate: 0.40 }
//	    - { category: off_peak, start: "22:00:00", end: "06:59:59", rate: 0.12 }
//	    - { category: shoulder, start: "07:00:00", end: "17:59:59", rate: 0.30 }
type yamlPlan struct {
	MonthlyFee *float64       `yaml:"monthly_fee"`
	FlatRate   *yamlFlatRate  `yaml:"flat_rate"`
	Tiered     *yamlTiered    `yaml:"tiered"`
	TimeOfUse  *yamlTimeOfUse `yaml:"time_of_use"`
}

type yamlFlatRate struct {
	Rate float64 `yaml:"rate"`
}

type yamlTiered struct {
	Tiers []yamlTier `yaml:"tiers"`
}

type yamlTier struct {
	Level   int     `yaml:"level"`
	LowKWH  float64 `yaml:"low_kwh"`
	HighKWH float64 `yaml:"high_kwh"`
	Rate    float64 `yaml:"rate"`
}

type yamlTimeOfUse struct {
	Windows []yamlWindow `yaml:"windows"`
}

type yamlWindow struct {
	Category string  `yaml:"category"`
	Start    string  `yaml:"start"`
	End      string  `yaml:"end"`
	Rate     float64 `yaml:"rate"`
}

func loadYAML(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("tariff plan", path)
		}
		return nil, errors.Parsing("reading tariff plan", err).
			WithContext("path", path)
	}

	var raw yamlPlan
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("decoding tariff plan", err).
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
				Category:    tariff.WindowCategory(strings.ToUpper(w.Category)),
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
