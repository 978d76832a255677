// Package tariffconfig loads tariff plan files. A plan declares the monthly
// fee and any subset of the three tariff model configurations; the decoder
// is chosen by file extension (.hcl, .yaml/.yml).
package tariffconfig

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tariffbill/core/tariff"
	"tariffbill/internal/errors"
)

// Plan is a parsed tariff plan file.
type Plan struct {
	// MonthlyFee overrides the configured default fee when present
	MonthlyFee *float64

	Flat      *tariff.FlatRateConfig
	Tiered    *tariff.TieredConfig
	TimeOfUse *tariff.TimeOfUseConfig
}

// Inputs returns the plan's configurations in dispatcher form.
func (p *Plan) Inputs() tariff.Inputs {
	return tariff.Inputs{
		Flat:      p.Flat,
		Tiered:    p.Tiered,
		TimeOfUse: p.TimeOfUse,
	}
}

// Fee returns the plan's monthly fee, falling back to the given default.
func (p *Plan) Fee(fallback float64) float64 {
	if p.MonthlyFee != nil {
		return *p.MonthlyFee
	}
	return fallback
}

// LoadPlan parses and validates a tariff plan file.
func LoadPlan(path string) (*Plan, error) {
	var (
		plan *Plan
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		plan, err = loadHCL(path)
	case ".yaml", ".yml":
		plan, err = loadYAML(path)
	default:
		return nil, errors.Newf(errors.TypeConfig,
			"unsupported tariff plan format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// validatePlan applies the plan-level invariants the engine itself does not
// enforce: tier ordering and window time sanity.
func validatePlan(plan *Plan) error {
	if plan.Flat == nil && plan.Tiered == nil && plan.TimeOfUse == nil {
		return errors.Config("tariff plan declares no tariff configuration")
	}
	if plan.MonthlyFee != nil && *plan.MonthlyFee < 0 {
		return errors.Config("monthly fee must be non-negative")
	}

	if plan.Flat != nil && plan.Flat.Rate < 0 {
		return errors.Config("flat rate must be non-negative")
	}

	if plan.Tiered != nil {
		if err := tariff.ValidateTiers(*plan.Tiered); err != nil {
			return err
		}
	}

	if plan.TimeOfUse != nil {
		if err := validateWindowTimes(*plan.TimeOfUse); err != nil {
			return err
		}
	}
	return nil
}

// validateWindowTimes checks that every window boundary parses and that at
// most one window spans midnight. Gap/overlap checking stays opt-in via
// tariff.ValidateWindows so default billing behavior is unchanged.
func validateWindowTimes(cfg tariff.TimeOfUseConfig) error {
	wrapping := 0
	for _, w := range []tariff.TimeWindow{cfg.Peak, cfg.OffPeak, cfg.Shoulder} {
		start, err := time.Parse("15:04:05", w.PeriodStart)
		if err != nil {
			return errors.Newf(errors.TypeConfig,
				"window %s start %q is not a valid HH:MM:SS time",
				w.Category, w.PeriodStart)
		}
		end, err := time.Parse("15:04:05", w.PeriodEnd)
		if err != nil {
			return errors.Newf(errors.TypeConfig,
				"window %s end %q is not a valid HH:MM:SS time",
				w.Category, w.PeriodEnd)
		}
		if w.Rate < 0 {
			return errors.Newf(errors.TypeConfig,
				"window %s rate must be non-negative", w.Category)
		}
		if start.After(end) {
			wrapping++
		}
	}
	if wrapping > 1 {
		return errors.Config("at most one window may span midnight")
	}
	return nil
}

// tiersFromList orders raw tiers by level and maps them onto the fixed
// three-tier configuration.
func tiersFromList(tiers []tariff.TierThreshold) (*tariff.TieredConfig, error) {
	if len(tiers) != 3 {
		return nil, errors.Newf(errors.TypeConfig,
			"tiered tariff needs exactly 3 tiers, got %d", len(tiers))
	}
	sorted := make([]tariff.TierThreshold, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	return &tariff.TieredConfig{
		Tier1: sorted[0],
		Tier2: sorted[1],
		Tier3: sorted[2],
	}, nil
}

// windowsFromList maps named windows onto the fixed three-window
// configuration.
func windowsFromList(windows []tariff.TimeWindow) (*tariff.TimeOfUseConfig, error) {
	cfg := &tariff.TimeOfUseConfig{}
	seen := map[tariff.WindowCategory]bool{}

	for _, w := range windows {
		if seen[w.Category] {
			return nil, errors.Newf(errors.TypeConfig,
				"duplicate time-of-use window: %s", w.Category)
		}
		seen[w.Category] = true

		switch w.Category {
		case tariff.CategoryPeak:
			cfg.Peak = w
		case tariff.CategoryOffPeak:
			cfg.OffPeak = w
		case tariff.CategoryShoulder:
			cfg.Shoulder = w
		default:
			return nil, errors.Newf(errors.TypeConfig,
				"unknown time-of-use window category: %s", w.Category)
		}
	}

	for _, c := range []tariff.WindowCategory{
		tariff.CategoryPeak, tariff.CategoryOffPeak, tariff.CategoryShoulder,
	} {
		if !seen[c] {
			return nil, errors.Newf(errors.TypeConfig,
				"time-of-use tariff is missing the %s window", c)
		}
	}
	return cfg, nil
}
