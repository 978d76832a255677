package tariffconfig

import (
	"os"
	"path/filepath"
	"testing"

	"tariffbill/core/tariff"
	"tariffbill/internal/errors"
)

const hclFixture = `
monthly_fee = 10.0

flat_rate {
  rate = 0.25
}

tiered {
  tier {
    level    = 1
    low_kwh  = 0
    high_kwh = 100
    rate     = 0.20
  }
  tier {
    level    = 2
    low_kwh  = 101
    high_kwh = 300
    rate     = 0.30
  }
  tier {
    level    = 3
    low_kwh  = 301
    high_kwh = 10000
    rate     = 0.40
  }
}

time_of_use {
  window "peak" {
    start = "18:00:00"
    end   = "21:59:59"
    rate  = 0.40
  }
  window "off_peak" {
    start = "22:00:00"
    end   = "06:59:59"
    rate  = 0.12
  }
  window "shoulder" {
    start = "07:00:00"
    end   = "17:59:59"
    rate  = 0.30
  }
}
`

const yamlFixture = `
monthly_fee: 10.0
flat_rate:
  rate: 0.25
tiered:
  tiers:
    - { level: 1, low_kwh: 0,   high_kwh: 100,   rate: 0.20 }
    - { level: 2, low_kwh: 101, high_kwh: 300,   rate: 0.30 }
    - { level: 3, low_kwh: 301, high_kwh: 10000, rate: 0.40 }
time_of_use:
  windows:
    - { category: peak,     start: "18:00:00", end: "21:59:59", rate: 0.40 }
    - { category: off_peak, start: "22:00:00", end: "06:59:59", rate: 0.12 }
    - { category: shoulder, start: "07:00:00", end: "17:59:59", rate: 0.30 }
`

func writePlanFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func checkFullPlan(t *testing.T, plan *Plan) {
	t.Helper()
	if plan.MonthlyFee == nil || *plan.MonthlyFee != 10.0 {
		t.Errorf("MonthlyFee = %v, want 10.0", plan.MonthlyFee)
	}
	if plan.Flat == nil || plan.Flat.Rate != 0.25 {
		t.Errorf("Flat = %+v, want rate 0.25", plan.Flat)
	}
	if plan.Tiered == nil {
		t.Fatal("Tiered config missing")
	}
	if plan.Tiered.Tier1.HighKWH != 100 || plan.Tiered.Tier2.HighKWH != 300 || plan.Tiered.Tier3.HighKWH != 10000 {
		t.Errorf("tier boundaries = %+v", plan.Tiered)
	}
	if plan.TimeOfUse == nil {
		t.Fatal("TimeOfUse config missing")
	}
	if plan.TimeOfUse.Peak.PeriodStart != "18:00:00" {
		t.Errorf("peak window = %+v", plan.TimeOfUse.Peak)
	}
	if plan.TimeOfUse.OffPeak.Category != tariff.CategoryOffPeak {
		t.Errorf("off-peak category = %s", plan.TimeOfUse.OffPeak.Category)
	}
}

func TestLoadPlanHCL(t *testing.T) {
	plan, err := LoadPlan(writePlanFile(t, "plan.hcl", hclFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkFullPlan(t, plan)
}

func TestLoadPlanYAML(t *testing.T) {
	plan, err := LoadPlan(writePlanFile(t, "plan.yaml", yamlFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkFullPlan(t, plan)
}

func TestLoadPlanErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantType errors.Type
	}{
		{
			name:     "unsupported extension",
			file:     "plan.toml",
			content:  "rate = 0.25",
			wantType: errors.TypeConfig,
		},
		{
			name:     "malformed hcl",
			file:     "plan.hcl",
			content:  "flat_rate {",
			wantType: errors.TypeParsing,
		},
		{
			name:     "malformed yaml",
			file:     "plan.yaml",
			content:  "flat_rate: [",
			wantType: errors.TypeParsing,
		},
		{
			name:     "no tariff configuration",
			file:     "plan.yaml",
			content:  "monthly_fee: 10.0",
			wantType: errors.TypeConfig,
		},
		{
			name: "wrong tier count",
			file: "plan.yaml",
			content: `
tiered:
  tiers:
    - { level: 1, low_kwh: 0, high_kwh: 100, rate: 0.20 }
`,
			wantType: errors.TypeConfig,
		},
		{
			name: "non-ascending tier boundaries",
			file: "plan.yaml",
			content: `
tiered:
  tiers:
    - { level: 1, low_kwh: 0,   high_kwh: 300,   rate: 0.20 }
    - { level: 2, low_kwh: 101, high_kwh: 100,   rate: 0.30 }
    - { level: 3, low_kwh: 301, high_kwh: 10000, rate: 0.40 }
`,
			wantType: errors.TypeConfig,
		},
		{
			name: "missing window",
			file: "plan.yaml",
			content: `
time_of_use:
  windows:
    - { category: peak,     start: "18:00:00", end: "21:59:59", rate: 0.40 }
    - { category: off_peak, start: "22:00:00", end: "06:59:59", rate: 0.12 }
`,
			wantType: errors.TypeConfig,
		},
		{
			name: "duplicate window",
			file: "plan.yaml",
			content: `
time_of_use:
  windows:
    - { category: peak, start: "18:00:00", end: "21:59:59", rate: 0.40 }
    - { category: peak, start: "22:00:00", end: "06:59:59", rate: 0.12 }
    - { category: shoulder, start: "07:00:00", end: "17:59:59", rate: 0.30 }
`,
			wantType: errors.TypeConfig,
		},
		{
			name: "bad window time",
			file: "plan.yaml",
			content: `
time_of_use:
  windows:
    - { category: peak,     start: "6pm",      end: "21:59:59", rate: 0.40 }
    - { category: off_peak, start: "22:00:00", end: "06:59:59", rate: 0.12 }
    - { category: shoulder, start: "07:00:00", end: "17:59:59", rate: 0.30 }
`,
			wantType: errors.TypeConfig,
		},
		{
			name: "two midnight-spanning windows",
			file: "plan.yaml",
			content: `
time_of_use:
  windows:
    - { category: peak,     start: "23:00:00", end: "01:00:00", rate: 0.40 }
    - { category: off_peak, start: "22:00:00", end: "06:59:59", rate: 0.12 }
    - { category: shoulder, start: "07:00:00", end: "17:59:59", rate: 0.30 }
`,
			wantType: errors.TypeConfig,
		},
		{
			name:     "negative monthly fee",
			file:     "plan.yaml",
			content:  "monthly_fee: -1.0\nflat_rate:\n  rate: 0.25\n",
			wantType: errors.TypeConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := LoadPlan(writePlanFile(t, tt.file, tt.content))
			if plan != nil {
				t.Errorf("expected nil plan, got %+v", plan)
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("expected %s, got %v", tt.wantType, err)
			}
		})
	}
}

func TestPlanFee(t *testing.T) {
	fee := 12.5
	withFee := &Plan{MonthlyFee: &fee}
	if got := withFee.Fee(10.0); got != 12.5 {
		t.Errorf("Fee() = %v, want the plan override", got)
	}

	withoutFee := &Plan{}
	if got := withoutFee.Fee(10.0); got != 10.0 {
		t.Errorf("Fee() = %v, want the fallback", got)
	}
}
