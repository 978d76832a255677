package tariff

import (
	"testing"

	"tariffbill/core/usage"
	"tariffbill/internal/errors"
)

func fullInputs() Inputs {
	tiers := testTiers()
	windows := testWindows()
	return Inputs{
		Flat:      &FlatRateConfig{Rate: 0.25},
		Tiered:    &tiers,
		TimeOfUse: &windows,
	}
}

func TestCalculateRouting(t *testing.T) {
	records := []usage.Record{
		{Timestamp: "2025-01-01 19:00:00", KWH: 100},
	}

	tests := []struct {
		name  string
		model Model
		check func(t *testing.T, bill *Bill)
	}{
		{
			name:  "flat rate populates only the flat sub-result",
			model: ModelFlatRate,
			check: func(t *testing.T, bill *Bill) {
				if bill.FlatRate == nil || bill.Tiered != nil || bill.TimeOfUse != nil {
					t.Errorf("wrong sub-result populated: %+v", bill)
				}
				if !approx(bill.TotalCost, 35.0) { // 100*0.25 + 10
					t.Errorf("TotalCost = %v, want 35.0", bill.TotalCost)
				}
			},
		},
		{
			name:  "tiered populates only the tiered sub-result",
			model: ModelTiered,
			check: func(t *testing.T, bill *Bill) {
				if bill.Tiered == nil || bill.FlatRate != nil || bill.TimeOfUse != nil {
					t.Errorf("wrong sub-result populated: %+v", bill)
				}
				if !approx(bill.TotalCost, 30.0) { // all of it in tier 1
					t.Errorf("TotalCost = %v, want 30.0", bill.TotalCost)
				}
			},
		},
		{
			name:  "time of use populates only the time-of-use sub-result",
			model: ModelTimeOfUse,
			check: func(t *testing.T, bill *Bill) {
				if bill.TimeOfUse == nil || bill.FlatRate != nil || bill.Tiered != nil {
					t.Errorf("wrong sub-result populated: %+v", bill)
				}
				if !approx(bill.TotalCost, 50.0) { // 19:00 is peak, 100*0.40 + 10
					t.Errorf("TotalCost = %v, want 50.0", bill.TotalCost)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill, err := Calculate(records, tt.model, fullInputs(), 10.0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bill.Model != tt.model {
				t.Errorf("Model = %s, want %s", bill.Model, tt.model)
			}
			if !approx(bill.TotalConsumption, 100) {
				t.Errorf("TotalConsumption = %v, want 100", bill.TotalConsumption)
			}
			tt.check(t, bill)
		})
	}
}

func TestCalculateMissingConfiguration(t *testing.T) {
	records := []usage.Record{
		{Timestamp: "2025-01-01 19:00:00", KWH: 1},
	}

	for _, model := range []Model{ModelFlatRate, ModelTiered, ModelTimeOfUse} {
		t.Run(model.String(), func(t *testing.T) {
			bill, err := Calculate(records, model, Inputs{}, 10.0)
			if bill != nil {
				t.Errorf("expected nil bill, got %+v", bill)
			}
			if !errors.IsType(err, errors.TypeMissingConfig) {
				t.Errorf("expected MISSING_CONFIGURATION, got %v", err)
			}
		})
	}
}

func TestCalculateUnknownModel(t *testing.T) {
	bill, err := Calculate(nil, Model("SEASONAL"), fullInputs(), 10.0)
	if bill != nil {
		t.Errorf("expected nil bill, got %+v", bill)
	}
	if !errors.IsType(err, errors.TypeUnknownModel) {
		t.Errorf("expected UNKNOWN_MODEL, got %v", err)
	}
}

func TestCalculateFeeInvariant(t *testing.T) {
	for _, model := range []Model{ModelFlatRate, ModelTiered, ModelTimeOfUse} {
		t.Run(model.String(), func(t *testing.T) {
			bill, err := Calculate(nil, model, fullInputs(), 10.0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !approx(bill.TotalCost, 10.0) {
				t.Errorf("TotalCost = %v, want the monthly fee alone", bill.TotalCost)
			}
		})
	}
}
