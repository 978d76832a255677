package tariff

import (
	"tariffbill/core/usage"
	"tariffbill/internal/errors"
)

// Inputs carries the per-model configuration objects offered to Calculate.
// Only the one matching the selected model is consulted.
type Inputs struct {
	Flat      *FlatRateConfig
	TimeOfUse *TimeOfUseConfig
	Tiered    *TieredConfig
}

// Bill is the result of one tariff calculation: the model that produced it,
// the top-level totals, and exactly one populated sub-result. It is freshly
// allocated per call and never mutated afterwards.
type Bill struct {
	Model            Model   `json:"model"`
	TotalCost        float64 `json:"total_cost"`
	TotalConsumption float64 `json:"total_consumption"`

	FlatRate  *FlatRateResult  `json:"flat_rate,omitempty"`
	Tiered    *TieredResult    `json:"tiered,omitempty"`
	TimeOfUse *TimeOfUseResult `json:"time_of_use,omitempty"`
}

// Calculate routes the records to the calculator selected by model.
// The matching configuration must be present in Inputs, otherwise the call
// fails with a MISSING_CONFIGURATION error; an unrecognized selector fails
// with UNKNOWN_MODEL. There are no partial results: a calculation either
// fully succeeds or fails before producing anything.
func Calculate(records []usage.Record, model Model, in Inputs, monthlyFee float64) (*Bill, error) {
	switch model {
	case ModelFlatRate:
		if in.Flat == nil {
			return nil, errors.MissingConfiguration(model.String())
		}
		r := FlatRate(records, *in.Flat, monthlyFee)
		return &Bill{
			Model:            model,
			TotalCost:        r.TotalCost,
			TotalConsumption: r.TotalConsumption,
			FlatRate:         &r,
		}, nil

	case ModelTimeOfUse:
		if in.TimeOfUse == nil {
			return nil, errors.MissingConfiguration(model.String())
		}
		r := TimeOfUse(records, *in.TimeOfUse, monthlyFee)
		return &Bill{
			Model:            model,
			TotalCost:        r.TotalCost,
			TotalConsumption: r.TotalConsumption,
			TimeOfUse:        &r,
		}, nil

	case ModelTiered:
		if in.Tiered == nil {
			return nil, errors.MissingConfiguration(model.String())
		}
		r := Tiered(records, *in.Tiered, monthlyFee)
		return &Bill{
			Model:            model,
			TotalCost:        r.TotalCost,
			TotalConsumption: r.TotalConsumption,
			Tiered:           &r,
		}, nil

	default:
		return nil, errors.UnknownModel(model.String())
	}
}
