package output

import (
	"fmt"
	"io"

	"tariffbill/core/tariff"
)

// CLIFormatter renders a bill as a boxed summary table.
type CLIFormatter struct {
	// ShowDetails includes the per-tier / per-window breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the bill to w
func (f *CLIFormatter) Render(w io.Writer, bill *tariff.Bill) error {
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	line("┌──────────────────────────────────────────────────────────────┐")
	line("│ %-60s │", fmt.Sprintf("MONTHLY BILL  (%s)", bill.Model))
	line("├──────────────────────────────────────────────────────────────┤")

	if f.ShowDetails {
		switch {
		case bill.Tiered != nil:
			f.renderRow(w, "Tier 1", bill.Tiered.Tier1.Consumption, bill.Tiered.Tier1.Cost)
			f.renderRow(w, "Tier 2", bill.Tiered.Tier2.Consumption, bill.Tiered.Tier2.Cost)
			f.renderRow(w, "Tier 3", bill.Tiered.Tier3.Consumption, bill.Tiered.Tier3.Cost)
		case bill.TimeOfUse != nil:
			f.renderRow(w, "Peak", bill.TimeOfUse.Peak.Consumption, bill.TimeOfUse.Peak.Cost)
			f.renderRow(w, "Off-peak", bill.TimeOfUse.OffPeak.Consumption, bill.TimeOfUse.OffPeak.Cost)
			f.renderRow(w, "Shoulder", bill.TimeOfUse.Shoulder.Consumption, bill.TimeOfUse.Shoulder.Cost)
		}
	}

	line("│ %-38s %21s │", "TOTAL CONSUMPTION",
		fmt.Sprintf("%.3f kWh", bill.TotalConsumption))
	line("│ %-38s %21s │", "TOTAL COST",
		fmt.Sprintf("$%.2f", bill.TotalCost))
	line("└──────────────────────────────────────────────────────────────┘")
	return nil
}

func (f *CLIFormatter) renderRow(w io.Writer, label string, consumption, cost float64) {
	fmt.Fprintf(w, "│   └─ %-33s %21s │\n",
		fmt.Sprintf("%-10s %12.3f kWh", label, consumption),
		fmt.Sprintf("$%.2f", cost))
}
