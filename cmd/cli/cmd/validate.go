// Package cmd - validate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tariffbill/adapters/tariffconfig"
	"tariffbill/core/tariff"
)

var strictWindows bool

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a tariff plan file",
	Long: `Parse a tariff plan file and check its invariants: tier ordering,
window time formats, and at most one midnight-spanning window.

With --strict-windows the time-of-use windows must also partition the
24-hour day with no gap and no overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strictWindows, "strict-windows", false, "require time-of-use windows to partition the day")
}

func runValidate(cmd *cobra.Command, args []string) error {
	plan, err := tariffconfig.LoadPlan(args[0])
	if err != nil {
		return err
	}

	if strictWindows && plan.TimeOfUse != nil {
		if err := tariff.ValidateWindows(*plan.TimeOfUse); err != nil {
			return err
		}
	}

	models := 0
	for _, present := range []bool{plan.Flat != nil, plan.Tiered != nil, plan.TimeOfUse != nil} {
		if present {
			models++
		}
	}
	fmt.Printf("%s: valid (%d tariff model(s) configured)\n", args[0], models)
	return nil
}
