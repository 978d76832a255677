// Package cmd - bill command
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tariffbill/adapters/spreadsheet"
	"tariffbill/adapters/tariffconfig"
	"tariffbill/core/output"
	"tariffbill/core/tariff"
	"tariffbill/internal/config"
)

var (
	planFile     string
	modelName    string
	outputFormat string
	feeOverride  float64
	showDetails  bool
	checkWindows bool
)

// billCmd represents the bill command
var billCmd = &cobra.Command{
	Use:   "bill [usage-file]",
	Short: "Compute a monthly bill from a usage spreadsheet",
	Long: `Read a delimited usage spreadsheet, apply the selected tariff model
from a plan file, and print the cost breakdown.

The usage file must carry "timestamp" and "kWh" columns. When no usage file
is given the configured default path is used.

Examples:
  tariffbill bill --plan plan.hcl --model flat_rate usage.csv
  tariffbill bill --plan plan.hcl --model tiered usage.csv
  tariffbill bill --plan plan.yaml --model time_of_use --format json usage.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBill,
}

func init() {
	billCmd.Flags().StringVarP(&planFile, "plan", "p", "", "tariff plan file (.hcl, .yaml)")
	billCmd.Flags().StringVarP(&modelName, "model", "m", "", "tariff model (flat_rate, tiered, time_of_use)")
	billCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	billCmd.Flags().Float64Var(&feeOverride, "fee", -1, "monthly fee override")
	billCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show the per-tier / per-window breakdown")
	billCmd.Flags().BoolVar(&checkWindows, "check-windows", false, "reject time-of-use plans whose windows overlap or leave gaps")
	_ = billCmd.MarkFlagRequired("plan")
	_ = billCmd.MarkFlagRequired("model")
}

func runBill(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	usagePath := cfg.Input.UsageFile
	if len(args) > 0 {
		usagePath = args[0]
	}

	plan, err := tariffconfig.LoadPlan(planFile)
	if err != nil {
		return err
	}

	if checkWindows && plan.TimeOfUse != nil {
		if err := tariff.ValidateWindows(*plan.TimeOfUse); err != nil {
			return err
		}
	}

	records, err := spreadsheet.ReadUsageFile(usagePath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No valid usage records were found in the file.")
		return nil
	}

	fee := plan.Fee(cfg.Billing.MonthlyFee)
	if feeOverride >= 0 {
		fee = feeOverride
	}

	model := tariff.Model(strings.ToUpper(modelName))
	bill, err := tariff.Calculate(records, model, plan.Inputs(), fee)
	if err != nil {
		return err
	}

	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}
	details := cfg.Output.ShowDetails
	if cmd.Flags().Changed("details") {
		details = showDetails
	}
	formatter, err := output.ForFormat(format, details)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, bill)
}
