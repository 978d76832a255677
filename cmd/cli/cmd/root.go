// Package cmd provides the CLI commands for tariffbill.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tariffbill/internal/config"
	"tariffbill/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tariffbill",
	Short: "Compute monthly electricity bills from usage spreadsheets",
	Long: `tariffbill reads timestamped kWh readings from a delimited usage
spreadsheet and computes a monthly bill under a flat-rate, tiered, or
time-of-use tariff plan.

Examples:
  tariffbill bill --plan plan.hcl --model tiered usage.csv
  tariffbill bill --plan plan.yaml --model time_of_use --format json usage.csv
  tariffbill validate plan.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tariffbill.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(billCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tariffbill version 0.1.0")
	},
}
