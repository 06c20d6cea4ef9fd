// Package cmd implements the spendwatch CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendwatch/internal/config"
	"github.com/theirongolddev/spendwatch/internal/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Advisory transactions: %d\n", cfg.General.AdvisoryTransactions)
	fmt.Fprintf(out, "    Usage bar:             %v\n", cfg.General.UsageBar)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	active := theme.Resolve(cfg.Appearance.Theme)
	if active != cfg.Appearance.Theme {
		fmt.Fprintf(out, "    Theme:    %s (from SPENDWATCH_THEME)\n", active)
	} else {
		fmt.Fprintf(out, "    Theme:    %s\n", active)
	}
	fmt.Fprintf(out, "    Currency: %s\n", cfg.Appearance.CurrencySymbol)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `spendwatch setup` to reconfigure.")
	return nil
}
