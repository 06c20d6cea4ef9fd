package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendwatch/internal/config"
	"github.com/theirongolddev/spendwatch/internal/prompt"
	"github.com/theirongolddev/spendwatch/internal/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure spendwatch preferences",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	p := prompt.NewLineReader(cmd.InOrStdin(), out)

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Str("path", config.Path()).Msg("config unreadable, starting from defaults")
		cfg = config.DefaultConfig()
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to spendwatch!")
	fmt.Fprintln(out, "  Press Enter to keep the current value.")
	fmt.Fprintln(out)

	// 1. Advisory threshold
	fmt.Fprintln(out, "  1. Recommended number of transactions per session")
	answer, err := p.Ask(fmt.Sprintf("     [%d] > ", cfg.General.AdvisoryTransactions))
	if err != nil {
		return err
	}
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && n > 0 {
		cfg.General.AdvisoryTransactions = n
	}
	fmt.Fprintln(out)

	// 2. Usage bar
	fmt.Fprintln(out, "  2. Show a budget usage bar after each transaction? (y/n)")
	answer, err = p.Ask(fmt.Sprintf("     [%s] > ", yesNo(cfg.General.UsageBar)))
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		cfg.General.UsageBar = true
	case "n", "no":
		cfg.General.UsageBar = false
	}
	fmt.Fprintln(out)

	// 3. Theme
	fmt.Fprintln(out, "  3. Color theme")
	current := 1
	for i, t := range theme.All {
		if t.Name == cfg.Appearance.Theme {
			current = i + 1
		}
		fmt.Fprintf(out, "     (%d) %s\n", i+1, t.Name)
	}
	answer, err = p.Ask(fmt.Sprintf("     [%d] > ", current))
	if err != nil {
		return err
	}
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && n >= 1 && n <= len(theme.All) {
		cfg.Appearance.Theme = theme.All[n-1].Name
	}
	fmt.Fprintln(out)

	// 4. Currency symbol
	fmt.Fprintln(out, "  4. Currency symbol")
	answer, err = p.Ask(fmt.Sprintf("     [%s] > ", cfg.Appearance.CurrencySymbol))
	if err != nil {
		return err
	}
	if sym := strings.TrimSpace(answer); sym != "" {
		cfg.Appearance.CurrencySymbol = sym
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `spendwatch setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
