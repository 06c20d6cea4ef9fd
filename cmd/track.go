package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theirongolddev/spendwatch/internal/cli"
	"github.com/theirongolddev/spendwatch/internal/config"
	"github.com/theirongolddev/spendwatch/internal/ledger"
	"github.com/theirongolddev/spendwatch/internal/prompt"
	"github.com/theirongolddev/spendwatch/internal/theme"
)

const usageBarWidth = 24

var (
	flagBudget   string
	flagPlain    bool
	flagAdvisory int
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Run an interactive budget session",
	RunE:  runTrack,
}

func init() {
	addTrackFlags(trackCmd)
	rootCmd.AddCommand(trackCmd)
}

// addTrackFlags registers the session flags. The root command runs a
// session too, so both carry them.
func addTrackFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagBudget, "budget", "b", "", "Budget for this period (skips the budget prompt)")
	c.Flags().BoolVar(&flagPlain, "plain", false, "Use line-oriented prompts even on a terminal")
	c.Flags().IntVar(&flagAdvisory, "advisory", 0, "Suggest more transactions below this count (default from config)")
}

func runTrack(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Str("path", config.Path()).Msg("config unavailable, using defaults")
		cfg = config.DefaultConfig()
	}
	theme.SetActive(theme.Resolve(cfg.Appearance.Theme))
	cli.CurrencySymbol = cfg.Appearance.CurrencySymbol

	opts := ledger.Options{AdvisoryMinimum: cfg.General.AdvisoryTransactions}
	if flagAdvisory > 0 {
		opts.AdvisoryMinimum = flagAdvisory
	}
	if cfg.General.UsageBar {
		opts.UsageBarWidth = usageBarWidth
	}
	if flagBudget != "" {
		b, err := ledger.ParseAmount(flagBudget)
		if err != nil {
			return fmt.Errorf("invalid --budget: %w", err)
		}
		opts.Budget = &b
	}

	out := cmd.OutOrStdout()
	if !flagQuiet {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTitle("SPENDWATCH"))
		fmt.Fprintln(out, cli.RenderNotice("  Type 'done' at the transaction prompt when you are finished."))
		fmt.Fprintln(out)
	}

	var p prompt.Prompter
	if !flagPlain && cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		p = prompt.NewForm(theme.Active.Name)
	} else {
		p = prompt.NewLineReader(cmd.InOrStdin(), out)
	}

	_, err = ledger.NewSession(p, out, opts).Run()
	return err
}
