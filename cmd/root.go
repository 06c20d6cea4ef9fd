package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagQuiet    bool
	flagNoColor  bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "spendwatch",
	Short: "Track spending against a budget",
	Long: "Set a budget, record expenses one at a time, get warned the moment " +
		"you go over, and finish with a summary report.",
	RunE:              runTrack,
	PersistentPreRunE: setupOutput,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress banners")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	addTrackFlags(rootCmd)
}

// setupOutput configures logging and the color profile before any command runs.
func setupOutput(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.Kitchen,
		NoColor:    flagNoColor,
	})

	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}
