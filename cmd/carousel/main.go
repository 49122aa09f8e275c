// Command carousel runs the landing page carousels in a window, in the
// terminal, or headless against an input script.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/carousel/internal/config"
	"github.com/phanxgames/carousel/internal/landing"
)

var (
	// Global flags
	configPath string
	verbose    bool
	section    string

	// Loaded in PersistentPreRunE.
	settings config.Settings
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Three-slot carousels for the agents and features sections",
	Long: `carousel drives the landing page's agent and feature carousels.

Navigation is locked for the section's cooldown after every accepted move;
clicks, right-clicks and swipes arriving in that window are dropped.

Settings come from defaults, --config (JSON or YAML), CAROUSEL_ environment
variables (CAROUSEL_AGENTS__COOLDOWN=300ms) and flags, later sources winning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return errors.Wrap(err, "initialize logger")
		}

		settings, err = config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		if _, err := settings.Section(section); err != nil {
			return err
		}
		logger.Debug("settings loaded",
			zap.String("section", section),
			zap.Duration("cooldown", settings.Agents.Cooldown),
			zap.Int("width", settings.Window.Width),
			zap.Int("height", settings.Window.Height))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "settings file (.json, .yaml or .yml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&section, "section", landing.SectionAgents, "carousel to run: agents or features")
	config.BindFlags(pf)

	rootCmd.AddCommand(windowCmd, termCmd, scriptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
