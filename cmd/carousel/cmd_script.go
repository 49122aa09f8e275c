package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/carousel"
	"github.com/phanxgames/carousel/internal/landing"
)

// ErrScriptFailed is returned when a script finishes with failed expectations.
var ErrScriptFailed = errors.New("script failed")

// ErrScriptTimeout is returned when a script does not finish within the
// frame limit.
var ErrScriptTimeout = errors.New("script did not finish")

var maxFrames int

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "Run a JSON input script headless and check its expectations",
	Long: `Runs a script without opening a window. Each frame advances the clock by
1/TPS seconds. Steps:

  {"action":"click","x":700,"y":360}
  {"action":"rightclick","x":640,"y":360}
  {"action":"swipe","fromX":800,"toX":500,"y":360,"frames":6}
  {"action":"wait","frames":40}
  {"action":"expect","index":2}
  {"action":"screenshot","label":"after-swipe"}

Screenshot steps are logged only.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	scriptCmd.Flags().IntVar(&maxFrames, "max-frames", 100000, "abort after this many frames")
}

func runScript(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "read script")
	}
	runner, err := carousel.LoadScript(data)
	if err != nil {
		return err
	}

	if section == landing.SectionFeatures {
		stage, err := featuresStage(settings)
		if err != nil {
			return err
		}
		defer stage.Close()
		return playScript(cmd.OutOrStdout(), stage, runner)
	}
	stage, err := agentsStage(settings)
	if err != nil {
		return err
	}
	defer stage.Close()
	return playScript(cmd.OutOrStdout(), stage, runner)
}

// playScript steps stage until runner is done and reports the outcome.
func playScript[T carousel.Item](out io.Writer, stage *carousel.Stage[T], runner *carousel.Runner) error {
	stage.SetViewport(float64(settings.Window.Width), float64(settings.Window.Height))
	stage.SetRunner(runner)

	frames := 0
	for ; frames < maxFrames && !runner.Done(); frames++ {
		stage.Update()
	}
	if !runner.Done() {
		return errors.Wrapf(ErrScriptTimeout, "after %d frames", frames)
	}
	logger.Debug("script finished", zap.Int("frames", frames), zap.Int("selected", stage.SelectedIndex()))

	failures := runner.Failures()
	for _, f := range failures {
		fmt.Fprintf(out, "FAIL %v\n", f)
	}
	if len(failures) > 0 {
		return errors.Wrapf(ErrScriptFailed, "%d of the expectations did not hold", len(failures))
	}
	fmt.Fprintf(out, "ok  %d frames, selected %d (%s)\n",
		frames, stage.SelectedIndex(), stage.Controller().Selected().ItemID())
	return nil
}
