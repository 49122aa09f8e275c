package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/carousel"
	"github.com/phanxgames/carousel/ebitenhost"
	"github.com/phanxgames/carousel/internal/landing"
)

var (
	showFPS       bool
	screenshotDir string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the carousel in a desktop window",
	Long: `Opens an Ebitengine window. Click the side buttons or the background,
right-click, swipe on a touch screen, or use the arrow keys.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS and TPS")
	windowCmd.Flags().StringVar(&screenshotDir, "screenshots", "screenshots", "directory for script screenshots")
}

func windowConfig(name string) ebitenhost.Config {
	return ebitenhost.Config{
		Title:         "Carousel: " + name,
		Width:         settings.Window.Width,
		Height:        settings.Window.Height,
		ShowFPS:       showFPS,
		ScreenshotDir: screenshotDir,
		Layout: func(area carousel.Rect) carousel.Layout {
			return landing.Layout(name, area)
		},
		CardSize: func(w float64) (float64, float64) {
			return landing.CardSize(name, w)
		},
		Logger: logger,
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	if section == landing.SectionFeatures {
		stage, err := featuresStage(settings)
		if err != nil {
			return err
		}
		defer stage.Close()
		return ebitenhost.New(stage, title[landing.Feature], windowConfig(section)).Run()
	}
	stage, err := agentsStage(settings)
	if err != nil {
		return err
	}
	defer stage.Close()
	return ebitenhost.New(stage, title[landing.Agent], windowConfig(section)).Run()
}
