package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/carousel/internal/landing"
	"github.com/phanxgames/carousel/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the carousel in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTerm,
}

func agentDetail(a landing.Agent) string {
	return a.Description
}

func runTerm(cmd *cobra.Command, args []string) error {
	if section == landing.SectionFeatures {
		stage, err := featuresStage(settings)
		if err != nil {
			return err
		}
		defer stage.Close()
		return tui.Run(tui.New(stage, title[landing.Feature], settings.Window.TPS))
	}
	stage, err := agentsStage(settings)
	if err != nil {
		return err
	}
	defer stage.Close()
	return tui.Run(tui.New(stage, title[landing.Agent], settings.Window.TPS,
		tui.WithDetail(agentDetail)))
}
