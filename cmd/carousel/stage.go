package main

import (
	"github.com/phanxgames/carousel"
	"github.com/phanxgames/carousel/internal/config"
	"github.com/phanxgames/carousel/internal/landing"
)

// stageConfig builds the stage configuration for the named section from the
// loaded settings and the section's preset style.
func stageConfig(name string, s config.Settings) (carousel.StageConfig, error) {
	sec, err := s.Section(name)
	if err != nil {
		return carousel.StageConfig{}, err
	}
	style := landing.AgentsPreset().Style
	if name == landing.SectionFeatures {
		style = landing.FeaturesPreset().Style
	}
	area := carousel.Rect{Width: float64(s.Window.Width), Height: float64(s.Window.Height)}
	return carousel.StageConfig{
		Name:          name,
		Carousel:      sec.Config,
		Layout:        landing.Layout(name, area),
		Style:         style,
		TPS:           s.Window.TPS,
		ReducedMotion: s.ReducedMotion,
		Visibility:    sec.Visibility,
		Logger:        logger,
	}, nil
}

func agentsStage(s config.Settings) (*carousel.Stage[landing.Agent], error) {
	cfg, err := stageConfig(landing.SectionAgents, s)
	if err != nil {
		return nil, err
	}
	return carousel.NewStage(landing.Agents(), cfg)
}

func featuresStage(s config.Settings) (*carousel.Stage[landing.Feature], error) {
	cfg, err := stageConfig(landing.SectionFeatures, s)
	if err != nil {
		return nil, err
	}
	return carousel.NewStage(landing.Features(), cfg)
}

func title[T landing.Titled](it T) string {
	return it.Title()
}
