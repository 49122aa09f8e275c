// Package landing holds the content and tuning of the landing page's two
// carousels: the agents section and the features section.
package landing

import (
	"strconv"
	"time"

	"github.com/phanxgames/carousel"
)

// Section names, used as config keys and in selection events.
const (
	SectionAgents   = "agents"
	SectionFeatures = "features"
)

// Agent is a pre-built trading agent shown in the agents carousel.
type Agent struct {
	ID          int
	Name        string
	Image       string
	Scene       string // remote 3D scene id, mounted lazily for the selected agent
	Description string
	Features    []string
}

// ItemID implements carousel.Item.
func (a Agent) ItemID() string { return strconv.Itoa(a.ID) }

// Title implements Titled.
func (a Agent) Title() string { return a.Name }

// Feature is one card of the features carousel.
type Feature struct {
	ID        int
	Name      string
	LeftIcon  string
	RightIcon string
}

// ItemID implements carousel.Item.
func (f Feature) ItemID() string { return strconv.Itoa(f.ID) }

// Title implements Titled.
func (f Feature) Title() string { return f.Name }

// Titled is implemented by items that have a display name. Hosts use it to
// label cards.
type Titled interface {
	carousel.Item
	Title() string
}

var agentFeatures = []string{
	"Optimized for highly volatile",
	"Low-market-cap assets",
	"Leveraging momentum and social sentiment",
}

// Agents returns the agents carousel's items.
func Agents() []Agent {
	return []Agent{
		{
			ID: 1, Name: "Titan", Image: "agent/TITAN.png", Scene: "uWtUPmEIhWF4Rx3H",
			Description: "Our most versatile agent, designed to adapt to any market condition and capitalize on emerging opportunities.",
			Features:    agentFeatures,
		},
		{
			ID: 2, Name: "Apollo", Image: "agent/APOLLO.png", Scene: "M-K9pd0e08TgVLnO",
			Description: "Specialized in high-risk, high-reward meme coin trading with advanced sentiment analysis.",
			Features:    agentFeatures,
		},
		{
			ID: 3, Name: "Shade", Image: "agent/SHADE.png", Scene: "HF18Pt9jtGphfsbk",
			Description: "Expert in navigating low liquidity markets while minimizing slippage and maximizing returns.",
			Features:    agentFeatures,
		},
	}
}

// Features returns the features carousel's items.
func Features() []Feature {
	return []Feature{
		{ID: 1, Name: "AI Trade", LeftIcon: "Carousel/left-ai-trade-icon.png", RightIcon: "Carousel/right-ai-trade-icon.png"},
		{ID: 2, Name: "Pre-built Agents", LeftIcon: "Carousel/left-prebuilt-icon.png", RightIcon: "Carousel/right-prebuilt-icon.png"},
		{ID: 3, Name: "CEX & DEX", LeftIcon: "Carousel/left-cex-icon.png", RightIcon: "Carousel/right-cex-icon.png"},
		{ID: 4, Name: "Customizable SDK", LeftIcon: "Carousel/left-sdk-icon.png", RightIcon: "Carousel/right-sdk-icon.png"},
		{ID: 5, Name: "High Performance", LeftIcon: "Carousel/left-high-icon.png", RightIcon: "Carousel/right-high-icon.png"},
	}
}

// Preset is a section's tuning.
type Preset struct {
	Carousel   carousel.Config
	Visibility carousel.VisibilityConfig
	Style      carousel.StyleFunc
}

// AgentsPreset centers the second agent and locks navigation for 500ms.
func AgentsPreset() Preset {
	return Preset{
		Carousel: carousel.Config{
			InitialIndex:     1,
			Cooldown:         500 * time.Millisecond,
			MinSwipeDistance: carousel.DefaultMinSwipeDistance,
		},
		Visibility: carousel.VisibilityConfig{Threshold: 0.1, RootMargin: 50},
		Style:      carousel.AgentStyle,
	}
}

// FeaturesPreset centers the first card and locks navigation for 700ms.
func FeaturesPreset() Preset {
	return Preset{
		Carousel: carousel.Config{
			InitialIndex:     0,
			Cooldown:         700 * time.Millisecond,
			MinSwipeDistance: carousel.DefaultMinSwipeDistance,
		},
		Visibility: carousel.VisibilityConfig{Threshold: 0.1, RootMargin: 100},
		Style:      carousel.FeatureStyle,
	}
}

// Button size and spacing around the selected card, in pixels.
const (
	ButtonWidth  = 80.0
	ButtonHeight = 60.0
	ButtonGap    = 24.0
)

// CardSize returns the selected card's size for a section and viewport width.
func CardSize(section string, viewportWidth float64) (w, h float64) {
	if section == SectionFeatures {
		switch {
		case viewportWidth >= carousel.BreakpointDesktop:
			return 746 * 0.6, 420
		case viewportWidth >= carousel.BreakpointTablet:
			return 746 * 0.5, 360
		default:
			return viewportWidth * 0.8, 260
		}
	}
	switch {
	case viewportWidth >= carousel.BreakpointTablet:
		return 473 * 0.6, 600 * 0.6
	default:
		return 300 * 0.6, 420 * 0.6
	}
}

// Layout places a section's hit regions inside area: the selected card is
// centered and the two buttons sit on either side of it, vertically centered.
func Layout(section string, area carousel.Rect) carousel.Layout {
	cw, _ := CardSize(section, area.Width)
	cx := area.X + area.Width/2
	cy := area.Y + area.Height/2
	return carousel.Layout{
		Area: area,
		PrevButton: carousel.Rect{
			X: cx - cw/2 - ButtonGap - ButtonWidth, Y: cy - ButtonHeight/2,
			Width: ButtonWidth, Height: ButtonHeight,
		},
		NextButton: carousel.Rect{
			X: cx + cw/2 + ButtonGap, Y: cy - ButtonHeight/2,
			Width: ButtonWidth, Height: ButtonHeight,
		},
	}
}
