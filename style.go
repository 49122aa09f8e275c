package carousel

import "time"

// Clip selects how a side card is clipped on narrow layouts. A clipped card
// keeps its slot but draws nothing.
type Clip uint8

const (
	ClipNone  Clip = iota // card fully drawn
	ClipLeft              // left card: clipped away entirely from its right edge
	ClipRight             // right card: clipped away entirely from its left edge
)

// Style is the presentation of one card in one slot. It is a pure function of
// the slot and the viewport; the controller never sees it.
type Style struct {
	TranslateX  float64 // horizontal offset as a fraction of the card width
	TranslateY  float64 // vertical offset in pixels
	RotateY     float64 // rotation around the vertical axis, degrees
	Scale       float64
	Opacity     float64 // [0, 1]
	ZIndex      int
	Visible     bool // false: do not render at all
	Interactive bool // false: the card ignores pointer input
	Clip        Clip
}

// StyleFunc maps a slot to a style for a viewport width in pixels.
type StyleFunc func(slot Slot, viewportWidth float64) Style

// Viewport width breakpoints used by the responsive feature layout.
const (
	BreakpointDesktop = 1024.0 // side cards tilted and dimmed
	BreakpointTablet  = 768.0  // side cards flat and clipped
	BreakpointPhone   = 425.0  // at or below: side cards hidden
)

// ReducedMotionDuration is the transition length when the user prefers
// reduced motion.
const ReducedMotionDuration = 100 * time.Millisecond

// TransitionDuration returns how long a slot change should animate.
func TransitionDuration(cooldown time.Duration, reducedMotion bool) time.Duration {
	if reducedMotion {
		return ReducedMotionDuration
	}
	return cooldown
}

// AgentStyle is the agent carousel's layout. It does not depend on the
// viewport width.
func AgentStyle(slot Slot, _ float64) Style {
	switch slot {
	case SlotSelected:
		return Style{Scale: 1, Opacity: 1, ZIndex: 20, Visible: true, Interactive: true}
	case SlotLeft:
		return Style{TranslateX: -1, TranslateY: -24, RotateY: 25, Scale: 0.85, Opacity: 0.7, ZIndex: 10, Visible: true, Interactive: true}
	case SlotRight:
		return Style{TranslateX: 1, TranslateY: -24, RotateY: -25, Scale: 0.85, Opacity: 0.7, ZIndex: 10, Visible: true, Interactive: true}
	default:
		return Style{Scale: 0.85}
	}
}

// FeatureStyle is the feature carousel's responsive layout.
func FeatureStyle(slot Slot, viewportWidth float64) Style {
	if slot == SlotHidden {
		return Style{Scale: 1}
	}

	s := Style{Scale: 1, Opacity: 1, ZIndex: 10, Visible: true, Interactive: true}
	if slot == SlotSelected {
		s.ZIndex = 30
	}

	switch {
	case viewportWidth >= BreakpointDesktop:
		s.TranslateY = -24
		switch slot {
		case SlotLeft:
			s.TranslateX, s.RotateY, s.Scale, s.Opacity = -0.85, 25, 0.85, 0.7
		case SlotRight:
			s.TranslateX, s.RotateY, s.Scale, s.Opacity = 0.85, -25, 0.85, 0.7
		}
	case viewportWidth >= BreakpointTablet:
		s.TranslateY = -16
		switch slot {
		case SlotLeft:
			s.TranslateX = -0.95
		case SlotRight:
			s.TranslateX = 0.95
		}
	default:
		s.TranslateY = -12
		switch slot {
		case SlotLeft:
			s.TranslateX = -1.5
		case SlotRight:
			s.TranslateX = 1.5
		case SlotSelected:
			s.Scale = 0.9
		}
	}

	narrow := (viewportWidth >= BreakpointTablet && viewportWidth < BreakpointDesktop) || viewportWidth <= BreakpointPhone
	if narrow && slot != SlotSelected {
		s.Interactive = false
		if slot == SlotLeft {
			s.Clip = ClipLeft
		} else {
			s.Clip = ClipRight
		}
	}
	if viewportWidth <= BreakpointPhone && slot != SlotSelected {
		s.Visible = false
	}
	return s
}
