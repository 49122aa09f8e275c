package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgentStyle(t *testing.T) {
	sel := AgentStyle(SlotSelected, 0)
	left := AgentStyle(SlotLeft, 0)
	right := AgentStyle(SlotRight, 0)
	hidden := AgentStyle(SlotHidden, 0)

	assert.Equal(t, 1.0, sel.Opacity)
	assert.Greater(t, sel.ZIndex, left.ZIndex)
	assert.Equal(t, left.ZIndex, right.ZIndex)
	assert.Equal(t, -left.TranslateX, right.TranslateX)
	assert.Equal(t, -left.RotateY, right.RotateY)
	assert.Equal(t, 0.85, left.Scale)
	assert.Equal(t, 0.7, right.Opacity)
	assert.False(t, hidden.Visible)
	assert.Zero(t, hidden.Opacity)

	assert.Equal(t, AgentStyle(SlotLeft, 320), left, "agent layout ignores width")
}

func TestFeatureStyleBreakpoints(t *testing.T) {
	tests := []struct {
		name        string
		width       float64
		sideVisible bool
		interactive bool
		clip        Clip
		translateX  float64
		selScale    float64
	}{
		{"desktop", 1280, true, true, ClipNone, 0.85, 1},
		{"desktop edge", 1024, true, true, ClipNone, 0.85, 1},
		{"tablet", 900, true, false, ClipRight, 0.95, 1},
		{"tablet edge", 768, true, false, ClipRight, 0.95, 1},
		{"large phone", 600, true, true, ClipNone, 1.5, 0.9},
		{"phone", 425, false, false, ClipRight, 1.5, 0.9},
		{"small phone", 320, false, false, ClipRight, 1.5, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			right := FeatureStyle(SlotRight, tt.width)
			left := FeatureStyle(SlotLeft, tt.width)
			sel := FeatureStyle(SlotSelected, tt.width)

			assert.Equal(t, tt.sideVisible, right.Visible)
			assert.Equal(t, tt.interactive, right.Interactive)
			assert.Equal(t, tt.clip, right.Clip)
			assert.Equal(t, tt.translateX, right.TranslateX)
			assert.Equal(t, -tt.translateX, left.TranslateX)
			if tt.clip != ClipNone {
				assert.Equal(t, ClipLeft, left.Clip)
			}

			assert.True(t, sel.Visible)
			assert.True(t, sel.Interactive)
			assert.Equal(t, ClipNone, sel.Clip)
			assert.Equal(t, 30, sel.ZIndex)
			assert.Equal(t, tt.selScale, sel.Scale)
		})
	}
}

func TestFeatureStyleHidden(t *testing.T) {
	for _, w := range []float64{320, 800, 1440} {
		s := FeatureStyle(SlotHidden, w)
		assert.False(t, s.Visible)
		assert.False(t, s.Interactive)
	}
}

func TestTransitionDuration(t *testing.T) {
	assert.Equal(t, 700*time.Millisecond, TransitionDuration(700*time.Millisecond, false))
	assert.Equal(t, ReducedMotionDuration, TransitionDuration(700*time.Millisecond, true))
}
