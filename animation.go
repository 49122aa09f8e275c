package carousel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const tweenFields = 5

// StyleTween animates the continuous fields of a Style (translation, rotation,
// scale, opacity) toward a target. Discrete fields (z-index, visibility,
// interactivity, clip) snap to the target when the tween is created, so a card
// moving into view is drawn from the first frame and one leaving stays on top
// of nothing.
//
// There is no global animation manager; Stage calls Update each frame.
type StyleTween struct {
	tweens [tweenFields]*gween.Tween
	fields [tweenFields]*float64
	ends   [tweenFields]float64
	target *Style
	Done   bool
}

// TweenTo creates a StyleTween that moves *s to to over duration seconds using
// the easing function. A non-positive duration applies the target at once.
func TweenTo(s *Style, to Style, duration float32, fn ease.TweenFunc) *StyleTween {
	s.ZIndex = to.ZIndex
	s.Visible = to.Visible
	s.Interactive = to.Interactive
	s.Clip = to.Clip

	if duration <= 0 {
		*s = to
		return &StyleTween{target: s, Done: true}
	}

	g := &StyleTween{target: s}
	g.fields = [tweenFields]*float64{&s.TranslateX, &s.TranslateY, &s.RotateY, &s.Scale, &s.Opacity}
	g.ends = [tweenFields]float64{to.TranslateX, to.TranslateY, to.RotateY, to.Scale, to.Opacity}
	for i := range g.fields {
		g.tweens[i] = gween.New(float32(*g.fields[i]), float32(g.ends[i]), duration, fn)
	}
	return g
}

// Update advances all fields by dt seconds and writes them to the target.
func (g *StyleTween) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := range g.tweens {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			// float32 round trip; land exactly on the target.
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// DefaultEase is the easing used for slot changes.
var DefaultEase ease.TweenFunc = ease.OutCubic
