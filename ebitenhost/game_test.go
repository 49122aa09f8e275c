package ebitenhost

import (
	"strconv"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/carousel"
)

type card int

func (c card) ItemID() string { return strconv.Itoa(int(c)) }

func newTestGame(t *testing.T) *Game[card] {
	t.Helper()
	stage, err := carousel.NewStage([]card{1, 2, 3}, carousel.StageConfig{
		Carousel: carousel.DefaultConfig(),
		Style:    carousel.FeatureStyle,
	})
	require.NoError(t, err)
	t.Cleanup(stage.Close)
	return New(stage, nil, Config{Width: 800, Height: 600})
}

func TestCardRect(t *testing.T) {
	tests := []struct {
		name  string
		style carousel.Style
		want  carousel.Rect
	}{
		{"centered", carousel.Style{Scale: 1}, carousel.Rect{X: 350, Y: 250, Width: 100, Height: 100}},
		{"scaled", carousel.Style{Scale: 0.5}, carousel.Rect{X: 375, Y: 275, Width: 50, Height: 50}},
		{"translated", carousel.Style{Scale: 1, TranslateX: 1, TranslateY: -20}, carousel.Rect{X: 450, Y: 230, Width: 100, Height: 100}},
		{"clip left", carousel.Style{Scale: 1, TranslateX: -1, Clip: carousel.ClipLeft}, carousel.Rect{X: 250, Y: 250, Height: 100}},
		{"clip right", carousel.Style{Scale: 1, TranslateX: 1, Clip: carousel.ClipRight}, carousel.Rect{X: 550, Y: 250, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CardRect(800, 600, 100, 100, tt.style)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
		})
	}
}

func TestCardRectRotationNarrows(t *testing.T) {
	flat := CardRect(800, 600, 100, 100, carousel.Style{Scale: 1})
	tilted := CardRect(800, 600, 100, 100, carousel.Style{Scale: 1, RotateY: 25})
	assert.Less(t, tilted.Width, flat.Width)
	assert.Equal(t, flat.Height, tilted.Height)
}

func TestDrawOrder(t *testing.T) {
	cards := []carousel.Card[card]{
		{Index: 0, Style: carousel.Style{Visible: true, ZIndex: 30}},
		{Index: 1, Style: carousel.Style{Visible: true, ZIndex: 10}},
		{Index: 2, Style: carousel.Style{Visible: false, ZIndex: 50}},
		{Index: 3, Style: carousel.Style{Visible: true, ZIndex: 10}},
	}
	got := drawOrder(cards)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 0}, []int{got[0].Index, got[1].Index, got[2].Index})
	assert.Equal(t, 0, cards[0].Index, "input is not reordered")
}

func TestTouchSlot(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, 1, g.touchSlot(ebiten.TouchID(7)))
	assert.Equal(t, 2, g.touchSlot(ebiten.TouchID(9)))
	assert.Equal(t, 1, g.touchSlot(ebiten.TouchID(7)), "existing touches keep their slot")

	for i := 0; i < maxPointers; i++ {
		g.touchSlot(ebiten.TouchID(100 + i))
	}
	assert.Equal(t, -1, g.touchSlot(ebiten.TouchID(500)), "slots exhausted")
}

func TestStageScreenshotQueues(t *testing.T) {
	g := newTestGame(t)
	g.stage.Screenshot("a")
	g.stage.Screenshot("b")
	assert.Equal(t, []string{"a", "b"}, g.screenshots)
	assert.Equal(t, "screenshots", g.cfg.ScreenshotDir)
}

func TestLayoutFollowsWindow(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, 1024, g.width)
}

func TestDefaultLabel(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, "2", g.label(card(2)))
}
