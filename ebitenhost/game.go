// Package ebitenhost runs a carousel Stage in an Ebitengine window: it polls
// mouse, touch and arrow keys each tick, forwards them to the stage, and draws
// the cards and buttons with flat colored quads.
package ebitenhost

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/carousel"
)

const maxPointers = 10

// Config configures a Game.
type Config struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ScreenshotDir receives PNGs requested by script screenshot steps.
	ScreenshotDir string
	// Layout computes hit regions for the window's area. Called on resize.
	Layout func(area carousel.Rect) carousel.Layout
	// CardSize returns the selected card's size for a viewport width.
	CardSize func(viewportWidth float64) (w, h float64)
	Logger   *zap.Logger
}

// Game adapts a Stage to ebiten.Game.
type Game[T carousel.Item] struct {
	stage *carousel.Stage[T]
	cfg   Config
	log   *zap.Logger
	label func(T) string

	width, height int

	// Touch IDs are mapped onto pointer slots 1-9.
	touchIDs  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchLast [maxPointers][2]float64

	screenshots []string
	pixel       *ebiten.Image
}

// New creates a game for stage. label names each card; it may be nil.
func New[T carousel.Item](stage *carousel.Stage[T], label func(T) string, cfg Config) *Game[T] {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	if label == nil {
		label = func(it T) string { return it.ItemID() }
	}
	g := &Game[T]{stage: stage, cfg: cfg, log: cfg.Logger, label: label}
	stage.SetScreenshotFunc(g.queueScreenshot)
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game[T]) Run() error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Game[T]) Update() error {
	if g.width > 0 {
		g.stage.SetViewport(float64(g.width), float64(g.height))
		if g.cfg.Layout != nil {
			g.stage.Binding().SetLayout(g.cfg.Layout(carousel.Rect{Width: float64(g.width), Height: float64(g.height)}))
		}
	}
	g.processMousePointer()
	g.processTouchPointers()
	g.processKeys()
	g.stage.Update()
	return nil
}

// Layout implements ebiten.Game. The logical screen follows the window.
func (g *Game[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// --- Input ---

// processMousePointer polls the mouse as pointer 0. The first pressed button
// wins, in left, right, middle order.
func (g *Game[T]) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	ev := carousel.PointerEvent{X: float64(mx), Y: float64(my)}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		ev.Pressed, ev.Button = true, carousel.MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		ev.Pressed, ev.Button = true, carousel.MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		ev.Pressed, ev.Button = true, carousel.MouseButtonMiddle
	}
	g.feed(ev)
}

// processTouchPointers polls active touches and releases slots whose touch
// ended since the last tick.
func (g *Game[T]) processTouchPointers() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])

	var active [maxPointers]bool
	for _, tid := range g.touchIDs {
		slot := g.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		g.touchLast[slot] = [2]float64{float64(tx), float64(ty)}
		g.feed(carousel.PointerEvent{Pointer: slot, X: float64(tx), Y: float64(ty), Pressed: true})
	}

	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && !active[i] {
			last := g.touchLast[i]
			g.feed(carousel.PointerEvent{Pointer: i, X: last[0], Y: last[1]})
			g.touchUsed[i] = false
			g.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (g *Game[T]) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (g *Game[T]) processKeys() {
	ctrl := g.stage.Controller()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		ctrl.Previous()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		ctrl.Next()
	}
}

func (g *Game[T]) feed(ev carousel.PointerEvent) {
	if res := g.stage.Feed(ev); res.Action != carousel.ActionNone {
		g.log.Debug("input",
			zap.Stringer("action", res.Action),
			zap.Stringer("direction", res.Direction),
			zap.Bool("accepted", res.Accepted))
	}
}

// --- Drawing ---

var (
	backgroundColor = color.RGBA{R: 0x0b, G: 0x0d, B: 0x12, A: 0xff}
	cardColor       = color.RGBA{R: 0x2a, G: 0x6f, B: 0xdb, A: 0xff}
	buttonColor     = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	disabledColor   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// Draw implements ebiten.Game.
func (g *Game[T]) Draw(screen *ebiten.Image) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}
	screen.Fill(backgroundColor)

	vw, vh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	cw, ch := 300.0, 400.0
	if g.cfg.CardSize != nil {
		cw, ch = g.cfg.CardSize(vw)
	}

	for _, c := range drawOrder(g.stage.Cards()) {
		r := CardRect(vw, vh, cw, ch, c.Style)
		g.fillRect(screen, r, cardColor, c.Style.Opacity)
		ebitenutil.DebugPrintAt(screen, g.label(c.Item), int(r.X)+8, int(r.Y)+8)
	}

	l := g.stage.Binding().Layout()
	btn := buttonColor
	if !g.stage.Binding().ButtonsEnabled() {
		btn = disabledColor
	}
	g.fillRect(screen, l.PrevButton, btn, 1)
	g.fillRect(screen, l.NextButton, btn, 1)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f",
			ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}

	g.flushScreenshots(screen)
}

func (g *Game[T]) fillRect(dst *ebiten.Image, r carousel.Rect, clr color.RGBA, alpha float64) {
	if r.Empty() || alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(g.pixel, &op)
}

// drawOrder returns the visible cards sorted back to front.
func drawOrder[T carousel.Item](cards []carousel.Card[T]) []carousel.Card[T] {
	out := cards[:0:0]
	for _, c := range cards {
		if c.Style.Visible {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Style.ZIndex < out[j].Style.ZIndex
	})
	return out
}

// CardRect projects a card style onto the screen. The card is centered in the
// viewport, translated by TranslateX card widths and TranslateY pixels, scaled
// around its center, and narrowed by the cosine of its Y rotation. A clipped
// card collapses to its outer edge and has no area.
func CardRect(viewportW, viewportH, cardW, cardH float64, s carousel.Style) carousel.Rect {
	w := cardW * s.Scale * math.Cos(s.RotateY*math.Pi/180)
	h := cardH * s.Scale
	cx := viewportW/2 + s.TranslateX*cardW
	cy := viewportH/2 + s.TranslateY
	r := carousel.Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
	switch s.Clip {
	case carousel.ClipLeft:
		r.Width = 0
	case carousel.ClipRight:
		r.X += w
		r.Width = 0
	}
	return r
}
