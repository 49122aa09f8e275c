package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	events []SelectionEvent
}

func (r *recordingStore) EmitEvent(ev SelectionEvent) {
	r.events = append(r.events, ev)
}

func newTestStage(t *testing.T, n int, style StyleFunc) *Stage[testItem] {
	t.Helper()
	s, err := NewStage(items(n), StageConfig{
		Name:       "test",
		Carousel:   DefaultConfig(),
		Layout:     testLayout,
		Style:      style,
		Visibility: VisibilityConfig{Threshold: 0.1},
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func settleStage(s *Stage[testItem]) {
	for i := 0; i < 120 && (s.Animating() || s.Controller().IsAnimating()); i++ {
		s.Update()
	}
}

func TestNewStageErrors(t *testing.T) {
	_, err := NewStage[testItem](nil, StageConfig{})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestStageInitialCards(t *testing.T) {
	s := newTestStage(t, 5, AgentStyle)
	s.SetViewport(1280, 800)

	cards := s.Cards()
	require.Len(t, cards, 5)
	assert.Equal(t, SlotSelected, cards[0].Slot)
	assert.Equal(t, SlotRight, cards[1].Slot)
	assert.Equal(t, SlotLeft, cards[4].Slot)
	assert.Equal(t, AgentStyle(SlotSelected, 1280), cards[0].Style)
	assert.False(t, s.Animating(), "first viewport snaps")
	assert.Equal(t, "test", s.Name())
}

func TestStageFeedAnimates(t *testing.T) {
	s := newTestStage(t, 3, AgentStyle)
	s.SetViewport(1280, 800)

	s.Feed(mouse(760, 200, true, MouseButtonLeft))
	res := s.Feed(mouse(760, 200, false, MouseButtonLeft))
	require.True(t, res.Accepted)
	assert.Equal(t, 1, s.SelectedIndex())
	assert.True(t, s.Animating())

	cards := s.Cards()
	assert.Equal(t, SlotSelected, cards[1].Slot)
	assert.Equal(t, 20, cards[1].Style.ZIndex, "z-index snaps on change")
	assert.NotEqual(t, AgentStyle(SlotSelected, 1280), cards[1].Style)

	settleStage(s)
	assert.False(t, s.Animating())
	assert.False(t, s.Controller().IsAnimating())
	assert.Equal(t, AgentStyle(SlotSelected, 1280), s.Cards()[1].Style)
	assert.Equal(t, AgentStyle(SlotLeft, 1280), s.Cards()[0].Style)
}

func TestStageReducedMotion(t *testing.T) {
	s, err := NewStage(items(3), StageConfig{
		Carousel:      DefaultConfig(),
		Layout:        testLayout,
		ReducedMotion: true,
	})
	require.NoError(t, err)
	defer s.Close()
	s.SetViewport(1280, 800)

	s.Controller().Next()
	s.Tick(ReducedMotionDuration)
	assert.False(t, s.Animating(), "cards finish after the reduced duration")
	assert.True(t, s.Controller().IsAnimating(), "cooldown still runs its full length")
}

func TestStageEvents(t *testing.T) {
	s := newTestStage(t, 3, AgentStyle)
	store := &recordingStore{}
	s.SetEventStore(store)

	s.Controller().Previous()
	settleStage(s)

	require.Len(t, store.events, 2)
	assert.Equal(t, SelectionEvent{Carousel: "test", Index: 2, ItemID: "3", Direction: DirectionPrevious}, store.events[0])
	assert.Equal(t, SelectionEvent{Carousel: "test", Index: 2, ItemID: "3", Settled: true}, store.events[1])
}

func TestStageFeedIgnoredWhileInjecting(t *testing.T) {
	s := newTestStage(t, 3, AgentStyle)
	s.Binding().InjectClick(760, 200)

	s.Feed(mouse(400, 100, true, MouseButtonLeft))
	res := s.Feed(mouse(400, 100, false, MouseButtonLeft))
	assert.Equal(t, ActionNone, res.Action)

	s.Update()
	s.Update()
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestStageResizeDebounced(t *testing.T) {
	s := newTestStage(t, 3, FeatureStyle)
	s.SetViewport(1280, 800)
	s.SetViewport(900, 800)
	s.SetViewport(600, 800)

	w, h := s.Viewport()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 800.0, h)

	s.Tick(50 * time.Millisecond)
	w, _ = s.Viewport()
	assert.Equal(t, 1280.0, w)

	s.Tick(DefaultResizeDebounce)
	w, _ = s.Viewport()
	assert.Equal(t, 600.0, w)

	settleStage(s)
	assert.Equal(t, FeatureStyle(SlotRight, 600), s.Cards()[1].Style)
}

func TestStageResizeBackToApplied(t *testing.T) {
	s := newTestStage(t, 3, FeatureStyle)
	s.SetViewport(1280, 800)
	s.SetViewport(600, 800)
	s.SetViewport(1280, 800)
	s.Tick(time.Second)
	w, _ := s.Viewport()
	assert.Equal(t, 1280.0, w)
}

func TestStageShouldMount(t *testing.T) {
	s := newTestStage(t, 3, AgentStyle)
	assert.False(t, s.ShouldMount(0), "section not yet visible")

	viewport := Rect{Width: 800, Height: 600}
	assert.True(t, s.ObserveSection(viewport, Rect{Y: 100, Width: 800, Height: 400}))
	assert.True(t, s.Visibility().Visible())
	assert.True(t, s.ShouldMount(0))
	assert.False(t, s.ShouldMount(1))

	assert.True(t, s.LazyMount().Loading("1"))
	s.LazyMount().MarkLoaded("1")
	assert.False(t, s.LazyMount().Loading("1"))
}

func TestStageScreenshotWithoutHost(t *testing.T) {
	s := newTestStage(t, 3, AgentStyle)
	assert.NotPanics(t, func() { s.Screenshot("none") })
}

func TestStageClose(t *testing.T) {
	s, err := NewStage(items(3), StageConfig{Carousel: DefaultConfig(), Layout: testLayout})
	require.NoError(t, err)
	store := &recordingStore{}
	s.SetEventStore(store)

	s.Controller().Next()
	s.SetViewport(100, 100)
	s.SetViewport(200, 100)
	s.Close()
	assert.Equal(t, 0, s.Scheduler().Pending())
	s.Tick(time.Second)
	assert.Len(t, store.events, 1, "no settle after close")
}
