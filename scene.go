package carousel

import (
	"time"

	"go.uber.org/zap"
)

// DefaultResizeDebounce is how long viewport width changes settle before the
// layout is recomputed.
const DefaultResizeDebounce = 100 * time.Millisecond

// StageConfig configures a Stage.
type StageConfig struct {
	// Name identifies the carousel in logs and selection events.
	Name string
	// Carousel is the controller configuration.
	Carousel Config
	// Layout holds the hit regions in host coordinates.
	Layout Layout
	// Style maps slots to card styles. Defaults to AgentStyle.
	Style StyleFunc
	// TPS is the number of Update calls per second. Defaults to DefaultTPS.
	TPS int
	// ReducedMotion shortens slot animations to ReducedMotionDuration.
	ReducedMotion bool
	// Visibility configures the section's visibility observer.
	Visibility VisibilityConfig
	// ResizeDebounce delays width changes. Defaults to DefaultResizeDebounce.
	ResizeDebounce time.Duration
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Card is one item's render state.
type Card[T Item] struct {
	Index int
	Item  T
	Slot  Slot
	Style Style
	tween *StyleTween
}

// Stage is the top-level object for one carousel section. It owns the
// controller, a frame-driven scheduler, the input binding, the animated card
// styles, a visibility observer and a debounced viewport width. Hosts call
// Update once per frame, Feed for real pointer input, and read Cards to draw.
//
// Everything runs on the host's goroutine; Stage is not safe for concurrent use.
type Stage[T Item] struct {
	name    string
	ctrl    *Controller[T]
	sched   *FrameScheduler
	binding *Binding[T]
	log     *zap.Logger

	style         StyleFunc
	tps           int
	reducedMotion bool
	cards         []Card[T]

	width, height float64
	requested     float64 // last width passed to SetViewport
	sized         bool
	resize        *Debouncer

	visibility *VisibilityObserver
	lazy       *LazyMount

	runner     *Runner
	store      EventStore
	screenshot func(label string)
	subs       []CallbackHandle
}

// NewStage creates a stage for items.
func NewStage[T Item](items []T, cfg StageConfig) (*Stage[T], error) {
	if cfg.Style == nil {
		cfg.Style = AgentStyle
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.ResizeDebounce <= 0 {
		cfg.ResizeDebounce = DefaultResizeDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	log := cfg.Logger.With(zap.String("carousel", cfg.Name))

	sched := NewFrameScheduler()
	ctrl, err := New(items,
		WithConfig(cfg.Carousel),
		WithScheduler(sched),
		WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	s := &Stage[T]{
		name:          cfg.Name,
		ctrl:          ctrl,
		sched:         sched,
		binding:       NewBinding(ctrl, cfg.Layout),
		log:           log,
		style:         cfg.Style,
		tps:           cfg.TPS,
		reducedMotion: cfg.ReducedMotion,
		resize:        NewDebouncer(sched, cfg.ResizeDebounce),
		visibility:    NewVisibilityObserver(cfg.Visibility),
		lazy:          NewLazyMount(),
	}

	s.cards = make([]Card[T], ctrl.Len())
	for i, a := range ctrl.Slots() {
		s.cards[i] = Card[T]{Index: i, Item: a.Item, Slot: a.Slot, Style: s.style(a.Slot, s.width)}
	}

	s.subs = append(s.subs,
		ctrl.OnChange(s.handleChange),
		ctrl.OnSettle(s.handleSettle),
	)
	return s, nil
}

// --- Frame loop ---

// Update advances the stage by one frame of 1/TPS seconds.
func (s *Stage[T]) Update() {
	s.Tick(time.Second / time.Duration(s.tps))
}

// Tick advances the stage by dt: the script runner steps, one injected input
// event is processed, scheduled work comes due, and card animations advance.
func (s *Stage[T]) Tick(dt time.Duration) {
	if s.runner != nil {
		s.runner.step(s)
	}
	s.binding.Step()
	s.sched.Advance(dt)

	secs := float32(dt.Seconds())
	for i := range s.cards {
		if tw := s.cards[i].tween; tw != nil {
			tw.Update(secs)
			if tw.Done {
				s.cards[i].tween = nil
			}
		}
	}
}

// Feed processes one real pointer event. Real input is ignored while injected
// events are queued so scripted runs stay deterministic.
func (s *Stage[T]) Feed(ev PointerEvent) InputResult {
	if s.binding.Pending() > 0 {
		return InputResult{}
	}
	return s.binding.Process(ev)
}

// --- Viewport ---

// SetViewport records the host's size. The first call snaps every card to
// its style for that width; later width changes are debounced and then
// animate the cards to their new styles.
func (s *Stage[T]) SetViewport(width, height float64) {
	s.height = height
	if !s.sized {
		s.sized = true
		s.width = width
		s.requested = width
		for i := range s.cards {
			c := &s.cards[i]
			c.Style = s.style(c.Slot, width)
			c.tween = nil
		}
		return
	}
	if width == s.requested {
		return
	}
	s.requested = width
	s.resize.Trigger(func() { s.applyWidth(width) })
}

func (s *Stage[T]) applyWidth(width float64) {
	s.width = width
	s.log.Debug("viewport width applied", zap.Float64("width", width))
	for i := range s.cards {
		s.retarget(i)
	}
}

// Viewport returns the applied width and the last height.
func (s *Stage[T]) Viewport() (width, height float64) {
	return s.width, s.height
}

// ObserveSection updates the section's visibility from the host's viewport
// and the section's bounds, both in page coordinates.
func (s *Stage[T]) ObserveSection(viewport, section Rect) bool {
	return s.visibility.Observe(viewport, section)
}

// Visibility returns the section's visibility observer.
func (s *Stage[T]) Visibility() *VisibilityObserver {
	return s.visibility
}

// LazyMount returns the per-item heavy content tracker.
func (s *Stage[T]) LazyMount() *LazyMount {
	return s.lazy
}

// ShouldMount reports whether card i's heavy content should be mounted now.
func (s *Stage[T]) ShouldMount(i int) bool {
	c := s.cards[i]
	return s.lazy.ShouldMount(c.Item.ItemID(), c.Slot == SlotSelected, s.visibility.Visible())
}

// --- Cards ---

func (s *Stage[T]) handleChange(ev ChangeEvent) {
	for i := range s.cards {
		s.retarget(i)
	}
	if s.store != nil {
		s.store.EmitEvent(SelectionEvent{
			Carousel: s.name, Index: ev.To, ItemID: ev.ItemID, Direction: ev.Direction,
		})
	}
}

func (s *Stage[T]) handleSettle(index int) {
	if s.store != nil {
		s.store.EmitEvent(SelectionEvent{
			Carousel: s.name, Index: index, ItemID: s.ctrl.Item(index).ItemID(), Settled: true,
		})
	}
}

// retarget points card i's animation at the style of its current slot.
func (s *Stage[T]) retarget(i int) {
	c := &s.cards[i]
	c.Slot = s.ctrl.Slot(i)
	target := s.style(c.Slot, s.width)
	d := TransitionDuration(s.ctrl.Config().Cooldown, s.reducedMotion)
	c.tween = TweenTo(&c.Style, target, float32(d.Seconds()), DefaultEase)
	if c.tween.Done {
		c.tween = nil
	}
}

// Cards returns a snapshot of every card's slot and current style, in item
// order.
func (s *Stage[T]) Cards() []Card[T] {
	out := make([]Card[T], len(s.cards))
	for i, c := range s.cards {
		c.tween = nil
		out[i] = c
	}
	return out
}

// Animating reports whether any card is still moving.
func (s *Stage[T]) Animating() bool {
	for i := range s.cards {
		if s.cards[i].tween != nil {
			return true
		}
	}
	return false
}

// --- Accessors ---

// Name returns the stage's name.
func (s *Stage[T]) Name() string {
	return s.name
}

// Controller returns the underlying controller.
func (s *Stage[T]) Controller() *Controller[T] {
	return s.ctrl
}

// Binding returns the input binding.
func (s *Stage[T]) Binding() *Binding[T] {
	return s.binding
}

// Scheduler returns the stage's frame scheduler.
func (s *Stage[T]) Scheduler() *FrameScheduler {
	return s.sched
}

// SelectedIndex returns the controller's selected index.
func (s *Stage[T]) SelectedIndex() int {
	return s.ctrl.SelectedIndex()
}

// SetEventStore sets the optional ECS bridge.
func (s *Stage[T]) SetEventStore(store EventStore) {
	s.store = store
}

// SetRunner attaches a script runner, stepped once per Update.
func (s *Stage[T]) SetRunner(r *Runner) {
	s.runner = r
}

// Runner returns the attached runner, or nil.
func (s *Stage[T]) Runner() *Runner {
	return s.runner
}

// SetScreenshotFunc sets the function screenshot steps call. Hosts that can
// capture frames install one; without it screenshot steps are logged only.
func (s *Stage[T]) SetScreenshotFunc(fn func(label string)) {
	s.screenshot = fn
}

// Screenshot requests a labelled capture of the current frame.
func (s *Stage[T]) Screenshot(label string) {
	if s.screenshot == nil {
		s.log.Debug("screenshot requested without a capture host", zap.String("label", label))
		return
	}
	s.screenshot(label)
}

func (s *Stage[T]) injector() injector {
	return s.binding
}

// Close tears the stage down: pending cooldown and resize work is cancelled
// and subscriptions are removed.
func (s *Stage[T]) Close() {
	for _, h := range s.subs {
		h.Remove()
	}
	s.subs = nil
	s.resize.Stop()
	s.ctrl.Close()
}
