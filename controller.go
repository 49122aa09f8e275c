package carousel

import (
	"go.uber.org/zap"

	"github.com/phanxgames/carousel/internal/syncutils"
)

// Controller owns the selected index and transition state of one carousel.
//
// Navigation is guarded by a cooldown: an accepted Advance updates the
// selection immediately and locks the controller until the cooldown task
// fires. Requests arriving while locked are dropped, not queued, so burst
// input degrades to one step per cooldown window.
//
// A Controller is safe for concurrent use. With a FrameScheduler every call,
// including cooldown expiry, happens on the host's goroutine.
type Controller[T Item] struct {
	mu syncutils.Mutex

	items     []T
	cfg       Config
	scheduler Scheduler
	log       *zap.Logger

	selected  int
	animating bool
	pending   Task
	gen       uint64 // bumped on every accepted transition and on Close
	closed    bool

	nextID   uint32
	onChange handlerList[func(ChangeEvent)]
	onSettle handlerList[func(int)]
}

// New creates a controller for items. The item slice is copied.
func New[T Item](items []T, opts ...Option) (*Controller[T], error) {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(len(items)); err != nil {
		return nil, err
	}
	if o.scheduler == nil {
		o.scheduler = TimerScheduler{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	own := make([]T, len(items))
	copy(own, items)

	return &Controller[T]{
		items:     own,
		cfg:       o.config,
		scheduler: o.scheduler,
		log:       o.logger,
		selected:  o.config.InitialIndex,
	}, nil
}

// --- Navigation ---

// Advance moves the selection one step in dir. It returns false, without
// changing anything, when dir is DirectionNone, a transition is in flight, or
// the controller is closed.
func (c *Controller[T]) Advance(dir Direction) bool {
	if dir == DirectionNone {
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	if c.animating {
		c.mu.Unlock()
		c.log.Debug("advance dropped during cooldown",
			zap.Stringer("direction", dir), zap.Int("selected", c.SelectedIndex()))
		return false
	}

	n := len(c.items)
	from := c.selected
	if dir == DirectionNext {
		c.selected = (c.selected + 1) % n
	} else {
		c.selected = (c.selected - 1 + n) % n
	}
	c.animating = true
	c.gen++
	gen := c.gen
	c.pending = c.scheduler.AfterFunc(c.cfg.Cooldown, func() { c.settle(gen) })

	ev := ChangeEvent{From: from, To: c.selected, Direction: dir, ItemID: c.items[c.selected].ItemID()}
	handlers := c.onChange.snapshot()
	c.mu.Unlock()

	c.log.Debug("advance accepted",
		zap.Stringer("direction", dir), zap.Int("from", ev.From), zap.Int("to", ev.To))
	for _, fn := range handlers {
		fn(ev)
	}
	return true
}

// Next advances to the following item, wrapping after the last.
func (c *Controller[T]) Next() bool {
	return c.Advance(DirectionNext)
}

// Previous advances to the preceding item, wrapping before the first.
func (c *Controller[T]) Previous() bool {
	return c.Advance(DirectionPrevious)
}

// settle ends the cooldown started by transition gen. Stale or post-Close
// calls are ignored.
func (c *Controller[T]) settle(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || !c.animating {
		c.mu.Unlock()
		return
	}
	c.animating = false
	c.pending = nil
	index := c.selected
	handlers := c.onSettle.snapshot()
	c.mu.Unlock()

	c.log.Debug("cooldown elapsed", zap.Int("selected", index))
	for _, fn := range handlers {
		fn(index)
	}
}

// Close cancels any pending cooldown task and disables the controller. Call it
// when the owning view goes away. Close is idempotent.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.onChange = handlerList[func(ChangeEvent)]{}
	c.onSettle = handlerList[func(int)]{}
}

// --- State ---

// SelectedIndex returns the index of the centered item.
func (c *Controller[T]) SelectedIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Selected returns the centered item.
func (c *Controller[T]) Selected() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[c.selected]
}

// IsAnimating reports whether a transition cooldown is running. Navigation
// affordances should be disabled while it is true.
func (c *Controller[T]) IsAnimating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animating
}

// State returns StateTransitioning while the cooldown runs, otherwise StateIdle.
func (c *Controller[T]) State() State {
	if c.IsAnimating() {
		return StateTransitioning
	}
	return StateIdle
}

// Closed reports whether Close has been called.
func (c *Controller[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Len returns the number of items.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Item returns the item at index i.
func (c *Controller[T]) Item(i int) T {
	return c.items[i]
}

// Items returns a copy of the item list.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Config returns the configuration the controller was built with.
func (c *Controller[T]) Config() Config {
	return c.cfg
}

// --- Subscriptions ---

// OnChange registers a callback fired after every accepted navigation.
// Callbacks run after the controller's lock is released and may call back
// into the controller.
func (c *Controller[T]) OnChange(fn func(ChangeEvent)) CallbackHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.onChange.add(id, fn)
	return CallbackHandle{remove: func() {
		c.mu.Lock()
		c.onChange.remove(id)
		c.mu.Unlock()
	}}
}

// OnSettle registers a callback fired when a cooldown elapses, with the
// selected index. With a TimerScheduler it runs on the timer's goroutine.
func (c *Controller[T]) OnSettle(fn func(index int)) CallbackHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.onSettle.add(id, fn)
	return CallbackHandle{remove: func() {
		c.mu.Lock()
		c.onSettle.remove(id)
		c.mu.Unlock()
	}}
}
