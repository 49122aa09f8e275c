package carousel

import "go.uber.org/zap"

// PointerEvent is one sample of a pointer's state, as polled or forwarded by a
// host. Pointer 0 is the mouse; 1-9 are touches.
type PointerEvent struct {
	Pointer int
	X, Y    float64
	Pressed bool
	Button  MouseButton
}

// Layout holds the hit regions of a carousel in host coordinates. Buttons sit
// on top of the area and win hit tests.
type Layout struct {
	Area       Rect
	PrevButton Rect
	NextButton Rect
}

// Action identifies which input affordance produced a navigation request.
type Action uint8

const (
	ActionNone            Action = iota // input did not map to navigation
	ActionPrevButton                    // click on the previous button
	ActionNextButton                    // click on the next button
	ActionBackgroundClick               // click on the area outside the buttons
	ActionContextMenu                   // right button pressed in the area
	ActionSwipe                         // touch swipe past the minimum distance
)

// String returns a lower-case name for the action.
func (a Action) String() string {
	switch a {
	case ActionPrevButton:
		return "prev-button"
	case ActionNextButton:
		return "next-button"
	case ActionBackgroundClick:
		return "background-click"
	case ActionContextMenu:
		return "context-menu"
	case ActionSwipe:
		return "swipe"
	default:
		return "none"
	}
}

// InputResult reports what a pointer event did. Accepted is false when the
// controller dropped the request because a transition was in flight.
type InputResult struct {
	Action    Action
	Direction Direction
	Accepted  bool
}

type region uint8

const (
	regionNone region = iota
	regionArea
	regionPrev
	regionNext
)

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
	target region      // region under the pointer at press time
}

// Binding maps raw pointer input onto a Controller:
//
//   - previous/next buttons call Previous/Next on click, and are disabled
//     while a transition is in flight;
//   - a left click elsewhere in the area calls Next;
//   - pressing the right button in the area calls Previous (the host should
//     suppress its native context menu when it sees ActionContextMenu);
//   - a touch swipe of at least the configured distance advances in the
//     swipe's direction, and a touch that never moved counts as a click.
//
// Only the first active touch drives swipes; other touches are ignored until
// it lifts. Not safe for concurrent use; feed it from the host's input loop.
type Binding[T Item] struct {
	ctrl   *Controller[T]
	layout Layout
	log    *zap.Logger

	pointers     [maxPointers]pointerState
	swipe        SwipeTracker
	swipePointer int // touch pointer driving swipe; 0 when none

	injectQueue []PointerEvent

	nextID   uint32
	onAction handlerList[func(InputResult)]
}

// NewBinding creates a binding for ctrl with the given hit regions.
func NewBinding[T Item](ctrl *Controller[T], layout Layout) *Binding[T] {
	return &Binding[T]{ctrl: ctrl, layout: layout, log: ctrl.log}
}

// SetLayout replaces the hit regions, for example after a resize.
func (b *Binding[T]) SetLayout(layout Layout) {
	b.layout = layout
}

// Layout returns the current hit regions.
func (b *Binding[T]) Layout() Layout {
	return b.layout
}

// ButtonsEnabled reports whether the navigation buttons accept clicks.
func (b *Binding[T]) ButtonsEnabled() bool {
	return !b.ctrl.IsAnimating()
}

// OnAction registers a callback fired for every event that mapped to an
// action, accepted or not.
func (b *Binding[T]) OnAction(fn func(InputResult)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.onAction.add(id, fn)
	return CallbackHandle{remove: func() { b.onAction.remove(id) }}
}

// --- Hit testing ---

func (b *Binding[T]) hitTest(x, y float64) region {
	if !b.layout.PrevButton.Empty() && b.layout.PrevButton.Contains(x, y) {
		return regionPrev
	}
	if !b.layout.NextButton.Empty() && b.layout.NextButton.Contains(x, y) {
		return regionNext
	}
	if b.layout.Area.Contains(x, y) {
		return regionArea
	}
	return regionNone
}

// --- Input processing ---

// Process runs the pointer state machine for one event.
func (b *Binding[T]) Process(ev PointerEvent) InputResult {
	if ev.Pointer < 0 || ev.Pointer >= maxPointers {
		return InputResult{}
	}
	ps := &b.pointers[ev.Pointer]
	touch := ev.Pointer > 0

	var res InputResult
	switch {
	case ev.Pressed && !ps.down:
		// Just pressed: capture button and region for the whole interaction.
		ps.down = true
		ps.button = ev.Button
		ps.startX, ps.startY = ev.X, ev.Y
		ps.lastX, ps.lastY = ev.X, ev.Y
		ps.target = b.hitTest(ev.X, ev.Y)

		if touch {
			if b.swipePointer == 0 && ps.target != regionNone {
				b.swipePointer = ev.Pointer
				b.swipe.Start(ev.X)
			}
		} else if ps.button == MouseButtonRight && ps.target != regionNone {
			res = b.navigate(ActionContextMenu, DirectionPrevious)
		}

	case ev.Pressed && ps.down:
		if touch && b.swipePointer == ev.Pointer && ev.X != ps.lastX {
			b.swipe.Move(ev.X)
		}
		ps.lastX, ps.lastY = ev.X, ev.Y

	case !ev.Pressed && ps.down:
		// Just released: use the button and region from press time.
		target := b.hitTest(ev.X, ev.Y)
		if touch {
			res = b.releaseTouch(ev, ps, target)
		} else if ps.button == MouseButtonLeft && target == ps.target {
			res = b.click(ps.target)
		}
		*ps = pointerState{lastX: ev.X, lastY: ev.Y}

	default:
		// Hover.
		ps.lastX, ps.lastY = ev.X, ev.Y
	}

	if res.Action != ActionNone {
		for _, fn := range b.onAction.snapshot() {
			fn(res)
		}
	}
	return res
}

func (b *Binding[T]) releaseTouch(ev PointerEvent, ps *pointerState, target region) InputResult {
	if b.swipePointer != ev.Pointer {
		return InputResult{}
	}
	b.swipePointer = 0
	b.swipe.Move(ev.X)
	moved := b.swipe.Moved()
	dir := b.swipe.End(b.ctrl.cfg.MinSwipeDistance)

	switch {
	case dir != DirectionNone:
		return b.navigate(ActionSwipe, dir)
	case !moved && target == ps.target:
		// A tap is delivered as a click on whatever it landed on.
		return b.click(ps.target)
	default:
		return InputResult{}
	}
}

func (b *Binding[T]) click(target region) InputResult {
	switch target {
	case regionPrev:
		return b.navigate(ActionPrevButton, DirectionPrevious)
	case regionNext:
		return b.navigate(ActionNextButton, DirectionNext)
	case regionArea:
		return b.navigate(ActionBackgroundClick, DirectionNext)
	default:
		return InputResult{}
	}
}

func (b *Binding[T]) navigate(action Action, dir Direction) InputResult {
	res := InputResult{Action: action, Direction: dir}
	if (action == ActionPrevButton || action == ActionNextButton) && !b.ButtonsEnabled() {
		b.log.Debug("button disabled during cooldown", zap.Stringer("action", action))
		return res
	}
	res.Accepted = b.ctrl.Advance(dir)
	return res
}

// SwipeActive reports whether a touch swipe is being tracked.
func (b *Binding[T]) SwipeActive() bool {
	return b.swipe.Active()
}
