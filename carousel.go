package carousel

import "time"

// Item is anything a carousel can cycle through. ItemID must be stable for the
// lifetime of the carousel; hosts use it to key per-item render and load state.
type Item interface {
	ItemID() string
}

// Direction is the outcome of a navigation request or gesture.
type Direction uint8

const (
	DirectionNone     Direction = iota // tap or too-short swipe; no navigation
	DirectionPrevious                  // move selection one step back (wraps)
	DirectionNext                      // move selection one step forward (wraps)
)

// String returns a lower-case name suitable for logs and scripts.
func (d Direction) String() string {
	switch d {
	case DirectionPrevious:
		return "previous"
	case DirectionNext:
		return "next"
	default:
		return "none"
	}
}

// Slot is the display position an item occupies relative to the selection.
type Slot uint8

const (
	SlotHidden   Slot = iota // not one of the three visible positions
	SlotLeft                 // immediately before the selection (wraps)
	SlotSelected             // the centered, selected item
	SlotRight                // immediately after the selection (wraps)
)

// String returns a lower-case name for the slot.
func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "left"
	case SlotSelected:
		return "selected"
	case SlotRight:
		return "right"
	default:
		return "hidden"
	}
}

// State is the controller's transition state.
type State uint8

const (
	StateIdle          State = iota // navigation requests are accepted
	StateTransitioning              // cooldown running; navigation requests are dropped
)

// String returns a lower-case name for the state.
func (s State) String() string {
	if s == StateTransitioning {
		return "transitioning"
	}
	return "idle"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button; opens the context menu
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersection returns the overlapping area of r and other. The result is
// the zero Rect when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Grow returns r expanded by margin on every side. Negative margins shrink.
func (r Rect) Grow(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Tuning defaults observed on the landing page.
const (
	DefaultMinSwipeDistance = 50.0                   // pixels
	DefaultCooldown         = 500 * time.Millisecond // agent carousel
	DefaultTPS              = 60                     // frames per second for Stage.Update
	defaultTapDeadZone      = 4.0                    // pixels before a touch counts as moved
	maxPointers             = 10                     // pointer 0 = mouse, 1-9 = touch
)
