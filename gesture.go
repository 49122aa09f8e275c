package carousel

import "math"

// ClassifyGesture turns a horizontal touch movement into a direction.
// Travel shorter than minSwipe is a tap (DirectionNone). A finger moving
// right-to-left (startX > endX) means next; left-to-right means previous.
func ClassifyGesture(startX, endX, minSwipe float64) Direction {
	distance := startX - endX
	if math.Abs(distance) < minSwipe {
		return DirectionNone
	}
	if distance > 0 {
		return DirectionNext
	}
	return DirectionPrevious
}

// SwipeTracker records the horizontal endpoints of one touch interaction.
// The zero value is ready to use.
type SwipeTracker struct {
	start, end float64
	active     bool
	moved      bool
	deadZone   float64
}

// Start records where the touch began and clears any previous movement.
func (t *SwipeTracker) Start(x float64) {
	t.start = x
	t.end = x
	t.active = true
	t.moved = false
}

// Move records the latest touch position. Ignored when no touch is active.
func (t *SwipeTracker) Move(x float64) {
	if !t.active {
		return
	}
	t.end = x
	dz := t.deadZone
	if dz == 0 {
		dz = defaultTapDeadZone
	}
	if math.Abs(t.end-t.start) > dz {
		t.moved = true
	}
}

// End classifies the gesture and resets the tracker, whatever the outcome.
// A touch that never moved ends where it started and classifies as a tap.
func (t *SwipeTracker) End(minSwipe float64) Direction {
	if !t.active {
		return DirectionNone
	}
	dir := ClassifyGesture(t.start, t.end, minSwipe)
	t.Reset()
	return dir
}

// Reset returns the trackers to their neutral value.
func (t *SwipeTracker) Reset() {
	t.start = 0
	t.end = 0
	t.active = false
	t.moved = false
}

// Active reports whether a touch is being tracked.
func (t *SwipeTracker) Active() bool {
	return t.active
}

// Moved reports whether the tracked touch travelled beyond the tap dead zone.
func (t *SwipeTracker) Moved() bool {
	return t.moved
}

// Positions returns the recorded start and end X coordinates.
func (t *SwipeTracker) Positions() (start, end float64) {
	return t.start, t.end
}
