package carousel

// touchPointer is the pointer slot used for injected touch sequences.
const touchPointer = 1

// InjectPress queues a left mouse press at (x, y). Injected events are
// consumed one per Step call, ahead of real input.
func (b *Binding[T]) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, PointerEvent{X: x, Y: y, Pressed: true, Button: MouseButtonLeft})
}

// InjectMove queues a mouse move at (x, y) with the left button held.
func (b *Binding[T]) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, PointerEvent{X: x, Y: y, Pressed: true, Button: MouseButtonLeft})
}

// InjectRelease queues a left mouse release at (x, y).
func (b *Binding[T]) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, PointerEvent{X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick queues a left press and release at the same point. Consumes two
// frames.
func (b *Binding[T]) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectRightClick queues a right press and release at the same point.
// Consumes two frames.
func (b *Binding[T]) InjectRightClick(x, y float64) {
	b.injectQueue = append(b.injectQueue,
		PointerEvent{X: x, Y: y, Pressed: true, Button: MouseButtonRight},
		PointerEvent{X: x, Y: y, Button: MouseButtonRight},
	)
}

// InjectSwipe queues a full touch sequence: touch down at fromX, linearly
// interpolated moves over frames-2 intermediate frames, and lift at toX, all
// at height y. The sequence consumes frames frames; the minimum is 2.
func (b *Binding[T]) InjectSwipe(fromX, toX, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.injectQueue = append(b.injectQueue, PointerEvent{Pointer: touchPointer, X: fromX, Y: y, Pressed: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		b.injectQueue = append(b.injectQueue, PointerEvent{
			Pointer: touchPointer, X: fromX + (toX-fromX)*t, Y: y, Pressed: true,
		})
	}
	b.injectQueue = append(b.injectQueue, PointerEvent{Pointer: touchPointer, X: toX, Y: y})
}

// Pending returns the number of queued synthetic events.
func (b *Binding[T]) Pending() int {
	return len(b.injectQueue)
}

// Step pops one queued event and processes it. It returns false when the
// queue was empty, in which case the host should process real input instead.
func (b *Binding[T]) Step() (InputResult, bool) {
	if len(b.injectQueue) == 0 {
		return InputResult{}, false
	}
	ev := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]
	return b.Process(ev), true
}
