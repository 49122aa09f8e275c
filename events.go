package carousel

// ChangeEvent describes an accepted navigation.
type ChangeEvent struct {
	From      int
	To        int
	Direction Direction
	ItemID    string // ID of the newly selected item
}

// SelectionEvent is forwarded to an EventStore when the selection changes or
// settles. Settled is false for the change itself and true when the cooldown
// has elapsed.
type SelectionEvent struct {
	Carousel  string
	Index     int
	ItemID    string
	Direction Direction
	Settled   bool
}

// EventStore is the interface for optional ECS integration.
// When set on a Stage, selection events are forwarded to it.
type EventStore interface {
	EmitEvent(event SelectionEvent)
}

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

// handlerList is an ordered list of callbacks of one kind. Callers provide
// their own locking.
type handlerList[F any] struct {
	entries []handler[F]
}

func (l *handlerList[F]) add(id uint32, fn F) {
	l.entries = append(l.entries, handler[F]{id: id, fn: fn})
}

// remove drops the entry with id. The slice is compacted so iteration never
// visits dead entries.
func (l *handlerList[F]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handler[F]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

// snapshot copies the callbacks so they can run without holding a lock.
func (l *handlerList[F]) snapshot() []F {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]F, len(l.entries))
	for i, h := range l.entries {
		out[i] = h.fn
	}
	return out
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Safe to call more
// than once and on the zero value.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}
