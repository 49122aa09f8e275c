package carousel

// ComputeSlot returns the display slot of itemIndex when selectedIndex is
// centered in a carousel of n items.
//
// The offset (itemIndex - selectedIndex + n) mod n decides: 0 is selected,
// n-1 is left, 1 is right, anything else is hidden. Left is tested before
// right, so with two items the unselected one sits on the left. With n <= 3
// no item is ever hidden.
func ComputeSlot(itemIndex, selectedIndex, n int) Slot {
	if n <= 0 {
		return SlotHidden
	}
	offset := ((itemIndex-selectedIndex)%n + n) % n
	switch {
	case offset == 0:
		return SlotSelected
	case offset == n-1:
		return SlotLeft
	case offset == 1:
		return SlotRight
	default:
		return SlotHidden
	}
}

// SlotAssignment pairs an item with its current slot.
type SlotAssignment[T Item] struct {
	Index int
	Item  T
	Slot  Slot
}

// Slot returns the current slot of item i.
func (c *Controller[T]) Slot(i int) Slot {
	return ComputeSlot(i, c.SelectedIndex(), len(c.items))
}

// Slots returns the slot of every item, in item order.
func (c *Controller[T]) Slots() []SlotAssignment[T] {
	selected := c.SelectedIndex()
	n := len(c.items)
	out := make([]SlotAssignment[T], n)
	for i, it := range c.items {
		out[i] = SlotAssignment[T]{Index: i, Item: it, Slot: ComputeSlot(i, selected, n)}
	}
	return out
}

// Visible returns the non-hidden items ordered left, selected, right. Slots
// that no item occupies (n < 3) are skipped.
func (c *Controller[T]) Visible() []SlotAssignment[T] {
	all := c.Slots()
	out := make([]SlotAssignment[T], 0, 3)
	for _, want := range [...]Slot{SlotLeft, SlotSelected, SlotRight} {
		for _, a := range all {
			if a.Slot == want {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
