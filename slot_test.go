package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSlot(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		selected int
		want     []Slot
	}{
		{"n3 sel0", 3, 0, []Slot{SlotSelected, SlotRight, SlotLeft}},
		{"n3 sel1", 3, 1, []Slot{SlotLeft, SlotSelected, SlotRight}},
		{"n5 sel0", 5, 0, []Slot{SlotSelected, SlotRight, SlotHidden, SlotHidden, SlotLeft}},
		{"n5 sel2", 5, 2, []Slot{SlotHidden, SlotLeft, SlotSelected, SlotRight, SlotHidden}},
		{"n2 sel0", 2, 0, []Slot{SlotSelected, SlotLeft}},
		{"n2 sel1", 2, 1, []Slot{SlotLeft, SlotSelected}},
		{"n1", 1, 0, []Slot{SlotSelected}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]Slot, tt.n)
			for i := range got {
				got[i] = ComputeSlot(i, tt.selected, tt.n)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSlotDegenerate(t *testing.T) {
	assert.Equal(t, SlotHidden, ComputeSlot(0, 0, 0))
	assert.Equal(t, SlotHidden, ComputeSlot(0, 0, -1))
	// Out-of-range indices are reduced modulo n.
	assert.Equal(t, SlotSelected, ComputeSlot(5, 0, 5))
	assert.Equal(t, SlotLeft, ComputeSlot(-1, 0, 5))
}

func TestComputeSlotExactlyOneSelected(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for sel := 0; sel < n; sel++ {
			counts := map[Slot]int{}
			for i := 0; i < n; i++ {
				counts[ComputeSlot(i, sel, n)]++
			}
			assert.Equal(t, 1, counts[SlotSelected], "n=%d sel=%d", n, sel)
			assert.LessOrEqual(t, counts[SlotLeft], 1)
			assert.LessOrEqual(t, counts[SlotRight], 1)
			if n >= 3 {
				assert.Equal(t, n-3, counts[SlotHidden], "n=%d sel=%d", n, sel)
			} else {
				assert.Zero(t, counts[SlotHidden])
			}
		}
	}
}

func TestControllerSlots(t *testing.T) {
	c, sched := newFrameController(t, 5)

	vis := c.Visible()
	if assert.Len(t, vis, 3) {
		assert.Equal(t, 4, vis[0].Index)
		assert.Equal(t, SlotLeft, vis[0].Slot)
		assert.Equal(t, 0, vis[1].Index)
		assert.Equal(t, 1, vis[2].Index)
	}

	c.Next()
	sched.Advance(DefaultCooldown)
	assert.Equal(t, SlotLeft, c.Slot(0))
	assert.Equal(t, SlotSelected, c.Slot(1))
	assert.Equal(t, SlotHidden, c.Slot(4))

	slots := c.Slots()
	assert.Len(t, slots, 5)
	assert.Equal(t, testItem(2), slots[1].Item)
}

func TestControllerVisibleTwoItems(t *testing.T) {
	c, _ := newFrameController(t, 2)
	vis := c.Visible()
	if assert.Len(t, vis, 2) {
		assert.Equal(t, SlotLeft, vis[0].Slot)
		assert.Equal(t, SlotSelected, vis[1].Slot)
	}
}
