package carousel

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testItem int

func (i testItem) ItemID() string { return strconv.Itoa(int(i)) }

func items(n int) []testItem {
	out := make([]testItem, n)
	for i := range out {
		out[i] = testItem(i + 1)
	}
	return out
}

func newFrameController(t *testing.T, n int, opts ...Option) (*Controller[testItem], *FrameScheduler) {
	t.Helper()
	sched := NewFrameScheduler()
	c, err := New(items(n), append([]Option{WithScheduler(sched)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, sched
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		n    int
		opts []Option
		want error
	}{
		{"empty", 0, nil, ErrNoItems},
		{"negative index", 3, []Option{WithInitialIndex(-1)}, ErrInitialIndex},
		{"index past end", 3, []Option{WithInitialIndex(3)}, ErrInitialIndex},
		{"negative cooldown", 3, []Option{WithCooldown(-time.Second)}, ErrCooldown},
		{"negative swipe", 3, []Option{WithMinSwipeDistance(-1)}, ErrMinSwipe},
		{"ok", 3, []Option{WithInitialIndex(2)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(items(tt.n), append([]Option{WithScheduler(NewFrameScheduler())}, tt.opts...)...)
			if tt.want == nil {
				require.NoError(t, err)
				c.Close()
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Nil(t, c)
		})
	}
}

func TestNewCopiesItems(t *testing.T) {
	src := items(3)
	c2, err := New(src, WithScheduler(NewFrameScheduler()))
	require.NoError(t, err)
	defer c2.Close()
	src[0] = 99
	assert.Equal(t, testItem(1), c2.Item(0))
}

func TestAdvanceWrapsAndLocks(t *testing.T) {
	c, sched := newFrameController(t, 3, WithCooldown(500*time.Millisecond))

	require.True(t, c.Next())
	assert.Equal(t, 1, c.SelectedIndex())
	assert.True(t, c.IsAnimating())
	assert.Equal(t, StateTransitioning, c.State())

	// Dropped, not queued.
	assert.False(t, c.Previous())
	assert.Equal(t, 1, c.SelectedIndex())

	sched.Advance(499 * time.Millisecond)
	assert.True(t, c.IsAnimating())
	sched.Advance(time.Millisecond)
	assert.False(t, c.IsAnimating())
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 1, c.SelectedIndex(), "dropped request must not replay")

	require.True(t, c.Previous())
	assert.Equal(t, 0, c.SelectedIndex())
	sched.Advance(500 * time.Millisecond)

	require.True(t, c.Previous())
	assert.Equal(t, 2, c.SelectedIndex(), "previous wraps before the first item")
}

func TestAdvanceFullCycle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			c, sched := newFrameController(t, n, WithCooldown(10*time.Millisecond))
			for i := 0; i < n; i++ {
				require.True(t, c.Next())
				sched.Advance(10 * time.Millisecond)
			}
			assert.Equal(t, 0, c.SelectedIndex())
			for i := 0; i < n; i++ {
				require.True(t, c.Previous())
				sched.Advance(10 * time.Millisecond)
			}
			assert.Equal(t, 0, c.SelectedIndex())
		})
	}
}

func TestAdvanceNone(t *testing.T) {
	c, _ := newFrameController(t, 3)
	var fired bool
	c.OnChange(func(ChangeEvent) { fired = true })
	assert.False(t, c.Advance(DirectionNone))
	assert.False(t, c.IsAnimating())
	assert.False(t, fired)
}

func TestSingleItemStillCoolsDown(t *testing.T) {
	c, sched := newFrameController(t, 1)
	var changes []ChangeEvent
	c.OnChange(func(ev ChangeEvent) { changes = append(changes, ev) })

	require.True(t, c.Next())
	assert.Equal(t, 0, c.SelectedIndex())
	assert.True(t, c.IsAnimating())
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeEvent{From: 0, To: 0, Direction: DirectionNext, ItemID: "1"}, changes[0])

	sched.Advance(DefaultCooldown)
	assert.False(t, c.IsAnimating())
}

func TestOnChangeAndSettle(t *testing.T) {
	c, sched := newFrameController(t, 5, WithInitialIndex(4))
	var changes []ChangeEvent
	var settled []int
	h := c.OnChange(func(ev ChangeEvent) {
		// Callbacks run unlocked and may read back.
		assert.Equal(t, ev.To, c.SelectedIndex())
		changes = append(changes, ev)
	})
	c.OnSettle(func(i int) { settled = append(settled, i) })

	c.Next()
	assert.Equal(t, []ChangeEvent{{From: 4, To: 0, Direction: DirectionNext, ItemID: "1"}}, changes)
	assert.Empty(t, settled)
	sched.Advance(DefaultCooldown)
	assert.Equal(t, []int{0}, settled)

	h.Remove()
	h.Remove()
	c.Next()
	assert.Len(t, changes, 1)
}

func TestCloseCancelsCooldown(t *testing.T) {
	c, sched := newFrameController(t, 3)
	var settled bool
	c.OnSettle(func(int) { settled = true })

	c.Next()
	require.Equal(t, 1, sched.Pending())
	c.Close()
	c.Close()
	assert.Equal(t, 0, sched.Pending())
	assert.True(t, c.Closed())

	sched.Advance(time.Second)
	assert.False(t, settled)
	assert.True(t, c.IsAnimating(), "a closed controller is frozen")
	assert.False(t, c.Next())
}

func TestStaleSettleIgnored(t *testing.T) {
	sched := NewFrameScheduler()
	c, err := New(items(3), WithScheduler(sched), WithCooldown(0))
	require.NoError(t, err)
	defer c.Close()

	c.Next()
	gen := c.gen
	sched.Advance(0)
	require.False(t, c.IsAnimating())
	c.Next()
	c.settle(gen)
	assert.True(t, c.IsAnimating())
}

func TestZeroCooldownUnlocksOnNextTick(t *testing.T) {
	c, sched := newFrameController(t, 3, WithCooldown(0))
	c.Next()
	assert.False(t, c.Next())
	sched.Advance(0)
	assert.True(t, c.Next())
}

func TestTimerSchedulerController(t *testing.T) {
	c, err := New(items(3), WithCooldown(20*time.Millisecond))
	require.NoError(t, err)
	defer c.Close()

	settled := make(chan int, 1)
	c.OnSettle(func(i int) { settled <- i })

	require.True(t, c.Next())
	select {
	case i := <-settled:
		assert.Equal(t, 1, i)
	case <-time.After(2 * time.Second):
		t.Fatal("cooldown never elapsed")
	}
	assert.False(t, c.IsAnimating())
}

func TestTimerSchedulerCloseStopsTimer(t *testing.T) {
	c, err := New(items(3), WithCooldown(time.Hour))
	require.NoError(t, err)
	c.Next()
	c.Close()
	// goleak in TestMain fails the package if the timer goroutine survives.
}

func TestConcurrentAdvance(t *testing.T) {
	c, err := New(items(5), WithCooldown(time.Hour))
	require.NoError(t, err)
	defer c.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Next() {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, c.SelectedIndex())
}

func TestItemsReturnsCopy(t *testing.T) {
	c, _ := newFrameController(t, 3)
	got := c.Items()
	got[0] = 42
	assert.Equal(t, testItem(1), c.Item(0))
	assert.Equal(t, testItem(1), c.Selected())
	assert.Equal(t, 3, c.Len())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "next", DirectionNext.String())
	assert.Equal(t, "previous", DirectionPrevious.String())
	assert.Equal(t, "none", DirectionNone.String())
	assert.Equal(t, "left", SlotLeft.String())
	assert.Equal(t, "hidden", SlotHidden.String())
	assert.Equal(t, "transitioning", StateTransitioning.String())
	assert.Equal(t, "context-menu", ActionContextMenu.String())
}
