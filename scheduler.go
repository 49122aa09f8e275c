package carousel

import (
	"sort"
	"time"
)

// Task is a pending deferred call.
type Task interface {
	// Stop cancels the call. It returns false if the call already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler defers a function call. Controllers use it for cooldown expiry so
// hosts can choose between wall-clock timers and frame-driven time.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// --- Wall clock ---

// TimerScheduler runs deferred calls on the Go runtime's timers. Calls run on
// their own goroutine.
type TimerScheduler struct{}

// AfterFunc schedules fn after d using time.AfterFunc.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return time.AfterFunc(d, fn)
}

// --- Frame clock ---

// FrameScheduler runs deferred calls when its clock is advanced. There is no
// background goroutine: due calls run synchronously inside Advance, in due-time
// order, on the caller's goroutine. Not safe for concurrent use.
type FrameScheduler struct {
	now    time.Duration
	seq    uint64
	tasks  []*frameTask
	firing bool
}

type frameTask struct {
	due     time.Duration
	seq     uint64
	fn      func()
	owner   *FrameScheduler
	stopped bool
	fired   bool
}

// Stop cancels the task if it has not run yet.
func (t *frameTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.owner.remove(t)
	return true
}

// NewFrameScheduler creates a scheduler whose clock starts at zero.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// AfterFunc schedules fn to run once the clock has advanced by d.
// A non-positive d runs fn on the next Advance call.
func (s *FrameScheduler) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &frameTask{due: s.now + d, seq: s.seq, fn: fn, owner: s}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt and runs every task that became due.
// Tasks scheduled by a running task are considered in the same call if they
// are already due.
func (s *FrameScheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	if s.firing {
		return
	}
	s.firing = true
	defer func() { s.firing = false }()

	for {
		t := s.nextDue()
		if t == nil {
			return
		}
		s.remove(t)
		t.fired = true
		t.fn()
	}
}

// Now returns the scheduler's clock.
func (s *FrameScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled tasks that have not run.
func (s *FrameScheduler) Pending() int {
	return len(s.tasks)
}

func (s *FrameScheduler) nextDue() *frameTask {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	if s.tasks[0].due > s.now {
		return nil
	}
	return s.tasks[0]
}

// remove drops t from the task list. Uses copy+nil to avoid retaining the
// closure in the backing array.
func (s *FrameScheduler) remove(t *frameTask) {
	for i, c := range s.tasks {
		if c == t {
			copy(s.tasks[i:], s.tasks[i+1:])
			s.tasks[len(s.tasks)-1] = nil
			s.tasks = s.tasks[:len(s.tasks)-1]
			return
		}
	}
}
