//go:build deadlock

package syncutils

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// Mutex reports lock-order inversions and locks held past the timeout.
type Mutex struct {
	mu deadlock.Mutex
}

func (m *Mutex) Lock()   { m.mu.Lock() }
func (m *Mutex) Unlock() { m.mu.Unlock() }

func init() {
	deadlock.Opts.DeadlockTimeout = 5 * time.Second
}
