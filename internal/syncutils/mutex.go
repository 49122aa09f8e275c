//go:build !deadlock

// Package syncutils selects the mutex implementation used by the carousel.
// Build with -tags deadlock to swap in go-deadlock's detector.
package syncutils

import "sync"

// Mutex is a plain sync.Mutex in regular builds.
type Mutex struct {
	mu sync.Mutex
}

func (m *Mutex) Lock()   { m.mu.Lock() }
func (m *Mutex) Unlock() { m.mu.Unlock() }
