package gesture

import "sync"

// Cell holds the most recent classifier output. The frame loop is the
// only writer; the round machine and any presentation layer read it.
// A read always observes the latest fully written value.
type Cell struct {
	mu      sync.RWMutex
	current Gesture
}

// NewCell creates a Cell starting at None.
func NewCell() *Cell {
	return &Cell{current: None}
}

// Set stores the latest classified gesture.
func (c *Cell) Set(g Gesture) {
	c.mu.Lock()
	c.current = g
	c.mu.Unlock()
}

// Get returns the most recently stored gesture.
func (c *Cell) Get() Gesture {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}
