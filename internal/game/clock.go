package game

import "time"

// Scheduler abstracts delayed execution so the countdown can be driven
// by a fake clock in tests. There is no cancel: once a round starts it
// always runs to completion.
type Scheduler interface {
	// AfterFunc runs f in its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, f func())
}

// realScheduler schedules on the wall clock.
type realScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
