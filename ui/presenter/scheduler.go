package presenter

import "time"

// Task is a pending delayed continuation on the UI loop.
type Task interface{ Cancel() }

// Scheduler runs fn on the UI loop after d.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func()) Task

func (f SchedulerFunc) After(d time.Duration, fn func()) Task { return f(d, fn) }
