package app

import (
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/clicky-go/ui/presenter"
)

// tclTask is a TclAfter callback that can be cancelled until it fires.
type tclTask struct {
	id    string
	fired bool
}

func (t *tclTask) Cancel() {
	if t != nil && !t.fired && t.id != "" {
		TclAfterCancel(t.id)
	}
}

// tclScheduler runs delayed continuations on Tk's event loop thread.
func tclScheduler() presenter.Scheduler {
	return presenter.SchedulerFunc(func(d time.Duration, fn func()) presenter.Task {
		t := &tclTask{}
		t.id = TclAfter(d, func() {
			t.fired = true
			fn()
		})
		return t
	})
}
