package presenter

// Loop drives periodic UI-thread work.
//
// It drains cross-thread activation requests and invokes a scheduler
// callback to arm the next tick. The zero value is usable (methods are nil-safe).
type Loop struct {
	App      *ApplicationPresenter
	Schedule func()
}

func NewLoop(app *ApplicationPresenter, schedule func()) *Loop {
	return &Loop{App: app, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.App != nil {
		l.App.Drain()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
