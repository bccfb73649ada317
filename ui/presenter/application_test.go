package presenter

import (
	"errors"
	"testing"
)

type fakeWindow struct{ presented int }

func (w *fakeWindow) Present() { w.presented++ }

func TestApplicationPresenter_SecondActivationPresents(t *testing.T) {
	built := 0
	win := &fakeWindow{}
	app := NewApplicationPresenter(func() (MainWindow, error) {
		built++
		return win, nil
	}, discardLogger)

	for i := 0; i < 3; i++ {
		if err := app.Activate(); err != nil {
			t.Fatalf("activate: %v", err)
		}
	}
	if built != 1 {
		t.Fatalf("expected one window, built %d", built)
	}
	if win.presented != 3 {
		t.Fatalf("expected window presented on every activation, got %d", win.presented)
	}
	if app.Window() != MainWindow(win) {
		t.Fatalf("unexpected window")
	}
}

func TestApplicationPresenter_BuildError(t *testing.T) {
	boom := errors.New("bad definition")
	app := NewApplicationPresenter(func() (MainWindow, error) { return nil, boom }, discardLogger)
	if err := app.Activate(); !errors.Is(err, boom) {
		t.Fatalf("expected build error, got %v", err)
	}
	if app.Window() != nil {
		t.Fatalf("no window expected")
	}
}

func TestApplicationPresenter_QueuedRequestsDrainedOnTick(t *testing.T) {
	win := &fakeWindow{}
	app := NewApplicationPresenter(func() (MainWindow, error) { return win, nil }, discardLogger)
	if err := app.Activate(); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			app.RequestActivate()
		}
		close(done)
	}()
	<-done
	rescheduled := 0
	l := NewLoop(app, func() { rescheduled++ })
	l.Tick()
	if win.presented < 2 || win.presented > 9 {
		t.Fatalf("expected queued activations to be presented, got %d", win.presented)
	}
	if rescheduled != 1 {
		t.Fatalf("loop must reschedule itself")
	}
	before := win.presented
	l.Tick()
	if win.presented != before {
		t.Fatalf("no pending requests expected")
	}
	var nilLoop *Loop
	nilLoop.Tick()
}
