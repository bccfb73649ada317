package presenter

import (
	"errors"
	"testing"

	"github.com/soocke/clicky-go/domain/settings"
)

type fakeTheme struct {
	dark  bool
	calls int
}

func (f *fakeTheme) SetDark(b bool) { f.dark = b; f.calls++ }

type brokenStore struct{ writes int }

func (b *brokenStore) Bool(string) (bool, error)  { return true, errors.New("dconf unavailable") }
func (b *brokenStore) SetBool(string, bool) error { b.writes++; return errors.New("read-only") }

func TestPreferencePresenter_RoundTrip(t *testing.T) {
	store := settings.NewMemoryStore(settings.ClickySchema())
	theme := &fakeTheme{}
	v := newFakeViews(&eventLog{})
	p := NewPreferencePresenter(store, theme, v, discardLogger)

	if p.LoadPreference() || theme.dark || v.darkSwitch {
		t.Fatalf("default must be light")
	}
	for _, want := range []bool{true, false, true} {
		p.OnToggle(want)
		if got := p.LoadPreference(); got != want {
			t.Fatalf("round trip: got %v want %v", got, want)
		}
		if theme.dark != want || v.darkSwitch != want {
			t.Fatalf("theme/switch not applied")
		}
	}
}

func TestPreferencePresenter_ToggleIdempotent(t *testing.T) {
	once := settings.NewMemoryStore(settings.ClickySchema())
	twice := settings.NewMemoryStore(settings.ClickySchema())
	NewPreferencePresenter(once, nil, nil, nil).OnToggle(true)
	p := NewPreferencePresenter(twice, nil, nil, nil)
	p.OnToggle(true)
	p.OnToggle(true)
	a, _ := once.Bool(settings.KeyPreferDark)
	b, _ := twice.Bool(settings.KeyPreferDark)
	if a != b || !p.Dark() {
		t.Fatalf("toggling twice differs from once: %v vs %v", a, b)
	}
}

func TestPreferencePresenter_BackendFailure(t *testing.T) {
	store := &brokenStore{}
	theme := &fakeTheme{}
	p := NewPreferencePresenter(store, theme, nil, discardLogger)
	if p.LoadPreference() {
		t.Fatalf("failed read must fall back to false")
	}
	p.OnToggle(true)
	if store.writes != 1 || !theme.dark {
		t.Fatalf("write failure must still apply the theme")
	}
}
