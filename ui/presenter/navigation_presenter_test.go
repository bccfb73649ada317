package presenter

import (
	"errors"
	"testing"

	"github.com/soocke/clicky-go/domain/navigation"
)

func TestNavigationPresenter_BackVisibility(t *testing.T) {
	log := &eventLog{}
	v := newFakeViews(log)
	p := NewNavigationPresenter(navigation.NewNavigator(discardLogger), v, discardLogger)

	for _, page := range []navigation.Page{navigation.PageScreenshot, navigation.PagePreferences, navigation.PageMain} {
		if err := p.NavigateTo(page); err != nil {
			t.Fatalf("navigate %v: %v", page, err)
		}
		if v.backVisible != (page != navigation.PageMain) {
			t.Fatalf("back visible=%v on %v", v.backVisible, page)
		}
		if v.page != page {
			t.Fatalf("view shows %v, want %v", v.page, page)
		}
	}
	if log.index("back") > log.index("page:"+navigation.PageScreenshot.String()) {
		t.Fatalf("back visibility must be set before switching page: %v", log.events)
	}
}

func TestNavigationPresenter_UnknownPage(t *testing.T) {
	log := &eventLog{}
	v := newFakeViews(log)
	p := NewNavigationPresenter(navigation.NewNavigator(discardLogger), v, discardLogger)
	err := p.NavigateTo("history_page")
	if !errors.Is(err, navigation.ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
	if len(log.events) != 0 {
		t.Fatalf("view must not change: %v", log.events)
	}
}

func TestNavigationPresenter_GoBackAndPreferences(t *testing.T) {
	v := newFakeViews(&eventLog{})
	p := NewNavigationPresenter(navigation.NewNavigator(discardLogger), v, discardLogger)
	p.OpenPreferences()
	if p.Current() != navigation.PagePreferences || !v.backVisible {
		t.Fatalf("expected preferences page with back control")
	}
	p.GoBack()
	if p.Current() != navigation.PageMain || v.backVisible {
		t.Fatalf("expected main page without back control")
	}
}

func TestNavigationPresenter_Sync(t *testing.T) {
	v := newFakeViews(&eventLog{})
	v.backVisible = true
	p := NewNavigationPresenter(navigation.NewNavigator(discardLogger), v, discardLogger)
	p.Sync()
	if v.backVisible || v.page != navigation.PageMain {
		t.Fatalf("sync must apply the main page")
	}
}
