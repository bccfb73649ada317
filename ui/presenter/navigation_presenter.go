package presenter

import (
	"log/slog"

	"github.com/soocke/clicky-go/domain/navigation"
)

// StackView shows one page of the navigation stack and the back control.
type StackView interface {
	SetBackVisible(bool)
	ShowPage(navigation.Page)
}

// NavigationPresenter keeps the stack view in line with the page state machine.
type NavigationPresenter struct {
	nav    navigation.Contract
	view   StackView
	logger *slog.Logger
}

func NewNavigationPresenter(nav navigation.Contract, view StackView, logger *slog.Logger) *NavigationPresenter {
	return &NavigationPresenter{nav: nav, view: view, logger: logger}
}

// NavigateTo sets the back control visibility (hidden only on the main page),
// then switches the visible page. Unknown pages leave the view untouched.
func (p *NavigationPresenter) NavigateTo(page navigation.Page) error {
	if p == nil || p.nav == nil || p.view == nil {
		return nil
	}
	if _, err := p.nav.NavigateTo(page); err != nil {
		if p.logger != nil {
			p.logger.Warn("navigation rejected", "page", page.String(), "error", err)
		}
		return err
	}
	p.view.SetBackVisible(navigation.BackVisible(page))
	p.view.ShowPage(page)
	return nil
}

func (p *NavigationPresenter) GoBack() { _ = p.NavigateTo(navigation.PageMain) }

func (p *NavigationPresenter) OpenPreferences() { _ = p.NavigateTo(navigation.PagePreferences) }

// Sync applies the current page to a freshly built view.
func (p *NavigationPresenter) Sync() {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	cur := p.nav.Current()
	p.view.SetBackVisible(navigation.BackVisible(cur))
	p.view.ShowPage(cur)
}

func (p *NavigationPresenter) Current() navigation.Page {
	if p == nil || p.nav == nil {
		return navigation.PageMain
	}
	return p.nav.Current()
}
