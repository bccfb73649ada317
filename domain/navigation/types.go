package navigation

import "errors"

// Page names a child of the main window's navigation stack.
type Page string

const (
	PageMain        Page = "main_page"
	PageScreenshot  Page = "screenshot_page"
	PagePreferences Page = "preferences_page"
)

func (p Page) String() string { return string(p) }

// ErrUnknownPage is returned when navigating to a page the stack does not hold.
var ErrUnknownPage = errors.New("navigation: unknown page")

// Pages lists the stack children in display order.
func Pages() []Page { return []Page{PageMain, PageScreenshot, PagePreferences} }

// Known reports whether p is one of the stack children.
func Known(p Page) bool {
	for _, k := range Pages() {
		if k == p {
			return true
		}
	}
	return false
}

// BackVisible reports whether the back control is shown while p is current.
func BackVisible(p Page) bool { return p != PageMain }

// Listener is called on each successful page change.
type Listener func(prev, next Page)

// Source exposes the current page to consumers (presenters).
type Source interface{ Current() Page }

// Contract aggregate for DI.
type Contract interface {
	Source
	NavigateTo(Page) (Page, error)
	AddListener(Listener)
}
