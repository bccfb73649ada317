package presenter

import (
	"log/slog"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Affordance ids used by menu items, buttons and accelerators.
const (
	ActionTakeScreenshot = "take-screenshot"
	ActionGoBack         = "go-back"
	ActionSave           = "save"
	ActionPreferences    = "preferences"
	ActionShortcuts      = "shortcuts"
	ActionAbout          = "about"
	ActionQuit           = "quit"

	ToggleDarkMode = "dark-mode"
)

// Actions is the dispatch table from affordance id to handler. Every menu
// item, button and switch is routed through it.
type Actions struct {
	handlers map[string]func()
	toggles  map[string]func(bool)
	logger   *slog.Logger
}

func NewActions(logger *slog.Logger) *Actions {
	return &Actions{handlers: map[string]func(){}, toggles: map[string]func(bool){}, logger: logger}
}

// Register binds id to fn, replacing any previous handler.
func (a *Actions) Register(id string, fn func()) {
	if fn != nil {
		a.handlers[id] = fn
	}
}

func (a *Actions) RegisterToggle(id string, fn func(bool)) {
	if fn != nil {
		a.toggles[id] = fn
	}
}

// Activate runs the handler for id. Unknown ids are logged and reported false.
func (a *Actions) Activate(id string) bool {
	if a == nil {
		return false
	}
	fn, ok := a.handlers[id]
	if !ok {
		if a.logger != nil {
			a.logger.Warn("unknown action", "id", id)
		}
		return false
	}
	if a.logger != nil {
		a.logger.Debug("action", "id", id)
	}
	fn()
	return true
}

// Toggle runs the toggle handler for id with v.
func (a *Actions) Toggle(id string, v bool) bool {
	if a == nil {
		return false
	}
	fn, ok := a.toggles[id]
	if !ok {
		if a.logger != nil {
			a.logger.Warn("unknown toggle", "id", id)
		}
		return false
	}
	if a.logger != nil {
		a.logger.Debug("toggle", "id", id, "value", v)
	}
	fn(v)
	return true
}

func (a *Actions) Has(id string) bool {
	if a == nil {
		return false
	}
	_, ok := a.handlers[id]
	return ok
}

func (a *Actions) HasToggle(id string) bool {
	if a == nil {
		return false
	}
	_, ok := a.toggles[id]
	return ok
}

// IDs returns the registered action ids, sorted.
func (a *Actions) IDs() []string {
	out := make([]string, 0, len(a.handlers))
	for id := range a.handlers {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Accelerator binds a Tk key sequence to an action.
type Accelerator struct {
	Sequence string
	Keys     string
	Action   string
	Label    string
}

// DefaultAccelerators is the application's keyboard shortcut table.
func DefaultAccelerators() []Accelerator {
	return []Accelerator{
		{Sequence: "<Control-q>", Keys: "Ctrl+Q", Action: ActionQuit, Label: "Quit"},
		{Sequence: "<Control-w>", Keys: "Ctrl+W", Action: ActionQuit, Label: "Close window"},
		{Sequence: "<Control-k>", Keys: "Ctrl+K", Action: ActionShortcuts, Label: "Keyboard shortcuts"},
		{Sequence: "<F1>", Keys: "F1", Action: ActionAbout, Label: "About"},
	}
}

// ShortcutsText renders accels as a plain text table for the shortcuts window.
func ShortcutsText(accels []Accelerator) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Shortcut", "Action"})
	for _, a := range accels {
		t.AppendRow(table.Row{a.Keys, a.Label})
	}
	return t.Render()
}
