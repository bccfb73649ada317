// Package layout parses the declarative definition of the main window.
// It has no toolkit dependency; ui/view turns a Definition into widgets.
package layout

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/soocke/clicky-go/domain/navigation"
	"github.com/soocke/clicky-go/domain/screenshot"
	"gopkg.in/yaml.v3"
)

// Widget types understood by the builder.
const (
	TypeLabel     = "label"
	TypeButton    = "button"
	TypeRadio     = "radio"
	TypeCheck     = "check"
	TypeSwitch    = "switch"
	TypeImage     = "image"
	TypeSeparator = "separator"
)

// Ids the application looks up after building the window.
const (
	IDMainWindow     = "main_window"
	IDStack          = "stack"
	IDMainMenu       = "main_menu"
	IDGoBack         = "go_back_button"
	IDTakeScreenshot = "button_take_screenshot"
	IDDarkModeSwitch = "darkmode_switch"
	IDRadioWindow    = "radio_window"
	IDRadioArea      = "radio_area"
	IDCheckBorder    = "checkbox_border"
	IDCheckCursor    = "checkbox_cursor"
	IDScreenshot     = "screenshot_image"
)

// RequiredIDs must all be present in a valid definition.
var RequiredIDs = []string{
	IDMainWindow, IDStack, IDGoBack, IDTakeScreenshot, IDDarkModeSwitch,
	IDRadioWindow, IDRadioArea, IDCheckBorder, IDCheckCursor, IDScreenshot, IDMainMenu,
}

var ErrInvalid = errors.New("layout: invalid definition")

type Definition struct {
	Window Window   `yaml:"window"`
	Menu   Menu     `yaml:"menu"`
	Header []Widget `yaml:"header"`
	Stack  Stack    `yaml:"stack"`
}

type Window struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

type Menu struct {
	ID    string     `yaml:"id"`
	Label string     `yaml:"label"`
	Items []MenuItem `yaml:"items"`
}

type MenuItem struct {
	Label       string `yaml:"label"`
	Action      string `yaml:"action"`
	Accelerator string `yaml:"accelerator"`
	Separator   bool   `yaml:"separator"`
}

type Stack struct {
	ID    string `yaml:"id"`
	Pages []Page `yaml:"pages"`
}

type Page struct {
	Name    string   `yaml:"name"`
	Widgets []Widget `yaml:"widgets"`
}

// Widget is a leaf control. Action names a dispatch-table entry for buttons;
// Toggle names a toggle entry for switches and checks.
type Widget struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Label    string `yaml:"label"`
	Text     string `yaml:"text"`
	Style    string `yaml:"style"`
	Action   string `yaml:"action"`
	Toggle   string `yaml:"toggle"`
	Group    string `yaml:"group"`
	Value    string `yaml:"value"`
	Selected bool   `yaml:"selected"`
}

// Parse decodes and validates a definition. Unknown fields are rejected.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var d Definition
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks id uniqueness, widget types, the required ids and pages.
func (d *Definition) Validate() error {
	ids := map[string]bool{}
	add := func(id, where string) error {
		if id == "" {
			return fmt.Errorf("%w: %s without id", ErrInvalid, where)
		}
		if ids[id] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalid, id)
		}
		ids[id] = true
		return nil
	}
	if err := add(d.Window.ID, "window"); err != nil {
		return err
	}
	if err := add(d.Menu.ID, "menu"); err != nil {
		return err
	}
	if err := add(d.Stack.ID, "stack"); err != nil {
		return err
	}
	for _, it := range d.Menu.Items {
		if !it.Separator && (it.Label == "" || it.Action == "") {
			return fmt.Errorf("%w: menu item needs label and action", ErrInvalid)
		}
	}
	for _, w := range d.Header {
		if err := add(w.ID, "header widget"); err != nil {
			return err
		}
		if err := w.validate(); err != nil {
			return err
		}
	}
	pages := map[string]bool{}
	for _, p := range d.Stack.Pages {
		if !navigation.Known(navigation.Page(p.Name)) {
			return fmt.Errorf("%w: unknown page %q", ErrInvalid, p.Name)
		}
		if pages[p.Name] {
			return fmt.Errorf("%w: duplicate page %q", ErrInvalid, p.Name)
		}
		pages[p.Name] = true
		for _, w := range p.Widgets {
			if err := add(w.ID, "widget on "+p.Name); err != nil {
				return err
			}
			if err := w.validate(); err != nil {
				return err
			}
		}
	}
	// Every page the navigator can reach needs a frame.
	for _, p := range navigation.Pages() {
		if !pages[p.String()] {
			return fmt.Errorf("%w: missing page %q", ErrInvalid, p)
		}
	}
	for _, id := range RequiredIDs {
		if !ids[id] {
			return fmt.Errorf("%w: missing required id %q", ErrInvalid, id)
		}
	}
	// The view reads the selected mode from the radio values.
	for id, mode := range map[string]screenshot.Mode{IDRadioWindow: screenshot.ModeWindow, IDRadioArea: screenshot.ModeArea} {
		if w, _ := d.Widget(id); w.Value != mode.String() {
			return fmt.Errorf("%w: %s must have value %q, got %q", ErrInvalid, id, mode.String(), w.Value)
		}
	}
	return nil
}

func (w Widget) validate() error {
	switch w.Type {
	case TypeLabel, TypeImage, TypeSeparator:
	case TypeButton:
		if w.Action == "" {
			return fmt.Errorf("%w: button %q has no action", ErrInvalid, w.ID)
		}
	case TypeRadio:
		if w.Group == "" || w.Value == "" {
			return fmt.Errorf("%w: radio %q needs group and value", ErrInvalid, w.ID)
		}
	case TypeCheck, TypeSwitch:
	default:
		return fmt.Errorf("%w: widget %q has unknown type %q", ErrInvalid, w.ID, w.Type)
	}
	return nil
}

// Page returns the named page, or false.
func (d *Definition) Page(name navigation.Page) (Page, bool) {
	for _, p := range d.Stack.Pages {
		if p.Name == name.String() {
			return p, true
		}
	}
	return Page{}, false
}

// Widget finds a widget by id in the header or any page.
func (d *Definition) Widget(id string) (Widget, bool) {
	for _, w := range d.Header {
		if w.ID == id {
			return w, true
		}
	}
	for _, p := range d.Stack.Pages {
		for _, w := range p.Widgets {
			if w.ID == id {
				return w, true
			}
		}
	}
	return Widget{}, false
}

// Toggles lists every toggle name referenced by checks and switches.
func (d *Definition) Toggles() []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range d.Stack.Pages {
		for _, w := range p.Widgets {
			if w.Toggle != "" && !seen[w.Toggle] {
				seen[w.Toggle] = true
				out = append(out, w.Toggle)
			}
		}
	}
	return out
}

// Actions lists every action name referenced by menu items and buttons.
func (d *Definition) Actions() []string {
	var out []string
	seen := map[string]bool{}
	note := func(a string) {
		if a != "" && !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	for _, it := range d.Menu.Items {
		note(it.Action)
	}
	for _, w := range d.Header {
		note(w.Action)
	}
	for _, p := range d.Stack.Pages {
		for _, w := range p.Widgets {
			note(w.Action)
		}
	}
	return out
}
