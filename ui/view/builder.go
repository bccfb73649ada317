package view

import (
	"fmt"

	"github.com/soocke/clicky-go/domain/navigation"
	"github.com/soocke/clicky-go/ui/layout"
	"github.com/soocke/clicky-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// builder turns a layout.Definition into Tk widgets on the root window.
// Widgets are created at the root and placed into their frames with In(),
// so every command closure goes through the RootView dispatcher.
type builder struct {
	rv *RootView
}

func (b *builder) window(w layout.Window) {
	App.WmTitle(w.Title)
	if w.Width > 0 && w.Height > 0 {
		WmGeometry(App, fmt.Sprintf("%dx%d", w.Width, w.Height))
	}
	WmResizable(App, w.Resizable, w.Resizable)
	GridColumnConfigure(App, 1, Weight(1))
	GridRowConfigure(App, 1, Weight(1))
}

func (b *builder) menu(m layout.Menu) {
	menubar := Menu()
	items := menubar.Menu()
	for _, it := range m.Items {
		if it.Separator {
			items.AddSeparator()
			continue
		}
		action := it.Action
		opts := []Opt{Lbl(it.Label), Command(func() { b.rv.actions.Activate(action) })}
		if it.Accelerator != "" {
			opts = append(opts, Accelerator(it.Accelerator))
		}
		items.AddCommand(opts...)
	}
	label := m.Label
	if label == "" {
		label = "Menu"
	}
	menubar.AddCascade(Lbl(label), Mnu(items))
	App.Configure(Mnu(menubar))
}

func (b *builder) header(ws []layout.Widget) {
	col := 0
	for _, w := range ws {
		if w.ID == layout.IDGoBack {
			b.rv.back = b.button(w)
			continue
		}
		col++
		Grid(b.widget(w, navigation.PageMain), Row(0), Column(col), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	}
}

func (b *builder) stack(s layout.Stack) {
	for _, p := range s.Pages {
		page := navigation.Page(p.Name)
		frame := Frame()
		b.rv.pages[page] = frame
		GridColumnConfigure(frame.Window, 0, Weight(1))
		for row, w := range p.Widgets {
			Grid(b.widget(w, page), In(frame), Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
		}
	}
}

// widget creates one leaf control and wires its command.
func (b *builder) widget(w layout.Widget, page navigation.Page) Widget {
	rv := b.rv
	switch w.Type {
	case layout.TypeLabel:
		opts := []Opt{Txt(w.Text), Anchor("w")}
		if st := theme.StyleFor(w.Style, "TLabel"); st != "" {
			opts = append(opts, Style(st))
		}
		return TLabel(opts...)
	case layout.TypeButton:
		return b.button(w)
	case layout.TypeSeparator:
		return TSeparator(Orient("horizontal"))
	case layout.TypeImage:
		rv.preview = NewCapturePreview(rv.previewMaxW, rv.previewMaxH)
		return rv.preview.label
	case layout.TypeRadio:
		value := w.Value
		rb := TRadiobutton(Txt(w.Label), Value(value), Command(func() { rv.mode = value }))
		rv.radios[value] = rb
		if w.Selected {
			rb.Invoke()
		}
		return rb
	case layout.TypeCheck, layout.TypeSwitch:
		return b.check(w)
	}
	panic(fmt.Sprintf("unknown widget type %q", w.Type))
}

func (b *builder) button(w layout.Widget) *TButtonWidget {
	rv := b.rv
	action := w.Action
	opts := []Opt{Txt(w.Label), Command(func() { rv.actions.Activate(action) })}
	if st := theme.StyleFor(w.Style, "TButton"); st != "" {
		opts = append(opts, Style(st))
	}
	btn := TButton(opts...)
	rv.buttons[w.ID] = btn
	return btn
}

// check builds check boxes and the dark-mode switch. The Go-side flag is
// flipped by the widget command, which keeps it in step with the display.
func (b *builder) check(w layout.Widget) *TCheckbuttonWidget {
	rv := b.rv
	var flag *bool
	switch w.ID {
	case layout.IDCheckBorder:
		flag = &rv.includeFrame
	case layout.IDCheckCursor:
		flag = &rv.includeCursor
	case layout.IDDarkModeSwitch:
		flag = &rv.dark
	default:
		flag = new(bool)
	}
	toggle := w.Toggle
	opts := []Opt{Txt(w.Label), Command(func() {
		*flag = !*flag
		if toggle != "" && !rv.syncing {
			rv.actions.Toggle(toggle, *flag)
		}
	})}
	if w.Type == layout.TypeSwitch {
		opts = append(opts, Style("Switch.TCheckbutton"))
	}
	cb := TCheckbutton(opts...)
	if w.ID == layout.IDDarkModeSwitch {
		rv.darkSwitch = cb
	}
	if w.Selected {
		rv.syncing = true
		cb.Invoke()
		rv.syncing = false
	}
	return cb
}
