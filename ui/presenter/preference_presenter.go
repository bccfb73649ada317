package presenter

import (
	"log/slog"

	"github.com/soocke/clicky-go/domain/settings"
)

// ThemeApplier switches the global light/dark theme.
type ThemeApplier interface{ SetDark(bool) }

// SwitchView reflects the dark-mode preference on the preferences page.
type SwitchView interface{ SetDarkSwitch(bool) }

// PreferencePresenter is the single entry point for reading and writing the
// dark-mode preference and applying it to the theme.
type PreferencePresenter struct {
	store  settings.Backend
	theme  ThemeApplier
	view   SwitchView
	logger *slog.Logger
	dark   bool
}

func NewPreferencePresenter(store settings.Backend, theme ThemeApplier, view SwitchView, logger *slog.Logger) *PreferencePresenter {
	return &PreferencePresenter{store: store, theme: theme, view: view, logger: logger}
}

// LoadPreference reads the stored value, falling back to light mode when the
// backend fails, and applies it.
func (p *PreferencePresenter) LoadPreference() bool {
	if p == nil {
		return false
	}
	dark := false
	if p.store != nil {
		v, err := p.store.Bool(settings.KeyPreferDark)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("read preference failed, using default", "key", settings.KeyPreferDark, "error", err)
			}
		} else {
			dark = v
		}
	}
	p.apply(dark)
	if p.view != nil {
		p.view.SetDarkSwitch(dark)
	}
	return dark
}

// OnToggle persists v and applies it. Store errors are logged only.
func (p *PreferencePresenter) OnToggle(v bool) {
	if p == nil {
		return
	}
	if p.store != nil {
		if err := p.store.SetBool(settings.KeyPreferDark, v); err != nil && p.logger != nil {
			p.logger.Warn("write preference failed", "key", settings.KeyPreferDark, "error", err)
		}
	}
	p.apply(v)
}

func (p *PreferencePresenter) apply(dark bool) {
	p.dark = dark
	if p.theme != nil {
		p.theme.SetDark(dark)
	}
}

// Dark reports the last applied value.
func (p *PreferencePresenter) Dark() bool { return p != nil && p.dark }
