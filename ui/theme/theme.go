package theme

// Centralized theming for the screenshot window. The light/dark flag is
// process-wide Tk state: Init applies it once at startup and later writes go
// through Global.SetDark, which the preference presenter owns.

import (
	tk "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets (light mode).
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, preview frame
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // take-screenshot and save buttons
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for one mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Text      string
	TextMuted string
}

// PaletteFor returns the colors for dark or light mode.
func PaletteFor(dark bool) PaletteSnapshot {
	if dark {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Border:    "#334155",
			Primary:   "#3b82f6",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// style names used with Style("accent.TButton") etc.
const (
	StyleAccentButton = "accent.TButton"
	StyleHeadingLabel = "heading.TLabel"
	StyleMutedLabel   = "muted.TLabel"
	StylePreviewLabel = "preview.TLabel"
)

// StyleFor maps a style name from the UI definition to a ttk style.
func StyleFor(name, class string) string {
	switch name {
	case "accent":
		if class == "TButton" {
			return StyleAccentButton
		}
	case "heading":
		if class == "TLabel" {
			return StyleHeadingLabel
		}
	case "muted":
		if class == "TLabel" {
			return StyleMutedLabel
		}
	}
	return ""
}

// internal flag for current mode
var darkMode bool

// Init applies the initial mode. Call once after Tk is up.
func Init(dark bool) { darkMode = dark; applyStyles(dark) }

// Global switches the process-wide theme.
type Global struct{}

// SetDark reapplies every style for the requested mode. No-op if unchanged.
func (Global) SetDark(dark bool) {
	if dark == darkMode {
		return
	}
	darkMode = dark
	applyStyles(dark)
}

func applyStyles(dark bool) {
	p := PaletteFor(dark)
	if dark {
		_ = tk.ActivateTheme("azure dark")
	} else {
		_ = tk.ActivateTheme("azure light")
	}
	tk.App.Configure(tk.Background(p.AppBg))

	tk.StyleConfigure(StyleAccentButton,
		tk.Background(p.Primary),
		tk.Foreground("white"),
		tk.Padding("6p 4p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleHeadingLabel,
		tk.Foreground(p.Text),
		tk.Font("TkHeadingFont"),
		tk.Padding("2p 4p"),
	)
	tk.StyleConfigure(StyleMutedLabel,
		tk.Foreground(p.TextMuted),
		tk.Padding("2p 1p"),
	)
	tk.StyleConfigure(StylePreviewLabel,
		tk.Background(p.Surface),
		tk.Borderwidth(1),
		tk.Relief("sunken"),
	)
}
