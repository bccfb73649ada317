package assets

import (
	_ "embed"
)

// MainWindowUI is the YAML definition of the main window.
//
//go:embed clicky.ui.yaml
var MainWindowUI []byte
