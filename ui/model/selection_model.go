package model

import (
	"image"
)

// SelectionModel holds the last area selection in global coordinates.
// Zero value means no selection and is usable.
// No synchronization needed: updates occur on the UI thread.
type SelectionModel struct {
	rect image.Rectangle
}

func NewSelectionModel(r image.Rectangle) *SelectionModel {
	m := &SelectionModel{}
	m.Set(r)
	return m
}

// Set stores r. An empty or inverted rectangle clears the selection.
func (m *SelectionModel) Set(r image.Rectangle) {
	if m == nil {
		return
	}
	if r.Empty() {
		m.rect = image.Rectangle{}
		return
	}
	m.rect = r
}

// Rect returns the stored selection and whether one is set.
func (m *SelectionModel) Rect() (image.Rectangle, bool) {
	if m == nil || m.rect.Empty() {
		return image.Rectangle{}, false
	}
	return m.rect, true
}
