package model

import (
	"image"
	"testing"
	"time"
)

func TestCaptureModel_PendingGuard(t *testing.T) {
	var m CaptureModel
	if !m.TryBegin() {
		t.Fatalf("first begin should succeed")
	}
	if m.TryBegin() {
		t.Fatalf("second begin should be rejected while pending")
	}
	if !m.Pending() {
		t.Fatalf("expected pending")
	}
	m.Finish()
	if m.Pending() || !m.TryBegin() {
		t.Fatalf("expected begin to succeed after finish")
	}
}

func TestCaptureModel_ImageReplaced(t *testing.T) {
	var m CaptureModel
	if img, _ := m.Image(); img != nil {
		t.Fatalf("expected empty model")
	}
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))
	now := time.Now()
	m.SetImage(a, now)
	m.SetImage(b, now.Add(time.Second))
	img, taken := m.Image()
	if img != image.Image(b) || !taken.Equal(now.Add(time.Second)) {
		t.Fatalf("expected latest image to replace previous one")
	}
}

func TestCaptureModel_NilSafe(t *testing.T) {
	var m *CaptureModel
	if m.TryBegin() || m.Pending() {
		t.Fatalf("nil model must report idle")
	}
	m.Finish()
	m.SetImage(nil, time.Time{})
}

func TestSelectionModel(t *testing.T) {
	m := NewSelectionModel(image.Rect(10, 10, 10, 40))
	if _, ok := m.Rect(); ok {
		t.Fatalf("empty rect should clear selection")
	}
	m.Set(image.Rect(0, 0, 30, 20))
	r, ok := m.Rect()
	if !ok || r.Dx() != 30 {
		t.Fatalf("unexpected selection %v %v", r, ok)
	}
}
