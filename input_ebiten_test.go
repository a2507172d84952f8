//go:build !headless

package main

import "testing"

func TestEbitenFrontend_Layout(t *testing.T) {
	f, err := NewEbitenFrontend(DefaultConfig())
	if err != nil {
		t.Fatalf("NewEbitenFrontend: %v", err)
	}
	ef := f.(*EbitenFrontend)
	if w, h := ef.Layout(1920, 1080); w != OVERLAY_WIDTH || h != OVERLAY_HEIGHT {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	if ef.Position() != NewVirtualHand(HAND_LEFT).Rest() {
		t.Fatalf("initial pose = %+v", ef.Position())
	}
}

func TestEbitenFrontend_Flash(t *testing.T) {
	f, _ := NewEbitenFrontend(DefaultConfig())
	ef := f.(*EbitenFrontend)
	ef.flash("status copied")
	if ef.message != "status copied" || ef.messageTicks != MESSAGE_TICKS {
		t.Fatalf("flash = %q for %d ticks", ef.message, ef.messageTicks)
	}
}

func TestEbitenFrontend_RunWithoutSession(t *testing.T) {
	f, _ := NewEbitenFrontend(DefaultConfig())
	if err := f.Run(); err == nil {
		t.Fatal("Run without a session succeeded")
	}
}
