// session_test.go - Session wiring and terminal frontend tests

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func nullConfig() Config {
	cfg := DefaultConfig()
	cfg.Backend = BACKEND_NULL
	cfg.Frontend = FRONTEND_TERMINAL
	return cfg
}

func TestNewSession_Wiring(t *testing.T) {
	cfg := nullConfig()
	cfg.RingFrames = 1000
	cfg.RecordPath = filepath.Join(t.TempDir(), "rec.wav")
	hand := NewVirtualHand(cfg.Hand)

	s, err := NewSession(cfg, hand)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Ring.Capacity() != 1024 {
		t.Fatalf("ring capacity = %d", s.Ring.Capacity())
	}
	if s.Recorder == nil || s.Spectrum == nil {
		t.Fatal("taps not attached")
	}

	hand.SetHeld(BUTTON_TRIGGER, true)
	s.Engine.Tick()
	if s.Ring.Buffered() != 1024 {
		t.Fatalf("buffered = %d after one fill", s.Ring.Buffered())
	}
	if s.Recorder.Frames() != 1024 {
		t.Fatalf("recorded %d frames", s.Recorder.Frames())
	}
	// The ring is full: the next fill finds no room and pushes nothing.
	s.Engine.Tick()
	if got := s.Engine.Stats().FramesPushed; got != 1024 {
		t.Fatalf("FramesPushed = %d", got)
	}
	if s.Bus.CutoffHz() != s.Engine.Control().FilterCutoffHz {
		t.Fatalf("bus cutoff %v, engine cutoff %v", s.Bus.CutoffHz(), s.Engine.Control().FilterCutoffHz)
	}

	lines := s.StatusLines()
	if len(lines) != 2 || !strings.Contains(lines[1], "buffered 1024/1024") {
		t.Fatalf("status = %q", lines)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewSession_Errors(t *testing.T) {
	cfg := nullConfig()
	cfg.Backend = "jack"
	if _, err := NewSession(cfg, NewVirtualHand(HAND_LEFT)); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
	if _, err := NewSession(nullConfig(), nil); !errors.Is(err, ErrNilControl) {
		t.Fatalf("err = %v, want ErrNilControl", err)
	}
}

func TestNullBackend_DrainsRing(t *testing.T) {
	s, err := NewSession(nullConfig(), NewVirtualHand(HAND_LEFT))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	s.Ring.Push(make([]Frame, 441))
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.Ring.Buffered() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("null backend left %d frames", s.Ring.Buffered())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err := s.Backend.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	// Stop is idempotent.
	if err := s.Backend.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func newTestTerminal(t *testing.T) *TerminalFrontend {
	t.Helper()
	cfg := nullConfig()
	tf := NewTerminalFrontend(cfg)
	s, err := NewSession(cfg, tf)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	tf.Attach(s)
	return tf
}

func TestTerminalFrontend_Keys(t *testing.T) {
	tf := newTestTerminal(t)
	rest := tf.Position()

	tf.handleKey('w')
	tf.handleKey('d')
	tf.handleKey('r')
	p := tf.Position()
	if p.Y <= rest.Y || p.X <= rest.X || p.Z <= rest.Z {
		t.Fatalf("w/d/r did not move the hand: %+v -> %+v", rest, p)
	}

	tf.handleKey(' ')
	if !tf.IsButtonHeld(BUTTON_TRIGGER) {
		t.Fatal("space did not hold the trigger")
	}
	tf.handleKey('g')
	tf.handleKey('z')
	tf.handleKey('x')
	tf.session.Engine.Tick()
	sel := tf.session.Engine.Selection()
	if sel.Secondary != WAVE_SINE || sel.Primary != WAVE_SAWTOOTH || sel.SubIndex != 7 {
		t.Fatalf("selection = %+v", sel)
	}
	if tf.session.Ring.Buffered() == 0 {
		t.Fatal("trigger held but nothing was pushed")
	}

	tf.handleKey('0')
	if tf.Position() != rest || tf.IsButtonHeld(BUTTON_TRIGGER) {
		t.Fatal("reset key did not restore the hand")
	}
	if tf.session.Engine.Selection().SubIndex != DEFAULT_SUB_OSC_INDEX {
		t.Fatal("reset key did not reset the engine")
	}

	for _, b := range []byte{'q', KEY_CTRL_C, KEY_ESCAPE} {
		if !tf.handleKey(b) {
			t.Errorf("key %q did not quit", b)
		}
	}
	if tf.handleKey('?') {
		t.Error("unbound key quit")
	}
}

func TestTerminalFrontend_RunWithoutSession(t *testing.T) {
	tf := NewTerminalFrontend(nullConfig())
	if err := tf.Run(); err == nil {
		t.Fatal("Run without a session succeeded")
	}
}
