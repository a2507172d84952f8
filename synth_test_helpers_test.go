// synth_test_helpers_test.go - Fakes shared by the engine tests

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

import "testing"

// fakeSink records pushed buffers. With reject set, every admission check fails.
type fakeSink struct {
	rate      float64
	available int
	reject    bool
	pushes    [][]Frame
}

func (s *fakeSink) FramesAvailable() int { return s.available }
func (s *fakeSink) CanPush(n int) bool   { return !s.reject && n <= s.available }
func (s *fakeSink) SampleRate() float64  { return s.rate }

func (s *fakeSink) Push(frames []Frame) {
	s.pushes = append(s.pushes, append([]Frame(nil), frames...))
}

func (s *fakeSink) pushedFrames() int {
	n := 0
	for _, p := range s.pushes {
		n += len(p)
	}
	return n
}

type fakeControl struct {
	pos  Vec3
	held map[string]bool
}

func newFakeControl(pos Vec3) *fakeControl {
	return &fakeControl{pos: pos, held: make(map[string]bool)}
}

func (c *fakeControl) Position() Vec3                { return c.pos }
func (c *fakeControl) IsButtonHeld(name string) bool { return c.held[name] }

type fakeCutoff struct {
	hz    float64
	calls int
}

func (c *fakeCutoff) SetCutoffHz(hz float64) {
	c.hz = hz
	c.calls++
}

type countingTap struct {
	frames int
}

func (c *countingTap) Capture(frames []Frame) { c.frames += len(frames) }

// newTestEngine builds an engine over fakes with the given waveforms.
func newTestEngine(t *testing.T, primary, secondary Waveform, available int, pos Vec3) (*Engine, *fakeSink, *fakeControl, *fakeCutoff) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Primary = primary
	cfg.Secondary = secondary
	sink := &fakeSink{rate: SAMPLE_RATE, available: available}
	control := newFakeControl(pos)
	cutoff := &fakeCutoff{}
	e, err := NewEngine(cfg, sink, control, cutoff)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, sink, control, cutoff
}
