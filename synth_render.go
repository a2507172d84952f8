// synth_render.go - Offline render of a pitch sweep to WAV

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

import "fmt"

const (
	RENDER_SWEEP_FROM = 0.8 // Controller height at the start of the sweep
	RENDER_SWEEP_TO   = 2.0 // and at the end
)

// renderSink stands in for a device that drains exactly one tick of audio
// between ticks, so every fill is accepted. Pushed frames go through the
// same low-pass as the live bus before reaching out.
type renderSink struct {
	sampleRate float64
	block      int
	filter     lowPassSVF
	filtered   []Frame
	out        FrameTap
}

func newRenderSink(sampleRate float64, block int, out FrameTap) *renderSink {
	s := &renderSink{sampleRate: sampleRate, block: block, out: out}
	s.filter.setCutoff(MAX_CUTOFF, sampleRate, DEFAULT_FILTER_Q)
	return s
}

func (s *renderSink) FramesAvailable() int { return s.block }
func (s *renderSink) CanPush(n int) bool   { return n <= s.block }
func (s *renderSink) SampleRate() float64  { return s.sampleRate }

func (s *renderSink) SetCutoffHz(hz float64) {
	s.filter.setCutoff(hz, s.sampleRate, DEFAULT_FILTER_Q)
}

func (s *renderSink) Push(frames []Frame) {
	s.filtered = s.filtered[:0]
	for _, f := range frames {
		s.filtered = append(s.filtered, Frame{
			L: float32(s.filter.process(0, float64(f.L))),
			R: float32(s.filter.process(1, float64(f.R))),
		})
	}
	s.out.Capture(s.filtered)
}

// RenderToWav plays the configured patch with the trigger held while the
// controller rises from RENDER_SWEEP_FROM to RENDER_SWEEP_TO, and writes
// the filtered output to path. Returns the number of frames written.
func RenderToWav(cfg Config, path string, seconds float64) (uint64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("%w: render length %v", ErrBadConfig, seconds)
	}

	hand := NewVirtualHand(cfg.Hand)
	hand.SetHeld(BUTTON_TRIGGER, true)
	rec, err := NewWavRecorder(path, cfg.SampleRate)
	if err != nil {
		return 0, err
	}
	sink := newRenderSink(float64(cfg.SampleRate), max(cfg.SampleRate/cfg.TickRate, 1), rec)

	engine, err := NewEngine(cfg, sink, hand, sink)
	if err != nil {
		rec.Close()
		return 0, err
	}

	rest := hand.Rest()
	ticks := max(int(seconds*float64(cfg.TickRate)), 1)
	for i := 0; i < ticks; i++ {
		t := 0.0
		if ticks > 1 {
			t = float64(i) / float64(ticks-1)
		}
		hand.SetPosition(Vec3{X: rest.X, Y: RENDER_SWEEP_FROM + t*(RENDER_SWEEP_TO-RENDER_SWEEP_FROM), Z: rest.Z})
		engine.Tick()
	}

	if err := rec.Close(); err != nil {
		return rec.Frames(), err
	}
	if cfg.Verbose {
		fmt.Printf("render: %d ticks, %d frames, %d dropped\n", ticks, rec.Frames(), engine.Stats().BuffersDropped)
	}
	return rec.Frames(), nil
}
