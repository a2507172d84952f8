// synth_engine.go - Dual-oscillator theremin engine and buffer fill loop

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

// ControlSource is the per-tick view of the controller.
type ControlSource interface {
	Position() Vec3
	IsButtonHeld(name string) bool
}

// AudioSink accepts pushed stereo frames. FramesAvailable is free capacity;
// CanPush is the admission check made before every push.
type AudioSink interface {
	FramesAvailable() int
	CanPush(n int) bool
	Push(frames []Frame)
	SampleRate() float64
}

// CutoffSink receives the low-pass cutoff computed each tick.
type CutoffSink interface {
	SetCutoffHz(hz float64)
}

// FrameTap observes every buffer the sink accepted. Capture runs on the
// tick goroutine and must not keep frames past the call.
type FrameTap interface {
	Capture(frames []Frame)
}

type EngineStats struct {
	Ticks          uint64
	Fills          uint64
	FramesPushed   uint64
	BuffersDropped uint64
	FramesDropped  uint64
	EventsHandled  uint64
	EventsIgnored  uint64
}

// Engine owns all synthesis state. Every method must be called from the
// tick goroutine; the only cross-thread hand-off is the sink.
type Engine struct {
	osc    OscillatorState
	sel    WaveformSelection
	ctl    ControlState
	mapper ControlMapper

	initialSel WaveformSelection
	baseFreq   float64
	mixBias    float64
	sampleRate float64

	sink    AudioSink
	control ControlSource
	cutoff  CutoffSink
	taps    []FrameTap

	pending []string
	buf     []Frame
	stats   EngineStats
	verbose bool
}

// NewEngine wires the engine to its collaborators. The sample rate is read
// from the sink once, here.
func NewEngine(cfg Config, sink AudioSink, control ControlSource, cutoff CutoffSink) (*Engine, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	// A nil ring behind the interface is still no sink.
	if r, ok := sink.(*FrameRing); ok && r == nil {
		return nil, ErrNilSink
	}
	if control == nil {
		return nil, ErrNilControl
	}
	if cutoff == nil {
		return nil, ErrNilCutoff
	}
	sr := sink.SampleRate()
	if sr <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadSampleRate, sr)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mapper := NewControlMapper(cfg.Hand)
	mapper.PitchSensitivity = cfg.PitchSensitivity
	mapper.FilterSensitivity = cfg.FilterSensitivity
	mapper.BaseFrequency = cfg.BaseFrequency

	e := &Engine{
		mapper: mapper,
		initialSel: WaveformSelection{
			Primary:   cfg.Primary,
			Secondary: cfg.Secondary,
			SubIndex:  cfg.SubIndex,
		},
		baseFreq:   cfg.BaseFrequency,
		mixBias:    DEFAULT_MIX_BIAS,
		sampleRate: sr,
		sink:       sink,
		control:    control,
		cutoff:     cutoff,
		verbose:    cfg.Verbose,
	}
	e.Reset()
	return e, nil
}

// AddTap registers an observer of accepted buffers.
func (e *Engine) AddTap(t FrameTap) {
	if t != nil {
		e.taps = append(e.taps, t)
	}
}

// PressButton queues a button press for the next Tick. Queued presses are
// applied before that tick generates any audio.
func (e *Engine) PressButton(name string) {
	e.pending = append(e.pending, name)
}

// Tick runs one control step: queued events, pose mapping, then the buffer
// fill while the trigger is held.
func (e *Engine) Tick() {
	e.stats.Ticks++
	e.dispatchPending()

	e.mapper.Apply(&e.ctl, e.control.Position())
	e.cutoff.SetCutoffHz(e.ctl.FilterCutoffHz)
	e.osc.Increment = e.ctl.FrequencyHz / e.sampleRate

	if e.control.IsButtonHeld(BUTTON_TRIGGER) {
		e.FillBuffer()
	}
}

func (e *Engine) dispatchPending() {
	if len(e.pending) == 0 {
		return
	}
	for _, name := range e.pending {
		modifier := e.control.IsButtonHeld(BUTTON_GRIP)
		if dispatchButton(&e.sel, name, modifier) {
			e.stats.EventsHandled++
		} else {
			e.stats.EventsIgnored++
		}
	}
	e.pending = e.pending[:0]
}

// FillBuffer generates exactly as many frames as the sink has room for and
// pushes them in one piece. If the admission check fails the frames are
// discarded; the phases have already moved on. Returns the frames pushed.
func (e *Engine) FillBuffer() int {
	n := e.sink.FramesAvailable()
	if n <= 0 {
		return 0
	}
	e.stats.Fills++

	if cap(e.buf) < n {
		e.buf = make([]Frame, n)
	}
	buf := e.buf[:n]

	e.ctl.Z = e.control.Position().Z
	mixFactor := e.ctl.Z + e.mixBias
	for i := range buf {
		a := generateWave(e.sel.Primary, e.osc.Primary)
		b := generateWave(e.sel.Secondary, e.osc.Secondary)
		buf[i] = monoFrame(mixSignals(a, b, mixFactor))
		e.osc.Advance(e.sel.SubIndex)
	}

	if !e.sink.CanPush(n) {
		e.stats.BuffersDropped++
		e.stats.FramesDropped += uint64(n)
		if e.verbose {
			fmt.Printf("engine: sink rejected %d frames, buffer dropped\n", n)
		}
		return 0
	}
	e.sink.Push(buf)
	e.stats.FramesPushed += uint64(n)
	for _, t := range e.taps {
		t.Capture(buf)
	}
	return n
}

func (e *Engine) Selection() WaveformSelection { return e.sel }
func (e *Engine) Oscillators() OscillatorState { return e.osc }
func (e *Engine) Control() ControlState        { return e.ctl }
func (e *Engine) Stats() EngineStats           { return e.stats }
func (e *Engine) SampleRate() float64          { return e.sampleRate }

// Status is a one-line summary for overlays and the terminal.
func (e *Engine) Status() string {
	return fmt.Sprintf("%7.1f Hz  cutoff %7.1f Hz  %s / %s  sub %d/12  mix %.2f  dropped %d",
		e.ctl.FrequencyHz, e.ctl.FilterCutoffHz,
		e.sel.Primary, e.sel.Secondary, e.sel.SubIndex,
		clamp(e.ctl.Z+e.mixBias, 0, 1), e.stats.BuffersDropped)
}
