// config.go - Runtime configuration for the theremin

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
	"fmt"
	"math"
)

var (
	ErrNilSink         = errors.New("audio sink not configured")
	ErrNilControl      = errors.New("control source not configured")
	ErrNilCutoff       = errors.New("cutoff sink not configured")
	ErrBadSampleRate   = errors.New("invalid sample rate")
	ErrUnknownBackend  = errors.New("unknown audio backend")
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrUnknownWaveform = errors.New("unknown waveform")
	ErrUnknownHand     = errors.New("unknown hand")
	ErrBadConfig       = errors.New("invalid configuration")
)

const (
	SAMPLE_RATE         = 44100
	DEFAULT_RING_FRAMES = 2048 // ~46ms at 44.1kHz
	DEFAULT_TICK_RATE   = 60   // Control ticks per second
	DEFAULT_RENDER_SECS = 4.0
	BACKEND_OTO         = "oto"
	BACKEND_PORTAUDIO   = "portaudio"
	BACKEND_ALSA        = "alsa"
	BACKEND_NULL        = "null"
	FRONTEND_EBITEN     = "ebiten"
	FRONTEND_TERMINAL   = "terminal"
)

type Config struct {
	Hand              Hand
	PitchSensitivity  float64
	FilterSensitivity float64
	BaseFrequency     float64
	Primary           Waveform
	Secondary         Waveform
	SubIndex          int

	SampleRate int
	RingFrames int
	TickRate   int
	Backend    string
	Frontend   string

	RecordPath    string
	RenderPath    string
	RenderSeconds float64
	Verbose       bool
	ShowFeatures  bool
}

func DefaultConfig() Config {
	return Config{
		Hand:              HAND_LEFT,
		PitchSensitivity:  DEFAULT_PITCH_SENSITIVITY,
		FilterSensitivity: DEFAULT_FILTER_SENSITIVITY,
		BaseFrequency:     DEFAULT_BASE_FREQUENCY,
		Primary:           WAVE_SAWTOOTH,
		Secondary:         WAVE_SAWTOOTH,
		SubIndex:          DEFAULT_SUB_OSC_INDEX,
		SampleRate:        SAMPLE_RATE,
		RingFrames:        DEFAULT_RING_FRAMES,
		TickRate:          DEFAULT_TICK_RATE,
		Backend:           BACKEND_OTO,
		Frontend:          FRONTEND_EBITEN,
		RenderSeconds:     DEFAULT_RENDER_SECS,
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Hand != HAND_LEFT && c.Hand != HAND_RIGHT:
		return fmt.Errorf("%w: %d", ErrUnknownHand, int(c.Hand))
	case c.Primary < WAVE_SINE || c.Primary > WAVE_FULL_HARMONIC_SQUARED_COS:
		return fmt.Errorf("%w: primary %d", ErrUnknownWaveform, int(c.Primary))
	case c.Secondary < WAVE_SINE || c.Secondary > WAVE_FULL_HARMONIC_SQUARED_COS:
		return fmt.Errorf("%w: secondary %d", ErrUnknownWaveform, int(c.Secondary))
	case c.SubIndex < MIN_SUB_OSC_INDEX || c.SubIndex > MAX_SUB_OSC_INDEX:
		return fmt.Errorf("%w: sub-oscillator index %d outside [%d,%d]", ErrBadConfig, c.SubIndex, MIN_SUB_OSC_INDEX, MAX_SUB_OSC_INDEX)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: %d", ErrBadSampleRate, c.SampleRate)
	case c.RingFrames <= 0:
		return fmt.Errorf("%w: ring frames %d", ErrBadConfig, c.RingFrames)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrBadConfig, c.TickRate)
	case !isFinite(c.BaseFrequency) || c.BaseFrequency <= 0:
		return fmt.Errorf("%w: base frequency %v", ErrBadConfig, c.BaseFrequency)
	case !isFinite(c.PitchSensitivity):
		return fmt.Errorf("%w: pitch sensitivity %v", ErrBadConfig, c.PitchSensitivity)
	case !isFinite(c.FilterSensitivity):
		return fmt.Errorf("%w: filter sensitivity %v", ErrBadConfig, c.FilterSensitivity)
	case !isFinite(c.RenderSeconds):
		return fmt.Errorf("%w: render length %v", ErrBadConfig, c.RenderSeconds)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
