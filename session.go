// session.go - Wiring of engine, ring, bus, backend and taps

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
)

// Frontend owns the control tick. It is the ControlSource for the engine
// and calls Engine.Tick once per frame from Run.
type Frontend interface {
	ControlSource
	Attach(s *Session)
	Run() error
}

type Session struct {
	Config   Config
	Engine   *Engine
	Ring     *FrameRing
	Bus      *AudioBus
	Backend  AudioBackend
	Spectrum *SpectrumMonitor
	Recorder *WavRecorder
}

// NewSession builds the audio path and the engine. Any failure here is a
// startup configuration error.
func NewSession(cfg Config, control ControlSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{Config: cfg}
	s.Ring = NewFrameRing(cfg.RingFrames, float64(cfg.SampleRate))
	s.Bus = NewAudioBus(s.Ring)

	engine, err := NewEngine(cfg, s.Ring, control, s.Bus)
	if err != nil {
		return nil, err
	}
	s.Engine = engine

	s.Spectrum = NewSpectrumMonitor(float64(cfg.SampleRate))
	engine.AddTap(s.Spectrum)

	if cfg.RecordPath != "" {
		rec, err := NewWavRecorder(cfg.RecordPath, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		s.Recorder = rec
		engine.AddTap(rec)
	}

	backend, err := NewAudioBackend(cfg.Backend, s.Bus)
	if err != nil {
		s.closeRecorder()
		return nil, err
	}
	s.Backend = backend
	return s, nil
}

func (s *Session) Start() error {
	return s.Backend.Start()
}

func (s *Session) Close() error {
	var errs []error
	if s.Backend != nil {
		if err := s.Backend.Close(); err != nil {
			errs = append(errs, fmt.Errorf("backend: %w", err))
		}
	}
	if err := s.closeRecorder(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Session) closeRecorder() error {
	if s.Recorder == nil {
		return nil
	}
	err := s.Recorder.Close()
	s.Recorder = nil
	return err
}

// StatusLines is the engine status plus output-side counters.
func (s *Session) StatusLines() []string {
	return []string{
		s.Engine.Status(),
		fmt.Sprintf("peak %7.1f Hz  buffered %4d/%d  underruns %d",
			s.Spectrum.PeakFrequency(), s.Ring.Buffered(), s.Ring.Capacity(), s.Ring.Underruns()),
	}
}
