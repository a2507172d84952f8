// synth_spectrum.go - Dominant-frequency readout from recent output

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
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const SPECTRUM_SIZE = 2048

// SpectrumMonitor keeps the last SPECTRUM_SIZE mono samples pushed to the
// sink and reports the strongest frequency among them.
type SpectrumMonitor struct {
	sampleRate float64
	history    [SPECTRUM_SIZE]float64
	pos        int
	filled     bool
	window     [SPECTRUM_SIZE]float64
	scratch    []float64
}

func NewSpectrumMonitor(sampleRate float64) *SpectrumMonitor {
	m := &SpectrumMonitor{
		sampleRate: sampleRate,
		scratch:    make([]float64, SPECTRUM_SIZE),
	}
	// Hann window
	for i := range m.window {
		m.window[i] = 0.5 - 0.5*math.Cos(TWO_PI*float64(i)/float64(SPECTRUM_SIZE-1))
	}
	return m
}

func (m *SpectrumMonitor) Capture(frames []Frame) {
	for _, f := range frames {
		m.history[m.pos] = 0.5 * (float64(f.L) + float64(f.R))
		m.pos++
		if m.pos == SPECTRUM_SIZE {
			m.pos = 0
			m.filled = true
		}
	}
}

// PeakFrequency returns the centre frequency of the strongest non-DC bin,
// or 0 until a full window has been captured.
func (m *SpectrumMonitor) PeakFrequency() float64 {
	if !m.filled {
		return 0
	}
	for i := 0; i < SPECTRUM_SIZE; i++ {
		m.scratch[i] = m.history[(m.pos+i)%SPECTRUM_SIZE] * m.window[i]
	}
	bins := fft.FFTReal(m.scratch)

	peak, peakMag := 0, 0.0
	for k := 1; k < SPECTRUM_SIZE/2; k++ {
		if mag := cmplx.Abs(bins[k]); mag > peakMag {
			peak, peakMag = k, mag
		}
	}
	return float64(peak) * m.sampleRate / SPECTRUM_SIZE
}
