// synth_waveforms.go - Waveform generators for the theremin oscillators

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
	"fmt"
	"math"
	"strings"
)

const TWO_PI = 2 * math.Pi

// Waveform selects the shape an oscillator produces.
type Waveform int

const (
	WAVE_SINE Waveform = iota
	WAVE_TRIANGLE
	WAVE_SQUARE
	WAVE_SAWTOOTH
	WAVE_EVEN_HARMONIC
	WAVE_EVEN_HARMONIC_SQUARED_COS
	WAVE_FULL_HARMONIC_SQUARED_COS
)

// ROTATABLE_WAVEFORMS is the number of classic shapes reachable by the
// waveform cycle button. The harmonic shapes sit past it and can only be
// selected from configuration.
const ROTATABLE_WAVEFORMS = 4

// HARMONIC_TERMS is the number of partials summed by the harmonic shapes.
const HARMONIC_TERMS = 8

var waveformNames = [...]string{
	WAVE_SINE:                      "sine",
	WAVE_TRIANGLE:                  "triangle",
	WAVE_SQUARE:                    "square",
	WAVE_SAWTOOTH:                  "sawtooth",
	WAVE_EVEN_HARMONIC:             "even-harmonic",
	WAVE_EVEN_HARMONIC_SQUARED_COS: "even-harmonic-squared-cos",
	WAVE_FULL_HARMONIC_SQUARED_COS: "full-harmonic-squared-cos",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform accepts the names printed by Waveform.String.
func ParseWaveform(name string) (Waveform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range waveformNames {
		if n == name {
			return Waveform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, name)
}

// HarmonicSet picks which partials the harmonic series sums.
type HarmonicSet int

const (
	HARMONICS_ODD HarmonicSet = iota
	HARMONICS_EVEN
	HARMONICS_ALL
)

// HarmonicStrength is the rolloff of partial k: 1/k or 1/k².
type HarmonicStrength int

const (
	STRENGTH_LINEAR HarmonicStrength = iota
	STRENGTH_SQUARED
)

// HarmonicBasis is the requested partial shape. Only BASIS_COS is ever
// rendered; BASIS_SIN is accepted and produces the cosine series.
type HarmonicBasis int

const (
	BASIS_COS HarmonicBasis = iota
	BASIS_SIN
)

// generateWave returns the sample of the given shape at phase.
// Output is roughly in [-1, 1] for the classic shapes; the harmonic
// shapes are unnormalised partial sums.
func generateWave(kind Waveform, phase float64) float64 {
	switch kind {
	case WAVE_SINE:
		return math.Sin(phase * TWO_PI)
	case WAVE_TRIANGLE:
		return 4*math.Abs(phase-math.Floor(phase+0.5)) - 1
	case WAVE_SQUARE:
		return squareSign(phase)
	case WAVE_SAWTOOTH:
		return 2*phase - 1
	case WAVE_EVEN_HARMONIC:
		return harmonicSeries(phase, HARMONIC_TERMS, HARMONICS_EVEN, STRENGTH_LINEAR, BASIS_SIN)
	case WAVE_EVEN_HARMONIC_SQUARED_COS:
		return harmonicSeries(phase, HARMONIC_TERMS, HARMONICS_EVEN, STRENGTH_SQUARED, BASIS_COS)
	case WAVE_FULL_HARMONIC_SQUARED_COS:
		return harmonicSeries(phase, HARMONIC_TERMS, HARMONICS_ALL, STRENGTH_SQUARED, BASIS_COS)
	}
	return 0
}

// squareSign is sign(sin(2π·phase)) evaluated on the wrapped phase, so the
// zero crossings at 0 and 0.5 give exactly 0 instead of a rounding residue.
func squareSign(phase float64) float64 {
	p := wrapPhase(phase)
	switch {
	case p == 0 || p == 0.5:
		return 0
	case p < 0.5:
		return 1
	default:
		return -1
	}
}

// harmonicSeries sums n cosine partials of the fundamental at phase.
//
// The term index starts at 0 for odd sets and at 1 otherwise, giving the
// partial numbers 1,3,5,... / 2,4,6,... / 1,2,3,... A partial number of 0
// contributes nothing. basis is ignored.
func harmonicSeries(phase float64, n int, set HarmonicSet, strength HarmonicStrength, basis HarmonicBasis) float64 {
	_ = basis

	start := 1
	if set == HARMONICS_ODD {
		start = 0
	}
	exp := 1.0
	if strength == STRENGTH_SQUARED {
		exp = 2
	}

	var sum float64
	for i := start; i < start+n; i++ {
		var k int
		switch set {
		case HARMONICS_ODD:
			k = 2*i + 1
		case HARMONICS_EVEN:
			k = 2 * i
		default:
			k = i
		}
		if k == 0 {
			continue
		}
		fk := float64(k)
		sum += math.Cos(fk*phase*TWO_PI) / math.Pow(fk, exp)
	}
	return sum
}
