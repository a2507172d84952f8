// synth_phase.go - Phase accumulator pair and signal mixer

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

import "math"

// SUB_OSC_DIVISOR scales the ratio index into the secondary oscillator's
// frequency multiplier (index/12).
const SUB_OSC_DIVISOR = 12.0

// OscillatorState holds both phase accumulators. Phases stay in [0, 1).
type OscillatorState struct {
	Primary   float64 // Primary oscillator phase
	Secondary float64 // Secondary (sub) oscillator phase
	Increment float64 // Primary phase advance per sample (freq / sample rate)
}

// Advance steps both phases by one sample. The secondary runs at
// ratio/12 of the primary rate.
func (o *OscillatorState) Advance(ratio int) {
	o.Primary = wrapPhase(o.Primary + o.Increment)
	o.Secondary = wrapPhase(o.Secondary + float64(ratio)*o.Increment/SUB_OSC_DIVISOR)
}

// wrapPhase is floor-mod 1.0: never negative, never 1.0.
func wrapPhase(x float64) float64 {
	r := math.Mod(x, 1.0)
	if r < 0 {
		r += 1.0
	}
	// -tiny + 1.0 rounds up to 1.0
	if r >= 1.0 {
		r = 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Frame is one stereo sample pair.
type Frame struct {
	L, R float32
}

// mixSignals crossfades a and b; factor is clamped to [0, 1] and weights a.
func mixSignals(a, b, factor float64) float64 {
	c := clamp(factor, 0, 1)
	return c*a + (1-c)*b
}

// monoFrame duplicates a mono sample to both channels.
func monoFrame(v float64) Frame {
	s := float32(v)
	return Frame{L: s, R: s}
}
