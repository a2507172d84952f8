// synth_phase_test.go - Phase accumulator and mixer tests

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
	"testing"
)

// phaseDistance is the shortest distance between two phases on the unit circle.
func phaseDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestWrapPhase(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.75, 0.75},
		{-0.25, 0.75},
		{-1.5, 0.5},
		{-1e-18, 0},
	}
	for _, tc := range tests {
		got := wrapPhase(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("wrapPhase(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= 1 {
			t.Errorf("wrapPhase(%v) = %v outside [0,1)", tc.in, got)
		}
	}
}

func TestOscillatorState_FullCycleReturns(t *testing.T) {
	const steps = 441
	osc := OscillatorState{Primary: 0.3, Secondary: 0.6, Increment: 1.0 / steps}
	for i := 0; i < steps; i++ {
		osc.Advance(SUB_OSC_DIVISOR)
	}
	if d := phaseDistance(osc.Primary, 0.3); d > 1e-9 {
		t.Errorf("primary drifted by %v after one full cycle", d)
	}
	// Ratio 12/12 advances the secondary at the primary rate.
	if d := phaseDistance(osc.Secondary, 0.6); d > 1e-9 {
		t.Errorf("secondary drifted by %v after one full cycle", d)
	}
}

func TestOscillatorState_SecondaryRatio(t *testing.T) {
	osc := OscillatorState{Increment: 0.1}
	osc.Advance(6)
	if math.Abs(osc.Primary-0.1) > 1e-12 {
		t.Fatalf("primary = %v, want 0.1", osc.Primary)
	}
	if math.Abs(osc.Secondary-0.05) > 1e-12 {
		t.Fatalf("secondary = %v, want 0.05", osc.Secondary)
	}
}

func TestOscillatorState_StaysInRange(t *testing.T) {
	osc := OscillatorState{Increment: 0.37}
	for i := 0; i < 10000; i++ {
		osc.Advance(11)
		if osc.Primary < 0 || osc.Primary >= 1 || osc.Secondary < 0 || osc.Secondary >= 1 {
			t.Fatalf("step %d: phases out of range: %+v", i, osc)
		}
	}
}

func TestMixSignals_Endpoints(t *testing.T) {
	a, b := 0.8, -0.4
	if got := mixSignals(a, b, 0); got != b {
		t.Errorf("mix(a,b,0) = %v, want %v", got, b)
	}
	if got := mixSignals(a, b, 1); got != a {
		t.Errorf("mix(a,b,1) = %v, want %v", got, a)
	}
	if got := mixSignals(a, b, -3); got != b {
		t.Errorf("mix(a,b,-3) = %v, want %v", got, b)
	}
	if got := mixSignals(a, b, 7); got != a {
		t.Errorf("mix(a,b,7) = %v, want %v", got, a)
	}
}

func TestMixSignals_Monotonic(t *testing.T) {
	a, b := 0.9, -0.5
	prev := mixSignals(a, b, 0)
	for i := 1; i <= 100; i++ {
		got := mixSignals(a, b, float64(i)/100)
		if got < prev {
			t.Fatalf("mix decreased at factor %v: %v < %v", float64(i)/100, got, prev)
		}
		prev = got
	}
}

func TestMonoFrame(t *testing.T) {
	f := monoFrame(0.25)
	if f.L != 0.25 || f.R != 0.25 {
		t.Fatalf("monoFrame(0.25) = %+v", f)
	}
}
