// audio_bus_test.go - Output bus and low-pass tests

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

func TestAudioBus_CutoffHandOff(t *testing.T) {
	bus := NewAudioBus(NewFrameRing(16, SAMPLE_RATE))
	if got := bus.CutoffHz(); got != MAX_CUTOFF {
		t.Fatalf("initial cutoff = %v, want %v", got, MAX_CUTOFF)
	}
	bus.SetCutoffHz(1234.5)
	if got := bus.CutoffHz(); got != 1234.5 {
		t.Fatalf("cutoff = %v", got)
	}
	if bus.Ring().SampleRate() != SAMPLE_RATE {
		t.Fatal("ring not exposed")
	}
}

func TestAudioBus_PassesDC(t *testing.T) {
	ring := NewFrameRing(1024, SAMPLE_RATE)
	bus := NewAudioBus(ring)
	bus.SetCutoffHz(2000)

	frames := make([]Frame, 1024)
	for i := range frames {
		frames[i] = Frame{L: 0.5, R: -0.5}
	}
	ring.Push(frames)

	out := make([]float32, 2048)
	bus.ReadInterleaved(out)
	l, r := out[len(out)-2], out[len(out)-1]
	if math.Abs(float64(l)-0.5) > 1e-3 || math.Abs(float64(r)+0.5) > 1e-3 {
		t.Fatalf("settled output = (%v, %v), want (0.5, -0.5)", l, r)
	}
}

// quarterRatePeak pushes a tone at a quarter of the sample rate through the
// bus and returns the peak of the settled output.
func quarterRatePeak(cutoff float64) float64 {
	ring := NewFrameRing(2048, SAMPLE_RATE)
	bus := NewAudioBus(ring)
	bus.SetCutoffHz(cutoff)

	frames := make([]Frame, 2048)
	for i := range frames {
		v := [4]float32{0, 1, 0, -1}[i%4]
		frames[i] = Frame{L: v, R: v}
	}
	ring.Push(frames)

	out := make([]float32, 4096)
	bus.ReadInterleaved(out)
	var peak float64
	for _, v := range out[2048:] {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	return peak
}

func TestAudioBus_LowCutoffAttenuates(t *testing.T) {
	low := quarterRatePeak(MIN_CUTOFF)
	high := quarterRatePeak(MAX_CUTOFF)
	if low > 0.01 {
		t.Fatalf("20Hz cutoff left %v of an 11kHz tone", low)
	}
	if high < 0.5 {
		t.Fatalf("open filter passed only %v of an 11kHz tone", high)
	}
}

func TestAudioBus_UnderrunAndOddSlot(t *testing.T) {
	ring := NewFrameRing(4, SAMPLE_RATE)
	bus := NewAudioBus(ring)
	out := []float32{9, 9, 9, 9, 9}
	bus.ReadInterleaved(out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want silence", i, v)
		}
	}
	if ring.Underruns() != 2 {
		t.Fatalf("underruns = %d, want 2", ring.Underruns())
	}
}

func TestAudioBackend_UnknownKind(t *testing.T) {
	bus := NewAudioBus(NewFrameRing(4, SAMPLE_RATE))
	if _, err := NewAudioBackend("jack", bus); err == nil {
		t.Fatal("unknown backend accepted")
	}
}
