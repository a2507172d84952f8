// audio_bus.go - Output bus: ring consumer with the controller-driven low-pass

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
	"sync/atomic"
)

// DEFAULT_FILTER_Q is the low-pass resonance, Butterworth.
const DEFAULT_FILTER_Q = 0.7071

// MAX_CUTOFF_RATIO keeps tan(π·fc/fs) finite.
const MAX_CUTOFF_RATIO = 0.499

// lowPassSVF is a two-pole topology-preserving state-variable low-pass,
// stable at any cutoff below Nyquist.
type lowPassSVF struct {
	a1, a2, a3 float64
	ic1, ic2   [2]float64 // Integrator state per channel
}

func (f *lowPassSVF) setCutoff(hz, sampleRate, q float64) {
	ratio := clamp(hz/sampleRate, 0, MAX_CUTOFF_RATIO)
	g := math.Tan(math.Pi * ratio)
	k := 1 / q
	f.a1 = 1 / (1 + g*(g+k))
	f.a2 = g * f.a1
	f.a3 = g * f.a2
}

func (f *lowPassSVF) process(ch int, x float64) float64 {
	v3 := x - f.ic2[ch]
	v1 := f.a1*f.ic1[ch] + f.a2*v3
	v2 := f.ic2[ch] + f.a2*f.ic1[ch] + f.a3*v3
	f.ic1[ch] = 2*v1 - f.ic1[ch]
	f.ic2[ch] = 2*v2 - f.ic2[ch]
	return v2
}

// AudioBus drains the frame ring into interleaved float32 for a backend,
// filtering with the cutoff last written by the tick loop. ReadInterleaved
// runs on the audio thread; SetCutoffHz on the tick goroutine.
type AudioBus struct {
	ring       *FrameRing
	sampleRate float64

	cutoffBits  atomic.Uint64 // math.Float64bits of the requested cutoff
	appliedBits uint64        // Cutoff the filter coefficients were built for, audio thread only
	filter      lowPassSVF
}

func NewAudioBus(ring *FrameRing) *AudioBus {
	b := &AudioBus{ring: ring, sampleRate: ring.SampleRate()}
	b.SetCutoffHz(MAX_CUTOFF)
	b.appliedBits = b.cutoffBits.Load()
	b.filter.setCutoff(MAX_CUTOFF, b.sampleRate, DEFAULT_FILTER_Q)
	return b
}

func (b *AudioBus) SetCutoffHz(hz float64) {
	b.cutoffBits.Store(math.Float64bits(hz))
}

func (b *AudioBus) CutoffHz() float64 {
	return math.Float64frombits(b.cutoffBits.Load())
}

func (b *AudioBus) Ring() *FrameRing { return b.ring }

// ReadInterleaved fills out with L,R pairs. An odd trailing slot is zeroed.
func (b *AudioBus) ReadInterleaved(out []float32) {
	if bits := b.cutoffBits.Load(); bits != b.appliedBits {
		b.appliedBits = bits
		b.filter.setCutoff(math.Float64frombits(bits), b.sampleRate, DEFAULT_FILTER_Q)
	}

	n := len(out) / 2
	for i := 0; i < n; i++ {
		f, _ := b.ring.ReadFrame()
		out[2*i] = float32(b.filter.process(0, float64(f.L)))
		out[2*i+1] = float32(b.filter.process(1, float64(f.R)))
	}
	if len(out)%2 == 1 {
		out[len(out)-1] = 0
	}
}
