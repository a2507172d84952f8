// audio_ring.go - Lock-free stereo frame ring between the tick loop and the audio callback

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

import "sync/atomic"

// FrameRing is a single-producer single-consumer ring of stereo frames.
// The tick goroutine pushes, the audio backend's callback reads. Neither
// side blocks or locks.
type FrameRing struct {
	buf        []Frame
	mask       uint64
	sampleRate float64

	head atomic.Uint64 // Next frame to read, owned by the consumer
	tail atomic.Uint64 // Next frame to write, owned by the producer

	underruns atomic.Uint64
}

// NewFrameRing rounds capacity up to a power of two.
func NewFrameRing(capacity int, sampleRate float64) *FrameRing {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &FrameRing{
		buf:        make([]Frame, size),
		mask:       uint64(size - 1),
		sampleRate: sampleRate,
	}
}

func (r *FrameRing) Capacity() int { return len(r.buf) }

func (r *FrameRing) SampleRate() float64 { return r.sampleRate }

// Buffered is the number of frames waiting for the consumer.
func (r *FrameRing) Buffered() int {
	return int(r.tail.Load() - r.head.Load())
}

// FramesAvailable is the free space the producer may fill.
func (r *FrameRing) FramesAvailable() int {
	return len(r.buf) - r.Buffered()
}

func (r *FrameRing) CanPush(n int) bool {
	return n >= 0 && n <= r.FramesAvailable()
}

// Push writes all frames or none. Callers check CanPush first; a push that
// does not fit is ignored.
func (r *FrameRing) Push(frames []Frame) {
	if !r.CanPush(len(frames)) {
		return
	}
	t := r.tail.Load()
	for i, f := range frames {
		r.buf[(t+uint64(i))&r.mask] = f
	}
	r.tail.Store(t + uint64(len(frames)))
}

// ReadFrame pops one frame. On underrun it returns silence and false.
func (r *FrameRing) ReadFrame() (Frame, bool) {
	h := r.head.Load()
	if h == r.tail.Load() {
		r.underruns.Add(1)
		return Frame{}, false
	}
	f := r.buf[h&r.mask]
	r.head.Store(h + 1)
	return f, true
}

// Underruns counts reads that found the ring empty.
func (r *FrameRing) Underruns() uint64 {
	return r.underruns.Load()
}
