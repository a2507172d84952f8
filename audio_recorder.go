// audio_recorder.go - WAV capture of pushed buffers

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
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	WAV_BIT_DEPTH  = 16
	WAV_FORMAT_PCM = 1
	WAV_MAX_INT16  = 32767
)

// WavRecorder is a FrameTap writing 16-bit stereo PCM. Write errors are
// kept and reported by Close; capture stops after the first one.
type WavRecorder struct {
	file *os.File
	enc  *wav.Encoder
	buf  *audio.IntBuffer
	err  error

	frames uint64
}

func NewWavRecorder(path string, sampleRate int) (*WavRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	return &WavRecorder{
		file: f,
		enc:  wav.NewEncoder(f, sampleRate, WAV_BIT_DEPTH, 2, WAV_FORMAT_PCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: WAV_BIT_DEPTH,
		},
	}, nil
}

func (r *WavRecorder) Capture(frames []Frame) {
	if r.err != nil || len(frames) == 0 {
		return
	}
	if cap(r.buf.Data) < len(frames)*2 {
		r.buf.Data = make([]int, len(frames)*2)
	}
	data := r.buf.Data[:len(frames)*2]
	for i, f := range frames {
		data[2*i] = toPCM16(f.L)
		data[2*i+1] = toPCM16(f.R)
	}
	r.buf.Data = data
	if err := r.enc.Write(r.buf); err != nil {
		r.err = fmt.Errorf("recorder: %w", err)
		return
	}
	r.frames += uint64(len(frames))
}

// Frames is the number of frames written so far.
func (r *WavRecorder) Frames() uint64 { return r.frames }

func toPCM16(v float32) int {
	return int(clamp(float64(v), -1, 1) * WAV_MAX_INT16)
}

// Close finalises the WAV header and closes the file.
func (r *WavRecorder) Close() error {
	encErr := r.enc.Close()
	fileErr := r.file.Close()
	switch {
	case r.err != nil:
		return r.err
	case encErr != nil:
		return fmt.Errorf("recorder: %w", encErr)
	case fileErr != nil:
		return fmt.Errorf("recorder: %w", fileErr)
	}
	return nil
}
