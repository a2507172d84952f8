// audio_recorder_test.go - WAV recorder tests

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
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestWavRecorder_WritesStereoPCM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "take.wav")
	rec, err := NewWavRecorder(path, 22050)
	if err != nil {
		t.Fatalf("NewWavRecorder: %v", err)
	}
	rec.Capture([]Frame{{L: 0.5, R: -0.5}, {L: 2, R: -2}})
	rec.Capture([]Frame{{L: 0, R: 0.25}})
	rec.Capture(nil)
	if rec.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.SampleRate != 22050 || dec.NumChans != 2 || dec.BitDepth != WAV_BIT_DEPTH {
		t.Fatalf("header = %d Hz, %d ch, %d bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	want := []int{16383, -16383, WAV_MAX_INT16, -WAV_MAX_INT16, 0, 8191}
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i, v := range want {
		if buf.Data[i] != v {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], v)
		}
	}
}

func TestWavRecorder_BadPath(t *testing.T) {
	if _, err := NewWavRecorder(filepath.Join(t.TempDir(), "missing", "x.wav"), SAMPLE_RATE); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
