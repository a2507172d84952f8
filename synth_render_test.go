// synth_render_test.go - Offline render tests

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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestRenderToWav(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary = WAVE_SINE
	path := filepath.Join(t.TempDir(), "sweep.wav")

	frames, err := RenderToWav(cfg, path, 0.5)
	if err != nil {
		t.Fatalf("RenderToWav: %v", err)
	}
	// 30 ticks of 735 frames at 44.1kHz and 60 ticks/s.
	if frames != 22050 {
		t.Fatalf("frames = %d, want 22050", frames)
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
	if len(buf.Data) != 2*22050 {
		t.Fatalf("decoded %d samples", len(buf.Data))
	}
	var nonZero int
	for _, v := range buf.Data {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero < len(buf.Data)/2 {
		t.Fatalf("render is mostly silent: %d of %d samples non-zero", nonZero, len(buf.Data))
	}
}

func TestRenderToWav_Rejects(t *testing.T) {
	dir := t.TempDir()
	if _, err := RenderToWav(DefaultConfig(), filepath.Join(dir, "a.wav"), 0); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("zero length: err = %v", err)
	}
	cfg := DefaultConfig()
	cfg.SubIndex = 40
	if _, err := RenderToWav(cfg, filepath.Join(dir, "b.wav"), 1); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("bad config: err = %v", err)
	}
}

func renderEnergy(t *testing.T, cfg Config) float64 {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.wav")
	if _, err := RenderToWav(cfg, path, 0.25); err != nil {
		t.Fatalf("RenderToWav: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var sum float64
	for _, v := range buf.Data {
		sum += math.Abs(float64(v))
	}
	return sum
}

func TestRenderToWav_AppliesCutoff(t *testing.T) {
	// At rest the hand sits past the dead zone, so sensitivity alone picks
	// the cutoff: 0 clamps to MIN_CUTOFF, a huge value to MAX_CUTOFF.
	open := DefaultConfig()
	open.FilterSensitivity = 1e9
	closed := DefaultConfig()
	closed.FilterSensitivity = 0

	openEnergy := renderEnergy(t, open)
	closedEnergy := renderEnergy(t, closed)
	if openEnergy == 0 {
		t.Fatal("open filter rendered silence")
	}
	if closedEnergy > openEnergy/10 {
		t.Fatalf("closed filter energy %v not well below open %v", closedEnergy, openEnergy)
	}
}
