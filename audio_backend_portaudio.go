//go:build portaudio

// audio_backend_portaudio.go - PortAudio output, build with -tags portaudio

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
	"sync"

	"github.com/gordonklaus/portaudio"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:portaudio")
}

type PortAudioPlayer struct {
	stream  *portaudio.Stream
	bus     *AudioBus
	started bool
	mutex   sync.Mutex
}

func NewPortAudioPlayer(sampleRate int, bus *AudioBus) (*PortAudioPlayer, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	p := &PortAudioPlayer{bus: bus}
	// Interleaved stereo callback on the PortAudio thread.
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(sampleRate), 0, func(out []float32) {
		p.bus.ReadInterleaved(out)
	})
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	p.stream = stream
	return p, nil
}

func (p *PortAudioPlayer) Start() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started {
		return nil
	}
	if err := p.stream.Start(); err != nil {
		return err
	}
	p.started = true
	return nil
}

func (p *PortAudioPlayer) Stop() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started {
		return nil
	}
	p.started = false
	return p.stream.Stop()
}

func (p *PortAudioPlayer) Close() error {
	if err := p.Stop(); err != nil {
		return err
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.stream == nil {
		return nil
	}
	err := p.stream.Close()
	p.stream = nil
	portaudio.Terminate()
	return err
}
