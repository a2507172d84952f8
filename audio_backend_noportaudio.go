//go:build !portaudio

package main

import "errors"

type PortAudioPlayer struct{}

func NewPortAudioPlayer(sampleRate int, bus *AudioBus) (*PortAudioPlayer, error) {
	return nil, errors.New("built without portaudio support, rebuild with -tags portaudio")
}

func (p *PortAudioPlayer) Start() error { return nil }
func (p *PortAudioPlayer) Stop() error  { return nil }
func (p *PortAudioPlayer) Close() error { return nil }
