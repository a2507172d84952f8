//go:build !(linux && alsa)

package main

import "errors"

type ALSAPlayer struct{}

func NewALSAPlayer(sampleRate int, bus *AudioBus) (*ALSAPlayer, error) {
	return nil, errors.New("built without ALSA support, rebuild on linux with -tags alsa")
}

func (ap *ALSAPlayer) Start() error { return nil }
func (ap *ALSAPlayer) Stop() error  { return nil }
func (ap *ALSAPlayer) Close() error { return nil }
