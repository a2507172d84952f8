//go:build headless

package main

import "errors"

func init() {
	compiledFeatures = append(compiledFeatures, "audio:oto-unavailable")
}

type OtoPlayer struct{}

func NewOtoPlayer(sampleRate int, bus *AudioBus) (*OtoPlayer, error) {
	return nil, errors.New("oto backend not available in headless builds, use -backend null")
}

func (op *OtoPlayer) Start() error { return nil }
func (op *OtoPlayer) Stop() error  { return nil }
func (op *OtoPlayer) Close() error { return nil }
