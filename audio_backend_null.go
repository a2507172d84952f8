// audio_backend_null.go - Device-less backend that consumes the bus in real time

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
	"time"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:null")
}

const NULL_PERIOD = 10 * time.Millisecond

// NullPlayer pulls from the bus at the sample rate and throws the audio
// away, so the ring drains as it would with a device attached.
type NullPlayer struct {
	bus        *AudioBus
	sampleRate int
	scratch    []float32

	mutex sync.Mutex
	stop  chan struct{}
	done  chan struct{}
}

func NewNullPlayer(sampleRate int, bus *AudioBus) *NullPlayer {
	return &NullPlayer{bus: bus, sampleRate: sampleRate}
}

func (np *NullPlayer) Start() error {
	np.mutex.Lock()
	defer np.mutex.Unlock()

	if np.stop != nil {
		return nil
	}
	np.stop = make(chan struct{})
	np.done = make(chan struct{})
	go np.run(np.stop, np.done)
	return nil
}

func (np *NullPlayer) run(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(NULL_PERIOD)
	defer ticker.Stop()

	last := time.Now()
	var owed float64
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			owed += now.Sub(last).Seconds() * float64(np.sampleRate)
			last = now
			frames := int(owed)
			owed -= float64(frames)
			np.pull(frames)
		}
	}
}

func (np *NullPlayer) pull(frames int) {
	if frames <= 0 {
		return
	}
	if cap(np.scratch) < frames*2 {
		np.scratch = make([]float32, frames*2)
	}
	np.bus.ReadInterleaved(np.scratch[:frames*2])
}

func (np *NullPlayer) Stop() error {
	np.mutex.Lock()
	stop, done := np.stop, np.done
	np.stop, np.done = nil, nil
	np.mutex.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	return nil
}

func (np *NullPlayer) Close() error {
	return np.Stop()
}
