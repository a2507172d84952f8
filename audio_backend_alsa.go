//go:build linux && alsa

// audio_backend_alsa.go - ALSA audio output, build with -tags alsa

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

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate, unsigned int latencyUs) {
    return snd_pcm_set_params(handle, SND_PCM_FORMAT_FLOAT, SND_PCM_ACCESS_RW_INTERLEAVED,
        2, rate, 1, latencyUs);
}

static int writePCM(snd_pcm_t* handle, float* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drop(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"
import (
	"fmt"
	"sync"
	"unsafe"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:alsa")
}

const (
	ALSA_DEVICE        = "default"
	ALSA_LATENCY_US    = 40000
	ALSA_PERIOD_FRAMES = 441
)

// ALSAPlayer pumps the bus into a blocking PCM handle. snd_pcm_writei
// paces the pump goroutine at the device rate.
type ALSAPlayer struct {
	handle  *C.snd_pcm_t
	bus     *AudioBus
	samples []float32
	mutex   sync.Mutex
	stop    chan struct{}
	done    chan struct{}
}

func NewALSAPlayer(sampleRate int, bus *AudioBus) (*ALSAPlayer, error) {
	device := C.CString(ALSA_DEVICE)
	defer C.free(unsafe.Pointer(device))

	var err C.int
	handle := C.openPCM(device, &err)
	if err < 0 {
		return nil, fmt.Errorf("failed to open PCM device: %s", C.GoString(C.snd_strerror(err)))
	}
	if err = C.setupPCM(handle, C.uint(sampleRate), C.uint(ALSA_LATENCY_US)); err < 0 {
		C.closePCM(handle)
		return nil, fmt.Errorf("failed to setup PCM: %s", C.GoString(C.snd_strerror(err)))
	}

	return &ALSAPlayer{
		handle:  handle,
		bus:     bus,
		samples: make([]float32, ALSA_PERIOD_FRAMES*2),
	}, nil
}

func (ap *ALSAPlayer) Start() error {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()

	if ap.stop != nil || ap.handle == nil {
		return nil
	}
	ap.stop = make(chan struct{})
	ap.done = make(chan struct{})
	go ap.pump(ap.stop, ap.done)
	return nil
}

func (ap *ALSAPlayer) pump(stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}
		ap.bus.ReadInterleaved(ap.samples)
		if err := ap.write(); err != nil {
			fmt.Printf("alsa: %v\n", err)
			return
		}
	}
}

func (ap *ALSAPlayer) write() error {
	buf := (*C.float)(unsafe.Pointer(&ap.samples[0]))
	frames := C.writePCM(ap.handle, buf, C.int(ALSA_PERIOD_FRAMES))
	if frames == -C.EPIPE {
		// Underrun: re-prepare and retry once.
		C.snd_pcm_prepare(ap.handle)
		frames = C.writePCM(ap.handle, buf, C.int(ALSA_PERIOD_FRAMES))
	}
	if frames < 0 {
		return fmt.Errorf("write failed: %s", C.GoString(C.snd_strerror(C.int(frames))))
	}
	return nil
}

func (ap *ALSAPlayer) Stop() error {
	ap.mutex.Lock()
	stop, done := ap.stop, ap.done
	ap.stop, ap.done = nil, nil
	ap.mutex.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	return nil
}

func (ap *ALSAPlayer) Close() error {
	if err := ap.Stop(); err != nil {
		return err
	}
	ap.mutex.Lock()
	defer ap.mutex.Unlock()

	if ap.handle != nil {
		C.closePCM(ap.handle)
		ap.handle = nil
	}
	return nil
}
