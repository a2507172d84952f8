// synth_events.go - Button event dispatch for waveform selection

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

// Controller button names, as reported by the input layer.
const (
	BUTTON_AX      = "ax_button"
	BUTTON_BY      = "by_button"
	BUTTON_GRIP    = "grip"
	BUTTON_TRIGGER = "trigger"
)

const (
	MIN_SUB_OSC_INDEX     = 1
	MAX_SUB_OSC_INDEX     = 11
	SUB_OSC_CYCLE         = 10 // by_button cycles the index through 1..10
	DEFAULT_SUB_OSC_INDEX = 6
)

// WaveformSelection is the shape state read by every generated sample.
type WaveformSelection struct {
	Primary   Waveform
	Secondary Waveform
	SubIndex  int // Secondary ratio index, secondary freq = primary * SubIndex/12
}

func rotateWaveform(w Waveform) Waveform {
	return Waveform(posModInt(int(w)+1, ROTATABLE_WAVEFORMS))
}

func posModInt(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// dispatchButton applies one button press to sel. modifierHeld is the grip
// state at the time of the press. Returns false for names it ignores.
func dispatchButton(sel *WaveformSelection, name string, modifierHeld bool) bool {
	switch name {
	case BUTTON_AX:
		if modifierHeld {
			sel.Secondary = rotateWaveform(sel.Secondary)
		} else {
			sel.Primary = rotateWaveform(sel.Primary)
		}
	case BUTTON_BY:
		sel.SubIndex = posModInt(sel.SubIndex, SUB_OSC_CYCLE) + 1
	default:
		return false
	}
	return true
}
