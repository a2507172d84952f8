// synth_control.go - Controller pose to pitch/cutoff mapping

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
	"strings"
)

const (
	DEFAULT_PITCH_SENSITIVITY  = 600.0   // Hz per unit of height above the pitch origin
	DEFAULT_FILTER_SENSITIVITY = 20000.0 // Hz per unit of lateral offset
	DEFAULT_BASE_FREQUENCY     = 220.0   // Frequency at the pitch origin
	DEFAULT_PITCH_ORIGIN       = 1.0     // Controller height that plays the base frequency
	DEFAULT_CUTOFF_OFFSET      = 0.07    // Lateral dead zone from the body centre line
	DEFAULT_MIX_BIAS           = 0.7     // Added to controller Z to form the mix factor

	MIN_FREQUENCY = 20.0
	MAX_FREQUENCY = 10000.0
	MIN_CUTOFF    = 20.0
	MAX_CUTOFF    = 20000.0
)

// Hand is the side the controller is held on. Its value is the sign used
// by the cutoff mapping.
type Hand int

const (
	HAND_LEFT  Hand = -1
	HAND_RIGHT Hand = 1
)

func (h Hand) String() string {
	if h == HAND_RIGHT {
		return "right"
	}
	return "left"
}

func ParseHand(name string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return HAND_LEFT, nil
	case "right", "r":
		return HAND_RIGHT, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHand, name)
}

// Vec3 is a controller position in metres.
type Vec3 struct {
	X, Y, Z float64
}

// ControlState is the per-tick result of mapping the controller pose.
type ControlState struct {
	FrequencyHz    float64
	FilterCutoffHz float64
	LastX          float64
	LastY          float64
	Z              float64 // Mix factor source
	HandSign       float64
}

// ControlMapper turns controller positions into synth parameters.
// Both outputs are recomputed from the current pose each tick.
type ControlMapper struct {
	Hand              Hand
	PitchSensitivity  float64
	FilterSensitivity float64
	BaseFrequency     float64
	PitchOrigin       float64
	CutoffOffset      float64
}

func NewControlMapper(hand Hand) ControlMapper {
	return ControlMapper{
		Hand:              hand,
		PitchSensitivity:  DEFAULT_PITCH_SENSITIVITY,
		FilterSensitivity: DEFAULT_FILTER_SENSITIVITY,
		BaseFrequency:     DEFAULT_BASE_FREQUENCY,
		PitchOrigin:       DEFAULT_PITCH_ORIGIN,
		CutoffOffset:      DEFAULT_CUTOFF_OFFSET,
	}
}

func (m ControlMapper) Frequency(y float64) float64 {
	return clamp(m.PitchSensitivity*(y-m.PitchOrigin)+m.BaseFrequency, MIN_FREQUENCY, MAX_FREQUENCY)
}

func (m ControlMapper) Cutoff(x float64) float64 {
	sign := float64(m.Hand)
	return clamp(sign*m.FilterSensitivity*(x-sign*m.CutoffOffset), MIN_CUTOFF, MAX_CUTOFF)
}

// Apply recomputes st from pos.
func (m ControlMapper) Apply(st *ControlState, pos Vec3) {
	st.HandSign = float64(m.Hand)
	st.FrequencyHz = m.Frequency(pos.Y)
	st.FilterCutoffHz = m.Cutoff(pos.X)
	st.LastX = pos.X
	st.LastY = pos.Y
	st.Z = pos.Z
}
