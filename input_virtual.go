// input_virtual.go - Virtual controller pose driven by keys or stick axes

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

const (
	HAND_STEP_KEYBOARD = 0.01 // Metres per tick while a move key is held
	HAND_STEP_TERMINAL = 0.02 // Metres per key press (terminals repeat keys)

	HAND_REST_REACH = 0.25 // Lateral distance past the dead zone at rest
	HAND_REST_Y     = DEFAULT_PITCH_ORIGIN
	HAND_REST_Z     = -0.2 // Mix factor 0.5 at rest

	HAND_MIN_Y = 0.0
	HAND_MAX_Y = 2.5
	HAND_MAX_X = 1.2
	HAND_MIN_Z = -1.0
	HAND_MAX_Z = 0.6

	STICK_REACH_X = 0.5 // Metres of lateral travel at full stick
	STICK_REACH_Y = 1.0 // Metres of height at full stick
	STICK_REACH_Z = 0.5
)

// VirtualHand is a ControlSource whose pose and buttons are set by the
// frontend before each tick.
type VirtualHand struct {
	hand Hand
	pos  Vec3
	held map[string]bool
}

func NewVirtualHand(hand Hand) *VirtualHand {
	v := &VirtualHand{hand: hand, held: make(map[string]bool)}
	v.pos = v.Rest()
	return v
}

// Rest is the pose the hand returns to on reset: base pitch, a moderate
// cutoff on the hand's side and an even oscillator mix.
func (v *VirtualHand) Rest() Vec3 {
	sign := float64(v.hand)
	return Vec3{
		X: sign * (DEFAULT_CUTOFF_OFFSET + HAND_REST_REACH),
		Y: HAND_REST_Y,
		Z: HAND_REST_Z,
	}
}

func (v *VirtualHand) Position() Vec3 { return v.pos }

func (v *VirtualHand) IsButtonHeld(name string) bool { return v.held[name] }

func (v *VirtualHand) SetHeld(name string, held bool) { v.held[name] = held }

func (v *VirtualHand) ToggleHeld(name string) { v.held[name] = !v.held[name] }

func (v *VirtualHand) SetPosition(p Vec3) {
	v.pos = Vec3{
		X: clamp(p.X, -HAND_MAX_X, HAND_MAX_X),
		Y: clamp(p.Y, HAND_MIN_Y, HAND_MAX_Y),
		Z: clamp(p.Z, HAND_MIN_Z, HAND_MAX_Z),
	}
}

func (v *VirtualHand) Move(dx, dy, dz float64) {
	v.SetPosition(Vec3{X: v.pos.X + dx, Y: v.pos.Y + dy, Z: v.pos.Z + dz})
}

// Reset returns to the rest pose and releases every button.
func (v *VirtualHand) Reset() {
	v.pos = v.Rest()
	clear(v.held)
}

// stickPose maps standard-layout stick axes (each in [-1, 1], up negative)
// to a controller pose around the rest position.
func stickPose(hand Hand, leftX, leftY, rightY float64) Vec3 {
	sign := float64(hand)
	return Vec3{
		X: sign*(DEFAULT_CUTOFF_OFFSET+HAND_REST_REACH) + leftX*STICK_REACH_X,
		Y: HAND_REST_Y - leftY*STICK_REACH_Y,
		Z: HAND_REST_Z - rightY*STICK_REACH_Z,
	}
}
