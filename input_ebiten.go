//go:build !headless

// input_ebiten.go - Ebiten window: frame tick, gamepad/keyboard control and status overlay

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
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func init() {
	compiledFeatures = append(compiledFeatures, "frontend:ebiten")
}

const (
	OVERLAY_WIDTH   = 640
	OVERLAY_HEIGHT  = 160
	MESSAGE_TICKS   = 120
	KEYBOARD_HELP_1 = "arrows: pitch/cutoff  W/S: mix  SPACE: trigger  SHIFT: grip"
	KEYBOARD_HELP_2 = "Z: waveform  X: sub ratio  R: reset  C: copy status  ESC: quit"
)

// EbitenFrontend runs the engine tick from ebiten's Update, reading the
// first standard-layout gamepad when one is attached and the keyboard
// otherwise.
type EbitenFrontend struct {
	cfg     Config
	hand    *VirtualHand
	session *Session

	padIDs []ebiten.GamepadID

	clipboardOnce sync.Once
	clipboardOK   bool
	message       string
	messageTicks  int
}

func NewEbitenFrontend(cfg Config) (Frontend, error) {
	return &EbitenFrontend{cfg: cfg, hand: NewVirtualHand(cfg.Hand)}, nil
}

func (ef *EbitenFrontend) Position() Vec3 { return ef.hand.Position() }

func (ef *EbitenFrontend) IsButtonHeld(name string) bool { return ef.hand.IsButtonHeld(name) }

func (ef *EbitenFrontend) Attach(s *Session) { ef.session = s }

// Run blocks on the ebiten game loop; it must be called from main.
func (ef *EbitenFrontend) Run() error {
	if ef.session == nil {
		return ErrNilSink
	}
	ebiten.SetWindowSize(OVERLAY_WIDTH, OVERLAY_HEIGHT)
	ebiten.SetWindowTitle("Intuition Theremin")
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(ef.cfg.TickRate)
	return ebiten.RunGame(ef)
}

func (ef *EbitenFrontend) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	engine := ef.session.Engine
	padTrigger, padGrip := ef.pollGamepad(engine)
	keyTrigger, keyGrip := ef.pollKeyboard(engine)
	ef.hand.SetHeld(BUTTON_TRIGGER, padTrigger || keyTrigger)
	ef.hand.SetHeld(BUTTON_GRIP, padGrip || keyGrip)

	engine.Tick()

	if ef.messageTicks > 0 {
		ef.messageTicks--
	}
	return nil
}

// pollGamepad moves the hand from the sticks and queues face-button
// presses. Returns the held state of trigger and grip.
func (ef *EbitenFrontend) pollGamepad(engine *Engine) (trigger, grip bool) {
	ef.padIDs = ebiten.AppendGamepadIDs(ef.padIDs[:0])
	if len(ef.padIDs) == 0 {
		return false, false
	}
	id := ef.padIDs[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false, false
	}

	ef.hand.SetPosition(stickPose(ef.cfg.Hand,
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)))

	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		engine.PressButton(BUTTON_AX)
	}
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight) {
		engine.PressButton(BUTTON_BY)
	}
	trigger = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	grip = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
	return trigger, grip
}

func (ef *EbitenFrontend) pollKeyboard(engine *Engine) (trigger, grip bool) {
	var dx, dy, dz float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy += HAND_STEP_KEYBOARD
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy -= HAND_STEP_KEYBOARD
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += HAND_STEP_KEYBOARD
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= HAND_STEP_KEYBOARD
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dz += HAND_STEP_KEYBOARD
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dz -= HAND_STEP_KEYBOARD
	}
	if dx != 0 || dy != 0 || dz != 0 {
		ef.hand.Move(dx, dy, dz)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		engine.PressButton(BUTTON_AX)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		engine.PressButton(BUTTON_BY)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ef.hand.Reset()
		engine.Reset()
		ef.flash("reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ef.copyStatus()
	}

	trigger = ebiten.IsKeyPressed(ebiten.KeySpace)
	grip = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	return trigger, grip
}

func (ef *EbitenFrontend) copyStatus() {
	ef.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			fmt.Printf("clipboard: %v\n", err)
			return
		}
		ef.clipboardOK = true
	})
	if !ef.clipboardOK {
		ef.flash("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(ef.session.StatusLines(), "\n")))
	ef.flash("status copied")
}

func (ef *EbitenFrontend) flash(msg string) {
	ef.message = msg
	ef.messageTicks = MESSAGE_TICKS
}

func (ef *EbitenFrontend) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	y := 20
	for _, line := range ef.session.StatusLines() {
		text.Draw(screen, line, basicfont.Face7x13, 8, y, color.White)
		y += 18
	}
	pos := ef.hand.Position()
	text.Draw(screen, fmt.Sprintf("hand %s  x %+.2f  y %+.2f  z %+.2f", ef.cfg.Hand, pos.X, pos.Y, pos.Z),
		basicfont.Face7x13, 8, y, color.White)

	if ef.messageTicks > 0 {
		text.Draw(screen, ef.message, basicfont.Face7x13, 8, y+18, color.RGBA{R: 255, G: 20, B: 147, A: 255})
	}
	ebitenutil.DebugPrintAt(screen, KEYBOARD_HELP_1, 8, OVERLAY_HEIGHT-36)
	ebitenutil.DebugPrintAt(screen, KEYBOARD_HELP_2, 8, OVERLAY_HEIGHT-20)
}

func (ef *EbitenFrontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return OVERLAY_WIDTH, OVERLAY_HEIGHT
}
