// input_terminal.go - Raw-mode terminal frontend

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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

func init() {
	compiledFeatures = append(compiledFeatures, "frontend:terminal")
}

const (
	TERMINAL_STATUS_HZ = 4
	KEY_CTRL_C         = 0x03
	KEY_ESCAPE         = 0x1B
)

// TerminalFrontend drives the engine from a ticker and the keyboard in raw
// mode. Terminals report presses but not releases, so trigger and grip
// toggle instead of being held.
type TerminalFrontend struct {
	cfg     Config
	hand    *VirtualHand
	session *Session
	out     io.Writer
}

func NewTerminalFrontend(cfg Config) *TerminalFrontend {
	return &TerminalFrontend{cfg: cfg, hand: NewVirtualHand(cfg.Hand), out: os.Stdout}
}

func (tf *TerminalFrontend) Position() Vec3 { return tf.hand.Position() }

func (tf *TerminalFrontend) IsButtonHeld(name string) bool { return tf.hand.IsButtonHeld(name) }

func (tf *TerminalFrontend) Attach(s *Session) { tf.session = s }

func (tf *TerminalFrontend) Run() error {
	if tf.session == nil {
		return ErrNilSink
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("terminal frontend: stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("terminal frontend: failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// The reader stays blocked in Read after Run returns; the process is
	// about to exit at that point.
	keys := make(chan byte, 64)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				keys <- buf[0]
			}
			if err != nil {
				close(keys)
				return
			}
		}
	}()

	fmt.Fprint(tf.out, "w/s pitch  a/d cutoff  r/f mix  SPACE trigger  g grip  z waveform  x sub  0 reset  q quit\r\n")

	ticker := time.NewTicker(time.Second / time.Duration(tf.cfg.TickRate))
	defer ticker.Stop()
	statusEvery := max(tf.cfg.TickRate/TERMINAL_STATUS_HZ, 1)

	for tick := 0; ; tick++ {
		<-ticker.C
		for drained := false; !drained; {
			select {
			case b, ok := <-keys:
				if !ok || tf.handleKey(b) {
					fmt.Fprint(tf.out, "\r\n")
					return nil
				}
			default:
				drained = true
			}
		}
		tf.session.Engine.Tick()
		if tick%statusEvery == 0 {
			fmt.Fprintf(tf.out, "\r%s\x1b[K", strings.Join(tf.session.StatusLines(), "  |  "))
		}
	}
}

// handleKey applies one key press. Returns true when the user asked to quit.
func (tf *TerminalFrontend) handleKey(b byte) bool {
	engine := tf.session.Engine
	switch b {
	case 'q', KEY_CTRL_C, KEY_ESCAPE:
		return true
	case 'w':
		tf.hand.Move(0, HAND_STEP_TERMINAL, 0)
	case 's':
		tf.hand.Move(0, -HAND_STEP_TERMINAL, 0)
	case 'd':
		tf.hand.Move(HAND_STEP_TERMINAL, 0, 0)
	case 'a':
		tf.hand.Move(-HAND_STEP_TERMINAL, 0, 0)
	case 'r':
		tf.hand.Move(0, 0, HAND_STEP_TERMINAL)
	case 'f':
		tf.hand.Move(0, 0, -HAND_STEP_TERMINAL)
	case ' ':
		tf.hand.ToggleHeld(BUTTON_TRIGGER)
	case 'g':
		tf.hand.ToggleHeld(BUTTON_GRIP)
	case 'z':
		engine.PressButton(BUTTON_AX)
	case 'x':
		engine.PressButton(BUTTON_BY)
	case '0':
		tf.hand.Reset()
		engine.Reset()
	}
	return false
}
