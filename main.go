// main.go - Main entry point for the Intuition Theremin

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
	"flag"
	"fmt"
	"io"
	"os"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m\n\033[38;2;255;50;147m▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀\033[0m\n\033[38;2;255;80;147m▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███\033[0m\n\033[38;2;255;110;147m░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄\033[0m\n\033[38;2;255;140;147m░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒\033[0m\n\033[38;2;255;170;147m░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░\033[0m\n\033[38;2;255;200;147m ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░\033[0m\n\033[38;2;255;230;147m ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░\033[0m\n\033[38;2;255;255;147m ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░\033[0m")
	fmt.Println("\nTheremin: a two-oscillator instrument played with a controller in the air.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	boilerPlate()

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.ShowFeatures {
		printFeatures(os.Stdout)
		return
	}

	if cfg.RenderPath != "" {
		frames, err := RenderToWav(cfg, cfg.RenderPath, cfg.RenderSeconds)
		if err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %d frames to %s\n", frames, cfg.RenderPath)
		return
	}

	var frontend Frontend
	switch cfg.Frontend {
	case FRONTEND_EBITEN:
		frontend, err = NewEbitenFrontend(cfg)
	case FRONTEND_TERMINAL:
		frontend = NewTerminalFrontend(cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFrontend, cfg.Frontend)
	}
	if err != nil {
		fmt.Printf("Failed to initialize frontend: %v\n", err)
		os.Exit(1)
	}

	session, err := NewSession(cfg, frontend)
	if err != nil {
		fmt.Printf("Failed to initialize sound: %v\n", err)
		os.Exit(1)
	}
	frontend.Attach(session)

	if err := session.Start(); err != nil {
		fmt.Printf("Failed to start audio: %v\n", err)
		session.Close()
		os.Exit(1)
	}
	if cfg.Verbose {
		fmt.Printf("Audio: %s backend, %d Hz, %d frame ring, %d ticks/s, %s hand\n",
			cfg.Backend, cfg.SampleRate, session.Ring.Capacity(), cfg.TickRate, cfg.Hand)
	}

	runErr := frontend.Run()
	if err := session.Close(); err != nil {
		fmt.Printf("Shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Printf("Error: %v\n", runErr)
		os.Exit(1)
	}
}

// parseArgs builds the configuration: defaults, then the Lua patch named by
// -config, then any flags given explicitly.
func parseArgs(args []string) (Config, error) {
	cfg := DefaultConfig()

	var (
		configPath string
		hand       string
		primary    string
		secondary  string
	)

	flagSet := flag.NewFlagSet("theremin", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "Lua patch script")
	flagSet.StringVar(&hand, "hand", cfg.Hand.String(), "Controller hand: left or right")
	flagSet.StringVar(&primary, "primary", cfg.Primary.String(), "Primary waveform")
	flagSet.StringVar(&secondary, "secondary", cfg.Secondary.String(), "Secondary waveform")
	flagSet.IntVar(&cfg.SubIndex, "sub", cfg.SubIndex, "Sub-oscillator ratio index (1-11, ratio = n/12)")
	flagSet.Float64Var(&cfg.PitchSensitivity, "pitch-sens", cfg.PitchSensitivity, "Hz per metre of height")
	flagSet.Float64Var(&cfg.FilterSensitivity, "filter-sens", cfg.FilterSensitivity, "Cutoff Hz per metre of reach")
	flagSet.Float64Var(&cfg.BaseFrequency, "base", cfg.BaseFrequency, "Frequency at the pitch origin")
	flagSet.StringVar(&cfg.Backend, "backend", cfg.Backend, "Audio backend: oto, portaudio, alsa or null")
	flagSet.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Control frontend: ebiten or terminal")
	flagSet.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "Sample rate in Hz")
	flagSet.IntVar(&cfg.RingFrames, "ring", cfg.RingFrames, "Output ring size in frames")
	flagSet.IntVar(&cfg.TickRate, "tps", cfg.TickRate, "Control ticks per second")
	flagSet.StringVar(&cfg.RecordPath, "record", "", "Record pushed audio, before the output filter, to a WAV file")
	flagSet.StringVar(&cfg.RenderPath, "render", "", "Render a filtered pitch sweep to a WAV file and exit")
	flagSet.Float64Var(&cfg.RenderSeconds, "seconds", cfg.RenderSeconds, "Length of -render output")
	flagSet.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	flagSet.BoolVar(&cfg.ShowFeatures, "features", false, "Print compiled backends and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./theremin [-config patch.lua] [-hand left|right] [-frontend ebiten|terminal] [-backend oto|portaudio|alsa|null] [-render out.wav]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.Usage()
		}
		return cfg, err
	}

	if configPath != "" {
		patched := DefaultConfig()
		if err := LoadLuaConfig(configPath, &patched); err != nil {
			return cfg, err
		}
		// Re-apply explicit flags on top of the patch.
		explicit := cfg
		cfg = patched
		var ferr error
		flagSet.Visit(func(f *flag.Flag) {
			if ferr == nil {
				ferr = overrideFromFlag(&cfg, explicit, f.Name, hand, primary, secondary)
			}
		})
		if ferr != nil {
			return cfg, ferr
		}
	} else {
		for _, name := range []string{"hand", "primary", "secondary"} {
			if err := overrideFromFlag(&cfg, cfg, name, hand, primary, secondary); err != nil {
				return cfg, err
			}
		}
	}

	return cfg, cfg.Validate()
}

func overrideFromFlag(cfg *Config, explicit Config, name, hand, primary, secondary string) error {
	var err error
	switch name {
	case "hand":
		cfg.Hand, err = ParseHand(hand)
	case "primary":
		cfg.Primary, err = ParseWaveform(primary)
	case "secondary":
		cfg.Secondary, err = ParseWaveform(secondary)
	case "sub":
		cfg.SubIndex = explicit.SubIndex
	case "pitch-sens":
		cfg.PitchSensitivity = explicit.PitchSensitivity
	case "filter-sens":
		cfg.FilterSensitivity = explicit.FilterSensitivity
	case "base":
		cfg.BaseFrequency = explicit.BaseFrequency
	case "backend":
		cfg.Backend = explicit.Backend
	case "frontend":
		cfg.Frontend = explicit.Frontend
	case "rate":
		cfg.SampleRate = explicit.SampleRate
	case "ring":
		cfg.RingFrames = explicit.RingFrames
	case "tps":
		cfg.TickRate = explicit.TickRate
	case "record":
		cfg.RecordPath = explicit.RecordPath
	case "render":
		cfg.RenderPath = explicit.RenderPath
	case "seconds":
		cfg.RenderSeconds = explicit.RenderSeconds
	case "v":
		cfg.Verbose = explicit.Verbose
	case "features":
		cfg.ShowFeatures = explicit.ShowFeatures
	}
	return err
}
