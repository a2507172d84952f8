// config_lua.go - Lua patch scripts

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
	"math"

	lua "github.com/yuin/gopher-lua"
)

// LoadLuaConfig runs a patch script and copies the globals it sets into cfg.
// Globals the script leaves unset keep their current values.
//
//	hand = "right"
//	primary = "sine"
//	secondary = "full-harmonic-squared-cos"
//	sub_index = 7
//	pitch_sensitivity = 450
func LoadLuaConfig(path string, cfg *Config) error {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if err := applyLuaGlobals(L, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// LoadLuaConfigString is LoadLuaConfig for an in-memory script.
func LoadLuaConfigString(src string, cfg *Config) error {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return applyLuaGlobals(L, cfg)
}

func applyLuaGlobals(L *lua.LState, cfg *Config) error {
	if s, ok, err := luaString(L, "hand"); err != nil {
		return err
	} else if ok {
		h, err := ParseHand(s)
		if err != nil {
			return err
		}
		cfg.Hand = h
	}

	for name, dst := range map[string]*Waveform{"primary": &cfg.Primary, "secondary": &cfg.Secondary} {
		s, ok, err := luaString(L, name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		w, err := ParseWaveform(s)
		if err != nil {
			return err
		}
		*dst = w
	}

	floats := map[string]*float64{
		"pitch_sensitivity":  &cfg.PitchSensitivity,
		"filter_sensitivity": &cfg.FilterSensitivity,
		"base_frequency":     &cfg.BaseFrequency,
		"render_seconds":     &cfg.RenderSeconds,
	}
	for name, dst := range floats {
		v, ok, err := luaNumber(L, name)
		if err != nil {
			return err
		}
		if ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"sub_index":   &cfg.SubIndex,
		"sample_rate": &cfg.SampleRate,
		"ring_frames": &cfg.RingFrames,
		"tick_rate":   &cfg.TickRate,
	}
	for name, dst := range ints {
		v, ok, err := luaNumber(L, name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return fmt.Errorf("%w: %s must be a whole number, got %v", ErrBadConfig, name, v)
		}
		*dst = int(v)
	}

	strs := map[string]*string{
		"backend":  &cfg.Backend,
		"frontend": &cfg.Frontend,
		"record":   &cfg.RecordPath,
	}
	for name, dst := range strs {
		v, ok, err := luaString(L, name)
		if err != nil {
			return err
		}
		if ok {
			*dst = v
		}
	}

	switch v := L.GetGlobal("verbose").(type) {
	case lua.LBool:
		cfg.Verbose = bool(v)
	case *lua.LNilType:
	default:
		return fmt.Errorf("%w: verbose must be a boolean, got %s", ErrBadConfig, v.Type())
	}
	return nil
}

func luaString(L *lua.LState, name string) (string, bool, error) {
	switch v := L.GetGlobal(name).(type) {
	case lua.LString:
		return string(v), true, nil
	case *lua.LNilType:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("%w: %s must be a string, got %s", ErrBadConfig, name, v.Type())
	}
}

func luaNumber(L *lua.LState, name string) (float64, bool, error) {
	switch v := L.GetGlobal(name).(type) {
	case lua.LNumber:
		return float64(v), true, nil
	case *lua.LNilType:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number, got %s", ErrBadConfig, name, v.Type())
	}
}
