package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if JANKEN_CONFIG is set
//  3. env (prefix JANKEN_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("JANKEN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: JANKEN_ADDR, JANKEN_CAMERA_ID, ...
	// Map env keys like JANKEN_CAMERA_ID -> camera_id (flat keys).
	envProvider := env.Provider("JANKEN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "janken_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.IdleFPS <= 0 || cfg.ActiveFPS <= 0 {
		return nil, errors.New("frame rates must be positive")
	}
	if cfg.BeatIntervalMs <= 0 || cfg.SettleDelayMs < 0 {
		return nil, errors.New("invalid countdown timing")
	}
	return &cfg, nil
}
