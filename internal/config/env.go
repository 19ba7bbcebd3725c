package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment overrides
const (
	EnvInterval  = "TIMEPLAY_INTERVAL"
	EnvBin       = "TIMEPLAY_BIN"
	EnvLoop      = "TIMEPLAY_LOOP"
	EnvAutoStart = "TIMEPLAY_AUTOSTART"
	EnvData      = "TIMEPLAY_DATA"
)

// LoadEnvFiles reads .env style files into the process environment.
// Missing files are skipped; variables already set are not overwritten.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
		log.Printf("Loaded environment from %s", p)
	}
	return nil
}

// ApplyEnv overrides settings from TIMEPLAY_* variables. Invalid values are
// logged and ignored.
func (c *Config) ApplyEnv() {
	if v, ok := envInt(EnvInterval); ok {
		c.Transition.TimeInterval = v
	}
	if v, ok := envInt(EnvBin); ok {
		c.Transition.Bin = v
	}
	if v, ok := envBool(EnvLoop); ok {
		c.Transition.Loop = v
	}
	if v, ok := envBool(EnvAutoStart); ok {
		c.Transition.AutoStart = v
	}
	if v := os.Getenv(EnvData); v != "" {
		c.Data.Path = v
	}
	c.Normalize()
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return v, true
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return false, false
	}
	return v, true
}
