package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
)

type fakeBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *fakeBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *fakeBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *fakeBus) Close()                                                     {}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.Transition.Loop = true
	cfg.Transition.Bin = 3
	cfg.Buttons.IconStyle = IconBtnFill
	cfg.Data.Columns = []string{"year", "quarter"}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[transition]
loop = true
time_interval = 250

[caption]
position = "diagonal"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.True(t, cfg.Transition.Loop)
	assert.Equal(t, 250, cfg.Transition.TimeInterval)
	assert.Equal(t, 1, cfg.Transition.Bin, "unset keys keep defaults")
	assert.Equal(t, IconCircle, cfg.Buttons.IconStyle)
	assert.Equal(t, "left", cfg.Caption.Position, "unknown positions fall back to left")
	assert.True(t, cfg.Host.AllowInteractions)
}

func TestLoadFromPathErrors(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	bad := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(bad, []byte("[transition\nloop ="), 0644))
	_, err = svc.LoadFromPath(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestNormalizeClampsTransition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transition.TimeInterval = 0
	cfg.Transition.Bin = -2
	cfg.Buttons.IconStyle = "sparkles"
	cfg.Data.Format = "xlsx"

	cfg.Normalize()

	assert.Equal(t, MinInterval, cfg.Transition.TimeInterval)
	assert.Equal(t, MinBin, cfg.Transition.Bin)
	assert.Equal(t, IconDefault, cfg.Buttons.IconStyle)
	assert.Empty(t, cfg.Data.Format)

	cfg.Transition.TimeInterval = MaxInterval + 1
	cfg.Normalize()
	assert.Equal(t, MaxInterval, cfg.Transition.TimeInterval)
}

func TestPlaybackConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transition.TimeInterval = 1500
	cfg.Transition.Bin = 4
	cfg.Transition.Loop = true

	p := cfg.Playback()
	assert.Equal(t, domain.PlaybackConfig{BinSize: 4, TickInterval: 1500 * time.Millisecond, Loop: true}, p)

	p.BinSize = 2
	p.TickInterval = 500 * time.Millisecond
	p.AutoStart = true
	cfg.ApplyPlayback(p)
	assert.Equal(t, 2, cfg.Transition.Bin)
	assert.Equal(t, 500, cfg.Transition.TimeInterval)
	assert.True(t, cfg.Transition.AutoStart)
}

func TestServicePublishesEvents(t *testing.T) {
	bus := &fakeBus{}
	svc := NewConfigServiceWithBus(bus)
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))
	_, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, bus.events[0])
	assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path}, bus.events[1])
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvInterval, "40")
	t.Setenv(EnvBin, "5")
	t.Setenv(EnvLoop, "true")
	t.Setenv(EnvAutoStart, "not-a-bool")
	t.Setenv(EnvData, "/tmp/quarters.csv")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, 40, cfg.Transition.TimeInterval)
	assert.Equal(t, 5, cfg.Transition.Bin)
	assert.True(t, cfg.Transition.Loop)
	assert.False(t, cfg.Transition.AutoStart, "invalid values are ignored")
	assert.Equal(t, "/tmp/quarters.csv", cfg.Data.Path)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("TIMEPLAY_BIN=7\n"), 0644))
	t.Setenv(EnvBin, "")
	os.Unsetenv(EnvBin)

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "absent.env"), envPath))

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, 7, cfg.Transition.Bin)
}
