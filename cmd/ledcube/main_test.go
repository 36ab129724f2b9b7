package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ledcube/audio"
	"github.com/lixenwraith/ledcube/config"
)

func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return opts.resolve(cmd)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg, err := parse(t, "--size", "4", "--fps", "60", "--audio", "--debug")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Cube.Size)
	assert.Equal(t, 60, cfg.Render.FPS)
	assert.True(t, cfg.Audio.Enabled)
	assert.True(t, cfg.Logging.Debug)
}

func TestResolveFlagBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cube:\n  size: 5\nrender:\n  fps: 20\n"), 0644))

	cfg, err := parse(t, "--config", path, "--size", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Cube.Size)
	assert.Equal(t, 20, cfg.Render.FPS)
}

func TestResolveRejectsBadSize(t *testing.T) {
	_, err := parse(t, "--size", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolveRejectsRunawayFPS(t *testing.T) {
	_, err := parse(t, "--fps", "2000000000")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestWriteConfigExits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	var out bytes.Buffer

	cmd := newRootCmd(&options{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--write-config", path, "--size", "5", "--audio"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Cube.Size)
	assert.True(t, cfg.Audio.Enabled)
}

func TestWriteConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")

	cmd := newRootCmd(&options{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--write-config", path, "--size", "0"})
	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalidConfig)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing written for an invalid config")
}

func TestResolveMissingFile(t *testing.T) {
	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSetupAudioDisabled(t *testing.T) {
	cue := setupAudio(config.AudioConfig{Enabled: false}, nil)
	assert.IsType(t, audio.Silent{}, cue)
}
