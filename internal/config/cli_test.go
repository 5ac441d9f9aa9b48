package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/touchbridge/internal/config"
	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *config.CLI, opts ...kong.Option) *kong.Kong {
	t.Helper()
	opts = append([]kong.Option{
		kong.Name("touchbridge"),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	}, opts...)
	p, err := kong.New(cli, opts...)
	require.NoError(t, err)
	return p
}

func TestParseDefaultCommand(t *testing.T) {
	var cli config.CLI
	p := newParser(t, &cli)

	_, err := p.Parse([]string{"-x", "1920", "-y", "1080", "-i", "/dev/input/event3", "-d"})
	require.NoError(t, err)

	assert.Equal(t, uint32(1920), cli.Run.AbsXMax)
	assert.Equal(t, uint32(1080), cli.Run.AbsYMax)
	assert.Equal(t, "/dev/input/event3", cli.Run.InputDevice)
	assert.Equal(t, "/dev/virtual_touchscreen", cli.Run.VirtualTouchscreen)
	assert.True(t, cli.Run.Debug)
	assert.False(t, cli.Run.Grab)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestParseMissingRequired(t *testing.T) {
	var cli config.CLI
	p := newParser(t, &cli)

	_, err := p.Parse([]string{"run", "-x", "10", "-i", "/dev/input/event3"})
	assert.Error(t, err)
}

func TestParseFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "abs_x_max": 4095,
  "abs_y_max": 4095,
  "input_device": "/dev/input/event7",
  "virtual_touchscreen": "/tmp/vts",
  "log": {"level": "debug"}
}`), 0o644))

	var cli config.CLI
	p := newParser(t, &cli, kong.Configuration(kong.JSON, path))

	_, err := p.Parse([]string{"run", "-y", "2000"})
	require.NoError(t, err)

	assert.Equal(t, uint32(4095), cli.Run.AbsXMax)
	assert.Equal(t, uint32(2000), cli.Run.AbsYMax, "flags override config")
	assert.Equal(t, "/dev/input/event7", cli.Run.InputDevice)
	assert.Equal(t, "/tmp/vts", cli.Run.VirtualTouchscreen)
	assert.Equal(t, "debug", cli.Log.Level)
}
