package log

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in       string
		expected slog.Level
	}

	cases := []testCase{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.in))
		})
	}
}

func TestEffectiveLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, EffectiveLevel("info", false))
	assert.Equal(t, slog.LevelDebug, EffectiveLevel("info", true))
	assert.Equal(t, slog.LevelDebug, EffectiveLevel("error", true))
	assert.Equal(t, LevelTrace, EffectiveLevel("trace", true))
}

func TestSetupLoggerSplitsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setupLogger(slog.LevelInfo, "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("hidden")
	logger.Info("to stdout")
	logger.Error("to stderr")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "to stdout")
	assert.NotContains(t, stdout.String(), "to stderr")
	assert.Contains(t, stderr.String(), "to stderr")
	assert.NotContains(t, stderr.String(), "to stdout")
}

func TestSetupLoggerFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "touchbridge.log")
	logger, closers, err := setupLogger(slog.LevelDebug, path, &stdout, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("mirrored")
	require.NoError(t, closers[0].Close())

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "mirrored")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := &rawLogger{w: &buf, now: func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}}

	r.Log(true, []byte{0x01, 0xab})
	r.Log(false, nil)
	r.Log(false, []byte("S 0\n"))

	assert.Equal(t,
		"2024/01/02 03:04:05.000 in  2 bytes: 01 ab\n"+
			"2024/01/02 03:04:05.000 out 4 bytes: 53 20 30 0a\n",
		buf.String())

	NewRaw(nil).Log(true, []byte{1})
}

type shortWriter struct{ err error }

func (s shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, s.err
}

type countingRaw struct{ n int }

func (c *countingRaw) Log(in bool, data []byte) { c.n += len(data) }

func TestWriter(t *testing.T) {
	var sink bytes.Buffer
	assert.Equal(t, &sink, Writer(&sink, nil))

	raw := &countingRaw{}
	w := Writer(&sink, raw)
	_, err := w.Write([]byte("d 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "d 1\n", sink.String())
	assert.Equal(t, 4, raw.n)

	boom := errors.New("boom")
	raw = &countingRaw{}
	n, err := Writer(shortWriter{err: boom}, raw).Write([]byte("abcd"))
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, raw.n)
}
