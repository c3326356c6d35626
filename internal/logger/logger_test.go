package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, l)
	assert.Equal(t, "DEBUG", l.String())

	l, err = ParseLevel(" Warn ")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, l)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
	_, err = ParseLevel("fatal")
	assert.Error(t, err)
}

func TestLevelEnables(t *testing.T) {
	assert.True(t, LevelDebug.Enables(LevelInfo))
	assert.True(t, LevelDebug.Enables(LevelDebug))
	assert.False(t, LevelDebug.Enables(LevelTrace))
	assert.False(t, LevelTrace.Enables(LevelOff))
	assert.False(t, LevelOff.Enables(LevelError))
}

func TestLevelMarshalText(t *testing.T) {
	b, err := json.Marshal(struct{ Level Level }{LevelDebug})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Level":"DEBUG"}`, string(b))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "OFF", LevelOff.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelInfo, &buf)

	l.Debug("hidden debug")
	l.Tracef("hidden %s", "trace")
	l.Info("shown info")
	l.Warnf("shown %s", "warn")
	l.Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO :")
	assert.Contains(t, out, "shown info")
	assert.Contains(t, out, "WARN :")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "logger_test.go")
}

func TestNewLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelOff, &buf)
	l.Error("nothing")
	assert.Zero(t, buf.Len())
}
