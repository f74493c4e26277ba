package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{level: LevelDebug, expected: slog.LevelDebug},
		{level: LevelInfo, expected: slog.LevelInfo},
		{level: LevelWarn, expected: slog.LevelWarn},
		{level: LevelError, expected: slog.LevelError},
		{level: "WARN", expected: slog.LevelWarn},
		{level: "invalid", expected: slog.LevelInfo},
		{level: "", expected: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(string(tc.level), func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.level))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
		slog.SetDefault(originalLogger)
	}()

	var buf bytes.Buffer
	SetupLogger(&buf, LevelDebug)

	tests := []struct {
		name    string
		logFunc func(string, ...any)
		level   string
	}{
		{name: "Debug logging", logFunc: Debug, level: "DEBUG"},
		{name: "Info logging", logFunc: Info, level: "INFO"},
		{name: "Warn logging", logFunc: Warn, level: "WARN"},
		{name: "Error logging", logFunc: Error, level: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.logFunc("command executed", "key", "value")

			output := buf.String()
			assert.Contains(t, output, "level="+tc.level)
			assert.Contains(t, output, "command executed")
			assert.Contains(t, output, "key=value")
		})
	}
}

func TestSetupLogger_FiltersBelowLevel(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
		slog.SetDefault(originalLogger)
	}()

	var buf bytes.Buffer
	SetupLogger(&buf, LevelWarn)

	Info("hidden")
	Debug("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Same(t, defaultLogger, GetLogger())
}

func TestOpenLogFile(t *testing.T) {
	dir := t.TempDir()

	f, err := OpenLogFile(dir)
	require.NoError(t, err)
	defer f.Close()

	logger := New(f, LevelInfo)
	logger.Info("written to file")
	require.NoError(t, f.Sync())

	assert.True(t, strings.HasPrefix(filepath.Base(f.Name()), "projbook-"))
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty string", input: "", expected: "<not set>"},
		{name: "Short string", input: "abc", expected: "<set>"},
		{name: "Exactly 4 characters", input: "abcd", expected: "<set>"},
		{name: "Token-like string", input: "ghp_2Dn5j8fk39Dkf0s", expected: "ghp_...***"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskSensitive(tc.input))
		})
	}
}
