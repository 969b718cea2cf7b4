package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reset() {
	SetVerbose(false)
	_ = Init("info", FormatConsole)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "test message arg")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Section("Catalog")
	assert.Zero(t, buf.Len())

	SetVerbose(true)
	Section("Catalog")
	assert.Contains(t, buf.String(), "=== Catalog ===")
}

func TestInfoWarnError(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Info("info %d", 1)
	Warn("warn %d", 2)
	Error("error %d", 3)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "warn 2")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "error 3")
}

func TestInit_LevelFilters(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, Init("warn", FormatConsole))

	Info("hidden")
	Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInit_VerboseOverridesLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, Init("error", FormatConsole))
	SetVerbose(true)

	Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	SetVerbose(false)
	buf.Reset()
	Warn("filtered")
	assert.Zero(t, buf.Len())
}

func TestInit_JSON(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	require.NoError(t, Init("info", FormatJSON))
	SetOutput(&buf)

	L().Info("application submitted", zap.String("reference", "UC-0000ABCD"))

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "application submitted", entry["msg"])
	assert.Equal(t, "UC-0000ABCD", entry["reference"])
}

func TestInit_Invalid(t *testing.T) {
	defer reset()

	assert.Error(t, Init("loud", FormatConsole))
	assert.Error(t, Init("info", "xml"))
}
