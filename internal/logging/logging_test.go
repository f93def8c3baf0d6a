package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/internal/config"
)

func TestInit_JSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, Init(config.LoggingConfig{Level: "info", Format: "json"}, &buf))
	New("cover").Info("solved", "employees", 3, "elapsed", 1500*time.Microsecond)
	New("cover").Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.Equal(t, "cover", rec["component"])
	assert.EqualValues(t, 3, rec["employees"])
	assert.InDelta(t, 1.5, rec["elapsed_ms"], 1e-9)
	assert.NotContains(t, rec, "elapsed")
}

func TestInit_Text(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, Init(config.LoggingConfig{Level: "DEBUG", Format: "text"}, &buf))
	New("partition").Debug("split", "components", 2)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "component=partition")
	assert.Contains(t, out, "components=2")
}

func TestInit_UnknownFormat(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	err := Init(config.LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Same(t, prev, slog.Default(), "a failed Init leaves the logger alone")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
