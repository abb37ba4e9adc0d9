package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDefault(t *testing.T, c Config) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	require.NoError(t, Setup(c))
}

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, Config{Level: "debug", Output: &buf})

	New("compose").Info("hello")

	assert.Contains(t, buf.String(), "component=compose")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, Config{Format: FormatJSON, Output: &buf})

	New("registry").Info("loaded", "pipelines", 2)

	assert.Contains(t, buf.String(), `"component":"registry"`)
	assert.Contains(t, buf.String(), `"pipelines":2`)
}

func TestSetup_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, Config{Level: "warn", Output: &buf})

	New("compose").Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestSetup_UnknownFormat(t *testing.T) {
	prev := slog.Default()

	err := Setup(Config{Format: "xml"})

	assert.ErrorContains(t, err, `unknown format "xml"`)
	assert.Same(t, prev, slog.Default(), "default must stay in place")
}

func TestNew_KeepsHandlerFromCreation(t *testing.T) {
	var first, second bytes.Buffer
	useDefault(t, Config{Output: &first})
	log := New("compose")

	require.NoError(t, Setup(Config{Output: &second}))
	log.Info("where")

	assert.Contains(t, first.String(), "where")
	assert.Empty(t, second.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelWarn+2, ParseLevel("warn+2"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
