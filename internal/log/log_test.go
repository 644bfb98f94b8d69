package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecpath.log")
	var console bytes.Buffer
	Init(Options{Level: "debug", Format: "text", File: path, Output: &console})
	t.Cleanup(func() { require.NoError(t, Close()) })

	l := WithOperation(WithComponent("sampler"), "sample")
	l.Debug("sampled", slog.Int("polygons", 3))

	assert.Contains(t, console.String(), "msg=sampled")
	assert.Contains(t, console.String(), "component=sampler")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	require.True(t, sc.Scan(), "log file is empty")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
	assert.Equal(t, "sampled", rec["msg"])
	assert.Equal(t, "vecpath", rec["app"])
	assert.Equal(t, "sampler", rec["component"])
	assert.Equal(t, "sample", rec["op"])
	assert.EqualValues(t, 3, rec["polygons"])
}

func TestInitLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Options{Level: "warn", Format: "json", Output: &buf})
	l.Info("dropped")
	l.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvSource, "TRUE")
	t.Setenv(EnvFile, "/tmp/x.log")

	assert.Equal(t, Options{Level: "error", Format: "json", AddSource: true, File: "/tmp/x.log"}, FromEnv())
}

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{EnvLevel, EnvFormat, EnvSource, EnvFile} {
		t.Setenv(k, "")
	}
	assert.Equal(t, Options{Level: "info", Format: "text"}, FromEnv())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
