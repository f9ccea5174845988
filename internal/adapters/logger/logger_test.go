package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconic/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Debug("hidden by default")
	l.Info("visible")
	assert.NotContains(t, buf.String(), "hidden by default")
	assert.Contains(t, buf.String(), "visible")

	l.SetVerbose(true)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLogger_Error_NilIsNoop(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Error_JSONMode(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.SetJSON(true)

	l.Error(zerr.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record["error"], "boom")
}
