package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewWithWriter_Format(t *testing.T) {
	var buf bytes.Buffer

	NewWithWriter(&buf, "info", "json").Info("contacts inserted", "affectedRows", 3)
	assert.Contains(t, buf.String(), `"affectedRows":3`)

	buf.Reset()
	NewWithWriter(&buf, "info", "text").Info("contacts inserted", "affectedRows", 3)
	assert.Contains(t, buf.String(), "affectedRows=3")

	buf.Reset()
	NewWithWriter(&buf, "warn", "text").Info("hidden")
	assert.Empty(t, buf.String())
}
