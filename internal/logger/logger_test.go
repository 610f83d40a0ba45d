package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.WarnLevel,
		"loud":  zapcore.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", false, &buf)
	log.Debug("hidden")
	log.Warn("shown", zap.String("path", "stats.json"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, " | WARN | shown | ")
	assert.Contains(t, out, `"path": "stats.json"`)
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New("error", true, &buf)
	log.Debug("normalizer issue")

	assert.Contains(t, buf.String(), "DEBUG | normalizer issue")
}
