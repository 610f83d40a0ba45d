package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRenderer_ColorModes(t *testing.T) {
	var buf bytes.Buffer

	always := NewTheme(NewRenderer(&buf, ColorAlways))
	out := always.Good.Render("Test")
	assert.Contains(t, out, "Test")
	assert.NotEqual(t, "Test", out, "Style should add ANSI codes when forced")

	never := NewTheme(NewRenderer(&buf, ColorNever))
	assert.Equal(t, "Test", never.Good.Render("Test"))

	// A buffer is never a terminal, so auto falls back to plain output.
	auto := NewTheme(NewRenderer(&buf, ColorAuto))
	assert.Equal(t, "Test", auto.Banner.Render("Test"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
