package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/josephgoksu/golfstats/internal/ui"
	"gopkg.in/yaml.v3"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Renderer turns a report into output bytes. Renderers never write; the
// caller prints the result once it is complete.
type Renderer interface {
	Render(r Report) ([]byte, error)
}

// NewRenderer returns the renderer for format. The theme is only used by
// the text renderer.
func NewRenderer(format Format, theme ui.Theme) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &TextRenderer{Theme: theme}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// JSONRenderer outputs the structured document as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(r Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return nil, fmt.Errorf("encoding JSON output: %w", err)
	}
	return buf.Bytes(), nil
}

// YAMLRenderer outputs the structured document as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(r Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return nil, fmt.Errorf("encoding YAML output: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML output: %w", err)
	}
	return buf.Bytes(), nil
}
