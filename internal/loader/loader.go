// Package loader reads and decodes the JSON export produced by the Arccos
// scraper.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// Loader reads data files through an afero.Fs so tests can use an
// in-memory filesystem.
type Loader struct {
	fs afero.Fs
}

// New creates a loader on the given filesystem.
// Use afero.NewOsFs() for real files, afero.NewMemMapFs() in tests.
func New(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// NewOs creates a loader on the operating system filesystem.
func NewOs() *Loader {
	return New(afero.NewOsFs())
}

// Load reads path and decodes it as a single JSON value. Numbers are kept as
// json.Number. Every failure is an *Error.
func (l *Loader) Load(path string) (any, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	v, err := Decode(data)
	if err != nil {
		return nil, newError(ErrInvalidFormat, path, err)
	}
	return v, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, classify(path, err)
	}
	return data, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newError(ErrFileNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return newError(ErrPermissionDenied, path, err)
	default:
		return newError(ErrReadFailed, path, err)
	}
}

// Decode parses exactly one JSON value from data. Empty input and trailing
// content are errors; syntax errors carry a line and column.
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, describeSyntax(data, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after JSON value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func describeSyntax(data []byte, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := position(data, syn.Offset)
		return fmt.Errorf("line %d, column %d: %w", line, col, err)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("unexpected end of input: %w", err)
	}
	return err
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}
