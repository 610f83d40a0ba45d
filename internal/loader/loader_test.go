package loader

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deniedFs fails every open with a permission error.
type deniedFs struct {
	afero.Fs
}

func (deniedFs) Open(name string) (afero.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestLoader_Load(t *testing.T) {
	mem := afero.NewMemMapFs()
	_ = afero.WriteFile(mem, "/data/arccos.json", []byte(`{"golfer": "Alex", "total_shots": 1200}`), 0644)

	v, err := New(mem).Load("/data/arccos.json")
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alex", obj["golfer"])
	assert.Equal(t, json.Number("1200"), obj["total_shots"])
}

func TestLoader_Load_Errors(t *testing.T) {
	mem := afero.NewMemMapFs()
	_ = afero.WriteFile(mem, "/data/broken.json", []byte("{\n  \"golfer\": \"Alex\",\n  oops\n}"), 0644)
	_ = afero.WriteFile(mem, "/data/empty.json", []byte("  \n"), 0644)
	_ = afero.WriteFile(mem, "/data/trailing.json", []byte(`{"a": 1} {"b": 2}`), 0644)
	_ = afero.WriteFile(mem, "/data/truncated.json", []byte(`{"a": [1, 2`), 0644)

	tests := []struct {
		name    string
		fs      afero.Fs
		path    string
		kind    error
		message string
	}{
		{"missing file", mem, "/data/missing.json", ErrFileNotFound, "data file not found: /data/missing.json"},
		{"permission denied", deniedFs{mem}, "/data/broken.json", ErrPermissionDenied, "/data/broken.json"},
		{"syntax error", mem, "/data/broken.json", ErrInvalidFormat, "line 3, column"},
		{"empty file", mem, "/data/empty.json", ErrInvalidFormat, "file is empty"},
		{"trailing content", mem, "/data/trailing.json", ErrInvalidFormat, "unexpected content"},
		{"truncated", mem, "/data/truncated.json", ErrInvalidFormat, "unexpected end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.fs).Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.message)

			var lerr *Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.path, lerr.Path)
		})
	}
}

func TestLoader_Load_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := NewOs().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFailed)
	assert.Contains(t, err.Error(), dir)
}

func TestLoader_NotFoundWrapsCause(t *testing.T) {
	_, err := New(afero.NewMemMapFs()).Load("nope.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecode(t *testing.T) {
	v, err := Decode([]byte(`  [1, {"a": null}]  `))
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("1"), map[string]any{"a": nil}}, v)

	v, err = Decode([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, v)
}
