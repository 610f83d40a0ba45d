package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, files map[string]string) *viper.Viper {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	v := viper.New()
	v.SetFs(fs)
	return v
}

func withHome(t *testing.T, dir string) {
	t.Helper()
	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { GetGlobalConfigDir = orig })
}

func TestLoad_Defaults(t *testing.T) {
	withHome(t, "/home/nobody")
	v := newViper(t, nil)
	Configure(v, "")

	used, err := ReadConfig(v, false)
	require.NoError(t, err)
	assert.Empty(t, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, AppConfig{
		Format: DefaultFormat,
		Color:  DefaultColor,
		Log:    LogConfig{Level: DefaultLogLevel},
	}, cfg)
}

func TestLoad_FromHomeConfig(t *testing.T) {
	withHome(t, "/home/alex")
	v := newViper(t, map[string]string{
		"/home/alex/.golfstats.yaml": "format: json\ncolor: never\nlog:\n  level: debug\n",
	})
	Configure(v, "")

	used, err := ReadConfig(v, false)
	require.NoError(t, err)
	assert.Equal(t, "/home/alex/.golfstats.yaml", used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestReadConfig_ExplicitFile(t *testing.T) {
	withHome(t, "/home/nobody")
	v := newViper(t, map[string]string{"/etc/golf.yaml": "format: YAML\n"})
	Configure(v, "/etc/golf.yaml")

	used, err := ReadConfig(v, true)
	require.NoError(t, err)
	assert.Equal(t, "/etc/golf.yaml", used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)

	missing := newViper(t, nil)
	Configure(missing, "/etc/missing.yaml")
	_, err = ReadConfig(missing, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	withHome(t, "/home/nobody")
	t.Setenv("GOLFSTATS_FORMAT", "json")
	t.Setenv("GOLFSTATS_LOG_LEVEL", "info")

	v := newViper(t, nil)
	Configure(v, "")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{name: "format", key: KeyFormat, val: "xml", want: `invalid format "xml": must be one of text, json, yaml`},
		{name: "color", key: KeyColor, val: "rainbow", want: `invalid color "rainbow": must be one of auto, always, never`},
		{name: "log level", key: KeyLogLevel, val: "trace", want: `invalid log.level "trace": must be one of debug, info, warn, error`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withHome(t, "/home/nobody")
			v := newViper(t, nil)
			Configure(v, "")
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestSearchPaths(t *testing.T) {
	withHome(t, "/home/alex")
	assert.Equal(t, []string{"/home/alex", "."}, SearchPaths())
}
