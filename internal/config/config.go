package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppConfig is the resolved configuration after flags, environment, config
// file and defaults have been layered by viper.
type AppConfig struct {
	Format  string    `mapstructure:"format" validate:"oneof=text json yaml"`
	Color   string    `mapstructure:"color" validate:"oneof=auto always never"`
	Verbose bool      `mapstructure:"verbose"`
	Log     LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Configure prepares v: defaults, environment overrides and config search
// paths. An explicit file replaces the search.
func Configure(v *viper.Viper, file string) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return
	}
	for _, p := range SearchPaths() {
		v.AddConfigPath(p)
	}
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
}

// ReadConfig reads the config file set up by Configure and returns the file
// used. A missing file is only an error when it was named explicitly.
func ReadConfig(v *viper.Viper, explicit bool) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (AppConfig, error) {
	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return AppConfig{}, fmt.Errorf("invalid %s %q: must be one of %s",
				settingName(fe.Namespace()), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
		}
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// settingName maps a validator namespace such as "AppConfig.Log.Level" to
// the setting key "log.level".
func settingName(ns string) string {
	_, field, _ := strings.Cut(ns, ".")
	return strings.ToLower(field)
}
