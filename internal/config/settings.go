package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

// EnvPrefix prefixes every environment override, e.g. ATOMIC_LOG_LEVEL.
const EnvPrefix = "ATOMIC"

// Settings holds CLI preferences.
type Settings struct {
	LogLevel        string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat       string `mapstructure:"log_format" validate:"oneof=json console"`
	Theme           string `mapstructure:"theme" validate:"oneof=light dark system"`
	MaxVisiblePages int    `mapstructure:"max_visible_pages" validate:"min=1,max=99"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:        "warn",
		LogFormat:       "console",
		Theme:           string(theme.Light),
		MaxVisiblePages: pagination.DefaultMaxVisible,
	}
}

// ThemeMode returns the configured theme as a theme.Mode.
func (s Settings) ThemeMode() theme.Mode {
	mode, err := theme.ParseMode(s.Theme)
	if err != nil {
		return theme.Light
	}
	return mode
}

// SettingsPath returns the settings file location: $ATOMIC_SETTINGS when set,
// otherwise settings.yaml under the user config directory.
func SettingsPath() string {
	if path := os.Getenv(EnvPrefix + "_SETTINGS"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "atomic", "settings.yaml")
}

// LoadSettings reads settings from path and the environment. A missing file
// is not an error; defaults apply.
func LoadSettings(path string) (Settings, error) {
	return readSettings(path, true)
}

// UpdateSettings applies fn to the settings stored at path and writes them
// back. Environment overrides are neither read nor persisted.
func UpdateSettings(path string, fn func(*Settings)) error {
	s, err := readSettings(path, false)
	if err != nil {
		return err
	}
	fn(&s)
	return SaveSettings(path, s)
}

func readSettings(path string, withEnv bool) (Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("max_visible_pages", defaults.MaxVisiblePages)

	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	}

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	s.LogFormat = strings.ToLower(s.LogFormat)
	s.Theme = strings.ToLower(s.Theme)

	if err := validatorInstance().Struct(s); err != nil {
		return Settings{}, convertValidationError(err)
	}
	return s, nil
}

// SaveSettings writes s to path, creating the parent directory if needed.
func SaveSettings(path string, s Settings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("log_level", s.LogLevel)
	v.Set("log_format", s.LogFormat)
	v.Set("theme", s.Theme)
	v.Set("max_visible_pages", s.MaxVisiblePages)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
