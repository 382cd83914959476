package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is read when no path is given and the file exists.
	DefaultConfigPath = ".tada.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TADA"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"lang":       "lang",
	"theme":      "theme",
	"alt-screen": "alt_screen",
	"char-limit": "char_limit",
	"log-file":   "log.file",
	"log-level":  "log.level",
}

// Loader reads settings from defaults, a YAML file, the environment and flags,
// in increasing order of precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader seeded with Defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("lang", d.Lang)
	v.SetDefault("theme", string(d.Theme))
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("char_limit", d.CharLimit)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level.String())

	return &Loader{v: v}
}

// BindFlags lets flags that were set on the command line win over everything else.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file at path and returns validated settings. An empty
// path falls back to DefaultConfigPath, which may be absent.
func (l *Loader) Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to read config file", Err: err}
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Path: path, Message: "config file not found", Err: err}
	}

	cfg := Defaults()
	if err := l.v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse config", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid configuration", Err: err}
	}
	return cfg, nil
}

func decodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToThemeHookFunc(),
		stringToLevelHookFunc(),
	)
}

func stringToThemeHookFunc() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(Theme("")) {
			return data, nil
		}
		return Theme(strings.ToLower(strings.TrimSpace(data.(string)))), nil
	}
}

func stringToLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(log.Level(0)) {
			return data, nil
		}
		lvl, err := log.ParseLevel(strings.TrimSpace(data.(string)))
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		return lvl, nil
	}
}

// LoadError describes a failure to produce a usable Config.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
