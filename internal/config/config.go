// Package config loads CLI configuration from defaults, an optional
// .lorentz.yaml file, LORENTZ_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hepvec/lorentz"
)

// EnvPrefix is the prefix for environment overrides (LORENTZ_SYSTEM, ...).
const EnvPrefix = "LORENTZ"

// Keys understood by Load.
const (
	KeySystem    = "system"
	KeyPrecision = "precision"
	KeyVerbose   = "verbose"
)

// Defaults.
const (
	DefaultSystem    = "cartesian"
	DefaultPrecision = 6
)

// ErrBadPrecision indicates a negative output precision.
var ErrBadPrecision = errors.New("config: precision must be >= 0")

// Config holds the resolved CLI settings.
type Config struct {
	System    lorentz.CoordinateSystem `mapstructure:"system"`
	Precision int                      `mapstructure:"precision"`
	Verbose   bool                     `mapstructure:"verbose"`
}

// NewViper returns a viper instance with defaults and environment binding
// applied. Config files and flags are layered on by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySystem, DefaultSystem)
	v.SetDefault(KeyPrecision, DefaultPrecision)
	v.SetDefault(KeyVerbose, false)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v
}

// ReadFile layers a config file onto v. An explicit path must exist; without
// one, .lorentz.yaml is looked up in the working directory and then home, and
// a missing file is not an error.
func ReadFile(v *viper.Viper, path, home string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".lorentz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (path != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// Load resolves a Config from v.
//
// Errors:
//   - lorentz.ErrUnknownSystem (wrapped) for an unknown system name.
//   - ErrBadPrecision for a negative precision.
func Load(v *viper.Viper) (Config, error) {
	if _, err := lorentz.ParseCoordinateSystem(v.GetString(KeySystem)); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeySystem, err)
	}

	var cfg Config
	hook := mapstructure.ComposeDecodeHookFunc(systemHook)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Precision < 0 {
		return Config{}, fmt.Errorf("config %s=%d: %w", KeyPrecision, cfg.Precision, ErrBadPrecision)
	}

	return cfg, nil
}

var systemType = reflect.TypeOf(lorentz.Cartesian)

// systemHook decodes system names into lorentz.CoordinateSystem.
func systemHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != systemType || from.Kind() != reflect.String {
		return data, nil
	}

	return lorentz.ParseCoordinateSystem(reflect.ValueOf(data).String())
}
