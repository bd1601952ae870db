package app

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"elgamal64/internal/logging"
	"elgamal64/internal/primality"
)

// Configuration keys, shared with the CLI flag names.
const (
	KeyPrimality = "primality"
	KeyLogLevel  = "log-level"
	KeyJSON      = "json"
	KeyWorkers   = "workers"
)

// EnvPrefix prefixes environment overrides, e.g. ELGAMAL_LOG_LEVEL.
const EnvPrefix = "ELGAMAL"

// Config holds runtime wiring options for building the app.
type Config struct {
	Primality primality.Strategy // primality test used to validate p
	LogLevel  string             // debug, info, warn or error
	JSON      bool               // machine-readable output
	Workers   int                // batch workers, NumCPU by default
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPrimality, string(primality.DefaultStrategy))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadConfigFile loads path, or when path is empty searches for
// config.{yaml,json,toml} in dirs. A missing search result is not an error.
func ReadConfigFile(v *viper.Viper, path string, dirs ...string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		return nil
	}
	v.SetConfigName("config")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// LoadConfig builds a validated Config from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	st, err := primality.ParseStrategy(v.GetString(KeyPrimality))
	if err != nil {
		return Config{}, err
	}
	level := v.GetString(KeyLogLevel)
	if _, err := logging.ParseLevel(level); err != nil {
		return Config{}, err
	}
	workers := v.GetInt(KeyWorkers)
	if workers < 1 {
		return Config{}, fmt.Errorf("%s must be at least 1, got %d", KeyWorkers, workers)
	}
	return Config{
		Primality: st,
		LogLevel:  level,
		JSON:      v.GetBool(KeyJSON),
		Workers:   workers,
	}, nil
}
