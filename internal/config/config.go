// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads padre's settings from padre.yaml, PADRE_* environment
// variables and command-line flags, in increasing order of precedence.
//
// The scrypt cost parameters are deliberately absent: they are part of the
// derivation itself and cannot be configured.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the complete set of user settings. It is loaded once per process
// and passed explicitly to whatever needs it.
type Config struct {
	Defaults  Defaults `mapstructure:"defaults" yaml:"defaults"`
	Database  Database `mapstructure:"database" yaml:"database"`
	Language  string   `mapstructure:"language" yaml:"language"`
	Clipboard bool     `mapstructure:"clipboard" yaml:"clipboard"`
}

// Defaults fill in account fields not given on the command line.
type Defaults struct {
	Length     uint   `mapstructure:"length" yaml:"length"`
	Iteration  string `mapstructure:"iteration" yaml:"iteration"`
	Characters string `mapstructure:"characters" yaml:"characters"`
}

// Database selects the account store.
type Database struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// DefaultValues returns the built-in defaults keyed by configuration key.
func DefaultValues() map[string]any {
	dsn := "./padre.db"
	if dir, err := userConfigDir(); err == nil {
		dsn = filepath.Join(dir, "accounts.db")
	}
	return map[string]any{
		"defaults.length":     64,
		"defaults.iteration":  "0",
		"defaults.characters": "",
		"database.type":       "sqlite",
		"database.dsn":        dsn,
		"language":            "en",
		"clipboard":           false,
	}
}

func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "padre"), nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "padre")
		default: // Linux, macOS, etc.
			configDir = "/etc/padre"
		}
	} else {
		dir, err := userConfigDir()
		if err != nil {
			return "", err
		}
		configDir = dir
	}
	return filepath.Join(configDir, "padre.yaml"), nil
}

// LoadConfig builds a T from defaults, the first padre.yaml found (or the
// explicit configFile), the environment and the flags of cmd named in flags,
// which maps configuration keys to flag names. A missing config file is not
// an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, flags map[string]string, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("padre")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.SetEnvPrefix("padre")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range flags {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return c, err
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile writes c to the user or system config path and returns the
// path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
