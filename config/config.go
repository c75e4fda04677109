// SPDX-License-Identifier: GPL-2.0-or-later

// Package config reads tool settings from an optional yaml file and
// CAKE_* environment variables.
package config

import (
	"strings"

	"cake/filesystem"
	"cake/md2"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "cake"

type Config struct {
	// BaseDir holds the default game directory and its archives.
	BaseDir string `mapstructure:"basedir"`
	// Game is a mod directory searched before the default one.
	Game      string `mapstructure:"game"`
	Translate bool   `mapstructure:"translate"`
	Source    string `mapstructure:"source"`
	// CacheSize is the decoded model cache budget in input bytes.
	CacheSize int64  `mapstructure:"cache_size"`
	LogLevel  string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"basedir":    ".",
	"game":       "",
	"translate":  false,
	"source":     md2.SourceCommands.String(),
	"cache_size": int64(64 << 20),
	"log_level":  logrus.InfoLevel.String(),
}

// Load returns the defaults overridden by path, if not empty, and then by
// the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if _, err := md2.ParseSource(c.Source); err != nil {
		return errors.Wrap(err, "config")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.CacheSize <= 0 {
		return errors.Errorf("config: cache_size %d is not positive", c.CacheSize)
	}
	return nil
}

// Options returns the geometry options selected by c.
func (c *Config) Options() md2.Options {
	src, _ := md2.ParseSource(c.Source)
	return md2.Options{Translate: c.Translate, Source: src}
}

// Mount binds the search path to BaseDir and Game.
func (c *Config) Mount() {
	filesystem.UseBaseDir(c.BaseDir)
	if c.Game != "" {
		filesystem.UseGameDir(c.Game)
	}
}
