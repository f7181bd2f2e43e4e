package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tychoish/sll/ers"
)

// LogConfig selects the level and encoding of the demo's logger.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Config is read from a JSON file that may contain comments.
type Config struct {
	Values []int     `json:"values"`
	Index  int       `json:"index"`
	Log    LogConfig `json:"log"`
}

// DefaultConfig is used when no config file is given; fields absent
// from a config file keep these values.
func DefaultConfig() Config {
	return Config{
		Values: []int{8, 5, 1},
		Index:  1,
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

func LoadConfig(fs afero.Fs, path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	if err = json.Unmarshal(jsonc.ToJSON(content), &conf); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err = conf.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "validate config %q", path)
	}

	return conf, nil
}

func (c Config) Validate() error {
	if _, err := c.Log.level(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "console", "json":
		return nil
	default:
		return ers.Wrapf(ers.ErrInvalidInput, "log format %q", c.Log.Format)
	}
}

func (c LogConfig) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, ers.Wrapf(ers.ErrInvalidInput, "log level %q", c.Level)
	}
	return lvl, nil
}

// NewLogger builds a development (console) or production (json) zap
// logger at the configured level.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch c.Format {
	case "json":
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}
