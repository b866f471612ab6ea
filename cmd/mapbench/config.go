package main

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config of a mapbench run, read from a TOML file.
type Config struct {
	// Variants to run, any of "unsorted", "sorted", "chain", "probe". Empty means all of them.
	Variants []string `toml:"variants"`
	// Keys is the number of distinct keys of the workload.
	Keys int `toml:"keys"`
	// Ops is the number of random operations run after the fill.
	Ops int `toml:"ops"`
	// DeleteRatio is the share of random operations that are deletions, in [0,1].
	DeleteRatio float64 `toml:"delete_ratio"`
	Seed        uint64  `toml:"seed"`
	// Capacity is the initial table length of the hash based variants. 0 keeps the default.
	Capacity int       `toml:"capacity"`
	Log      LogConfig `toml:"log"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// Filename turns on rotated file output instead of stderr.
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

func defaultConfig() Config {
	return Config{
		Keys:        100,
		Ops:         10000,
		DeleteRatio: 0.25,
		Seed:        1,
		Log:         LogConfig{Level: "info", Format: "console"},
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode %s", path)
		}
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Keys <= 0 {
		return errors.Errorf("keys must be positive, got %d", c.Keys)
	}
	if c.Ops < 0 {
		return errors.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.DeleteRatio < 0 || c.DeleteRatio > 1 {
		return errors.Errorf("delete_ratio must be in [0,1], got %v", c.DeleteRatio)
	}
	if len(c.Variants) == 0 {
		c.Variants = slices.Clone(variantNames)
	}
	for _, v := range c.Variants {
		if _, ok := variants[v]; !ok {
			return errors.Errorf("unknown variant %q", v)
		}
	}
	return nil
}

func (c *LogConfig) encoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if c.Format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(ec)
}

func (c *LogConfig) syncer() zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
		LocalTime:  true,
	})
}

func (c *LogConfig) build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	core := zapcore.NewCore(c.encoder(), c.syncer(), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()), nil
}
