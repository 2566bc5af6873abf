package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0"

	DefaultPrecision = common.Precision
	MaximumPrecision = 64
)

type Custom struct {
	Log struct {
		LevelStr string `toml:"level"`
		Level    int    `toml:"-"`
		Filter   string `toml:"filter"`
		Limiter  int    `toml:"limiter"`
	} `toml:"log"`
	Output struct {
		Precision int  `toml:"precision"`
		Float     bool `toml:"float"`
		Mixed     bool `toml:"mixed"`
	} `toml:"output"`
}

func Default() *Custom {
	var config Custom
	config.Output.Precision = DefaultPrecision
	err := config.normalize()
	if err != nil {
		panic(err)
	}
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tree, err := toml.LoadBytes(f)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = tree.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	if !tree.Has("output.precision") {
		config.Output.Precision = DefaultPrecision
	}
	err = config.normalize()
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Custom) normalize() error {
	if c.Log.LevelStr == "" {
		c.Log.LevelStr = "info"
	}
	l, err := logger.ParseLevel(c.Log.LevelStr)
	if err != nil {
		return err
	}
	c.Log.Level = l
	return ValidatePrecision(c.Output.Precision)
}

func ValidatePrecision(p int) error {
	if p < 0 || p > MaximumPrecision {
		return fmt.Errorf("invalid precision %d, expected 0 to %d", p, MaximumPrecision)
	}
	return nil
}
