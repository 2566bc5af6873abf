package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	custom, err := Initialize("./config.example.toml")
	require.Nil(err)

	require.Equal("verbose", custom.Log.LevelStr)
	require.Equal(logger.VERBOSE, custom.Log.Level)
	require.Equal("(?i)div|pow", custom.Log.Filter)
	require.Equal(5, custom.Log.Limiter)
	require.Equal(4, custom.Output.Precision)
	require.Equal(true, custom.Output.Float)
	require.Equal(false, custom.Output.Mixed)

	custom = Default()
	require.Equal(logger.INFO, custom.Log.Level)
	require.Equal(DefaultPrecision, custom.Output.Precision)
	require.Equal("", custom.Log.Filter)
}

func TestConfigInvalid(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "fraction.toml")

	_, err := Initialize(filepath.Join(dir, "missing.toml"))
	require.NotNil(err)

	err = os.WriteFile(file, []byte("[log]\nlevel = \"loud\"\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	err = os.WriteFile(file, []byte("[output\nprecision = 2\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	err = os.WriteFile(file, []byte("[output]\nprecision = 1000\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)
	err = os.WriteFile(file, []byte("[output]\nprecision = -1\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	err = os.WriteFile(file, []byte("[output]\nprecision = 0\n"), 0644)
	require.Nil(err)
	custom, err := Initialize(file)
	require.Nil(err)
	require.Equal(0, custom.Output.Precision)
	require.Equal(logger.INFO, custom.Log.Level)

	err = os.WriteFile(file, []byte("[output]\nmixed = true\n"), 0644)
	require.Nil(err)
	custom, err = Initialize(file)
	require.Nil(err)
	require.Equal(DefaultPrecision, custom.Output.Precision)

	require.Nil(ValidatePrecision(0))
	require.Nil(ValidatePrecision(MaximumPrecision))
	require.NotNil(ValidatePrecision(MaximumPrecision + 1))
}
