package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWithNoFlagsSet(t *testing.T) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	SetDefaults(v)
	require.NoError(t, BindFlags(fs, v))

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "two-spheres", cfg.Scene)
	require.Equal(t, 400, cfg.ImageWidth)
}

func TestLoadFlagOverridesDefault(t *testing.T) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	SetDefaults(v)
	require.NoError(t, BindFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--image-width=800", "--scene=cornell-box"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 800, cfg.ImageWidth)
	require.Equal(t, "cornell-box", cfg.Scene)
}

func TestLoadRejectsNonPositiveImageWidth(t *testing.T) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	SetDefaults(v)
	require.NoError(t, BindFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--image-width=0"}))

	_, err := Load(v)
	require.Error(t, err)
}
