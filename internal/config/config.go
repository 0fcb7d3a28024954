// Package config layers render configuration from defaults, an
// optional YAML file, and command-line flags, with flags taking
// precedence, using viper to do the layering.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RenderConfig holds everything needed to run one render.
type RenderConfig struct {
	Scene           string  // built-in scene name, or a path to a .yaml/.obj/.gltf scene file
	OutputPath      string
	ImageWidth      int
	AspectRatio     float64
	SamplesPerPixel int
	MaxBounces      int
	FOVDegrees      float64
	NumWorkers      int
	Preview         bool
	MetricsAddr     string // empty disables the Prometheus endpoint
}

// BindFlags registers config-backed flags on fs and binds them into v,
// so that a flag's value wins over both the YAML file and the
// built-in defaults below.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String("scene", "two-spheres", "built-in scene name (two-spheres, random-spheres, cornell-box) or a path to a scene file")
	fs.String("output", "out/render.png", "output image path")
	fs.Int("image-width", 400, "output image width in pixels")
	fs.Float64("aspect-ratio", 16.0/9.0, "output image aspect ratio (width/height)")
	fs.Int("samples-per-pixel", 100, "samples per pixel")
	fs.Int("max-bounces", 50, "maximum ray bounce depth")
	fs.Float64("fov-degrees", 40, "vertical field of view in degrees")
	fs.Int("workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	fs.Bool("preview", false, "show a live terminal preview while rendering")
	fs.String("metrics-addr", "", "address to serve Prometheus metrics on (empty disables)")

	return v.BindPFlags(fs)
}

// SetDefaults applies RenderConfig's defaults to v, below whatever a
// YAML config file or flag supplies.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scene", "two-spheres")
	v.SetDefault("output", "out/render.png")
	v.SetDefault("image-width", 400)
	v.SetDefault("aspect-ratio", 16.0/9.0)
	v.SetDefault("samples-per-pixel", 100)
	v.SetDefault("max-bounces", 50)
	v.SetDefault("fov-degrees", 40.0)
	v.SetDefault("workers", 0)
	v.SetDefault("preview", false)
	v.SetDefault("metrics-addr", "")
}

// Load reads a RenderConfig out of v after flags and any config file
// have been merged in.
func Load(v *viper.Viper) (RenderConfig, error) {
	cfg := RenderConfig{
		Scene:           v.GetString("scene"),
		OutputPath:      v.GetString("output"),
		ImageWidth:      v.GetInt("image-width"),
		AspectRatio:     v.GetFloat64("aspect-ratio"),
		SamplesPerPixel: v.GetInt("samples-per-pixel"),
		MaxBounces:      v.GetInt("max-bounces"),
		FOVDegrees:      v.GetFloat64("fov-degrees"),
		NumWorkers:      v.GetInt("workers"),
		Preview:         v.GetBool("preview"),
		MetricsAddr:     v.GetString("metrics-addr"),
	}

	if cfg.ImageWidth <= 0 {
		return RenderConfig{}, fmt.Errorf("config: image-width must be positive, got %d", cfg.ImageWidth)
	}
	if cfg.AspectRatio <= 0 {
		return RenderConfig{}, fmt.Errorf("config: aspect-ratio must be positive, got %v", cfg.AspectRatio)
	}
	if cfg.SamplesPerPixel <= 0 {
		return RenderConfig{}, fmt.Errorf("config: samples-per-pixel must be positive, got %d", cfg.SamplesPerPixel)
	}

	return cfg, nil
}
