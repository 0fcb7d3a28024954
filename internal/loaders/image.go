package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-monte/pathtracer/internal/material"
)

// LoadImageTexture decodes an image file (PNG, JPEG, TIFF, WebP) into a
// material.Image texture. A decode failure is returned as an error
// rather than silently yielding the magenta sentinel; callers that want
// the sentinel-on-failure behavior should pass a nil image.Image to
// material.NewImageTexture directly.
func LoadImageTexture(path string) (*material.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode %s: %w", path, err)
	}

	return material.NewImageTexture(img), nil
}
