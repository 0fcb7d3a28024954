package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int, fill color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadImageTextureDecodesPNG(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "swatch.png", 4, 4, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	tex, err := LoadImageTexture(path)
	require.NoError(t, err)

	c := tex.Value(0.5, 0.5, vecmath.Vec3{})
	assert.Greaterf(t, c.X, 0.7, "Value = %v, want roughly (0.78, 0.39, 0.2)", c)
	assert.Lessf(t, c.Y, 0.5, "Value = %v, want roughly (0.78, 0.39, 0.2)", c)
}

func TestLoadImageTextureMissingFile(t *testing.T) {
	_, err := LoadImageTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestLoadImageTextureRejectsUnsupportedData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notanimage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadImageTexture(path)
	assert.Error(t, err)
}
