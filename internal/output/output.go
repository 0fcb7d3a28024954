// Package output handles writing a rendered frame to disk, in PNG and
// in any format github.com/disintegration/imaging supports.
package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// SavePNG saves img as a PNG file at filename, creating parent
// directories as needed.
func SavePNG(img *image.RGBA, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: creating directory %s: %w", dir, err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("output: encoding %s: %w", filename, err)
	}
	return nil
}

// SaveAs saves img at filename in whatever format its extension
// implies (png, jpeg, gif, tiff, bmp), via imaging.Save. For a plain
// ".png" destination, prefer SavePNG, which avoids the extra
// dependency on the format-sniffing path.
func SaveAs(img *image.RGBA, filename string) error {
	if strings.EqualFold(filepath.Ext(filename), ".png") {
		return SavePNG(img, filename)
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: creating directory %s: %w", dir, err)
	}

	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("output: saving %s: %w", filename, err)
	}
	return nil
}
