package output

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 100, A: 255})
		}
	}
	return img
}

func TestSavePNGCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "sub", "frame.png")

	if err := SavePNG(testImage(), path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}

func TestSaveAsDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "frame.png")
	if err := SaveAs(testImage(), pngPath); err != nil {
		t.Fatalf("SaveAs png: %v", err)
	}

	jpgPath := filepath.Join(dir, "frame.jpg")
	if err := SaveAs(testImage(), jpgPath); err != nil {
		t.Fatalf("SaveAs jpg: %v", err)
	}

	for _, p := range []string{pngPath, jpgPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
}
