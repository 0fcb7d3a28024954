package scene

import (
	"os"
	"path/filepath"
	"testing"
)

const testSceneYAML = `
camera:
  aspect_ratio: 1.0
  image_width: 100
  look_from: [0, 0, 3]
  look_at: [0, 0, 0]
primitives:
  - kind: sphere
    center: [0, 0, 0]
    radius: 1.0
    material:
      kind: lambertian
      color: [0.5, 0.5, 0.5]
  - kind: quad
    corner: [-1, -1, -2]
    u: [2, 0, 0]
    v: [0, 2, 0]
    material:
      kind: metal
      color: [0.8, 0.8, 0.8]
      fuzz: 0.1
`

func TestLoadYAMLParsesPrimitivesAndCamera(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(testSceneYAML), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if len(s.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(s.Shapes))
	}
	if s.CameraConfig.ImageWidth != 100 {
		t.Errorf("ImageWidth = %d, want 100", s.CameraConfig.ImageWidth)
	}
}

func TestLoadYAMLRejectsUnknownMaterialKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	doc := `
primitives:
  - kind: sphere
    center: [0, 0, 0]
    radius: 1.0
    material:
      kind: plastic
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadYAML(path)
	if err == nil {
		t.Errorf("expected an error for an unknown material kind")
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
