package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-monte/pathtracer/internal/material"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOBJTriangleAndQuad(t *testing.T) {
	dir := t.TempDir()
	obj := `# a triangle and a quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 2 3 4
`
	path := writeTestFile(t, dir, "mesh.obj", obj)

	def := material.NewLambertianColor(vecmath.New(1, 1, 1))
	m, err := LoadOBJ(path, def)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Faces, 2)
	assert.Len(t, m.Faces[0].Indices, 3)
	assert.Len(t, m.Faces[1].Indices, 4)
	assert.Equal(t, 0, m.Faces[0].Indices[0], "1-based \"1\" must become 0-based 0")

	mesh, err := m.Build(def)
	require.NoError(t, err)
	assert.Equal(t, 3, mesh.TriangleCount(), "1 triangle + quad-fanned 2")
}

func TestLoadOBJRejectsOutOfBoundsIndex(t *testing.T) {
	dir := t.TempDir()
	obj := "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 9\n"
	path := writeTestFile(t, dir, "bad.obj", obj)

	_, err := LoadOBJ(path, material.NewLambertianColor(vecmath.New(1, 1, 1)))
	assert.Error(t, err)
}

func TestLoadOBJWithMTLAssignsMaterialsPerUsemtl(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "scene.mtl", `newmtl redDiffuse
Kd 0.8 0.1 0.1

newmtl glowing
Ke 5 5 5

newmtl glass
Ni 1.5
`)
	obj := `mtllib scene.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 2 0 0
v 3 0 0
usemtl redDiffuse
f 1 2 3
usemtl glowing
f 1 3 4
usemtl glass
f 2 5 6
`
	path := writeTestFile(t, dir, "scene.obj", obj)

	def := material.NewLambertianColor(vecmath.New(0, 0, 0))
	m, err := LoadOBJ(path, def)
	require.NoError(t, err)
	require.Len(t, m.Faces, 3)
	for i, f := range m.Faces {
		assert.NotNilf(t, f.Material, "face %d", i)
	}
	assert.IsType(t, &material.Emissive{}, m.Faces[1].Material)
	assert.IsType(t, &material.Dielectric{}, m.Faces[2].Material)
}

func TestLoadOBJUnknownUsemtlErrors(t *testing.T) {
	dir := t.TempDir()
	obj := "v 0 0 0\nv 1 0 0\nv 1 1 0\nusemtl nonexistent\nf 1 2 3\n"
	path := writeTestFile(t, dir, "bad.obj", obj)

	_, err := LoadOBJ(path, material.NewLambertianColor(vecmath.New(1, 1, 1)))
	assert.Error(t, err)
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), material.NewLambertianColor(vecmath.New(1, 1, 1)))
	assert.Error(t, err)
}
