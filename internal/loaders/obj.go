// Package loaders implements the external-asset boundary: OBJ/MTL mesh
// parsing, glTF mesh loading, and image texture decoding. None of this
// is part of the render kernel; per the external-asset error taxonomy,
// a parse failure here is refused at the boundary rather than
// propagated into the kernel.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/material"
	"github.com/go-monte/pathtracer/internal/primitive"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// ObjMesh is the parsed, not-yet-built result of an OBJ load: a flat
// vertex array and a list of faces (each 3 or 4 indices, after
// converting OBJ's 1-based indices to 0-based), ready for
// primitive.NewMesh.
type ObjMesh struct {
	Vertices []vecmath.Vec3
	Faces    []primitive.Face
}

// LoadOBJ parses a Wavefront .obj file, resolving any "mtllib"
// directive relative to the .obj file's directory. defaultMaterial is
// used for faces with no "usemtl" in effect.
func LoadOBJ(path string, defaultMaterial core.Material) (*ObjMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	materials := map[string]core.Material{}
	var currentMat core.Material = defaultMaterial

	var vertices []vecmath.Vec3
	var faces []primitive.Face

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "mtllib "):
			name := strings.TrimSpace(line[len("mtllib "):])
			loaded, err := loadMTL(filepath.Join(dir, name))
			if err != nil {
				return nil, fmt.Errorf("loaders: %s: %w", path, err)
			}
			for k, v := range loaded {
				materials[k] = v
			}

		case strings.HasPrefix(line, "usemtl "):
			name := strings.TrimSpace(line[len("usemtl "):])
			mat, ok := materials[name]
			if !ok {
				return nil, fmt.Errorf("loaders: %s: usemtl %q not found in any mtllib", path, name)
			}
			currentMat = mat

		case strings.HasPrefix(line, "v "):
			v, err := parseTriplet(line[2:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s: %w", path, err)
			}
			vertices = append(vertices, v)

		case strings.HasPrefix(line, "f "):
			indices, err := parseFaceIndices(line[2:], len(vertices))
			if err != nil {
				return nil, fmt.Errorf("loaders: %s: %w", path, err)
			}
			faces = append(faces, primitive.Face{Indices: indices, Material: currentMat})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: scanning %s: %w", path, err)
	}

	return &ObjMesh{Vertices: vertices, Faces: faces}, nil
}

// Build constructs a primitive.Mesh from the parsed OBJ data.
func (o *ObjMesh) Build(defaultMaterial core.Material) (*primitive.Mesh, error) {
	return primitive.NewMesh(o.Vertices, o.Faces, defaultMaterial)
}

// parseFaceIndices handles "f" lines with 3 or 4 vertex references
// of the form v, v/vt, v/vt/vn or v//vn, taking only the position
// index and converting from 1-based to 0-based. A face with exactly 4
// vertices is kept as a quad (primitive.NewMesh fans it); 3 stays a
// triangle; anything else is rejected (OBJ fan-triangulation beyond a
// quad is not supported).
func parseFaceIndices(rest string, numVertices int) ([]int, error) {
	tokens := strings.Fields(rest)
	if len(tokens) != 3 && len(tokens) != 4 {
		return nil, fmt.Errorf("face must have 3 or 4 vertices, got %d", len(tokens))
	}

	indices := make([]int, len(tokens))
	for i, tok := range tokens {
		posStr := strings.SplitN(tok, "/", 2)[0]
		idx, err := strconv.Atoi(posStr)
		if err != nil {
			return nil, fmt.Errorf("parsing face vertex %q: %w", tok, err)
		}
		idx-- // OBJ indices are 1-based
		if idx < 0 || idx >= numVertices {
			return nil, fmt.Errorf("face vertex index %d out of bounds (have %d vertices)", idx, numVertices)
		}
		indices[i] = idx
	}
	return indices, nil
}

func parseTriplet(rest string) (vecmath.Vec3, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return vecmath.Vec3{}, fmt.Errorf("expected 3 components, got %q", rest)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	return vecmath.New(x, y, z), nil
}

// loadMTL parses a .mtl material library into a name-keyed map.
// Supplements the original Kd/Ns-only parse with Ke (emissive) and Ni
// (index of refraction), producing an Emissive or Dielectric material
// when those properties dominate, else a Lambertian from Kd.
func loadMTL(path string) (map[string]core.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtllib %s: %w", path, err)
	}
	defer f.Close()

	materials := map[string]core.Material{}

	var name string
	kd := vecmath.New(0.5, 0.5, 0.5)
	ke := vecmath.Vec3{}
	ni := 0.0

	flush := func() {
		if name == "" {
			return
		}
		switch {
		case ke.X > 0 || ke.Y > 0 || ke.Z > 0:
			materials[name] = material.NewEmissive(ke, 1.0)
		case ni > 1.0:
			materials[name] = material.NewDielectric(ni)
		default:
			materials[name] = material.NewLambertianColor(kd)
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "newmtl "):
			flush()
			name = strings.TrimSpace(line[len("newmtl "):])
			kd = vecmath.New(0.5, 0.5, 0.5)
			ke = vecmath.Vec3{}
			ni = 0.0

		case strings.HasPrefix(line, "Kd "):
			v, err := parseTriplet(line[3:])
			if err != nil {
				return nil, fmt.Errorf("parsing Kd: %w", err)
			}
			kd = v

		case strings.HasPrefix(line, "Ke "):
			v, err := parseTriplet(line[3:])
			if err != nil {
				return nil, fmt.Errorf("parsing Ke: %w", err)
			}
			ke = v

		case strings.HasPrefix(line, "Ni "):
			v, err := strconv.ParseFloat(strings.TrimSpace(line[3:]), 64)
			if err != nil {
				return nil, fmt.Errorf("parsing Ni: %w", err)
			}
			ni = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning mtllib %s: %w", path, err)
	}
	flush()

	return materials, nil
}
