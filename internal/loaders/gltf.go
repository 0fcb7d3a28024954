package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/material"
	"github.com/go-monte/pathtracer/internal/primitive"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// LoadGLTF opens a .glb or .gltf file and flattens the mesh primitives
// of every node in the document that references a mesh into a single
// primitive.Mesh, applying each node's own TRS transform to its vertex
// positions; parent node transforms are not composed. PBR
// metallic-roughness is approximated to a single Lambertian material
// per primitive, using the base color factor as albedo (a base color
// texture is not sampled); materials without a PBR block use
// defaultMaterial.
func LoadGLTF(path string, defaultMaterial core.Material) (*primitive.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: gltf open %s: %w", path, err)
	}

	matCache := make([]core.Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		matCache[i] = defaultMaterial
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			albedo := vecmath.New(float64(cf[0]), float64(cf[1]), float64(cf[2]))
			matCache[i] = material.NewLambertianColor(albedo)
		}
	}

	var vertices []vecmath.Vec3
	var faces []primitive.Face

	for ni, gn := range doc.Nodes {
		if gn.Mesh == nil {
			continue
		}
		transform := nodeTransform(gn)
		gm := doc.Meshes[*gn.Mesh]

		for pi := range gm.Primitives {
			prim := gm.Primitives[pi]
			mat := defaultMaterial
			if prim.Material != nil && *prim.Material < len(matCache) {
				mat = matCache[*prim.Material]
			}

			base := len(vertices)
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				return nil, fmt.Errorf("loaders: %s: node %d mesh primitive %d has no POSITION attribute", path, ni, pi)
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("loaders: %s: reading positions: %w", path, err)
			}
			for _, p := range positions {
				vertices = append(vertices, transform.apply(vecmath.New(float64(p[0]), float64(p[1]), float64(p[2]))))
			}

			if prim.Indices == nil {
				return nil, fmt.Errorf("loaders: %s: node %d mesh primitive %d is non-indexed, which is unsupported", path, ni, pi)
			}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("loaders: %s: reading indices: %w", path, err)
			}
			if len(indices)%3 != 0 {
				return nil, fmt.Errorf("loaders: %s: index count %d is not a multiple of 3", path, len(indices))
			}
			for i := 0; i+2 < len(indices); i += 3 {
				faces = append(faces, primitive.Face{
					Indices:  []int{base + int(indices[i]), base + int(indices[i+1]), base + int(indices[i+2])},
					Material: mat,
				})
			}
		}
	}

	if len(faces) == 0 {
		return nil, fmt.Errorf("loaders: %s: no triangles found", path)
	}

	return primitive.NewMesh(vertices, faces, defaultMaterial)
}

// affine is a translate+scale+rotate transform flattened to a 3x3
// rotation-scale matrix plus a translation, applied to vertex
// positions at load time since the kernel's mesh has no node
// hierarchy of its own.
type affine struct {
	m [3][3]float64
	t vecmath.Vec3
}

func (a affine) apply(v vecmath.Vec3) vecmath.Vec3 {
	return vecmath.New(
		a.m[0][0]*v.X+a.m[0][1]*v.Y+a.m[0][2]*v.Z+a.t.X,
		a.m[1][0]*v.X+a.m[1][1]*v.Y+a.m[1][2]*v.Z+a.t.Y,
		a.m[2][0]*v.X+a.m[2][1]*v.Y+a.m[2][2]*v.Z+a.t.Z,
	)
}

// nodeTransform builds an affine transform from a glTF node's TRS
// fields (matrix nodes are not supported).
func nodeTransform(gn *gltf.Node) affine {
	t := gn.TranslationOrDefault()
	s := gn.ScaleOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]

	rot := quatToMat3(float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3]))
	var m [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			scale := []float64{float64(s[0]), float64(s[1]), float64(s[2])}[col]
			m[row][col] = rot[row][col] * scale
		}
	}

	return affine{
		m: m,
		t: vecmath.New(float64(t[0]), float64(t[1]), float64(t[2])),
	}
}

func quatToMat3(x, y, z, w float64) [3][3]float64 {
	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}
