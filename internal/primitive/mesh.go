package primitive

import (
	"fmt"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Face is a single polygonal face referencing vertices by index into
// the mesh's vertex array. Indices must have length 3 (triangle) or 4
// (quad, fanned into two triangles on load). Material is optional; a
// nil Material defers to the mesh's default.
type Face struct {
	Indices  []int
	Material core.Material
}

// Mesh collects triangles — loaded from triangle and quad faces — under
// their own BVH, sharing an optional default material with any triangle
// that doesn't carry its own.
type Mesh struct {
	triangles []*Triangle
	bvh       *core.BVHNode
	bbox      core.AABB
	Default   core.Material
}

// NewMesh builds a mesh from a flat vertex array and a list of faces.
// Quad faces fan into two triangles sharing the face's material.
func NewMesh(vertices []vecmath.Vec3, faces []Face, defaultMaterial core.Material) (*Mesh, error) {
	var triangles []*Triangle

	for fi, face := range faces {
		for _, idx := range face.Indices {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("mesh: face %d references out-of-bounds vertex index %d", fi, idx)
			}
		}

		switch len(face.Indices) {
		case 3:
			v0, v1, v2 := vertices[face.Indices[0]], vertices[face.Indices[1]], vertices[face.Indices[2]]
			triangles = append(triangles, NewTriangle(v0, v1, v2, face.Material))
		case 4:
			v0 := vertices[face.Indices[0]]
			v1 := vertices[face.Indices[1]]
			v2 := vertices[face.Indices[2]]
			v3 := vertices[face.Indices[3]]
			triangles = append(triangles, NewTriangle(v0, v1, v2, face.Material))
			triangles = append(triangles, NewTriangle(v0, v2, v3, face.Material))
		default:
			return nil, fmt.Errorf("mesh: face %d has %d vertices, want 3 or 4", fi, len(face.Indices))
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh: no triangles to build")
	}

	shapes := make([]core.Hittable, len(triangles))
	bbox := triangles[0].BoundingBox()
	for i, t := range triangles {
		shapes[i] = t
		if i > 0 {
			bbox = bbox.Union(t.BoundingBox())
		}
	}

	return &Mesh{
		triangles: triangles,
		bvh:       core.NewBVH(shapes),
		bbox:      bbox,
		Default:   defaultMaterial,
	}, nil
}

// Hit implements core.Hittable, delegating to the inner BVH and
// substituting the mesh's default material for any triangle that
// didn't carry its own.
func (m *Mesh) Hit(ray vecmath.Ray, rayT vecmath.Interval) (core.HitRecord, bool) {
	rec, ok := m.bvh.Hit(ray, rayT)
	if !ok {
		return core.HitRecord{}, false
	}
	if rec.Material == nil {
		rec.Material = m.Default
	}
	return rec, true
}

// BoundingBox implements core.Hittable.
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh (after
// quad-fanning).
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}
