package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-monte/pathtracer/internal/camera"
	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/material"
	"github.com/go-monte/pathtracer/internal/primitive"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// vec3YAML is the [x, y, z] wire representation of a vector or color.
type vec3YAML [3]float64

func (v vec3YAML) toVec3() vecmath.Vec3 {
	return vecmath.New(v[0], v[1], v[2])
}

// materialYAML describes one of the four BSDFs by tag; only the
// fields relevant to Kind are read.
type materialYAML struct {
	Kind     string   `yaml:"kind"` // lambertian | metal | dielectric | emissive
	Color    vec3YAML `yaml:"color"`
	Fuzz     float64  `yaml:"fuzz"`
	IOR      float64  `yaml:"ior"`
	Strength float64  `yaml:"strength"`
}

func (m materialYAML) build() (core.Material, error) {
	switch m.Kind {
	case "lambertian":
		return material.NewLambertianColor(m.Color.toVec3()), nil
	case "metal":
		return material.NewMetal(m.Color.toVec3(), m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(m.IOR), nil
	case "emissive":
		return material.NewEmissive(m.Color.toVec3(), m.Strength), nil
	default:
		return nil, fmt.Errorf("scene: unknown material kind %q", m.Kind)
	}
}

// primitiveYAML describes one of the three analytic primitives by tag.
type primitiveYAML struct {
	Kind     string       `yaml:"kind"` // sphere | quad | triangle
	Material materialYAML `yaml:"material"`

	// sphere
	Center vec3YAML `yaml:"center"`
	Radius float64  `yaml:"radius"`

	// quad
	Corner vec3YAML `yaml:"corner"`
	U      vec3YAML `yaml:"u"`
	V      vec3YAML `yaml:"v"`

	// triangle
	V0 vec3YAML `yaml:"v0"`
	V1 vec3YAML `yaml:"v1"`
	V2 vec3YAML `yaml:"v2"`
}

func (p primitiveYAML) build() (core.Hittable, error) {
	mat, err := p.Material.build()
	if err != nil {
		return nil, err
	}

	switch p.Kind {
	case "sphere":
		return primitive.NewSphere(p.Center.toVec3(), p.Radius, mat), nil
	case "quad":
		return primitive.NewQuad(p.Corner.toVec3(), p.U.toVec3(), p.V.toVec3(), mat), nil
	case "triangle":
		return primitive.NewTriangle(p.V0.toVec3(), p.V1.toVec3(), p.V2.toVec3(), mat), nil
	default:
		return nil, fmt.Errorf("scene: unknown primitive kind %q", p.Kind)
	}
}

// cameraYAML mirrors camera.Config with zero values left to New's
// defaults.
type cameraYAML struct {
	AspectRatio     float64  `yaml:"aspect_ratio"`
	ImageWidth      int      `yaml:"image_width"`
	SamplesPerPixel int      `yaml:"samples_per_pixel"`
	MaxBounces      int      `yaml:"max_bounces"`
	FOVDegrees      float64  `yaml:"fov_degrees"`
	LookFrom        vec3YAML `yaml:"look_from"`
	LookAt          vec3YAML `yaml:"look_at"`
	VUp             vec3YAML `yaml:"vup"`
}

// documentYAML is the top-level shape of a scene description file.
type documentYAML struct {
	Camera     cameraYAML      `yaml:"camera"`
	Primitives []primitiveYAML `yaml:"primitives"`
}

// LoadYAML parses a scene description file into a Scene. The camera's
// vup defaults to (0,1,0) when omitted, matching camera.New's default.
func LoadYAML(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading %s: %w", path, err)
	}

	var doc documentYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parsing %s: %w", path, err)
	}

	shapes := make([]core.Hittable, 0, len(doc.Primitives))
	for i, p := range doc.Primitives {
		shape, err := p.build()
		if err != nil {
			return nil, fmt.Errorf("scene: primitive %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}

	return &Scene{
		Shapes: shapes,
		CameraConfig: camera.Config{
			AspectRatio:     doc.Camera.AspectRatio,
			ImageWidth:      doc.Camera.ImageWidth,
			SamplesPerPixel: doc.Camera.SamplesPerPixel,
			MaxBounces:      doc.Camera.MaxBounces,
			FOVDegrees:      doc.Camera.FOVDegrees,
			LookFrom:        doc.Camera.LookFrom.toVec3(),
			LookAt:          doc.Camera.LookAt.toVec3(),
			VUp:             doc.Camera.VUp.toVec3(),
		},
	}, nil
}
