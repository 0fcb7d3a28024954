package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/go-monte/pathtracer/internal/camera"
	"github.com/go-monte/pathtracer/internal/config"
	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/loaders"
	"github.com/go-monte/pathtracer/internal/material"
	"github.com/go-monte/pathtracer/internal/output"
	"github.com/go-monte/pathtracer/internal/preview"
	"github.com/go-monte/pathtracer/internal/primitive"
	"github.com/go-monte/pathtracer/internal/renderstats"
	"github.com/go-monte/pathtracer/internal/scene"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

func runRender(cmd *cobra.Command, cfg config.RenderConfig) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sc, err := loadScene(cfg)
	if err != nil {
		return fmt.Errorf("loading scene %q: %w", cfg.Scene, err)
	}

	sc.CameraConfig.ImageWidth = cfg.ImageWidth
	sc.CameraConfig.AspectRatio = cfg.AspectRatio
	sc.CameraConfig.SamplesPerPixel = cfg.SamplesPerPixel
	sc.CameraConfig.MaxBounces = cfg.MaxBounces
	if cfg.FOVDegrees > 0 {
		sc.CameraConfig.FOVDegrees = cfg.FOVDegrees
	}

	cam, err := camera.New(sc.CameraConfig)
	if err != nil {
		return fmt.Errorf("building camera: %w", err)
	}

	_, bvh := sc.Build()

	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var metricsPublisher renderstats.Publisher
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metricsPublisher = renderstats.NewPrometheusPublisher(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go server.ListenAndServe()
		fmt.Fprintf(cmd.OutOrStdout(), "serving metrics on %s/metrics\n", cfg.MetricsAddr)
	}
	stats := renderstats.NewCollector(cfg.SamplesPerPixel, metricsPublisher)

	sinks := []camera.Sink{stats}
	var term *preview.TerminalSink
	if cfg.Preview {
		term, err = preview.NewTerminalSink()
		if err != nil {
			return fmt.Errorf("starting terminal preview: %w", err)
		}
		defer term.Close()
		sinks = append(sinks, term)
	}

	logger := core.NewDefaultLogger()
	start := time.Now()
	img := camera.Render(ctx, camera.RenderOptions{
		Camera:     cam,
		World:      bvh,
		NumWorkers: numWorkers,
		Logger:     logger,
		Sink:       fanOutSink(sinks),
	})
	elapsed := time.Since(start)

	if err := output.SaveAs(img, cfg.OutputPath); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.OutputPath, err)
	}

	last := stats.Last()
	fmt.Fprintf(cmd.OutOrStdout(), "rendered %dx%d in %v (%.1f scanlines/sec), saved to %s\n",
		last.Width, last.Height, elapsed, last.ScanlinesPerSecond(), cfg.OutputPath)
	return nil
}

// loadScene dispatches on cfg.Scene: a known built-in name, or a file
// path whose extension selects the OBJ, glTF or YAML loader.
func loadScene(cfg config.RenderConfig) (*scene.Scene, error) {
	switch cfg.Scene {
	case "two-spheres", "":
		return scene.TwoSpheres(), nil
	case "random-spheres":
		return scene.RandomSpheres(rand.New(rand.NewSource(42)), 11), nil
	case "cornell-box":
		return scene.CornellBox(), nil
	}

	ext := strings.ToLower(filepath.Ext(cfg.Scene))
	switch ext {
	case ".yaml", ".yml":
		return scene.LoadYAML(cfg.Scene)
	case ".obj":
		def := material.NewLambertianColor(vecmath.New(0.6, 0.6, 0.6))
		objMesh, err := loaders.LoadOBJ(cfg.Scene, def)
		if err != nil {
			return nil, err
		}
		mesh, err := objMesh.Build(def)
		if err != nil {
			return nil, err
		}
		return meshScene(mesh), nil
	case ".gltf", ".glb":
		def := material.NewLambertianColor(vecmath.New(0.6, 0.6, 0.6))
		mesh, err := loaders.LoadGLTF(cfg.Scene, def)
		if err != nil {
			return nil, err
		}
		return meshScene(mesh), nil
	default:
		return nil, fmt.Errorf("unrecognized scene %q (want a built-in name or a .yaml/.obj/.gltf/.glb file)", cfg.Scene)
	}
}

// meshScene wraps a loaded mesh in a Scene, framing a camera around
// its bounding box since OBJ/glTF files carry no camera of their own.
func meshScene(mesh *primitive.Mesh) *scene.Scene {
	bbox := mesh.BoundingBox()
	center := bbox.Center()
	radius := bbox.Max().Sub(center).Length()
	if radius == 0 {
		radius = 1
	}

	lookFrom := center.Add(vecmath.New(radius*1.5, radius*1.2, radius*2.5))

	return &scene.Scene{
		Shapes: []core.Hittable{mesh},
		CameraConfig: camera.Config{
			LookFrom: lookFrom,
			LookAt:   center,
			VUp:      vecmath.New(0, 1, 0),
		},
	}
}

func fanOutSink(sinks []camera.Sink) camera.Sink {
	return multiSink(sinks)
}

type multiSink []camera.Sink

func (f multiSink) BeginFrame(width, height int) {
	for _, s := range f {
		s.BeginFrame(width, height)
	}
}

func (f multiSink) WriteScanline(y int, pixels []vecmath.Vec3) {
	for _, s := range f {
		s.WriteScanline(y, pixels)
	}
}

func (f multiSink) EndFrame() {
	for _, s := range f {
		s.EndFrame()
	}
}

func (f multiSink) PollCancel() bool {
	for _, s := range f {
		if s.PollCancel() {
			return true
		}
	}
	return false
}
