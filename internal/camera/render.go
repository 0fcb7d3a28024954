package camera

import (
	"context"
	"image"
	"image/color"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Sink receives progress callbacks from the render loop. A nil Sink
// means the core renders headless. Implementations (terminal preview,
// render-stats collector) must not block for long, since WriteScanline
// runs on the single coordinator goroutine between scanlines and the
// next scanline waits for it.
type Sink interface {
	BeginFrame(width, height int)
	WriteScanline(y int, pixels []vecmath.Vec3)
	EndFrame()
	// PollCancel is checked at scanline boundaries only; in-flight
	// samples for the current scanline always complete.
	PollCancel() bool
}

// RenderOptions configures a single render pass.
type RenderOptions struct {
	Camera     *Camera
	World      core.Hittable
	NumWorkers int // 0 = runtime.NumCPU()
	Logger     core.Logger
	Sink       Sink
}

// Render runs the full data-parallel pixel loop: scanlines are
// processed sequentially for deterministic progress reporting, and the
// pixels within a scanline are processed in parallel. Each worker uses
// its own PRNG; the render kernel never touches a shared source on the
// hot path. Returns the accumulated framebuffer; on cancellation the
// partially rendered image is still returned.
func Render(ctx context.Context, opts RenderOptions) *image.RGBA {
	cam := opts.Camera
	world := opts.World
	logger := opts.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, cam.ImageWidth, cam.ImageHeight))

	if opts.Sink != nil {
		opts.Sink.BeginFrame(cam.ImageWidth, cam.ImageHeight)
	}

	scanline := make([]vecmath.Vec3, cam.ImageWidth)

	// seeds is only drawn from on this coordinator goroutine; each pixel
	// task gets its own PRNG seeded from it.
	seeds := rand.New(rand.NewSource(rand.Int63()))

	for j := 0; j < cam.ImageHeight; j++ {
		if opts.Sink != nil && opts.Sink.PollCancel() {
			logger.Printf("render canceled at scanline %d/%d", j, cam.ImageHeight)
			break
		}

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(numWorkers)

		for i := 0; i < cam.ImageWidth; i++ {
			i := i
			seed := seeds.Int63()
			g.Go(func() error {
				rng := rand.New(rand.NewSource(seed))
				scanline[i] = samplePixel(cam, world, i, j, rng)
				return nil
			})
		}
		// samplePixel never returns an error, so Wait cannot fail; the
		// render kernel itself is infallible.
		_ = g.Wait()

		writeScanline(img, j, scanline)
		if opts.Sink != nil {
			opts.Sink.WriteScanline(j, scanline)
		}
		logger.Printf("scanline %d/%d", j+1, cam.ImageHeight)
	}

	if opts.Sink != nil {
		opts.Sink.EndFrame()
	}
	return img
}

// samplePixel accumulates cam.SamplesPerPixel fresh camera rays for
// pixel (i, j), averages, and applies gamma-2 correction and [0,1)
// clamping per the output pixel-encoding contract.
func samplePixel(cam *Camera, world core.Hittable, i, j int, rng *rand.Rand) vecmath.Vec3 {
	accum := vecmath.Vec3{}
	for s := 0; s < cam.SamplesPerPixel; s++ {
		r := cam.GetRay(i, j, rng)
		accum = accum.Add(RayColor(r, cam.MaxBounces, world, rng))
	}
	avg := accum.Div(float64(cam.SamplesPerPixel))
	return avg.Sqrt().Clamp(0, 0.999999)
}

// writeScanline converts a row of linear, gamma-corrected, clamped
// colors to 8-bit RGB and writes them into img's disjoint row range.
// Each worker above wrote a distinct index of pixels, and this runs
// single-threaded on the coordinator, so no synchronization is needed.
func writeScanline(img *image.RGBA, y int, pixels []vecmath.Vec3) {
	for x, c := range pixels {
		img.SetRGBA(x, y, toRGBA(c))
	}
}

// toRGBA converts an already gamma-corrected, [0,1)-clamped linear
// color to 8-bit RGB, clamping before the ×256 scale so values at or
// above 1.0 cannot wrap.
func toRGBA(c vecmath.Vec3) color.RGBA {
	scale := func(x float64) uint8 {
		if x < 0 {
			x = 0
		}
		if x >= 1 {
			x = 0.999999
		}
		return uint8(256 * x)
	}
	return color.RGBA{R: scale(c.X), G: scale(c.Y), B: scale(c.Z), A: 255}
}
