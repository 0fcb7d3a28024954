// Package renderstats collects per-frame timing and sample-count
// statistics and, optionally, publishes them as Prometheus gauges.
package renderstats

import (
	"sync"
	"time"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// FrameStats summarizes one completed render.
type FrameStats struct {
	Width, Height   int
	TotalPixels     int
	SamplesPerPixel int
	Elapsed         time.Duration
	ScanlinesDone   int
}

// ScanlinesPerSecond returns the throughput of the completed frame, or
// zero if it hasn't finished yet.
func (s FrameStats) ScanlinesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.ScanlinesDone) / s.Elapsed.Seconds()
}

// Collector implements camera.Sink, timing the frame from BeginFrame
// to EndFrame and counting completed scanlines. It never requests
// cancellation itself; PollCancel always reports false.
type Collector struct {
	mu        sync.Mutex
	start     time.Time
	width     int
	height    int
	samples   int
	scanlines int
	last      FrameStats

	publisher Publisher
}

// Publisher receives stats updates as they happen, e.g. to expose
// Prometheus gauges. A nil Publisher is valid and simply means no one
// is listening.
type Publisher interface {
	ObserveScanline(y int, elapsed time.Duration)
	ObserveFrame(stats FrameStats)
}

// NewCollector creates a Collector. publisher may be nil.
func NewCollector(samplesPerPixel int, publisher Publisher) *Collector {
	return &Collector{samples: samplesPerPixel, publisher: publisher}
}

// BeginFrame implements camera.Sink.
func (c *Collector) BeginFrame(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = time.Now()
	c.width, c.height = width, height
	c.scanlines = 0
}

// WriteScanline implements camera.Sink.
func (c *Collector) WriteScanline(y int, pixels []vecmath.Vec3) {
	c.mu.Lock()
	c.scanlines++
	elapsed := time.Since(c.start)
	c.mu.Unlock()

	if c.publisher != nil {
		c.publisher.ObserveScanline(y, elapsed)
	}
}

// EndFrame implements camera.Sink.
func (c *Collector) EndFrame() {
	c.mu.Lock()
	stats := FrameStats{
		Width:           c.width,
		Height:          c.height,
		TotalPixels:     c.width * c.height,
		SamplesPerPixel: c.samples,
		Elapsed:         time.Since(c.start),
		ScanlinesDone:   c.scanlines,
	}
	c.last = stats
	c.mu.Unlock()

	if c.publisher != nil {
		c.publisher.ObserveFrame(stats)
	}
}

// PollCancel implements camera.Sink. Collector never cancels a render
// on its own.
func (c *Collector) PollCancel() bool {
	return false
}

// Last returns the most recently completed frame's stats.
func (c *Collector) Last() FrameStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
