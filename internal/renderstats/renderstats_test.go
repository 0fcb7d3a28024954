package renderstats

import (
	"testing"
	"time"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

type recordingPublisher struct {
	scanlines int
	frames    []FrameStats
}

func (p *recordingPublisher) ObserveScanline(y int, elapsed time.Duration) {
	p.scanlines++
}

func (p *recordingPublisher) ObserveFrame(stats FrameStats) {
	p.frames = append(p.frames, stats)
}

func TestCollectorTracksScanlinesAndPixelCount(t *testing.T) {
	pub := &recordingPublisher{}
	c := NewCollector(16, pub)

	c.BeginFrame(4, 3)
	for y := 0; y < 3; y++ {
		c.WriteScanline(y, make([]vecmath.Vec3, 4))
	}
	c.EndFrame()

	if pub.scanlines != 3 {
		t.Errorf("scanlines observed = %d, want 3", pub.scanlines)
	}
	if len(pub.frames) != 1 {
		t.Fatalf("frames observed = %d, want 1", len(pub.frames))
	}
	last := c.Last()
	if last.TotalPixels != 12 {
		t.Errorf("TotalPixels = %d, want 12", last.TotalPixels)
	}
	if last.ScanlinesDone != 3 {
		t.Errorf("ScanlinesDone = %d, want 3", last.ScanlinesDone)
	}
}

func TestCollectorWithNilPublisher(t *testing.T) {
	c := NewCollector(16, nil)
	c.BeginFrame(2, 2)
	c.WriteScanline(0, make([]vecmath.Vec3, 2))
	c.EndFrame()
	if c.PollCancel() {
		t.Error("PollCancel() = true, want false")
	}
}

func TestFrameStatsScanlinesPerSecondZeroElapsed(t *testing.T) {
	s := FrameStats{ScanlinesDone: 10}
	if got := s.ScanlinesPerSecond(); got != 0 {
		t.Errorf("ScanlinesPerSecond() = %v, want 0", got)
	}
}
