// Package preview implements a terminal live-preview Sink, standing in
// for the SDL/GUI preview window a desktop path tracer would normally
// offer: each finished scanline is downsampled and painted into a
// tcell screen as a block of background color, and 'q' or Ctrl-C
// requests a cancellation the renderer observes at its next scanline
// boundary.
package preview

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// TerminalSink implements camera.Sink by rendering a downsampled
// preview directly into the terminal. It is safe to pass to
// camera.Render; WriteScanline is called synchronously after each
// scanline's pixels are fully computed, never concurrently.
type TerminalSink struct {
	screen tcell.Screen

	mu         sync.Mutex
	width      int
	height     int
	cancelled  bool
	frameBegun bool
}

// NewTerminalSink opens a tcell screen for the terminal preview. Call
// Close when done to restore the terminal.
func NewTerminalSink() (*TerminalSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	s := &TerminalSink{screen: screen}
	go s.pollInput()
	return s, nil
}

// Close restores the terminal to its original state.
func (s *TerminalSink) Close() {
	s.screen.Fini()
}

func (s *TerminalSink) pollInput() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				s.mu.Lock()
				s.cancelled = true
				s.mu.Unlock()
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// BeginFrame implements camera.Sink.
func (s *TerminalSink) BeginFrame(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.frameBegun = true
	s.screen.Clear()
}

// WriteScanline implements camera.Sink, painting row y of the image
// into the terminal. Image rows and columns are scaled proportionally
// to the terminal's height and width, so several image pixels can map
// to the same cell (the last one written wins).
func (s *TerminalSink) WriteScanline(y int, pixels []vecmath.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()

	termW, termH := s.screen.Size()
	if s.height == 0 || termH == 0 {
		return
	}
	row := y * termH / s.height
	if row >= termH {
		return
	}

	for x, c := range pixels {
		col := x * termW / max(len(pixels), 1)
		if col >= termW {
			break
		}
		style := tcell.StyleDefault.Background(toTcellColor(c))
		s.screen.SetContent(col, row, ' ', nil, style)
	}
	s.screen.Show()
}

// EndFrame implements camera.Sink.
func (s *TerminalSink) EndFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameBegun = false
	s.screen.Show()
}

// PollCancel implements camera.Sink.
func (s *TerminalSink) PollCancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// toTcellColor converts a pixel color to a terminal RGB color. The
// incoming color is already gamma-corrected and clamped by
// camera.Render before reaching the Sink.
func toTcellColor(c vecmath.Vec3) tcell.Color {
	scale := func(x float64) int32 {
		x = x * 255
		if x < 0 {
			x = 0
		}
		if x > 255 {
			x = 255
		}
		return int32(x)
	}
	return tcell.NewRGBColor(scale(c.X), scale(c.Y), scale(c.Z))
}
