package renderstats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusPublisher implements Publisher, exposing the most recent
// scanline latency and completed-frame stats as gauges under the
// given registerer.
type PrometheusPublisher struct {
	scanlineLatency prometheus.Gauge
	scanlinesDone   prometheus.Gauge
	frameElapsed    prometheus.Gauge
	frameThroughput prometheus.Gauge
}

// NewPrometheusPublisher registers its gauges with reg and returns a
// ready-to-use Publisher.
func NewPrometheusPublisher(reg prometheus.Registerer) *PrometheusPublisher {
	p := &PrometheusPublisher{
		scanlineLatency: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathtracer_scanline_elapsed_seconds",
			Help: "Seconds elapsed since the current frame started, at the most recently completed scanline.",
		}),
		scanlinesDone: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathtracer_scanlines_done",
			Help: "Number of scanlines completed in the current frame.",
		}),
		frameElapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathtracer_frame_elapsed_seconds",
			Help: "Wall-clock duration of the most recently completed frame.",
		}),
		frameThroughput: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathtracer_frame_scanlines_per_second",
			Help: "Scanline throughput of the most recently completed frame.",
		}),
	}

	reg.MustRegister(p.scanlineLatency, p.scanlinesDone, p.frameElapsed, p.frameThroughput)
	return p
}

// ObserveScanline implements Publisher.
func (p *PrometheusPublisher) ObserveScanline(y int, elapsed time.Duration) {
	p.scanlineLatency.Set(elapsed.Seconds())
	p.scanlinesDone.Set(float64(y + 1))
}

// ObserveFrame implements Publisher.
func (p *PrometheusPublisher) ObserveFrame(stats FrameStats) {
	p.frameElapsed.Set(stats.Elapsed.Seconds())
	p.frameThroughput.Set(stats.ScanlinesPerSecond())
}
