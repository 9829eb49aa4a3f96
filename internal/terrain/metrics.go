package terrain

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	terrainIterations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_iterations_total",
		Help: "The number of fault formation and filter passes applied.",
	})

	terrainResets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_resets_total",
		Help: "The number of times the heightmap was reset to flat.",
	})

	terrainIterationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "terrain_iteration_seconds",
		Help:    "The time to apply one generation pass.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	})

	terrainMaxHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "terrain_max_height",
		Help: "The largest height in the heightmap after the last pass.",
	})
)

func instrumentIteration(start time.Time, maxHeight float32) {
	terrainIterations.Inc()
	terrainIterationLatency.Observe(time.Since(start).Seconds())
	terrainMaxHeight.Set(float64(maxHeight))
}

func instrumentReset() {
	terrainResets.Inc()
	terrainMaxHeight.Set(0)
}
