// Package runner drives terrain generation from a fixed-rate frame loop.
package runner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/holo-terrain/internal/config"
	"github.com/Faultbox/holo-terrain/internal/export"
	"github.com/Faultbox/holo-terrain/internal/logger"
	"github.com/Faultbox/holo-terrain/internal/terrain"
)

// Runner owns one terrain and the frame loop that grows it.
type Runner struct {
	cfg     *config.Config
	seed    uint64
	terrain *terrain.Terrain

	// frame is the copy a renderer would upload, refreshed after every tick.
	frame []float32
	paths export.Paths
}

// New creates a runner. A zero seed in cfg is replaced by one derived from the clock.
func New(cfg *config.Config) (*Runner, error) {
	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	t, err := terrain.New(cfg.Settings(), rand.New(rand.NewPCG(seed, seed>>32)))
	if err != nil {
		return nil, fmt.Errorf("failed to create terrain: %w", err)
	}

	logger.Info("runner initialized",
		zap.Uint64("seed", seed),
		zap.Stringer("run", t.RunID()),
		zap.Int("width", t.Heightmap().Width),
		zap.Int("height", t.Heightmap().Height),
	)

	return &Runner{cfg: cfg, seed: seed, terrain: t}, nil
}

// Seed returns the seed the terrain was generated from.
func (r *Runner) Seed() uint64 { return r.seed }

// Terrain returns the terrain being generated.
func (r *Runner) Terrain() *terrain.Terrain { return r.terrain }

// Frame returns the heightmap copy taken at the end of the last tick.
func (r *Runner) Frame() []float32 { return r.frame }

// Exported returns the files written when the run finished, if export is enabled.
func (r *Runner) Exported() export.Paths { return r.paths }

// Run ticks until the iteration budget is spent or ctx is cancelled. A finished
// terrain is exported when an export directory is configured.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Loop.TickRate)
	defer ticker.Stop()

	frameCount := 0
	statsTimer := time.Now()
	start := time.Now()

	logger.Info("starting frame loop",
		zap.Duration("tick", r.cfg.Loop.TickRate),
		zap.Int("budget", r.terrain.Budget()),
	)

	for !r.terrain.Done() {
		select {
		case <-ctx.Done():
			logger.Info("frame loop interrupted", zap.Int("iteration", r.terrain.Iteration()))
			return nil
		case <-ticker.C:
		}

		if err := r.tick(); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		frameCount++
		if time.Since(statsTimer) >= time.Second {
			logger.Debug("progress",
				zap.Int("frames", frameCount),
				zap.Int("iteration", r.terrain.Iteration()),
				zap.Int("budget", r.terrain.Budget()),
			)
			frameCount = 0
			statsTimer = time.Now()
		}
	}

	lo, hi := r.terrain.Heightmap().MinMax()
	logger.Info("terrain complete",
		zap.Stringer("run", r.terrain.RunID()),
		zap.Int("iterations", r.terrain.Iteration()),
		zap.Float32("min_height", lo),
		zap.Float32("max_height", hi),
		zap.Duration("elapsed", time.Since(start)),
	)

	return r.export()
}

// tick advances generation by the configured number of passes, then refreshes the
// frame copy.
func (r *Runner) tick() error {
	for i := 0; i < r.cfg.Loop.IterationsPerTick; i++ {
		advanced, err := r.terrain.Update()
		if err != nil {
			return err
		}
		if !advanced {
			break
		}
	}
	r.frame = r.terrain.Heightmap().Snapshot(r.frame)
	return nil
}

func (r *Runner) export() error {
	ex := r.cfg.Export
	if ex.Dir == "" {
		return nil
	}

	paths, err := export.Save(ex.Dir, ex.Name, r.terrain, r.seed, ex.HeightScale)
	if err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	r.paths = paths
	return nil
}
