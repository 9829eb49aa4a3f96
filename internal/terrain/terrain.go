package terrain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/holo-terrain/internal/logger"
)

// Settings controls heightmap size and the generation schedule.
type Settings struct {
	WidthCm         int     // map width in centimetres
	HeightCm        int     // map depth in centimetres
	Resolution      int     // samples per centimetre
	Depth           int     // partition tree depth per pass
	MaxAmplitude    float32 // root fault amplitude on the first pass
	MinAmplitude    float32 // root fault amplitude on the last pass
	FilterFactor    float32 // FIR filter weight of the previous sample
	IterationBudget int     // passes applied before generation freezes
}

// DefaultSettings returns a 30x30 cm map at two samples per centimetre.
func DefaultSettings() Settings {
	return Settings{
		WidthCm:         30,
		HeightCm:        30,
		Resolution:      2,
		Depth:           5,
		MaxAmplitude:    1.0,
		MinAmplitude:    0.1,
		FilterFactor:    0.3,
		IterationBudget: 500,
	}
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	switch {
	case s.WidthCm <= 0 || s.HeightCm <= 0 || s.Resolution <= 0:
		return fmt.Errorf("%w: size %dx%d cm at %d/cm", ErrInvalidSettings, s.WidthCm, s.HeightCm, s.Resolution)
	case s.Depth < 1 || s.Depth > MaxDepth:
		return fmt.Errorf("%w: depth %d (want 1..%d)", ErrInvalidSettings, s.Depth, MaxDepth)
	case s.MaxAmplitude < 0 || s.MinAmplitude < 0 || isNaN(s.MaxAmplitude) || isNaN(s.MinAmplitude):
		return fmt.Errorf("%w: amplitude %v..%v", ErrInvalidSettings, s.MaxAmplitude, s.MinAmplitude)
	case isNaN(s.FilterFactor) || s.FilterFactor < 0 || s.FilterFactor > 1:
		return fmt.Errorf("%w: filter factor %v (want 0..1)", ErrInvalidSettings, s.FilterFactor)
	case s.IterationBudget < 1:
		return fmt.Errorf("%w: iteration budget %d", ErrInvalidSettings, s.IterationBudget)
	}
	return nil
}

// Terrain owns a heightmap and advances its generation one bounded pass per Update,
// so an expensive build is spread across frames.
//
// Terrain is not safe for concurrent use. The heightmap is consistent whenever Update
// returns; readers on other goroutines should copy it with Heightmap().Snapshot from the
// goroutine driving Update.
type Terrain struct {
	settings  Settings
	hm        *Heightmap
	gen       *Generator
	iteration int
	runID     uuid.UUID
}

// New allocates a flat terrain.
func New(settings Settings, rng Rand) (*Terrain, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidSettings)
	}
	hm, err := NewHeightmap(settings.WidthCm, settings.HeightCm, settings.Resolution)
	if err != nil {
		return nil, err
	}

	t := &Terrain{
		settings: settings,
		hm:       hm,
		gen:      NewGenerator(hm, rng),
		runID:    uuid.New(),
	}
	logger.Debug("terrain allocated",
		zap.Stringer("run", t.runID),
		zap.Int("width", hm.Width),
		zap.Int("height", hm.Height),
		zap.Int("budget", settings.IterationBudget))
	return t, nil
}

// Update applies one fault formation pass and one filter pass if the iteration budget
// is not exhausted. It reports whether a pass ran. A failed pass leaves the counter
// where it was.
func (t *Terrain) Update() (bool, error) {
	if t.Done() {
		return false, nil
	}

	start := time.Now()
	if err := t.gen.IterateFaultFormation(t.settings.Depth, t.amplitude()); err != nil {
		return false, fmt.Errorf("fault formation pass %d: %w", t.iteration, err)
	}
	if err := FIRFilter(t.hm, t.settings.FilterFactor); err != nil {
		return false, fmt.Errorf("filter pass %d: %w", t.iteration, err)
	}
	t.iteration++

	_, hi := t.hm.MinMax()
	instrumentIteration(start, hi)

	if t.Done() {
		logger.Info("terrain generation complete",
			zap.Stringer("run", t.runID),
			zap.Int("iterations", t.iteration),
			zap.Float32("max_height", hi))
	}
	return true, nil
}

// amplitude falls linearly from MaxAmplitude on the first pass to MinAmplitude on the last.
func (t *Terrain) amplitude() float32 {
	s := t.settings
	if s.IterationBudget <= 1 {
		return s.MaxAmplitude
	}
	frac := float32(t.iteration) / float32(s.IterationBudget-1)
	return s.MaxAmplitude + (s.MinAmplitude-s.MaxAmplitude)*frac
}

// Reset flattens the heightmap and restarts generation under a new run id.
func (t *Terrain) Reset() {
	t.hm.Reset()
	t.iteration = 0
	t.runID = uuid.New()
	instrumentReset()
	logger.Info("terrain reset", zap.Stringer("run", t.runID))
}

// Iteration returns the number of passes applied since the last reset.
func (t *Terrain) Iteration() int { return t.iteration }

// Budget returns the number of passes applied before generation freezes.
func (t *Terrain) Budget() int { return t.settings.IterationBudget }

// Done reports whether the iteration budget is exhausted.
func (t *Terrain) Done() bool { return t.iteration >= t.settings.IterationBudget }

// Heightmap returns the heightmap. Callers must not modify it.
func (t *Terrain) Heightmap() *Heightmap { return t.hm }

// Settings returns the settings the terrain was built with.
func (t *Terrain) Settings() Settings { return t.settings }

// RunID identifies the current generation run; it changes on every Reset.
func (t *Terrain) RunID() uuid.UUID { return t.runID }
