package terrain

import "errors"

var (
	// ErrInvalidDimensions is returned for heightmaps without interior samples.
	ErrInvalidDimensions = errors.New("terrain: invalid heightmap dimensions")
	// ErrInvalidDepth is returned for partition tree depths outside [1, MaxDepth].
	ErrInvalidDepth = errors.New("terrain: invalid partition depth")
	// ErrInvalidFilter is returned for filter factors outside [0, 1].
	ErrInvalidFilter = errors.New("terrain: invalid filter factor")
	// ErrInvalidSettings is returned when generation settings fail validation.
	ErrInvalidSettings = errors.New("terrain: invalid settings")
)
