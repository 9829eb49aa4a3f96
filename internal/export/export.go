// Package export writes finished heightmaps to disk for inspection.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
	"go.uber.org/zap"

	"github.com/Faultbox/holo-terrain/internal/logger"
	"github.com/Faultbox/holo-terrain/internal/terrain"
)

// Metadata describes an exported heightmap.
type Metadata struct {
	RunID       uuid.UUID `json:"run_id"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Resolution  int       `json:"resolution"`
	Iteration   int       `json:"iteration"`
	Budget      int       `json:"budget"`
	Seed        uint64    `json:"seed"`
	MinHeight   float32   `json:"min_height"`
	MaxHeight   float32   `json:"max_height"`
	HeightScale float32   `json:"height_scale"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMetadata summarizes the current state of t.
func NewMetadata(t *terrain.Terrain, seed uint64, heightScale float32) Metadata {
	hm := t.Heightmap()
	lo, hi := hm.MinMax()
	return Metadata{
		RunID:       t.RunID(),
		Width:       hm.Width,
		Height:      hm.Height,
		Resolution:  hm.Resolution,
		Iteration:   t.Iteration(),
		Budget:      t.Budget(),
		Seed:        seed,
		MinHeight:   lo,
		MaxHeight:   hi,
		HeightScale: heightScale,
		CreatedAt:   time.Now().UTC(),
	}
}

// WriteMetadata writes m as indented JSON.
func WriteMetadata(w io.Writer, m Metadata) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadMetadata decodes a sidecar written by WriteMetadata.
func ReadMetadata(r io.Reader) (Metadata, error) {
	var m Metadata
	err := json.NewDecoder(r).Decode(&m)
	return m, err
}

// Paths lists the files written by Save.
type Paths struct {
	TIFF     string
	OBJ      string
	Metadata string
}

// Save writes <name>.tiff, <name>.obj and <name>.json into dir, creating it if needed.
func Save(dir, name string, t *terrain.Terrain, seed uint64, heightScale float32) (Paths, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Paths{}, err
	}

	paths := Paths{
		TIFF:     filepath.Join(dir, name+".tiff"),
		OBJ:      filepath.Join(dir, name+".obj"),
		Metadata: filepath.Join(dir, name+".json"),
	}
	hm := t.Heightmap()

	if err := writeFile(paths.TIFF, func(w io.Writer) error {
		return WriteTIFF(w, hm)
	}); err != nil {
		return Paths{}, err
	}
	if err := writeFile(paths.OBJ, func(w io.Writer) error {
		return WriteOBJ(w, terrain.BuildMesh(hm, heightScale))
	}); err != nil {
		return Paths{}, err
	}
	if err := writeFile(paths.Metadata, func(w io.Writer) error {
		return WriteMetadata(w, NewMetadata(t, seed, heightScale))
	}); err != nil {
		return Paths{}, err
	}

	logger.Info("exported terrain",
		zap.Stringer("run", t.RunID()),
		zap.String("dir", dir),
		zap.String("name", name),
		zap.Int("iteration", t.Iteration()))

	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
