package transform

import (
	"fmt"
	"log/slog"

	"picdither/palette"
	"picdither/raster"
)

// Mode selects one transform. The set of modes is closed: only the types in
// this package implement it.
type Mode interface {
	Name() string
	apply(logger *slog.Logger, r *raster.Raster) error
}

var (
	_ Mode = Threshold{}
	_ Mode = Palette{}
	_ Mode = Dithering{}
)

type Threshold struct{}

func (Threshold) Name() string { return "threshold" }

func (Threshold) apply(_ *slog.Logger, r *raster.Raster) error {
	Binarize(r)
	return nil
}

// Palette quantizes to the first Colors entries of Registry.
type Palette struct {
	Colors   int
	Registry palette.Registry
}

func (Palette) Name() string { return "palette" }

func (m Palette) apply(logger *slog.Logger, r *raster.Raster) error {
	active, err := m.Registry.Active(m.Colors)
	if err != nil {
		return err
	}

	logger.Info("applying palette", "colors", len(active), "requested", m.Colors)
	return Quantize(r, active)
}

type Dithering struct {
	Overflow Overflow
}

func (Dithering) Name() string { return "dithering" }

func (m Dithering) apply(logger *slog.Logger, r *raster.Raster) error {
	logger.Info("dithering", "overflow", m.Overflow)
	FloydSteinberg(r, m.Overflow)
	return nil
}

// Apply runs mode once over the whole raster.
func Apply(logger *slog.Logger, r *raster.Raster, mode Mode) error {
	if mode == nil {
		return fmt.Errorf("no transform mode selected")
	}

	logger = logger.With("mode", mode.Name())
	logger.Debug("transforming", "width", r.Width(), "height", r.Height())

	if err := mode.apply(logger, r); err != nil {
		return fmt.Errorf("could not apply %s: %w", mode.Name(), err)
	}
	return nil
}
