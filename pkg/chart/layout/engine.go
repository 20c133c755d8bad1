// Package layout is the data-to-geometry engine for waterfall and
// stacked bar charts.
//
// One layout pass is a pure function: validated categories plus a config
// go in, an immutable [Geometry] snapshot comes out. The pass runs five
// deterministic stages:
//
//  1. Aggregate categories into cumulative-total records.
//  2. Build a provisional y scale with the base margins.
//  3. Fit margins so no value label can clip outside the frame.
//  4. Rebuild both scales with the fitted margins.
//  5. Emit per-bar rects, label positions, connectors, and axis ticks.
//
// Scale construction deliberately runs twice (stages 2 and 4): the
// provisional scale only measures label positions, the fitted scale
// produces geometry. There is no shared state between passes, so
// concurrent layouts of different inputs are safe.
package layout

import (
	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/aggregate"
	"github.com/matzehuels/cascade/pkg/chart/scale"
	"github.com/matzehuels/cascade/pkg/errors"
)

// Engine runs layout passes for one validated configuration.
type Engine struct {
	cfg chart.Config
}

// New validates cfg and returns an engine for it. The config is copied;
// later mutations by the caller don't affect the engine.
func New(cfg chart.Config) (*Engine, error) {
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's validated configuration.
func (e *Engine) Config() chart.Config { return e.cfg }

// Layout runs one full pass over categories and returns the geometry
// snapshot. Validation failures and layout failures both abort the
// whole pass; no partial geometry is ever returned.
func (e *Engine) Layout(categories []chart.Category) (*Geometry, error) {
	if err := chart.ValidateCategories(categories); err != nil {
		return nil, err
	}

	records := aggregate.Build(categories, aggregate.Options{
		AppendTotal: e.cfg.ShowTotal,
		TotalLabel:  e.cfg.TotalLabel,
		TotalColor:  e.cfg.TotalColor,
	})

	m, err := FitMargins(records, e.cfg)
	if err != nil {
		return nil, err
	}

	xs, ys, err := e.finalScales(records, m)
	if err != nil {
		return nil, err
	}

	return buildGeometry(records, xs, ys, m, e.cfg)
}

// finalScales builds the scales used for geometry, with the fitted
// margins applied.
func (e *Engine) finalScales(records []aggregate.Record, m chart.Margin) (scale.XScale, *scale.Linear, error) {
	xs, err := scale.NewX(aggregate.Labels(records), e.cfg.ScaleType, m.Left, e.cfg.Width-m.Right, *e.cfg.BarPadding)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "x scale")
	}

	min, max := aggregate.Extent(records)
	ys, err := scale.NewY(min, max, e.cfg.Height-m.Bottom, m.Top)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "y scale")
	}

	return xs, ys, nil
}

// Build is a convenience wrapper running a single pass with cfg.
func Build(categories []chart.Category, cfg chart.Config) (*Geometry, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.Layout(categories)
}
