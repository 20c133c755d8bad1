package layout

import (
	"math"

	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/aggregate"
	"github.com/matzehuels/cascade/pkg/chart/scale"
	"github.com/matzehuels/cascade/pkg/errors"
)

// buildGeometry turns records plus final scales into the geometry
// snapshot. Scales and margins must come from the same fitting pass;
// missing or inconsistent inputs fail rather than producing partial
// geometry.
func buildGeometry(records []aggregate.Record, xs scale.XScale, ys *scale.Linear, m chart.Margin, cfg chart.Config) (*Geometry, error) {
	if xs == nil || ys == nil {
		return nil, errors.New(errors.ErrCodeLayoutFailed, "geometry requires constructed scales")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeLayoutFailed, "no records to lay out")
	}

	format := cfg.Format
	if format == nil {
		format = chart.FormatNumber
	}

	g := &Geometry{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Margin:  m,
		XKind:   xs.Kind(),
		Stacked: cfg.Stacked,
		Bars:    make([]Bar, 0, len(records)),
	}

	for i, r := range records {
		x, w := xs.Slot(i)

		bar := Bar{
			Label:          r.Label,
			Ordinal:        r.Ordinal,
			SyntheticTotal: r.SyntheticTotal,
			LabelText:      format(r.Cumulative),
			Value:          r.Cumulative,
		}

		if cfg.Stacked {
			bar.Rects = stackedRects(r, x, w, ys)
		} else {
			bar.Rects = []Rect{waterfallRect(r, x, w, ys, cfg)}
		}

		bar.LabelPos = Point{X: x + w/2, Y: labelY(ys, r.Cumulative)}
		g.Bars = append(g.Bars, bar)
	}

	g.Connectors = buildConnectors(records, xs, ys)
	g.Ticks = buildTicks(ys, format)

	return g, nil
}

// stackedRects draws one rect per segment, stacking magnitudes upward
// from the record's starting baseline (zero for the synthetic total).
func stackedRects(r aggregate.Record, x, w float64, ys *scale.Linear) []Rect {
	start := r.PrevCumulative
	if r.SyntheticTotal {
		start = 0
	}

	baseline := ys.Map(start)
	rects := make([]Rect, 0, len(r.Segments))
	for _, s := range r.Segments {
		h := math.Abs(ys.Map(0) - ys.Map(math.Abs(s.Value)))
		rects = append(rects, Rect{
			X:      x,
			Y:      baseline - h,
			Width:  w,
			Height: h,
			Color:  s.Color,
		})
		baseline -= h
	}
	return rects
}

// waterfallRect draws the single floating rect spanning from the
// previous running total to the new one.
func waterfallRect(r aggregate.Record, x, w float64, ys *scale.Linear, cfg chart.Config) Rect {
	top := math.Max(r.PrevCumulative, r.Cumulative)
	color := cfg.TotalColor
	if !r.SyntheticTotal {
		color = chart.Category{Stacks: r.Segments}.DominantColor()
	}
	return Rect{
		X:      x,
		Y:      ys.Map(top),
		Width:  w,
		Height: math.Abs(ys.Map(r.PrevCumulative) - ys.Map(r.Cumulative)),
		Color:  color,
	}
}

// buildConnectors links each adjacent record pair. The line leaves the
// right edge of the current bar at its cumulative total; it lands on the
// next bar's left edge at the same height, except for the synthetic
// total bar, which it meets at that bar's own cumulative position.
func buildConnectors(records []aggregate.Record, xs scale.XScale, ys *scale.Linear) []Connector {
	if len(records) < 2 {
		return nil
	}

	connectors := make([]Connector, 0, len(records)-1)
	for i := 0; i < len(records)-1; i++ {
		cur, next := records[i], records[i+1]
		x1, w1 := xs.Slot(i)
		x2, _ := xs.Slot(i + 1)

		y2 := ys.Map(cur.Cumulative)
		if next.SyntheticTotal {
			y2 = ys.Map(next.Cumulative)
		}

		connectors = append(connectors, Connector{
			X1: x1 + w1,
			Y1: ys.Map(cur.Cumulative),
			X2: x2,
			Y2: y2,
		})
	}
	return connectors
}

// buildTicks pre-positions value-axis ticks for the consuming renderer.
func buildTicks(ys *scale.Linear, format chart.Formatter) []Tick {
	values := ys.Ticks(6)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Y: ys.Map(v), Label: format(v)}
	}
	return ticks
}
