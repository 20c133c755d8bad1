package layout

import (
	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/aggregate"
	"github.com/matzehuels/cascade/pkg/chart/scale"
	"github.com/matzehuels/cascade/pkg/errors"
)

// Label box estimate, in pixels. The same constants drive margin fitting
// and label placement so the two can never disagree.
const (
	labelHeight  = 12.0
	labelPadding = 4.0
	avgCharWidth = 7.0
	safetyBuffer = 10.0
)

// FitMargins computes the margins that keep every value label inside the
// frame. It simulates label positions against a provisional y scale
// built with the base margins, then grows the top (and, for negative
// domains, the bottom) margin by whatever the worst label overflows,
// plus a fixed safety buffer. The right margin is widened to half the
// widest formatted label. The left margin is reserved for the value axis
// and left untouched.
//
// The caller feeds the fitted margins back into scale construction: the
// provisional scale exists only to measure, the final scale is built
// afterwards. Collapsing the two passes reintroduces label clipping.
func FitMargins(records []aggregate.Record, cfg chart.Config) (chart.Margin, error) {
	if len(records) == 0 {
		return chart.Margin{}, errors.New(errors.ErrCodeLayoutFailed, "no records to fit margins for")
	}

	base := cfg.Margin
	fitted := base
	min, max := aggregate.Extent(records)

	// Degenerate extents (single record, all-zero values) have nothing
	// to simulate against; the fixed buffer alone is enough.
	if min == max {
		fitted.Top += safetyBuffer
		if min < 0 {
			fitted.Bottom += safetyBuffer
		}
		fitted.Right = fitRight(records, base.Right, cfg.Format)
		return fitted, nil
	}

	ys, err := scale.NewY(min, max, cfg.Height-base.Bottom, base.Top)
	if err != nil {
		return chart.Margin{}, errors.Wrap(errors.ErrCodeLayoutFailed, err, "provisional y scale")
	}

	minLabelY := cfg.Height
	maxLabelY := 0.0
	for _, r := range records {
		y := labelY(ys, r.Cumulative)
		if y < minLabelY {
			minLabelY = y
		}
		if y > maxLabelY {
			maxLabelY = y
		}
	}

	if extra := base.Top - minLabelY + labelHeight + labelPadding; extra > 0 {
		fitted.Top = base.Top + extra + safetyBuffer
	} else {
		fitted.Top = base.Top + safetyBuffer
	}

	if min < 0 {
		bottomEdge := cfg.Height - base.Bottom
		if extra := maxLabelY - bottomEdge; extra > 0 {
			fitted.Bottom = base.Bottom + extra + safetyBuffer
		} else {
			fitted.Bottom = base.Bottom + safetyBuffer
		}
	}

	fitted.Right = fitRight(records, base.Right, cfg.Format)

	if fitted.Top+fitted.Bottom >= cfg.Height {
		return chart.Margin{}, errors.New(errors.ErrCodeLayoutFailed,
			"fitted margins (%g top, %g bottom) exceed frame height %g", fitted.Top, fitted.Bottom, cfg.Height)
	}
	return fitted, nil
}

// fitRight widens the right margin so the last bar's centered label fits.
// Half the label can hang past the bar center, hence the /2.
func fitRight(records []aggregate.Record, baseRight float64, format chart.Formatter) float64 {
	if format == nil {
		format = chart.FormatNumber
	}
	widest := 0
	for _, r := range records {
		if n := len(format(r.Cumulative)); n > widest {
			widest = n
		}
	}
	est := float64(widest) * avgCharWidth / 2
	if need := est + 10; need > baseRight {
		return need
	}
	return baseRight
}

// labelY returns the pixel baseline of a value label: just above the
// cumulative position for non-negative totals, just below it for
// negative totals.
func labelY(ys *scale.Linear, cumulative float64) float64 {
	if cumulative < 0 {
		return ys.Map(cumulative) + labelPadding + labelHeight
	}
	return ys.Map(cumulative) - labelPadding
}
