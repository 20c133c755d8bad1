package scale

import (
	"strconv"
	"time"

	"github.com/matzehuels/cascade/pkg/errors"
)

// XScale positions category records along the horizontal axis,
// independent of the underlying scale kind. Slot i corresponds to the
// i-th record in input order.
type XScale interface {
	Kind() Kind
	// Slot returns the left pixel edge and width of the bar for the
	// i-th record.
	Slot(i int) (x, width float64)
}

// DetectKind picks the x scale kind for a label set, evaluated in
// order, first match wins:
//
//  1. Every label parses as a date → time scale.
//  2. Every label parses as a number → linear scale.
//  3. Anything else, including mixed sets → band scale over the labels
//     as given.
func DetectKind(labels []string) Kind {
	if len(labels) == 0 {
		return KindBand
	}

	allDates := true
	for _, l := range labels {
		if _, ok := ParseDate(l); !ok {
			allDates = false
			break
		}
	}
	if allDates {
		return KindTime
	}

	allNumbers := true
	for _, l := range labels {
		if _, err := strconv.ParseFloat(l, 64); err != nil {
			allNumbers = false
			break
		}
	}
	if allNumbers {
		return KindLinear
	}

	return KindBand
}

// NewX constructs the horizontal scale for the given record labels.
// mode is one of "auto", "time", "ordinal", "linear"; under "auto" the
// kind comes from [DetectKind], so mixed or unparseable label sets fall
// back to a band scale and never fail. Explicit modes fail when labels
// don't fit the requested kind.
func NewX(labels []string, mode string, r0, r1, padding float64) (XScale, error) {
	if len(labels) == 0 {
		return nil, errors.New(errors.ErrCodeDegenerateDomain, "no labels for x scale")
	}

	kind := KindBand
	switch mode {
	case "", "auto":
		kind = DetectKind(labels)
	case "ordinal":
		kind = KindBand
	case "linear":
		kind = KindLinear
	case "time":
		kind = KindTime
	default:
		return nil, errors.New(errors.ErrCodeInvalidScale, "invalid scale mode: %q", mode)
	}

	switch kind {
	case KindBand:
		return NewBand(labels, r0, r1, padding)
	case KindLinear:
		return newLinearX(labels, r0, r1, padding)
	default:
		return newTimeX(labels, r0, r1, padding)
	}
}

// continuousX positions bars on a continuous (linear or time) axis:
// each bar is centered on its mapped position with a uniform width of
// totalInnerWidth × (1 − padding) / recordCount.
type continuousX struct {
	kind    Kind
	centers []float64
	width   float64
}

func (s *continuousX) Kind() Kind { return s.kind }

func (s *continuousX) Slot(i int) (float64, float64) {
	return s.centers[i] - s.width/2, s.width
}

func newLinearX(labels []string, r0, r1, padding float64) (XScale, error) {
	values := make([]float64, len(labels))
	lo, hi := 0.0, 0.0
	for i, l := range labels {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScale, err, "label %q is not numeric", l)
		}
		values[i] = v
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	if lo == hi {
		// Single distinct value: widen so the scale stays invertible.
		lo, hi = lo-0.5, hi+0.5
	}

	s, err := NewLinear(lo, hi, r0, r1)
	if err != nil {
		return nil, err
	}

	centers := make([]float64, len(values))
	for i, v := range values {
		centers[i] = s.Map(v)
	}
	return &continuousX{
		kind:    KindLinear,
		centers: centers,
		width:   barWidth(r0, r1, padding, len(labels)),
	}, nil
}

func newTimeX(labels []string, r0, r1, padding float64) (XScale, error) {
	times := make([]time.Time, len(labels))
	var lo, hi time.Time
	for i, l := range labels {
		t, ok := ParseDate(l)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidScale, "label %q is not a date", l)
		}
		times[i] = t
		if i == 0 || t.Before(lo) {
			lo = t
		}
		if i == 0 || t.After(hi) {
			hi = t
		}
	}
	if !lo.Before(hi) {
		lo, hi = lo.Add(-12*time.Hour), hi.Add(12*time.Hour)
	}

	s, err := NewTime(lo, hi, r0, r1)
	if err != nil {
		return nil, err
	}

	centers := make([]float64, len(times))
	for i, t := range times {
		centers[i] = s.Map(t)
	}
	return &continuousX{
		kind:    KindTime,
		centers: centers,
		width:   barWidth(r0, r1, padding, len(labels)),
	}, nil
}

func barWidth(r0, r1, padding float64, n int) float64 {
	w := (r1 - r0) * (1 - padding) / float64(n)
	if w < 0 {
		w = -w
	}
	return w
}

// NewY builds the value-axis scale over the cumulative-total extent
// [min, max]. The range is inverted: r0 is the bottom pixel, r1 the top.
//
// Domain policy:
//   - min < 0: pad both ends by 5% of the span so negative bars stay
//     visible without dominating the chart.
//   - all values ≥ 0: domain [0, max×1.02] extended to nice round
//     numbers; zero is always included so bars have a visual baseline.
//
// Degenerate extents (all-zero data, single repeated value) widen to a
// unit span instead of failing.
func NewY(min, max float64, r0, r1 float64) (*Linear, error) {
	if min > max {
		return nil, errors.New(errors.ErrCodeDegenerateDomain, "inverted extent [%g, %g]", min, max)
	}

	if min < 0 {
		pad := (max - min) * 0.05
		if pad == 0 {
			pad = 1
		}
		return NewLinear(min-pad, max+pad, r0, r1)
	}

	hi := max * 1.02
	if hi == 0 {
		hi = 1
	}
	s, err := NewLinear(0, hi, r0, r1)
	if err != nil {
		return nil, err
	}
	s.Nice(6)
	return s, nil
}
