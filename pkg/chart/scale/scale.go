// Package scale maps chart domain values to pixel coordinates.
//
// Three scale kinds cover the chart's needs: [Band] for discrete category
// positions, [Linear] for continuous numeric values, and [Time] for
// date-keyed categories. The [NewX] selector picks the kind for the
// horizontal axis from the category labels; [NewY] builds the vertical
// value scale with the domain policy that keeps bars anchored to a zero
// baseline.
//
// Pixel y grows downward while values grow upward, so vertical scales are
// constructed with an inverted range (bottom pixel first).
package scale

import (
	"math"

	"github.com/matzehuels/cascade/pkg/errors"
)

// Kind identifies the scale variant backing an axis.
type Kind string

// Scale kinds.
const (
	KindBand   Kind = "band"
	KindLinear Kind = "linear"
	KindTime   Kind = "time"
)

// Linear maps the numeric domain [d0, d1] onto the pixel range [r0, r1].
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale. The domain must be finite and
// non-degenerate; the range may be inverted (r0 > r1).
func NewLinear(d0, d1, r0, r1 float64) (*Linear, error) {
	for _, v := range [4]float64{d0, d1, r0, r1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeDegenerateDomain, "non-finite scale bound %g", v)
		}
	}
	if d0 == d1 {
		return nil, errors.New(errors.ErrCodeDegenerateDomain, "degenerate domain [%g, %g]", d0, d1)
	}
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1}, nil
}

// Map converts a domain value to a pixel coordinate.
func (s *Linear) Map(v float64) float64 {
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Invert converts a pixel coordinate back to a domain value.
func (s *Linear) Invert(px float64) float64 {
	return s.d0 + (px-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

// Domain returns the domain bounds.
func (s *Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the pixel range bounds.
func (s *Linear) Range() (float64, float64) { return s.r0, s.r1 }

// Kind returns KindLinear.
func (s *Linear) Kind() Kind { return KindLinear }

// Band maps a fixed ordered key set onto evenly spaced pixel slots.
// Each slot is shrunk by the padding fraction, split evenly on both
// sides, so adjacent bars don't touch.
type Band struct {
	keys    []string
	padding float64
	r0, r1  float64
}

// NewBand builds a band scale over keys. padding is the fraction of each
// step left empty, in [0, 1]. Duplicate keys are allowed; positional
// lookups use [Band.Slot].
func NewBand(keys []string, r0, r1, padding float64) (*Band, error) {
	if len(keys) == 0 {
		return nil, errors.New(errors.ErrCodeDegenerateDomain, "band scale needs at least one key")
	}
	if padding < 0 || padding > 1 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "band padding must be in [0, 1], got %g", padding)
	}
	ks := make([]string, len(keys))
	copy(ks, keys)
	return &Band{keys: ks, padding: padding, r0: r0, r1: r1}, nil
}

// Step returns the distance between adjacent band starts.
func (s *Band) Step() float64 {
	return (s.r1 - s.r0) / float64(len(s.keys))
}

// Bandwidth returns the drawable width of one band after padding.
func (s *Band) Bandwidth() float64 {
	return s.Step() * (1 - s.padding)
}

// Slot returns the left pixel edge and width of the i-th band.
func (s *Band) Slot(i int) (x, width float64) {
	step := s.Step()
	return s.r0 + step*float64(i) + step*s.padding/2, s.Bandwidth()
}

// Map returns the left edge of the band for key, using the first
// occurrence. The second return reports whether the key exists.
func (s *Band) Map(key string) (float64, bool) {
	for i, k := range s.keys {
		if k == key {
			x, _ := s.Slot(i)
			return x, true
		}
	}
	return 0, false
}

// Len returns the number of bands.
func (s *Band) Len() int { return len(s.keys) }

// Kind returns KindBand.
func (s *Band) Kind() Kind { return KindBand }
