package scale

import (
	"time"

	"github.com/matzehuels/cascade/pkg/errors"
)

// dateLayouts are the layouts tried, in order, when detecting and
// parsing date-keyed category labels.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"01/02/2006",
	"Jan 2006",
}

// ParseDate parses a category label as a date using the supported
// layouts. The second return reports success.
func ParseDate(label string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Time maps the time domain [t0, t1] onto the pixel range [r0, r1].
type Time struct {
	t0, t1 time.Time
	r0, r1 float64
}

// NewTime builds a time scale. The domain must be non-degenerate, with
// t0 before t1.
func NewTime(t0, t1 time.Time, r0, r1 float64) (*Time, error) {
	if !t0.Before(t1) {
		return nil, errors.New(errors.ErrCodeDegenerateDomain, "degenerate time domain [%s, %s]", t0, t1)
	}
	return &Time{t0: t0, t1: t1, r0: r0, r1: r1}, nil
}

// Map converts a time to a pixel coordinate.
func (s *Time) Map(t time.Time) float64 {
	span := s.t1.Sub(s.t0).Seconds()
	return s.r0 + t.Sub(s.t0).Seconds()/span*(s.r1-s.r0)
}

// Invert converts a pixel coordinate back to a time.
func (s *Time) Invert(px float64) time.Time {
	span := s.t1.Sub(s.t0).Seconds()
	secs := (px - s.r0) / (s.r1 - s.r0) * span
	return s.t0.Add(time.Duration(secs * float64(time.Second)))
}

// Domain returns the time domain bounds.
func (s *Time) Domain() (time.Time, time.Time) { return s.t0, s.t1 }

// Kind returns KindTime.
func (s *Time) Kind() Kind { return KindTime }
