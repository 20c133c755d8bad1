package scale

import "math"

// niceNum rounds x to a "nice" number: 1, 2, or 5 times a power of ten.
// Standard Heckbert axis-labeling helper.
func niceNum(x float64) float64 {
	if x <= 0 {
		return 0
	}
	exp := math.Floor(math.Log10(x))
	frac := x / math.Pow(10, exp)

	var nice float64
	switch {
	case frac < 1.5:
		nice = 1
	case frac < 3:
		nice = 2
	case frac < 7:
		nice = 5
	default:
		nice = 10
	}
	return nice * math.Pow(10, exp)
}

// Nice extends the domain outward to multiples of a nice tick step sized
// for about maxTicks ticks. The domain only ever grows, so every value
// visible before remains visible after.
func (s *Linear) Nice(maxTicks int) {
	if maxTicks < 2 {
		maxTicks = 2
	}
	step := niceNum((s.d1 - s.d0) / float64(maxTicks-1))
	if step <= 0 {
		return
	}
	s.d0 = math.Floor(s.d0/step) * step
	s.d1 = math.Ceil(s.d1/step) * step
}

// Ticks returns nice tick values covering the domain, in increasing
// order and inside the domain.
func (s *Linear) Ticks(maxTicks int) []float64 {
	if maxTicks < 2 {
		maxTicks = 2
	}
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	step := niceNum((hi - lo) / float64(maxTicks-1))
	if step <= 0 {
		return nil
	}

	start := math.Ceil(lo/step) * step
	var ticks []float64
	for v := start; v <= hi+step/2; v += step {
		// Snap near-zero floating error to zero so the baseline tick
		// labels as "0".
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks
}
