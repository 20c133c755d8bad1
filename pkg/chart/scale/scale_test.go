package scale

import (
	"math"
	"testing"

	"github.com/matzehuels/cascade/pkg/errors"
)

const tol = 1e-9

func almost(a, b float64) bool { return math.Abs(a-b) < tol }

func TestLinearMap(t *testing.T) {
	s, err := NewLinear(0, 100, 0, 500)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{50, 250},
		{100, 500},
		{-10, -50}, // extrapolation is allowed
	}

	for _, tt := range tests {
		if got := s.Map(tt.v); !almost(got, tt.want) {
			t.Errorf("Map(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLinearInvertedRange(t *testing.T) {
	// Vertical scales run bottom-to-top in pixel space.
	s, err := NewLinear(0, 100, 560, 20)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Map(0); !almost(got, 560) {
		t.Errorf("Map(0) = %v, want 560 (bottom)", got)
	}
	if got := s.Map(100); !almost(got, 20) {
		t.Errorf("Map(100) = %v, want 20 (top)", got)
	}
	if got := s.Invert(290); !almost(got, 50) {
		t.Errorf("Invert(290) = %v, want 50", got)
	}
}

func TestLinearRoundTrip(t *testing.T) {
	s, err := NewLinear(-40, 120, 580, 30)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{-40, -5, 0, 33.3, 120} {
		if got := s.Invert(s.Map(v)); !almost(got, v) {
			t.Errorf("Invert(Map(%v)) = %v", v, got)
		}
	}
}

func TestNewLinearDegenerate(t *testing.T) {
	if _, err := NewLinear(5, 5, 0, 100); !errors.Is(err, errors.ErrCodeDegenerateDomain) {
		t.Errorf("equal bounds: got %v, want DEGENERATE_DOMAIN", err)
	}
	if _, err := NewLinear(math.NaN(), 1, 0, 100); !errors.Is(err, errors.ErrCodeDegenerateDomain) {
		t.Errorf("NaN bound: got %v, want DEGENERATE_DOMAIN", err)
	}
	if _, err := NewLinear(0, math.Inf(1), 0, 100); !errors.Is(err, errors.ErrCodeDegenerateDomain) {
		t.Errorf("Inf bound: got %v, want DEGENERATE_DOMAIN", err)
	}
}

func TestBandSlots(t *testing.T) {
	s, err := NewBand([]string{"Q1", "Q2", "Q3", "Q4"}, 0, 400, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Step(); !almost(got, 100) {
		t.Errorf("Step() = %v, want 100", got)
	}
	if got := s.Bandwidth(); !almost(got, 80) {
		t.Errorf("Bandwidth() = %v, want 80", got)
	}

	x, w := s.Slot(0)
	if !almost(x, 10) || !almost(w, 80) {
		t.Errorf("Slot(0) = (%v, %v), want (10, 80)", x, w)
	}
	x, _ = s.Slot(3)
	if !almost(x, 310) {
		t.Errorf("Slot(3) x = %v, want 310", x)
	}
}

func TestBandMap(t *testing.T) {
	s, err := NewBand([]string{"a", "b", "c"}, 0, 300, 0)
	if err != nil {
		t.Fatal(err)
	}

	x, ok := s.Map("b")
	if !ok || !almost(x, 100) {
		t.Errorf("Map(b) = (%v, %v), want (100, true)", x, ok)
	}
	if _, ok := s.Map("missing"); ok {
		t.Error("Map(missing) should report absence")
	}
}

func TestNewBandValidation(t *testing.T) {
	if _, err := NewBand(nil, 0, 100, 0.1); !errors.Is(err, errors.ErrCodeDegenerateDomain) {
		t.Errorf("empty keys: got %v", err)
	}
	if _, err := NewBand([]string{"a"}, 0, 100, 1.5); !errors.Is(err, errors.ErrCodeInvalidScale) {
		t.Errorf("bad padding: got %v", err)
	}
}

func TestLinearNice(t *testing.T) {
	s, err := NewLinear(0, 86.7, 560, 20)
	if err != nil {
		t.Fatal(err)
	}
	s.Nice(6)

	d0, d1 := s.Domain()
	if d0 != 0 {
		t.Errorf("niced d0 = %v, want 0", d0)
	}
	if d1 < 86.7 {
		t.Errorf("niced d1 = %v, must cover original max", d1)
	}
	// A nice bound is a multiple of the tick step; for this span the
	// step is 20.
	if math.Mod(d1, 20) != 0 {
		t.Errorf("niced d1 = %v, want a multiple of 20", d1)
	}
}

func TestLinearTicks(t *testing.T) {
	s, err := NewLinear(0, 100, 560, 20)
	if err != nil {
		t.Fatal(err)
	}

	ticks := s.Ticks(6)
	if len(ticks) < 3 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	if ticks[0] != 0 {
		t.Errorf("first tick = %v, want 0", ticks[0])
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
		if ticks[i] > 100+tol {
			t.Errorf("tick %v outside domain", ticks[i])
		}
	}
}

func TestTicksNegativeDomain(t *testing.T) {
	s, err := NewLinear(-50, 110, 560, 20)
	if err != nil {
		t.Fatal(err)
	}

	ticks := s.Ticks(6)
	hasZero := false
	for _, v := range ticks {
		if v == 0 {
			hasZero = true
		}
	}
	if !hasZero {
		t.Errorf("ticks %v should include the zero baseline", ticks)
	}
}
