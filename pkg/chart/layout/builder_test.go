package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/cascade/pkg/chart/scale"
)

const tol = 1e-9

func almost(a, b float64) bool { return math.Abs(a-b) < tol }

// rebuildY recreates the final y scale a geometry was built with so
// tests can express expectations in value space.
func rebuildY(t *testing.T, g *Geometry, min, max float64) *scale.Linear {
	t.Helper()
	ys, err := scale.NewY(min, max, g.Height-g.Margin.Bottom, g.Margin.Top)
	if err != nil {
		t.Fatal(err)
	}
	return ys
}

func TestWaterfallSpans(t *testing.T) {
	cfg := testConfig(t)
	cfg.ShowTotal = true

	g, err := Build(quarterCategories(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Bars) != 4 {
		t.Fatalf("got %d bars, want 4", len(g.Bars))
	}

	ys := rebuildY(t, g, 0, 100)

	// Each waterfall bar floats between its previous and new running
	// total: Q1 [0,70], Q2 [70,100], Expenses [85,100], Total [0,85].
	tests := []struct {
		label  string
		lo, hi float64
	}{
		{"Q1", 0, 70},
		{"Q2", 70, 100},
		{"Expenses", 85, 100},
		{"Total", 0, 85},
	}

	for i, tt := range tests {
		bar := g.Bars[i]
		if bar.Label != tt.label {
			t.Fatalf("bar %d label = %q, want %q", i, bar.Label, tt.label)
		}
		if len(bar.Rects) != 1 {
			t.Fatalf("bar %q has %d rects, want 1", tt.label, len(bar.Rects))
		}
		r := bar.Rects[0]
		if !almost(r.Y, ys.Map(tt.hi)) {
			t.Errorf("bar %q top = %v, want %v (value %v)", tt.label, r.Y, ys.Map(tt.hi), tt.hi)
		}
		if !almost(r.Bottom(), ys.Map(tt.lo)) {
			t.Errorf("bar %q bottom = %v, want %v (value %v)", tt.label, r.Bottom(), ys.Map(tt.lo), tt.lo)
		}
	}
}

func TestWaterfallColors(t *testing.T) {
	cfg := testConfig(t)
	cfg.ShowTotal = true

	g, err := Build(quarterCategories(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Multi-segment Q1 takes the dominant contributor's color.
	if got := g.Bars[0].Rects[0].Color; got != "#3498db" {
		t.Errorf("Q1 color = %q, want dominant #3498db", got)
	}
	// Single-segment bars keep their own color.
	if got := g.Bars[2].Rects[0].Color; got != "#e74c3c" {
		t.Errorf("Expenses color = %q, want #e74c3c", got)
	}
	// The synthetic total uses the configured total color.
	if got := g.Bars[3].Rects[0].Color; got != cfg.TotalColor {
		t.Errorf("Total color = %q, want %q", got, cfg.TotalColor)
	}
}

func TestStackedMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Stacked = true

	g, err := Build(quarterCategories(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	ys := rebuildY(t, g, 0, 100)

	q1 := g.Bars[0]
	if len(q1.Rects) != 2 {
		t.Fatalf("Q1 has %d rects, want one per segment", len(q1.Rects))
	}

	// Segments stack upward from the record's starting baseline.
	first, second := q1.Rects[0], q1.Rects[1]
	if !almost(first.Bottom(), ys.Map(0)) {
		t.Errorf("first segment bottom = %v, want baseline %v", first.Bottom(), ys.Map(0))
	}
	wantFirstH := math.Abs(ys.Map(0) - ys.Map(45))
	if !almost(first.Height, wantFirstH) {
		t.Errorf("first segment height = %v, want %v", first.Height, wantFirstH)
	}
	if !almost(second.Bottom(), first.Y) {
		t.Errorf("second segment bottom = %v, want stacked on %v", second.Bottom(), first.Y)
	}
	if first.Color != "#3498db" || second.Color != "#2ecc71" {
		t.Errorf("segment colors = %q, %q", first.Color, second.Color)
	}

	// Q2 starts from the previous cumulative total, not zero.
	q2 := g.Bars[1]
	if !almost(q2.Rects[0].Bottom(), ys.Map(70)) {
		t.Errorf("Q2 baseline = %v, want %v", q2.Rects[0].Bottom(), ys.Map(70))
	}
}

func TestConnectors(t *testing.T) {
	cfg := testConfig(t)
	cfg.ShowTotal = true

	g, err := Build(quarterCategories(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Connectors) != len(g.Bars)-1 {
		t.Fatalf("got %d connectors, want %d", len(g.Connectors), len(g.Bars)-1)
	}

	ys := rebuildY(t, g, 0, 100)

	// Q1 → Q2: leaves Q1's right edge at its cumulative total and lands
	// level on Q2's left edge.
	c := g.Connectors[0]
	q1, q2 := g.Bars[0].Rects[0], g.Bars[1].Rects[0]
	if !almost(c.X1, q1.Right()) || !almost(c.X2, q2.X) {
		t.Errorf("connector 0 x endpoints = (%v, %v), want (%v, %v)", c.X1, c.X2, q1.Right(), q2.X)
	}
	if !almost(c.Y1, ys.Map(70)) || !almost(c.Y2, ys.Map(70)) {
		t.Errorf("connector 0 y endpoints = (%v, %v), want level at %v", c.Y1, c.Y2, ys.Map(70))
	}

	// Expenses → Total: the landing point is the total bar's own
	// cumulative position.
	c = g.Connectors[2]
	if !almost(c.Y1, ys.Map(85)) || !almost(c.Y2, ys.Map(85)) {
		t.Errorf("total connector y endpoints = (%v, %v), want %v", c.Y1, c.Y2, ys.Map(85))
	}
}

func TestBandBarPlacement(t *testing.T) {
	cfg := testConfig(t)

	g, err := Build(quarterCategories(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if g.XKind != scale.KindBand {
		t.Fatalf("XKind = %v, want band for string labels", g.XKind)
	}

	// Bars sit inside the plot area, in input order, non-overlapping.
	prevRight := g.Margin.Left
	for _, bar := range g.Bars {
		r := bar.Rects[0]
		if r.X < prevRight {
			t.Errorf("bar %q at %v overlaps previous ending at %v", bar.Label, r.X, prevRight)
		}
		if r.Right() > g.Width-g.Margin.Right+tol {
			t.Errorf("bar %q exceeds plot area: right edge %v", bar.Label, r.Right())
		}
		prevRight = r.Right()
	}
}

func TestBuildGeometryRequiresScales(t *testing.T) {
	cfg := testConfig(t)
	if _, err := buildGeometry(nil, nil, nil, cfg.Margin, cfg); err == nil {
		t.Error("missing scales must fail, never guess")
	}
}
