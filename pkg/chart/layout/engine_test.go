package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/scale"
	"github.com/matzehuels/cascade/pkg/errors"
)

func TestLayoutPure(t *testing.T) {
	cfg := testConfig(t)
	cfg.ShowTotal = true

	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	first, err := e.Layout(quarterCategories())
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Layout(quarterCategories())
	if err != nil {
		t.Fatal(err)
	}

	// Bit-identical output for identical input.
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated layout differs (-first +second):\n%s", diff)
	}
}

func TestLayoutLabelsInsideCanvas(t *testing.T) {
	tests := []struct {
		name       string
		categories []chart.Category
	}{
		{"positive only", []chart.Category{
			{Label: "A", Stacks: []chart.Segment{{Value: 40, Color: "#3498db"}}},
			{Label: "B", Stacks: []chart.Segment{{Value: 60, Color: "#2ecc71"}}},
		}},
		{"mixed deltas", quarterCategories()},
		{"all negative", []chart.Category{
			{Label: "A", Stacks: []chart.Segment{{Value: -10, Color: "#e74c3c"}}},
			{Label: "B", Stacks: []chart.Segment{{Value: -25, Color: "#e74c3c"}}},
		}},
		{"dominated by one spike", []chart.Category{
			{Label: "A", Stacks: []chart.Segment{{Value: 1, Color: "#3498db"}}},
			{Label: "B", Stacks: []chart.Segment{{Value: 10000, Color: "#2ecc71"}}},
			{Label: "C", Stacks: []chart.Segment{{Value: -10001, Color: "#e74c3c"}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.ShowTotal = true

			g, err := Build(tt.categories, cfg)
			if err != nil {
				t.Fatal(err)
			}
			for _, bar := range g.Bars {
				top := bar.LabelPos.Y - labelHeight
				if top < 0 {
					t.Errorf("bar %q label text extends to %v, above the canvas", bar.Label, top)
				}
				if bar.LabelPos.Y > g.Height {
					t.Errorf("bar %q label at %v, below the canvas (%v)", bar.Label, bar.LabelPos.Y, g.Height)
				}
			}
		})
	}
}

func TestLayoutAllNegative(t *testing.T) {
	cfg := testConfig(t)

	g, err := Build([]chart.Category{
		{Label: "A", Stacks: []chart.Segment{{Value: -10, Color: "#e74c3c"}}},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if g.Margin.Bottom <= chart.DefaultMargin.Bottom {
		t.Errorf("Bottom margin = %v, negative domain must add headroom", g.Margin.Bottom)
	}

	bar := g.Bars[0]
	if bar.LabelPos.Y < 0 {
		t.Errorf("label y = %v, must never be negative", bar.LabelPos.Y)
	}
	// The bar hangs below the zero baseline.
	r := bar.Rects[0]
	if r.Y < g.Margin.Top {
		t.Errorf("bar top %v above plot area", r.Y)
	}
	if r.Height <= 0 {
		t.Errorf("bar height = %v", r.Height)
	}
}

func TestLayoutSingleAllZero(t *testing.T) {
	// Degenerate extent: must not divide by zero anywhere, falls back
	// to base margins plus the fixed buffer.
	cfg := testConfig(t)

	g, err := Build([]chart.Category{
		{Label: "A", Stacks: []chart.Segment{{Value: 0, Color: "#3498db"}}},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if g.Margin.Top != chart.DefaultMargin.Top+safetyBuffer {
		t.Errorf("Top = %v, want base plus buffer", g.Margin.Top)
	}
	if len(g.Bars) != 1 {
		t.Fatalf("got %d bars", len(g.Bars))
	}
	if g.Bars[0].Rects[0].Height != 0 {
		t.Errorf("zero value should produce a zero-height rect, got %v", g.Bars[0].Rects[0].Height)
	}
}

func TestLayoutMixedLabelsFallBack(t *testing.T) {
	// Mixed numeric/string labels never fail; they fall back to a band
	// scale keyed by the stringified labels.
	cfg := testConfig(t)

	g, err := Build([]chart.Category{
		{Label: "2024-01-01", Stacks: []chart.Segment{{Value: 5, Color: "#3498db"}}},
		{Label: "Adjustment", Stacks: []chart.Segment{{Value: -2, Color: "#e74c3c"}}},
	}, cfg)
	if err != nil {
		t.Fatalf("mixed labels must not fail: %v", err)
	}
	if g.XKind != scale.KindBand {
		t.Errorf("XKind = %v, want band fallback", g.XKind)
	}
}

func TestLayoutValidationGate(t *testing.T) {
	cfg := testConfig(t)
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.Layout(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty input: got %v, want INVALID_INPUT", err)
	}
	if _, err := e.Layout([]chart.Category{{Label: "A"}}); !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("category without segments: got %v, want INVALID_DATA", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(chart.Config{Width: -1}); !errors.IsValidation(err) {
		t.Errorf("got %v, want validation error", err)
	}
}

func TestLayoutTicksIncludeBaseline(t *testing.T) {
	cfg := testConfig(t)
	g, err := Build(quarterCategories(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Ticks) == 0 {
		t.Fatal("geometry should carry axis ticks")
	}
	found := false
	for _, tick := range g.Ticks {
		if tick.Value == 0 {
			found = true
			if tick.Label != "0" {
				t.Errorf("baseline tick label = %q", tick.Label)
			}
		}
	}
	if !found {
		t.Error("zero-floored domain must have a baseline tick")
	}
	if g.Baseline() <= g.Margin.Top || g.Baseline() > g.Height-g.Margin.Bottom+tol {
		t.Errorf("Baseline() = %v outside plot area", g.Baseline())
	}
}
