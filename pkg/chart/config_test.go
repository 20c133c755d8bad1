package chart

import (
	"testing"

	"github.com/matzehuels/cascade/pkg/errors"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero config should validate: %v", err)
	}

	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("dimensions = %gx%g, want %gx%g", cfg.Width, cfg.Height, DefaultWidth, DefaultHeight)
	}
	if cfg.Margin != DefaultMargin {
		t.Errorf("Margin = %+v, want %+v", cfg.Margin, DefaultMargin)
	}
	if cfg.BarPadding == nil || *cfg.BarPadding != DefaultBarPadding {
		t.Errorf("BarPadding = %v, want %g", cfg.BarPadding, DefaultBarPadding)
	}
	if cfg.TotalLabel != DefaultTotalLabel || cfg.TotalColor != DefaultTotalColor {
		t.Errorf("total defaults = %q/%q", cfg.TotalLabel, cfg.TotalColor)
	}
	if cfg.ScaleType != ScaleAuto {
		t.Errorf("ScaleType = %q, want %q", cfg.ScaleType, ScaleAuto)
	}
	if cfg.Format == nil {
		t.Error("Format should default to FormatNumber")
	}
}

func TestConfigExplicitZeroBarPadding(t *testing.T) {
	cfg := Config{BarPadding: padding(0)}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero padding should validate: %v", err)
	}
	if *cfg.BarPadding != 0 {
		t.Errorf("BarPadding = %g, want 0 (explicit zero must not be replaced by the default)", *cfg.BarPadding)
	}
}

func TestConfigIdempotent(t *testing.T) {
	var cfg Config
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := cfg
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != first.Width || cfg.Height != first.Height ||
		cfg.Margin != first.Margin || *cfg.BarPadding != *first.BarPadding ||
		cfg.TotalLabel != first.TotalLabel || cfg.TotalColor != first.TotalColor ||
		cfg.ScaleType != first.ScaleType {
		t.Errorf("second validation changed config: %+v vs %+v", first, cfg)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantCode errors.Code
	}{
		{
			name:     "negative width",
			cfg:      Config{Width: -10},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "margins exceed width",
			cfg:      Config{Width: 100, Height: 100, Margin: Margin{Left: 60, Right: 60, Top: 1, Bottom: 1}},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "margins exceed height",
			cfg:      Config{Width: 400, Height: 50, Margin: Margin{Top: 30, Bottom: 30, Left: 1, Right: 1}},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "negative margin",
			cfg:      Config{Margin: Margin{Top: -5, Right: 1, Bottom: 1, Left: 1}},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "bar padding out of range",
			cfg:      Config{BarPadding: padding(1.5)},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "negative bar padding",
			cfg:      Config{BarPadding: padding(-0.1)},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "bad total color",
			cfg:      Config{TotalColor: "#xyz"},
			wantCode: errors.ErrCodeInvalidColor,
		},
		{
			name:     "bad scale type",
			cfg:      Config{ScaleType: "logarithmic"},
			wantCode: errors.ErrCodeInvalidScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestValidateCategories(t *testing.T) {
	valid := []Category{
		{Label: "Q1", Stacks: []Segment{{Value: 45, Color: "#3498db"}, {Value: 25, Color: "#2ecc71"}}},
		{Label: "Q2", Stacks: []Segment{{Value: 30, Color: "#f39c12"}}},
	}
	if err := ValidateCategories(valid); err != nil {
		t.Errorf("valid categories should pass: %v", err)
	}

	tests := []struct {
		name       string
		categories []Category
	}{
		{"empty input", nil},
		{"missing label", []Category{{Stacks: []Segment{{Value: 1, Color: "#fff"}}}}},
		{"no segments", []Category{{Label: "A"}}},
		{"missing color", []Category{{Label: "A", Stacks: []Segment{{Value: 1}}}}},
		{"nan value", []Category{{Label: "A", Stacks: []Segment{{Value: nan(), Color: "#fff"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategories(tt.categories)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsValidation(err) {
				t.Errorf("expected a validation code, got %v", errors.GetCode(err))
			}
		})
	}
}

func padding(p float64) *float64 { return &p }

func nan() float64 {
	var zero float64
	return zero / zero
}
