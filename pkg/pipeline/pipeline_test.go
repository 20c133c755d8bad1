package pipeline

import (
	"testing"

	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/errors"
)

func testCategories() []chart.Category {
	return []chart.Category{
		{Label: "Q1", Stacks: []chart.Segment{{Value: 45, Color: "#3498db"}, {Value: 25, Color: "#2ecc71"}}},
		{Label: "Q2", Stacks: []chart.Segment{{Value: 30, Color: "#f39c12"}}},
		{Label: "Expenses", Stacks: []chart.Segment{{Value: -15, Color: "#e74c3c"}}},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"default", false},
		{"minimal", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Categories: testCategories()}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.Chart.Width != chart.DefaultWidth {
		t.Errorf("Width should be %v, got %v", chart.DefaultWidth, opts.Chart.Width)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should default to [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should default to %q, got %q", DefaultStyle, opts.Style)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{Categories: testCategories(), Formats: []string{"json"}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := opts.Formats

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Formats) != len(first) {
		t.Error("repeated validation should not change options")
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	// Empty dataset
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty dataset: got %v, want INVALID_INPUT", err)
	}

	// Bad format
	opts = Options{Categories: testCategories(), Formats: []string{"bmp"}}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: got %v, want INVALID_FORMAT", err)
	}

	// Bad style
	opts = Options{Categories: testCategories(), Style: "fancy"}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad style: got %v, want INVALID_FORMAT", err)
	}

	// Bad chart config
	opts = Options{Categories: testCategories(), Chart: chart.Config{Width: -10}}
	if err := opts.ValidateAndSetDefaults(); !errors.IsValidation(err) {
		t.Errorf("bad config: got %v, want validation error", err)
	}
}

func TestLayoutKeyOpts(t *testing.T) {
	opts := Options{Categories: testCategories(), Chart: chart.Config{Stacked: true}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	ko := opts.LayoutKeyOpts()
	if !ko.Stacked {
		t.Error("Stacked should carry into key opts")
	}
	if ko.Width != chart.DefaultWidth {
		t.Errorf("Width = %v", ko.Width)
	}
	if ko.ScaleType != chart.ScaleAuto {
		t.Errorf("ScaleType = %q", ko.ScaleType)
	}
	if ko.BarPadding != chart.DefaultBarPadding {
		t.Errorf("BarPadding = %v", ko.BarPadding)
	}
	if ko.MarginTop != chart.DefaultMargin.Top || ko.MarginRight != chart.DefaultMargin.Right ||
		ko.MarginBottom != chart.DefaultMargin.Bottom || ko.MarginLeft != chart.DefaultMargin.Left {
		t.Errorf("margins = %v/%v/%v/%v, want %+v",
			ko.MarginTop, ko.MarginRight, ko.MarginBottom, ko.MarginLeft, chart.DefaultMargin)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Title: "Revenue", Categories: testCategories(), Style: "minimal"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	ao := opts.ArtifactKeyOpts("png")
	if ao.Format != "png" || ao.Style != "minimal" || ao.Title != "Revenue" {
		t.Errorf("key opts = %+v", ao)
	}
}
