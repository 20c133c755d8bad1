package chart

import "testing"

func TestCategoryTotal(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     float64
	}{
		{
			name:     "single segment",
			category: Category{Label: "Q2", Stacks: []Segment{{Value: 30, Color: "#f39c12"}}},
			want:     30,
		},
		{
			name: "multiple segments",
			category: Category{Label: "Q1", Stacks: []Segment{
				{Value: 45, Color: "#3498db"},
				{Value: 25, Color: "#2ecc71"},
			}},
			want: 70,
		},
		{
			name: "mixed signs",
			category: Category{Label: "Net", Stacks: []Segment{
				{Value: 50, Color: "#2ecc71"},
				{Value: -20, Color: "#e74c3c"},
			}},
			want: 30,
		},
		{
			name:     "no segments",
			category: Category{Label: "empty"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.Total(); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryDominantColor(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     string
	}{
		{
			name:     "single segment",
			category: Category{Stacks: []Segment{{Value: 10, Color: "#3498db"}}},
			want:     "#3498db",
		},
		{
			name: "largest magnitude wins",
			category: Category{Stacks: []Segment{
				{Value: 10, Color: "#3498db"},
				{Value: -40, Color: "#e74c3c"},
				{Value: 25, Color: "#2ecc71"},
			}},
			want: "#e74c3c",
		},
		{
			name: "tie keeps first",
			category: Category{Stacks: []Segment{
				{Value: 20, Color: "#3498db"},
				{Value: -20, Color: "#e74c3c"},
			}},
			want: "#3498db",
		},
		{
			name:     "no segments",
			category: Category{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.DominantColor(); got != tt.want {
				t.Errorf("DominantColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{85, "85"},
		{-15, "-15"},
		{1234567, "1234567"},
		{3.5, "3.5"},
		{3.14159, "3.14"},
		{-0.25, "-0.25"},
		{2.10, "2.1"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.value); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
