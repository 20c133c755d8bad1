// Package chart defines the input data model and configuration for
// waterfall and stacked bar charts.
//
// A chart is described by a list of [Category] values, each carrying one
// or more [Segment] contributions, plus a [Config] controlling dimensions,
// margins, and rendering behavior. Both are plain immutable value types:
// one layout pass consumes them and produces a geometry snapshot without
// mutating either.
package chart

import "math"

// Segment is a single stacked contribution within a category. Value may
// be positive, negative, or zero.
type Segment struct {
	Value float64 `json:"value" toml:"value" bson:"value"`
	Color string  `json:"color" toml:"color" bson:"color"`
	Label string  `json:"label,omitempty" toml:"label,omitempty" bson:"label,omitempty"`
}

// Category is one position along the chart's x axis. Its segments sum
// into the category total that feeds the running cumulative total.
type Category struct {
	Label  string    `json:"label" toml:"label" bson:"label"`
	Stacks []Segment `json:"stacks" toml:"stacks" bson:"stacks"`
}

// Total returns the sum of all segment values.
func (c Category) Total() float64 {
	var sum float64
	for _, s := range c.Stacks {
		sum += s.Value
	}
	return sum
}

// DominantColor returns the color of the segment with the largest
// absolute value. Ties keep the earlier segment. This is a legibility
// heuristic for multi-segment bars drawn as a single rectangle, not a
// color blend.
func (c Category) DominantColor() string {
	if len(c.Stacks) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(c.Stacks); i++ {
		if math.Abs(c.Stacks[i].Value) > math.Abs(c.Stacks[best].Value) {
			best = i
		}
	}
	return c.Stacks[best].Color
}
