package layout

import (
	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/scale"
)

// Rect is one painted rectangle in user units (pixels in SVG). The
// origin is the top-left corner of the frame; y grows downward.
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Color  string  `json:"color" bson:"color"`
}

// Right returns the right edge of the rect.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge of the rect.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// Point is a pixel position.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Connector is the dashed line linking the running total at the end of
// one bar to the start of the next.
type Connector struct {
	X1 float64 `json:"x1" bson:"x1"`
	Y1 float64 `json:"y1" bson:"y1"`
	X2 float64 `json:"x2" bson:"x2"`
	Y2 float64 `json:"y2" bson:"y2"`
}

// Tick is one value-axis tick, pre-positioned and pre-formatted for the
// consuming axis renderer.
type Tick struct {
	Value float64 `json:"value" bson:"value"`
	Y     float64 `json:"y" bson:"y"`
	Label string  `json:"label" bson:"label"`
}

// Bar holds the geometry of one category: a single rect in waterfall
// mode, one rect per segment in stacked mode.
type Bar struct {
	Label          string  `json:"label" bson:"label"`
	Ordinal        int     `json:"ordinal" bson:"ordinal"`
	SyntheticTotal bool    `json:"synthetic_total,omitempty" bson:"synthetic_total,omitempty"`
	Rects          []Rect  `json:"rects" bson:"rects"`
	LabelPos       Point   `json:"label_pos" bson:"label_pos"`
	LabelText      string  `json:"label_text" bson:"label_text"`
	Value          float64 `json:"value" bson:"value"` // cumulative total
}

// Geometry is the immutable snapshot produced by one layout pass. A new
// input produces a new snapshot; consumers diff old vs new by bar label
// to drive entry/update/exit animation, ordering entries by Ordinal.
type Geometry struct {
	Width      float64      `json:"width" bson:"width"`
	Height     float64      `json:"height" bson:"height"`
	Margin     chart.Margin `json:"margin" bson:"margin"`
	XKind      scale.Kind   `json:"x_kind" bson:"x_kind"`
	Stacked    bool         `json:"stacked,omitempty" bson:"stacked,omitempty"`
	Bars       []Bar        `json:"bars" bson:"bars"`
	Connectors []Connector  `json:"connectors,omitempty" bson:"connectors,omitempty"`
	Ticks      []Tick       `json:"ticks,omitempty" bson:"ticks,omitempty"`
}

// Baseline returns the pixel y of the zero value line, interpolated
// from the tick closest to zero. Falls back to the bottom of the plot
// area when no ticks exist.
func (g *Geometry) Baseline() float64 {
	for _, t := range g.Ticks {
		if t.Value == 0 {
			return t.Y
		}
	}
	return g.Height - g.Margin.Bottom
}
