package chart

import (
	"github.com/matzehuels/cascade/pkg/errors"
)

// Scale type selection modes. Under ScaleAuto the x scale kind is
// detected from the category labels; the other modes force a kind.
const (
	ScaleAuto    = "auto"
	ScaleTime    = "time"
	ScaleOrdinal = "ordinal"
	ScaleLinear  = "linear"
)

// ValidScaleTypes is the set of supported scale type modes.
var ValidScaleTypes = map[string]bool{
	ScaleAuto:    true,
	ScaleTime:    true,
	ScaleOrdinal: true,
	ScaleLinear:  true,
}

// Default configuration values.
const (
	DefaultWidth      = 800.0
	DefaultHeight     = 600.0
	DefaultBarPadding = 0.2
	DefaultTotalLabel = "Total"
	DefaultTotalColor = "#95a5a6"
)

// DefaultMargin is the base margin before fitting. The left margin is
// sized for the value axis; top and bottom grow during margin fitting
// when value labels would clip.
var DefaultMargin = Margin{Top: 20, Right: 30, Bottom: 40, Left: 50}

// Margin holds the pixel insets between the frame and the plot area.
type Margin struct {
	Top    float64 `json:"top" toml:"top" bson:"top"`
	Right  float64 `json:"right" toml:"right" bson:"right"`
	Bottom float64 `json:"bottom" toml:"bottom" bson:"bottom"`
	Left   float64 `json:"left" toml:"left" bson:"left"`
}

// Config controls one layout pass. It is a plain value: callers build it
// (directly or through pipeline options), validate it once, and pass it
// to the layout engine, which never mutates it.
type Config struct {
	Width  float64 `json:"width,omitempty" toml:"width" bson:"width"`
	Height float64 `json:"height,omitempty" toml:"height" bson:"height"`
	Margin Margin  `json:"margin,omitempty" toml:"margin" bson:"margin"`

	// Stacked selects stacked-segment bars instead of floating
	// waterfall bars.
	Stacked bool `json:"stacked,omitempty" toml:"stacked" bson:"stacked"`

	// ShowTotal appends a synthetic grand-total bar after the last
	// category.
	ShowTotal  bool   `json:"show_total,omitempty" toml:"show_total" bson:"show_total"`
	TotalLabel string `json:"total_label,omitempty" toml:"total_label" bson:"total_label"`
	TotalColor string `json:"total_color,omitempty" toml:"total_color" bson:"total_color"`

	// BarPadding is the fraction of each band left empty, in [0, 1].
	// Nil means DefaultBarPadding; an explicit zero disables padding.
	BarPadding *float64 `json:"bar_padding,omitempty" toml:"bar_padding" bson:"bar_padding"`

	// ScaleType selects the x scale kind ("auto", "time", "ordinal",
	// "linear").
	ScaleType string `json:"scale_type,omitempty" toml:"scale_type" bson:"scale_type"`

	// Format renders a value as its label text. Defaults to
	// [FormatNumber]. Not serialized; callers supplying definitions
	// over the wire get the default.
	Format Formatter `json:"-" toml:"-" bson:"-"`
}

// ValidateAndSetDefaults checks the config and fills zero values with
// defaults. It is idempotent.
func (c *Config) ValidateAndSetDefaults() error {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dimensions must be positive: %gx%g", c.Width, c.Height)
	}
	if c.Margin == (Margin{}) {
		c.Margin = DefaultMargin
	}
	if c.Margin.Top < 0 || c.Margin.Right < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins must be non-negative")
	}
	if c.Margin.Left+c.Margin.Right >= c.Width {
		return errors.New(errors.ErrCodeInvalidConfig, "horizontal margins exceed width %g", c.Width)
	}
	if c.Margin.Top+c.Margin.Bottom >= c.Height {
		return errors.New(errors.ErrCodeInvalidConfig, "vertical margins exceed height %g", c.Height)
	}
	if c.BarPadding == nil {
		p := DefaultBarPadding
		c.BarPadding = &p
	}
	if *c.BarPadding < 0 || *c.BarPadding > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "bar_padding must be in [0, 1], got %g", *c.BarPadding)
	}
	if c.TotalLabel == "" {
		c.TotalLabel = DefaultTotalLabel
	}
	if c.TotalColor == "" {
		c.TotalColor = DefaultTotalColor
	}
	if err := errors.ValidateColor(c.TotalColor); err != nil {
		return err
	}
	if c.ScaleType == "" {
		c.ScaleType = ScaleAuto
	}
	if !ValidScaleTypes[c.ScaleType] {
		return errors.New(errors.ErrCodeInvalidScale, "invalid scale_type: %q (must be one of: auto, time, ordinal, linear)", c.ScaleType)
	}
	if c.Format == nil {
		c.Format = FormatNumber
	}
	return nil
}

// PlotWidth returns the horizontal extent of the plot area.
func (c Config) PlotWidth() float64 { return c.Width - c.Margin.Left - c.Margin.Right }

// PlotHeight returns the vertical extent of the plot area.
func (c Config) PlotHeight() float64 { return c.Height - c.Margin.Top - c.Margin.Bottom }
