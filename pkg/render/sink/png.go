package sink

import (
	"bytes"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	"github.com/matzehuels/cascade/pkg/chart/layout"
	"github.com/matzehuels/cascade/pkg/errors"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	style string
	title string
}

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGStyle selects the visual style ([StyleDefault] or [StyleMinimal]).
func WithPNGStyle(s string) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithPNGTitle draws a title centered in the top margin.
func WithPNGTitle(t string) PNGOption {
	return func(r *pngRenderer) { r.title = t }
}

// fontCandidates are tried in order when locating a system font for
// label text. Rendering proceeds without text if none is found.
var fontCandidates = []string{
	"DejaVuSans.ttf",
	"Arial.ttf",
	"Helvetica.ttc",
	"FreeSans.ttf",
}

// RenderPNG rasterizes the geometry natively. Unlike PDF output this
// needs no external tools, but text labels are skipped when no usable
// system font is found.
func RenderPNG(g *layout.Geometry, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, style: StyleDefault}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(int(g.Width*r.scale), int(g.Height*r.scale))
	dc.Scale(r.scale, r.scale)

	dc.SetHexColor(colorBackground)
	dc.Clear()

	full := r.style != StyleMinimal
	if full {
		drawGrid(dc, g)
	}
	drawBars(dc, g)
	drawConnectors(dc, g)

	if path := findFont(); path != "" {
		drawText(dc, g, r, path)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func findFont() string {
	for _, name := range fontCandidates {
		if path, err := findfont.Find(name); err == nil {
			return path
		}
	}
	return ""
}

func drawGrid(dc *gg.Context, g *layout.Geometry) {
	left := g.Margin.Left
	right := g.Width - g.Margin.Right

	dc.SetHexColor(colorGrid)
	dc.SetLineWidth(1)
	for _, t := range g.Ticks {
		dc.DrawLine(left, t.Y, right, t.Y)
		dc.Stroke()
	}

	dc.SetHexColor(colorAxis)
	base := g.Baseline()
	dc.DrawLine(left, base, right, base)
	dc.Stroke()
}

func drawBars(dc *gg.Context, g *layout.Geometry) {
	for _, bar := range g.Bars {
		for _, rect := range bar.Rects {
			dc.SetHexColor(fillColor(rect.Color))
			dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
			dc.Fill()
		}
	}
}

// fillColor resolves CSS color keywords to hex. gg's SetHexColor only
// parses hex strings and draws anything else as black.
func fillColor(c string) string {
	if strings.HasPrefix(c, "#") {
		return c
	}
	if hex, ok := errors.NamedColorHex(c); ok {
		return hex
	}
	return c
}

func drawConnectors(dc *gg.Context, g *layout.Geometry) {
	dc.SetHexColor(colorConnector)
	dc.SetLineWidth(1)
	dc.SetDash(4, 3)
	for _, c := range g.Connectors {
		dc.DrawLine(c.X1, c.Y1, c.X2, c.Y2)
		dc.Stroke()
	}
	dc.SetDash()
}

func drawText(dc *gg.Context, g *layout.Geometry, r pngRenderer, fontPath string) {
	full := r.style != StyleMinimal

	if err := dc.LoadFontFace(fontPath, 12); err != nil {
		return
	}
	dc.SetHexColor(colorLabel)
	for _, bar := range g.Bars {
		dc.DrawStringAnchored(bar.LabelText, bar.LabelPos.X, bar.LabelPos.Y, 0.5, 0)
	}

	if !full {
		return
	}

	// Category labels under the plot area
	y := g.Height - g.Margin.Bottom + 16
	for _, bar := range g.Bars {
		if len(bar.Rects) == 0 {
			continue
		}
		dc.DrawStringAnchored(bar.Label, bar.Rects[0].CenterX(), y, 0.5, 0)
	}

	// Tick labels right-aligned against the plot area
	if err := dc.LoadFontFace(fontPath, 11); err == nil {
		dc.SetHexColor(colorTickText)
		for _, t := range g.Ticks {
			dc.DrawStringAnchored(t.Label, g.Margin.Left-8, t.Y, 1, 0.5)
		}
	}

	if r.title != "" {
		if err := dc.LoadFontFace(fontPath, 16); err == nil {
			dc.SetHexColor(colorLabel)
			dc.DrawStringAnchored(r.title, g.Width/2, 20, 0.5, 0.5)
		}
	}
}
