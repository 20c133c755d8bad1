package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/cascade/pkg/chart/layout"
)

// Style names for SVG and PNG rendering.
const (
	// StyleDefault draws the full chart: gridlines, axis ticks,
	// category labels, value labels, and an optional title.
	StyleDefault = "default"

	// StyleMinimal draws bars, connectors, and value labels only.
	StyleMinimal = "minimal"
)

// Palette for non-data ink.
const (
	colorBackground = "#ffffff"
	colorGrid       = "#ecf0f1"
	colorAxis       = "#2c3e50"
	colorTickText   = "#7f8c8d"
	colorConnector  = "#7f8c8d"
	colorLabel      = "#2c3e50"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style string
	title string
}

// WithStyle selects the visual style ([StyleDefault] or [StyleMinimal]).
func WithStyle(s string) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle draws a title centered in the top margin.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG renders geometry as a self-contained SVG document. The
// output is deterministic: bars, connectors, and ticks are emitted in
// the order the layout produced them.
func RenderSVG(g *layout.Geometry, opts ...SVGOption) []byte {
	r := svgRenderer{style: StyleDefault}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.Width, g.Height, g.Width, g.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		g.Width, g.Height, colorBackground)

	if r.style != StyleMinimal {
		renderGrid(&buf, g)
	}
	renderBars(&buf, g)
	renderConnectors(&buf, g)
	renderValueLabels(&buf, g)
	if r.style != StyleMinimal {
		renderCategoryLabels(&buf, g)
		if r.title != "" {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="20" text-anchor="middle" font-family="sans-serif" font-size="16" font-weight="bold" fill="%s">%s</text>`+"\n",
				g.Width/2, colorLabel, escapeXML(r.title))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, g *layout.Geometry) {
	left := g.Margin.Left
	right := g.Width - g.Margin.Right

	for _, t := range g.Ticks {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			left, t.Y, right, t.Y, colorGrid)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="sans-serif" font-size="11" fill="%s">%s</text>`+"\n",
			left-8, t.Y+4, colorTickText, escapeXML(t.Label))
	}

	// Axis line at the zero baseline
	base := g.Baseline()
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		left, base, right, base, colorAxis)
}

func renderBars(buf *bytes.Buffer, g *layout.Geometry) {
	for _, bar := range g.Bars {
		for _, rect := range bar.Rects {
			fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
				rect.X, rect.Y, rect.Width, rect.Height, rect.Color)
		}
	}
}

func renderConnectors(buf *bytes.Buffer, g *layout.Geometry) {
	for _, c := range g.Connectors {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
			c.X1, c.Y1, c.X2, c.Y2, colorConnector)
	}
}

func renderValueLabels(buf *bytes.Buffer, g *layout.Geometry) {
	for _, bar := range g.Bars {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
			bar.LabelPos.X, bar.LabelPos.Y, colorLabel, escapeXML(bar.LabelText))
	}
}

func renderCategoryLabels(buf *bytes.Buffer, g *layout.Geometry) {
	y := g.Height - g.Margin.Bottom + 16
	for _, bar := range g.Bars {
		if len(bar.Rects) == 0 {
			continue
		}
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
			bar.Rects[0].CenterX(), y, colorLabel, escapeXML(bar.Label))
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
