// Package sink provides output format renderers for chart geometry.
//
// # Overview
//
// A "sink" transforms a computed [layout.Geometry] into a final output
// format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics
//   - JSON: Geometry export for external tools
//   - PNG: Raster image output, drawn natively
//   - PDF: Print-ready output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces a self-contained SVG with:
//
//   - Value-axis ticks and horizontal gridlines
//   - Floating bars (or stacked segments) in their category colors
//   - Dashed connectors carrying the running total between bars
//   - Cumulative value labels above or below each bar
//
// Basic usage:
//
//	svg := sink.RenderSVG(g,
//	    sink.WithTitle("Quarterly Revenue"),
//	    sink.WithStyle(sink.StyleMinimal),
//	)
//
// Output is deterministic: the same geometry and options always produce
// byte-identical SVG.
//
// # JSON Output
//
// [RenderJSON] exports the complete geometry as JSON, enabling:
//
//   - Integration with external renderers and animation frontends
//   - Caching of layout computations
//   - Round-trip rendering via [layout.UnmarshalGeometry]
//
// # PNG and PDF Output
//
// [RenderPNG] rasterizes the geometry directly with a 2D drawing
// context, no external tools required. Text labels are skipped when no
// system font can be located.
//
// [RenderPDF] renders through SVG and converts via [render.ToPDF],
// which requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Geometry]: github.com/matzehuels/cascade/pkg/chart/layout.Geometry
// [layout.UnmarshalGeometry]: github.com/matzehuels/cascade/pkg/chart/layout.UnmarshalGeometry
// [render.ToPDF]: github.com/matzehuels/cascade/pkg/render.ToPDF
package sink
