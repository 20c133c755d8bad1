package pipeline

import (
	"github.com/matzehuels/cascade/pkg/chart/layout"
	"github.com/matzehuels/cascade/pkg/errors"
	"github.com/matzehuels/cascade/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(g *layout.Geometry, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(g, svgOptions(opts)...)
		case FormatPNG:
			data, err = sink.RenderPNG(g,
				sink.WithPNGStyle(opts.Style),
				sink.WithPNGTitle(opts.Title))
		case FormatPDF:
			data, err = sink.RenderPDF(g, sink.WithPDFSVGOptions(svgOptions(opts)...))
		case FormatJSON:
			data, err = sink.RenderJSON(g,
				sink.WithJSONTitle(opts.Title),
				sink.WithJSONStyle(opts.Style))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	return []sink.SVGOption{
		sink.WithStyle(opts.Style),
		sink.WithTitle(opts.Title),
	}
}
