package sink

import (
	"encoding/json"

	"github.com/matzehuels/cascade/pkg/chart/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title string
	style string
}

// WithJSONTitle records the chart title in the JSON output.
func WithJSONTitle(t string) JSONOption { return func(r *jsonRenderer) { r.title = t } }

// WithJSONStyle records the style name in the JSON output so a
// re-render from the exported geometry reproduces the same visual.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Title string `json:"title,omitempty"`
	Style string `json:"style,omitempty"`
	*layout.Geometry
}

// RenderJSON exports the geometry as indented JSON. The output embeds
// the full geometry snapshot, so [layout.UnmarshalGeometry] can read it
// back for round-trip rendering.
func RenderJSON(g *layout.Geometry, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Title:    r.title,
		Style:    r.style,
		Geometry: g,
	}
	return json.MarshalIndent(out, "", "  ")
}
