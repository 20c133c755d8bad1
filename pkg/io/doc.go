// Package io provides file import and export for chart definitions and
// computed geometry.
//
// # Definitions
//
// A definition file describes a chart: its title, categories with their
// stacked segments, layout configuration, and render options. Two
// formats are supported, selected by file extension:
//
// JSON:
//
//	{
//	  "title": "Quarterly Revenue",
//	  "categories": [
//	    {"label": "Q1", "stacks": [{"value": 45, "color": "#3498db"}]},
//	    {"label": "Q2", "stacks": [{"value": 30, "color": "#f39c12"}]}
//	  ],
//	  "chart": {"show_total": true}
//	}
//
// TOML:
//
//	title = "Quarterly Revenue"
//
//	[chart]
//	show_total = true
//
//	[[categories]]
//	label = "Q1"
//	stacks = [{value = 45.0, color = "#3498db"}]
//
// Use [ReadDefinition] to load a definition from a path, then
// [Definition.Options] to turn it into pipeline options:
//
//	def, err := io.ReadDefinition("revenue.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, def.Options())
//
// # Geometry
//
// [ExportGeometry] and [ImportGeometry] round-trip computed geometry
// snapshots through JSON files, so external tools can consume layout
// output and previously computed charts can be re-rendered without
// another layout pass.
package io
