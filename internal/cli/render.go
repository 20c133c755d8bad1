package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/cascade/pkg/io"
	"github.com/matzehuels/cascade/pkg/pipeline"
)

// renderFlags holds the command-line flags shared by render and layout.
type renderFlags struct {
	output     string
	formatsStr string
	style      string
	title      string
	width      float64
	height     float64
	stacked    bool
	showTotal  bool
	totalLabel string
	scaleType  string
	noCache    bool
	refresh    bool
}

// apply copies flag values into pipeline options, leaving definition
// values in place for flags the user did not set.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("title") {
		opts.Title = f.title
	}
	if cmd.Flags().Changed("width") {
		opts.Chart.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		opts.Chart.Height = f.height
	}
	if cmd.Flags().Changed("stacked") {
		opts.Chart.Stacked = f.stacked
	}
	if cmd.Flags().Changed("show-total") {
		opts.Chart.ShowTotal = f.showTotal
	}
	if cmd.Flags().Changed("total-label") {
		opts.Chart.TotalLabel = f.totalLabel
	}
	if cmd.Flags().Changed("scale") {
		opts.Chart.ScaleType = f.scaleType
	}
	if f.formatsStr != "" {
		opts.Formats = parseFormats(f.formatsStr)
	}
	if f.style != "" {
		opts.Style = f.style
	}
	opts.Refresh = f.refresh
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: default, minimal")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title (overrides definition)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "frame height")
	cmd.Flags().BoolVar(&f.stacked, "stacked", false, "stack segments instead of floating waterfall bars")
	cmd.Flags().BoolVar(&f.showTotal, "show-total", false, "append a grand-total bar")
	cmd.Flags().StringVar(&f.totalLabel, "total-label", "", "label for the grand-total bar")
	cmd.Flags().StringVar(&f.scaleType, "scale", "", "x scale type: auto (default), time, ordinal, linear")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

// renderCommand creates the render command: definition file in, chart
// artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [definition]",
		Short: "Render a chart definition to SVG, PNG, PDF, or JSON",
		Long: `Render a chart definition to one or more output formats.

The definition is a JSON or TOML file describing the chart's categories
and configuration. Layout geometry and rendered artifacts are cached
locally for faster subsequent runs.

When no definition file is given, an interactive picker lists the
definition files found in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			return c.runRender(cmd, input, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// resolveInput returns the definition path from args, or prompts with
// the interactive picker when none was given.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return pickDefinition(".")
}

func (c *CLI) runRender(cmd *cobra.Command, input string, flags *renderFlags) error {
	ctx := cmd.Context()

	def, err := chartio.ReadDefinition(input)
	if err != nil {
		return err
	}
	opts := def.Options()
	flags.apply(cmd, &opts)

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts:  result.Artifacts,
		formats:    opts.Formats,
		input:      input,
		output:     flags.output,
		bars:       result.Stats.BarCount,
		connectors: result.Stats.ConnectorCount,
		cacheHit:   result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}

// artifactWriteParams bundles the arguments for writeArtifacts.
type artifactWriteParams struct {
	artifacts  map[string][]byte
	formats    []string
	input      string
	output     string
	bars       int
	connectors int
	cacheHit   bool
}

// writeArtifacts writes each rendered artifact to disk and prints a
// summary. Single-format runs honor the output path exactly; multiple
// formats share a base path and get per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	printSuccess("Chart rendered")

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(p.output, p.input, format, len(p.formats))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printStats(p.bars, p.connectors, p.cacheHit)
	return nil
}

// outputPath derives the file path for one artifact. With a single
// requested format an explicit output path is used verbatim; otherwise
// the format extension is appended to the base path.
func outputPath(output, input, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input
// paths. An empty output falls back to the input with its extension
// stripped; an output carrying a known format extension has that
// extension stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
