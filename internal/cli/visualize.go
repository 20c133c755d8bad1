package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/cascade/pkg/io"
	"github.com/matzehuels/cascade/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a
// precomputed geometry file.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		style      string
		title      string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [geometry.json]",
		Short: "Render chart output from computed geometry",
		Long: `Render chart output from computed geometry.

The visualize command takes a geometry JSON file (produced by 'layout')
and renders it to SVG, PNG, or PDF. The geometry contains all position
information, so this step is purely about drawing.

Use 'render' as a shortcut to go directly from a definition file to
visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Title:   title,
				Formats: parseFormats(formatsStr),
				Style:   style,
			}
			opts.SetRenderDefaults()
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runVisualize(cmd, args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&style, "style", "", "visual style: default, minimal")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runVisualize(cmd *cobra.Command, input string, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()

	g, err := chartio.ImportGeometry(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts:  artifacts,
		formats:    opts.Formats,
		input:      input,
		output:     output,
		bars:       len(g.Bars),
		connectors: len(g.Connectors),
		cacheHit:   cacheHit,
	})
}
