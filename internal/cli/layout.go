package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/cascade/pkg/io"
)

// layoutCommand creates the layout command for computing chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "layout [definition]",
		Short: "Compute chart geometry from a definition file",
		Long: `Compute chart geometry from a definition file.

The layout command takes a JSON or TOML chart definition and computes
bar rectangles, connectors, ticks, and label positions without
rendering. The output is a geometry JSON file (same format as
'render -f json') that can be rendered with the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, input string, flags *renderFlags) error {
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

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	g, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := flags.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := chartio.ExportGeometry(g, outputPath); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(g.Bars), len(g.Connectors), cacheHit)
	printNewline()
	printNextStep("Render", "cascade visualize "+outputPath)

	return nil
}
