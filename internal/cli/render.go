package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoresheet/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config        string // config file path, empty for the default location
	font          string // metadata font override
	fontSize      float64
	barsPerColumn int
	noMetadata    bool
	noCache       bool
	refresh       bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <input-chart> <output-image>",
		Short: "Render a chart to a PNG score sheet",
		Long: `Render a chart to a PNG score sheet.

Bars run bottom to top in columns of --bars-per-column bars each. Settings
are read from the config file first and overridden by flags.`,
		Args:              exactArgsWithUsage(2),
		ValidArgsFunction: positionalFiles(chartExts, imageExts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], args[1], cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default $XDG_CONFIG_HOME/scoresheet/config.toml)")
	cmd.Flags().StringVar(&opts.font, "font", "", "metadata font: a TrueType/OpenType path or an installed font file name")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "metadata font size in pixels")
	cmd.Flags().IntVar(&opts.barsPerColumn, "bars-per-column", 0, "bars per column (default from config, 4)")
	cmd.Flags().BoolVar(&opts.noMetadata, "no-metadata", false, "omit the title and BPM header")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered sheet cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached sheet exists")
	_ = cmd.MarkFlagFilename("config", configExts...)
	_ = cmd.MarkFlagFilename("font", fontExts...)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, cmd *cobra.Command, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	popts := pipeline.Options{
		Input:      input,
		Output:     output,
		Layout:     cfg.Layout,
		Font:       cfg.Font,
		FontSize:   cfg.FontSize,
		NoMetadata: opts.noMetadata,
		Refresh:    opts.refresh,
		Logger:     logger,
	}
	if cmd.Flags().Changed("font") {
		popts.Font = opts.font
	}
	if cmd.Flags().Changed("font-size") {
		popts.FontSize = opts.fontSize
	}
	if cmd.Flags().Changed("bars-per-column") {
		popts.Layout.BarsPerColumn = opts.barsPerColumn
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("render finished", "bars", res.Stats.Bars, "cached", res.CacheInfo.RenderHit)

	printSuccess(c.out, "Rendered %s", res.Document.MetaData.Title)
	printStats(c.out, res.Stats.Bars, res.Stats.Columns, res.CacheInfo.RenderHit)
	printFile(c.out, output)
	return nil
}

// exactArgsWithUsage is cobra.ExactArgs that also prints the usage on a
// wrong argument count, which SilenceUsage would otherwise suppress.
func exactArgsWithUsage(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			_ = cmd.Usage()
			return err
		}
		return nil
	}
}
