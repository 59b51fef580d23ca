package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radarhq/techradar/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "png", "pdf", "json", "csv"
	sample   bool     // render the built-in sample dataset
	taxonomy string   // optional taxonomy TOML file
	section  string   // render the per-section detail view
	width    int      // canvas width in pixels
	height   int      // canvas height in pixels
	scale    float64  // PNG scale factor
	title    string   // chart heading
	refresh  bool     // recompute even when cached
	noCache  bool     // disable the artifact cache entirely
}

// renderCommand creates the render command for generating radar charts.
//
// Default settings:
//   - width: 800px, height: 800px
//   - format: svg
//   - scale: 2.0 (PNG)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a radar dataset to chart and data outputs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)

			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" && !opts.sample {
				return fmt.Errorf("provide an input file or pass --sample")
			}

			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, csv (comma-separated)")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "render the built-in sample dataset")
	cmd.Flags().StringVar(&opts.taxonomy, "taxonomy", "", "taxonomy TOML file (defaults to the built-in sections and rings)")
	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "render the detail view for one section")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "canvas width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "canvas height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart heading")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender executes the pipeline and writes each artifact to disk.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Rendering radar")
	spin.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:        input,
		UseSample:    opts.sample,
		TaxonomyPath: opts.taxonomy,
		Width:        opts.width,
		Height:       opts.height,
		Section:      opts.section,
		Formats:      opts.formats,
		Scale:        opts.scale,
		Title:        opts.title,
		Refresh:      opts.refresh,
		Logger:       logger,
	})
	if err != nil {
		spin.StopWithError("Render failed")
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))
	prog.done("render complete")

	base := basePath(opts.output, input, opts.sample)
	for _, format := range opts.formats {
		path := outputPath(base, opts.output, format, len(opts.formats))
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	printStats(result.Stats.ItemCount, result.Stats.SkippedCount, result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path from the output flag and input file.
// If output is empty, it strips the extension from input (or uses "radar"
// for the sample dataset). If output carries a known format extension, that
// extension is stripped.
func basePath(output, input string, sample bool) string {
	if output == "" {
		if sample || input == "" {
			return "radar"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, f := range pipeline.ValidFormats {
		if ext == f {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// outputPath builds the artifact path for one format. With a single format
// and an explicit output flag, the flag is used verbatim.
func outputPath(base, output, format string, formatCount int) string {
	if formatCount == 1 && output != "" {
		return output
	}
	return base + "." + format
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
