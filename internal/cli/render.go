package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chartwright/chartwright/internal/chartfile"
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// Flags override the corresponding fields of the chart file.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "png", "pdf"
	kind    string   // chart type override
	theme   string   // theme override
	style   string   // style override
	title   string   // title override
	width   int      // frame width override
	height  int      // frame height override
	locator string   // data locator override
	scale   float64  // PNG scale factor
	refresh bool     // bypass the series cache
	noCache bool     // disable caching entirely
}

// newRenderCmd creates the render command for producing chart artifacts.
// It reads a chart file (TOML or JSON) or takes a locator directly, resolves
// the series, and writes one file per requested format.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart file to SVG, PNG, or PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = splitList(formatsStr)
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" && opts.locator == "" {
				return fmt.Errorf("render needs a chart file argument or --data locator")
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.kind, "type", "t", "", "chart type: bar, horizontalBar, line, area, pie, donut, radar, gauge, heatmap, waterfall")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme: lite (default), dark, ocean, forest")
	cmd.Flags().StringVar(&opts.style, "style", "", "corner style: default, sharp, soft, rounded")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().IntVar(&opts.width, "width", 0, "frame width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "frame height")
	cmd.Flags().StringVar(&opts.locator, "data", "", "data locator (http(s), mongodb, or file path)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "refetch the series even if cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// splitList parses a comma-separated flag into a slice. Empty input yields
// nil so the chart file (or the pipeline default) decides.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats, keyed by extension.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .png, .pdf), that extension is stripped. This is
// used when generating multiple files (e.g., revenue.svg, revenue.png).
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return "chart"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath builds the path for one rendered format. A single format with an
// explicit matching output path is written exactly there; everything else
// gets base.format.
func outputPath(base, output, format string, formatCount int) string {
	if formatCount == 1 && output != "" && strings.TrimPrefix(filepath.Ext(output), ".") == format {
		return output
	}
	return fmt.Sprintf("%s.%s", base, format)
}

// runRender loads the chart document, applies flag overrides, executes the
// pipeline, and writes the rendered artifacts.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	req := pipeline.Request{Scale: opts.scale, Refresh: opts.refresh}
	if input != "" {
		logger.Infof("Rendering %s", input)
		doc, err := chartfile.Load(input)
		if err != nil {
			return err
		}
		req.Locator = doc.Locator
		req.Data = doc.Data
		req.Options = doc.Chart
		req.Formats = doc.Formats
	}
	applyOverrides(&req, opts)

	runner, err := newRunner(opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	var sp *Spinner
	if req.Data == nil && req.Locator != "" {
		sp = newSpinnerWithContext(ctx, "Loading "+req.Locator)
		sp.Start()
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, req)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d output(s)", len(result.Artifacts)))

	base := basePath(opts.output, input)
	written := make([]string, 0, len(req.Formats))
	for _, format := range req.Formats {
		path := outputPath(base, opts.output, format, len(req.Formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Rendered %s chart", req.Options.GetType())
	for _, p := range written {
		printFile(p)
	}
	printStats(result.Stats.EntryCount, req.Formats, result.CacheInfo.RenderHit)
	return nil
}

// applyOverrides merges command-line flags over the chart file settings.
func applyOverrides(req *pipeline.Request, opts *renderOpts) {
	if opts.locator != "" {
		req.Locator = opts.locator
		req.Data = nil
	}
	if len(opts.formats) > 0 {
		req.Formats = opts.formats
	}
	if len(req.Formats) == 0 {
		req.Formats = []string{"svg"}
	}
	req.Options = req.Options.Merge(chart.Options{
		Type:   chart.Kind(opts.kind),
		Theme:  opts.theme,
		Style:  opts.style,
		Title:  opts.title,
		Width:  opts.width,
		Height: opts.height,
	})
}
