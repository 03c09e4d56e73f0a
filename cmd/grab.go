// Package cmd: grab command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize → render → write.
//
// It handles flag validation, renderer selection and the --all mode.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/gaurav-prasanna/recipegrab/core/extract"
	"github.com/gaurav-prasanna/recipegrab/core/fetch"
	"github.com/gaurav-prasanna/recipegrab/core/normalize"
	"github.com/gaurav-prasanna/recipegrab/core/output"
	"github.com/gaurav-prasanna/recipegrab/core/pipeline"
	"github.com/gaurav-prasanna/recipegrab/core/render"
	"github.com/gaurav-prasanna/recipegrab/crawl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagAll       bool
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagOutputDir string
)

var grabCmd = &cobra.Command{
	Use:   "grab <url>",
	Short: "Save the recipes of a web page as notes",
	Long: `Grab fetches a web page, reads its schema.org recipe data and writes one
note per recipe found. Markdown notes use the configured template.

Examples:
  recipegrab grab https://example.com/best-tomato-soup
  recipegrab grab https://example.com/best-tomato-soup --json --output_dir ./out
  recipegrab grab https://example.com --all --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGrab,
}

func init() {
	rootCmd.AddCommand(grabCmd)

	grabCmd.Flags().BoolVar(&flagAll, "all", false, "Grab every recipe page discovered on the site")

	// Output format flags (mutually exclusive).
	grabCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown note (default)")
	grabCmd.Flags().BoolVar(&flagJSON, "json", false, "Output normalized recipe JSON")
	grabCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	grabCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: the configured folder)")
}

func runGrab(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	if err := validateFlags(); err != nil {
		return err
	}
	if _, err := fetch.ValidateURL(rawURL); err != nil {
		return fmt.Errorf("%w (must include scheme, e.g. https://example.com)", err)
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	dir := flagOutputDir
	if dir == "" {
		dir = cfg.Folder
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	p := newPipeline(fetcher)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagAll {
		return runAll(ctx, rawURL, fetcher, p, renderer, writer)
	}
	return runOnly(ctx, rawURL, p, renderer, writer)
}

func newPipeline(fetcher core.Fetcher) *pipeline.Pipeline {
	return pipeline.New(fetcher, extract.New(), normalize.New(cfg.CleanHTML))
}

// runOnly grabs a single URL.
func runOnly(ctx context.Context, rawURL string, p *pipeline.Pipeline, renderer core.Renderer, writer *output.Writer) error {
	paths, err := processURL(ctx, rawURL, p, renderer, writer)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}
	return nil
}

// runAll discovers the site's pages and grabs each one. Pages without
// recipes are skipped.
func runAll(
	ctx context.Context,
	rawURL string,
	fetcher core.Fetcher,
	p *pipeline.Pipeline,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	fmt.Fprintf(os.Stdout, "Discovering pages from %s...\n", rawURL)

	urls, err := crawl.New(fetcher, cfg.Crawl.MaxPages, log).Discover(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Found %d pages to process\n", len(urls))

	var written, errCount int
	for i, pageURL := range urls {
		paths, err := processURL(ctx, pageURL, p, renderer, writer)
		if err != nil {
			if errors.Is(err, core.ErrNoRecipe) {
				log.Debug("no recipe on page", zap.String("url", pageURL))
				continue
			}
			log.Warn("grab failed", zap.Int("page", i+1), zap.String("url", pageURL), zap.Error(err))
			errCount++
			continue
		}
		for _, path := range paths {
			fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
		}
		written += len(paths)
	}

	fmt.Fprintf(os.Stdout, "\n%d recipes written from %d pages\n", written, len(urls))
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d pages failed\n", errCount, len(urls))
	}
	return nil
}

// processURL grabs rawURL and writes one file per recipe.
func processURL(ctx context.Context, rawURL string, p *pipeline.Pipeline, renderer core.Renderer, writer *output.Writer) ([]string, error) {
	rendered, err := p.Render(ctx, rawURL, renderer)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(rendered))
	for _, r := range rendered {
		if cfg.Debug {
			if raw, err := render.MarshalRecipe(r.Recipe); err == nil {
				log.Debug("normalized recipe", zap.String("url", rawURL), zap.ByteString("recipe", raw))
			}
		}
		path, err := writer.WriteRecipe(r.Recipe.Name, r.Data, renderer.Extension())
		if err != nil {
			return paths, fmt.Errorf("write: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags; Markdown when none is.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		md, err := newMarkdownRenderer()
		if err != nil {
			return nil, err
		}
		return render.NewPDFRenderer(md), nil
	default:
		md, err := newMarkdownRenderer()
		if err != nil {
			return nil, err
		}
		return md, nil
	}
}

// newMarkdownRenderer uses the configured template file, or the built-in
// template when none is set.
func newMarkdownRenderer() (*render.MarkdownRenderer, error) {
	tmpl := ""
	if cfg.TemplateFile != "" {
		data, err := os.ReadFile(cfg.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		tmpl = string(data)
	}
	return render.NewMarkdownRenderer(tmpl, cfg.DecodeEntities)
}
