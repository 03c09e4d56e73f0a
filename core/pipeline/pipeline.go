// Package pipeline wires the grab stages together:
// fetch → extract → normalize, ready for a renderer.
package pipeline

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/recipegrab/core"
)

// Pipeline turns a page URL into normalized recipes.
type Pipeline struct {
	Fetcher    core.Fetcher
	Extractor  core.Extractor
	Normalizer core.Normalizer
}

// New creates a Pipeline from its stages.
func New(fetcher core.Fetcher, extractor core.Extractor, normalizer core.Normalizer) *Pipeline {
	return &Pipeline{Fetcher: fetcher, Extractor: extractor, Normalizer: normalizer}
}

// Recipes fetches rawURL and returns every recipe on the page, stamped
// with the final URL after redirects. A page without recipe data returns
// core.ErrNoRecipe.
func (p *Pipeline) Recipes(ctx context.Context, rawURL string) ([]core.Recipe, error) {
	result, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	blocks, err := p.Extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	recipes := p.Normalizer.Normalize(blocks, result.URL)
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrNoRecipe, result.URL)
	}
	return recipes, nil
}

// Rendered is one recipe rendered to bytes.
type Rendered struct {
	Recipe core.Recipe
	Data   []byte
}

// Render runs Recipes and renders each recipe with r.
func (p *Pipeline) Render(ctx context.Context, rawURL string, r core.Renderer) ([]Rendered, error) {
	recipes, err := p.Recipes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	out := make([]Rendered, 0, len(recipes))
	for _, recipe := range recipes {
		data, err := r.Render(recipe)
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", recipe.Name, err)
		}
		out = append(out, Rendered{Recipe: recipe, Data: data})
	}
	return out, nil
}
