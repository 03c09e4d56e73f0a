// Package core defines the pipeline types and interfaces for recipegrab.
// Each stage of the grab pipeline (fetch → extract → normalize → render)
// is a small interface so it can be swapped or stubbed in tests.
package core

import (
	"context"
	"errors"
)

var (
	// ErrNoRecipe is returned when a page carries no usable recipe data.
	ErrNoRecipe = errors.New("no recipe found on page")
	// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("not a valid url")
	// ErrNothingChecked is returned when a recipe note has no checked ingredients.
	ErrNothingChecked = errors.New("no checked ingredients found")
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	// URL is the final URL after redirects.
	URL        string
	StatusCode int
	HTML       string
}

// Recipe is the canonical, template-friendly shape of a schema.org Recipe.
// After normalization Image is always a plain string and RecipeIngredient
// is always a slice.
type Recipe struct {
	Name               string        `json:"name"`
	URL                string        `json:"url"`
	Image              string        `json:"image"`
	Description        string        `json:"description,omitempty"`
	Author             string        `json:"author,omitempty"`
	DatePublished      string        `json:"datePublished,omitempty"`
	DateModified       string        `json:"dateModified,omitempty"`
	RecipeCategory     string        `json:"recipeCategory,omitempty"`
	RecipeCuisine      string        `json:"recipeCuisine,omitempty"`
	RecipeYield        string        `json:"recipeYield,omitempty"`
	Keywords           string        `json:"keywords,omitempty"`
	PrepTime           string        `json:"prepTime,omitempty"`
	CookTime           string        `json:"cookTime,omitempty"`
	TotalTime          string        `json:"totalTime,omitempty"`
	RecipeIngredient   []string      `json:"recipeIngredient"`
	RecipeInstructions []Instruction `json:"recipeInstructions"`
}

// Instruction is one entry of a recipe's instructions: a plain step,
// a section with nested steps, or a step carrying an image.
type Instruction struct {
	Name            string        `json:"name,omitempty"`
	Text            string        `json:"text,omitempty"`
	Image           string        `json:"image,omitempty"`
	ItemListElement []Instruction `json:"itemListElement,omitempty"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the embedded structured-data blocks out of raw HTML.
type Extractor interface {
	Extract(html string) ([]string, error)
}

// Normalizer turns structured-data blocks into canonical recipes.
// A page without recipes yields an empty slice, never an error.
type Normalizer interface {
	Normalize(blocks []string, pageURL string) []Recipe
}

// Renderer converts a normalized recipe into a final output format.
type Renderer interface {
	Render(recipe Recipe) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// TextStore reads and writes plain text documents such as recipe notes
// and the shopping list.
type TextStore interface {
	// Read returns the document content; exists is false when there is no
	// document at path.
	Read(path string) (content string, exists bool, err error)
	Write(path string, content string) error
}
