// Package normalize implements the Normalizer interface.
// It reduces the schema.org structured data found on a page (single
// objects, top-level arrays, @graph containers) into canonical recipes
// whose shape is stable enough for templating.
package normalize

import (
	"encoding/json"

	"github.com/gaurav-prasanna/recipegrab/core"
)

// Kind tags a decoded JSON value.
type Kind int

const (
	Scalar Kind = iota
	Object
	Array
)

// Node is a typed view over a decoded JSON value.
type Node struct {
	Kind   Kind
	Fields map[string]any
	Items  []any
	Value  any
}

// NodeOf classifies a value produced by encoding/json.
func NodeOf(v any) Node {
	switch t := v.(type) {
	case map[string]any:
		return Node{Kind: Object, Fields: t}
	case []any:
		return Node{Kind: Array, Items: t}
	default:
		return Node{Kind: Scalar, Value: t}
	}
}

// recipeCollector walks structured data and records every Recipe object
// in document order.
type recipeCollector struct {
	found []map[string]any
}

func (c *recipeCollector) visit(n Node) {
	switch n.Kind {
	case Array:
		for _, item := range n.Items {
			c.visit(NodeOf(item))
		}
	case Object:
		if graph := NodeOf(n.Fields["@graph"]); graph.Kind == Array {
			c.visit(graph)
			return
		}
		if isRecipe(n.Fields) {
			c.found = append(c.found, n.Fields)
		}
	}
}

// isRecipe reports whether the object's @type is "Recipe" or an array
// containing it.
func isRecipe(obj map[string]any) bool {
	t := NodeOf(obj["@type"])
	switch t.Kind {
	case Scalar:
		s, _ := t.Value.(string)
		return s == "Recipe"
	case Array:
		for _, item := range t.Items {
			if s, _ := item.(string); s == "Recipe" {
				return true
			}
		}
	}
	return false
}

// RecipeNormalizer converts ld+json blocks into canonical recipes.
type RecipeNormalizer struct {
	// CleanHTML converts HTML fragments inside description and
	// instruction text into Markdown.
	CleanHTML bool
}

// New creates a RecipeNormalizer.
func New(cleanHTML bool) *RecipeNormalizer {
	return &RecipeNormalizer{CleanHTML: cleanHTML}
}

// Normalize decodes every block and returns the recipes they contain, in
// document order, each stamped with pageURL. A block that is not valid
// JSON makes the whole page unusable and yields no recipes.
func (n *RecipeNormalizer) Normalize(blocks []string, pageURL string) []core.Recipe {
	var c recipeCollector
	for _, block := range blocks {
		var v any
		if err := json.Unmarshal([]byte(block), &v); err != nil {
			return nil
		}
		c.visit(NodeOf(v))
	}

	recipes := make([]core.Recipe, 0, len(c.found))
	for _, obj := range c.found {
		recipes = append(recipes, n.recipe(obj, pageURL))
	}
	return recipes
}

func (n *RecipeNormalizer) recipe(obj map[string]any, pageURL string) core.Recipe {
	r := core.Recipe{
		URL:                pageURL,
		Image:              Image(obj["image"]),
		Description:        n.cleanText(Text(obj["description"])),
		Author:             Text(obj["author"]),
		DatePublished:      Text(obj["datePublished"]),
		DateModified:       Text(obj["dateModified"]),
		RecipeCategory:     Text(obj["recipeCategory"]),
		RecipeCuisine:      Text(obj["recipeCuisine"]),
		RecipeYield:        Text(obj["recipeYield"]),
		Keywords:           Text(obj["keywords"]),
		PrepTime:           Text(obj["prepTime"]),
		CookTime:           Text(obj["cookTime"]),
		TotalTime:          Text(obj["totalTime"]),
		RecipeIngredient:   Ingredients(obj),
		RecipeInstructions: n.instructions(obj["recipeInstructions"]),
	}
	if name := Text(obj["name"]); name != "" {
		r.Name = CleanTitle(name)
	}
	return r
}
