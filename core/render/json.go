// Package render: JSON renderer.
// Emits the normalized recipe as indented JSON using schema.org field
// names. The same encoding feeds the JSON field of templates.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/recipegrab/core"
)

// JSONRenderer produces the normalized recipe as JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the recipe.
func (r *JSONRenderer) Render(recipe core.Recipe) ([]byte, error) {
	return MarshalRecipe(recipe)
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// MarshalRecipe encodes recipe as two-space indented JSON.
func MarshalRecipe(recipe core.Recipe) ([]byte, error) {
	if recipe.RecipeIngredient == nil {
		recipe.RecipeIngredient = []string{}
	}
	if recipe.RecipeInstructions == nil {
		recipe.RecipeInstructions = []core.Instruction{}
	}
	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}
