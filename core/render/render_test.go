package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

func sampleRecipe() core.Recipe {
	return core.Recipe{
		Name:             "Dumplings",
		URL:              "https://example.com/dumplings",
		Image:            "https://example.com/d.jpg",
		Description:      "Soft &amp; chewy.",
		Author:           "Jane Doe",
		DatePublished:    "2024-05-01",
		RecipeCategory:   "Dinner",
		RecipeIngredient: []string{"2 cups flour", "1 cup water"},
		RecipeInstructions: []core.Instruction{
			{Name: "Dough", ItemListElement: []core.Instruction{{Text: "Mix."}, {Text: "Knead."}}},
			{Text: "Boil."},
		},
	}
}

func TestMarkdownRenderer_DefaultTemplate(t *testing.T) {
	r, err := newMarkdownRenderer("", true, fixedNow)
	require.NoError(t, err)

	out, err := r.Render(sampleRecipe())
	require.NoError(t, err)
	md := string(out)

	assert.Contains(t, md, "date_added: 2026-03-14 09:30\n")
	assert.Contains(t, md, "created: 2024-05-01 00:00\n")
	assert.Contains(t, md, "author: Jane Doe\n")
	assert.Contains(t, md, "# [Dumplings](https://example.com/dumplings)\n")
	assert.Contains(t, md, "Soft & chewy.")
	assert.Contains(t, md, "- [ ] 2 cups flour\n- [ ] 1 cup water\n")
	assert.Contains(t, md, "#### Dough\n- Mix.\n- Knead.\n- Boil.\n")
	assert.Equal(t, ".md", r.Extension())
}

func TestMarkdownRenderer_KeepsEntitiesWhenDisabled(t *testing.T) {
	r, err := newMarkdownRenderer("{{.Description}}", false, fixedNow)
	require.NoError(t, err)
	out, err := r.Render(sampleRecipe())
	require.NoError(t, err)
	assert.Equal(t, "Soft &amp; chewy.", string(out))
}

func TestMarkdownRenderer_JSONField(t *testing.T) {
	r, err := newMarkdownRenderer("{{.JSON}}", false, fixedNow)
	require.NoError(t, err)
	out, err := r.Render(sampleRecipe())
	require.NoError(t, err)

	var decoded core.Recipe
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, sampleRecipe(), decoded)
}

func TestMarkdownRenderer_BadTemplate(t *testing.T) {
	_, err := NewMarkdownRenderer("{{.Name", false)
	assert.ErrorContains(t, err, "parsing template")

	r, err := NewMarkdownRenderer("{{.Missing}}", false)
	require.NoError(t, err)
	_, err = r.Render(sampleRecipe())
	assert.ErrorContains(t, err, "executing template")
}

func TestMagicTime(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"now", nil, "2026-03-14 09:30"},
		{"empty", []string{""}, ""},
		{"date", []string{"2024-05-01T18:20:00+00:00"}, "2024-05-01 18:20"},
		{"duration", []string{"PT1H50M"}, "1h 50m"},
		{"unknown", []string{"soon"}, ""},
		{"date with layout", []string{"2024-05-01", "02/01/2006"}, "01/05/2024"},
		{"bad date with layout", []string{"soon", "2006"}, "Error in template or source"},
		{"too many", []string{"a", "b", "c"}, "Error in template"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, magicTime(now, tt.args...))
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, "- soup\n- winter\n", splitTags("soup, winter"))
	assert.Equal(t, "", splitTags("  "))
}

func TestJSONRenderer(t *testing.T) {
	out, err := NewJSONRenderer().Render(core.Recipe{Name: "Tea"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"recipeIngredient": []`)
	assert.Contains(t, string(out), `"recipeInstructions": []`)
	assert.True(t, strings.HasPrefix(string(out), "{\n  \"name\": \"Tea\""))
}

func TestPDFRenderer(t *testing.T) {
	md, err := newMarkdownRenderer("", true, fixedNow)
	require.NoError(t, err)
	r := NewPDFRenderer(md)

	out, err := r.Render(sampleRecipe())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, ".pdf", r.Extension())
}
