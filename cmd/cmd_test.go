package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/recipegrab/config"
	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/gaurav-prasanna/recipegrab/core/output"
	"github.com/gaurav-prasanna/recipegrab/core/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in a clean working directory.
func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestShoppingAddAndClear(t *testing.T) {
	dir := t.TempDir()
	note := filepath.Join(dir, "Tomato Soup.md")
	require.NoError(t, os.WriteFile(note, []byte("# Soup\n## Ingredients\n- [x] 2 cups stock\n- [x] 1 tsp salt\n"), 0o644))

	require.NoError(t, run(t, dir, "shopping", "add", note))

	list, err := os.ReadFile(filepath.Join(dir, "Shopping List.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Shopping List\n\n- [ ] 2 cup stock *(Tomato Soup)*\n- [ ] 1 tsp salt *(Tomato Soup)*\n", string(list))

	err = run(t, dir, "shopping", "add", note)
	assert.ErrorIs(t, err, core.ErrNothingChecked)

	require.NoError(t, run(t, dir, "shopping", "clear", "--all"))
	list, err = os.ReadFile(filepath.Join(dir, "Shopping List.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Shopping List\n\n", string(list))
}

func TestMade(t *testing.T) {
	dir := t.TempDir()
	note := filepath.Join(dir, "Bread.md")
	require.NoError(t, os.WriteFile(note, []byte("---\ntimes_made: 2\n---\n# Bread\n"), 0o644))

	require.NoError(t, run(t, dir, "made", note))

	data, err := os.ReadFile(note)
	require.NoError(t, err)
	assert.Contains(t, string(data), "times_made: 3\n")
	assert.Contains(t, string(data), "last_made: ")
}

func TestValidateFlags(t *testing.T) {
	t.Cleanup(func() { flagJSON, flagPDF, flagMarkdown = false, false, false })

	assert.NoError(t, validateFlags())

	flagJSON = true
	assert.NoError(t, validateFlags())

	flagPDF = true
	assert.Error(t, validateFlags())
}

func TestSelectRenderer(t *testing.T) {
	cfg = &config.Config{DecodeEntities: true}
	t.Cleanup(func() { flagJSON, flagPDF = false, false })

	r, err := selectRenderer()
	require.NoError(t, err)
	assert.Equal(t, ".md", r.Extension())

	flagPDF = true
	r, err = selectRenderer()
	require.NoError(t, err)
	assert.Equal(t, ".pdf", r.Extension())

	flagPDF, flagJSON = false, true
	r, err = selectRenderer()
	require.NoError(t, err)
	assert.IsType(t, &render.JSONRenderer{}, r)
}

type pageFetcher string

func (p pageFetcher) Fetch(_ context.Context, rawURL string) (*core.FetchResult, error) {
	return &core.FetchResult{URL: rawURL, StatusCode: 200, HTML: string(p)}, nil
}

func TestProcessURL_WritesOneFilePerRecipe(t *testing.T) {
	cfg = &config.Config{}
	page := pageFetcher(`<script type="application/ld+json">[
{"@type":"Recipe","name":"Pancakes","recipeIngredient":["1 cup flour"]},
{"@type":["Recipe","NewsArticle"],"name":"Waffles","recipeIngredient":"2 eggs"}
]</script>`)

	writer, err := output.New(t.TempDir())
	require.NoError(t, err)

	paths, err := processURL(context.Background(), "https://food.test/breakfast", newPipeline(page), render.NewJSONRenderer(), writer)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "Pancakes.json", filepath.Base(paths[0]))
	assert.Equal(t, "Waffles.json", filepath.Base(paths[1]))
}
