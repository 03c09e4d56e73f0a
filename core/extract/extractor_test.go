package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">
  {"@type": "Recipe", "name": "Soup"}
</script>
<script type="text/javascript">var x = 1;</script>
<script type="application/ld+json"></script>
</head><body>
<script type="application/ld+json">[{"@type": "Organization"}]</script>
</body></html>`

	blocks, err := New().Extract(html)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`{"@type": "Recipe", "name": "Soup"}`,
		`[{"@type": "Organization"}]`,
	}, blocks)
}

func TestExtract_NoBlocks(t *testing.T) {
	blocks, err := New().Extract(`<html><body><p>hello</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
