package render

// DefaultTemplate is the built-in recipe note template.
const DefaultTemplate = `---
tags:
- recipe
date_added: {{magicTime}}
created: {{magicTime .DatePublished}}
meal_type: {{.RecipeCategory}}
author: {{.Author}}
url: {{.URL}}
times_made: 0
last_made:
---

# [{{.Name}}]({{.URL}})

{{.Description}}

![{{.Name}}]({{.Image}})

### Ingredients

{{range .RecipeIngredient}}- [ ] {{.}}
{{end}}
### Instructions

{{range .RecipeInstructions}}{{if .ItemListElement}}#### {{.Name}}
{{range .ItemListElement}}- {{.Text}}
{{end}}{{else}}- {{.Text}}
{{end}}{{end}}
-----

## Notes
`
