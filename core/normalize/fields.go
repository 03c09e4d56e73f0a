package normalize

import (
	"strconv"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/recipegrab/core"
)

// Image reduces the many shapes of schema.org image data to one URL:
// a string is kept, an array yields its first element (a string or an
// ImageObject's url), an ImageObject yields its url. Anything else is "".
func Image(v any) string {
	n := NodeOf(v)
	switch n.Kind {
	case Scalar:
		s, _ := n.Value.(string)
		return s
	case Array:
		if len(n.Items) == 0 {
			return ""
		}
		first := NodeOf(n.Items[0])
		switch first.Kind {
		case Scalar:
			s, _ := first.Value.(string)
			return s
		case Object:
			s, _ := first.Fields["url"].(string)
			return s
		}
	case Object:
		s, _ := n.Fields["url"].(string)
		return s
	}
	return ""
}

// Text flattens a pass-through scalar for rendering. Arrays are joined
// with ", " and objects contribute their name (e.g. a Person author).
func Text(v any) string {
	n := NodeOf(v)
	switch n.Kind {
	case Object:
		return Text(n.Fields["name"])
	case Array:
		parts := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			if s := Text(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}

	switch t := n.Value.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// Ingredients returns recipeIngredient as a slice, wrapping a bare
// string. The legacy "ingredients" property is used when
// recipeIngredient is absent.
func Ingredients(obj map[string]any) []string {
	v, ok := obj["recipeIngredient"]
	if !ok {
		v = obj["ingredients"]
	}

	out := []string{}
	n := NodeOf(v)
	switch n.Kind {
	case Scalar:
		if s, _ := n.Value.(string); strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	case Array:
		for _, item := range n.Items {
			if s := Text(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func (n *RecipeNormalizer) instructions(v any) []core.Instruction {
	out := []core.Instruction{}
	node := NodeOf(v)
	switch node.Kind {
	case Scalar:
		s, _ := node.Value.(string)
		for _, line := range strings.Split(s, "\n") {
			if line = n.cleanText(strings.TrimSpace(line)); line != "" {
				out = append(out, core.Instruction{Text: line})
			}
		}
	case Object:
		if ins, ok := n.instruction(node.Fields); ok {
			out = append(out, ins)
		}
	case Array:
		for _, item := range node.Items {
			child := NodeOf(item)
			switch child.Kind {
			case Object:
				if ins, ok := n.instruction(child.Fields); ok {
					out = append(out, ins)
				}
			case Scalar:
				if s := n.cleanText(Text(item)); s != "" {
					out = append(out, core.Instruction{Text: s})
				}
			}
		}
	}
	return out
}

// instruction converts a HowToStep or HowToSection object.
func (n *RecipeNormalizer) instruction(obj map[string]any) (core.Instruction, bool) {
	ins := core.Instruction{
		Name:  Text(obj["name"]),
		Text:  n.cleanText(Text(obj["text"])),
		Image: Image(obj["image"]),
	}
	if items, ok := obj["itemListElement"]; ok {
		ins.ItemListElement = n.instructions(items)
	}
	if ins.Text == "" && len(ins.ItemListElement) == 0 {
		ins.Text = ins.Name
	}
	return ins, ins.Text != "" || len(ins.ItemListElement) > 0
}

// cleanText turns HTML fragments and entities into Markdown text.
func (n *RecipeNormalizer) cleanText(s string) string {
	if !n.CleanHTML || !strings.ContainsAny(s, "<&") {
		return s
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(md)
}
