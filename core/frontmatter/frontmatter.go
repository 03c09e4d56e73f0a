// Package frontmatter edits the YAML block at the top of a recipe note.
package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	delimiter = "---"

	timesMadeKey = "times_made"
	lastMadeKey  = "last_made"
	// DateLayout is the format of last_made.
	DateLayout = "2006-01-02"
)

// Split separates a note into its frontmatter body and the rest of the
// note. ok is false when the note has no closed frontmatter block.
func Split(note string) (front, body string, ok bool) {
	if !strings.HasPrefix(note, delimiter+"\n") && !strings.HasPrefix(note, delimiter+"\r\n") {
		return "", note, false
	}
	lines := strings.SplitAfter(note, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == delimiter {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), true
		}
	}
	return "", note, false
}

// MarkMade increments times_made and sets last_made to now's date,
// creating the frontmatter block when the note has none. A times_made
// value that is not a number counts as zero. Other keys keep their order
// and comments. It returns the updated note and the new count.
func MarkMade(note string, now time.Time) (string, int, error) {
	front, body, ok := Split(note)
	if !ok {
		body = note
	}

	mapping, err := parseMapping(front)
	if err != nil {
		return "", 0, err
	}

	count := 0
	if v := lookup(mapping, timesMadeKey); v != nil {
		count = number(v)
	}
	count++

	set(mapping, timesMadeKey, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(count)})
	set(mapping, lastMadeKey, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: now.Format(DateLayout)})

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return "", 0, fmt.Errorf("encoding frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", 0, fmt.Errorf("encoding frontmatter: %w", err)
	}

	return delimiter + "\n" + buf.String() + delimiter + "\n" + body, count, nil
}

func parseMapping(front string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(front), &doc); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing frontmatter: expected a mapping, got %s", root.ShortTag())
	}
	return root, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func set(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			value.HeadComment = mapping.Content[i+1].HeadComment
			value.LineComment = mapping.Content[i+1].LineComment
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func number(v *yaml.Node) int {
	switch v.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := v.Decode(&f); err == nil {
			return int(f)
		}
	}
	return 0
}
