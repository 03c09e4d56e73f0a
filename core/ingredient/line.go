package ingredient

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/recipegrab/core/units"
	"golang.org/x/text/unicode/norm"
)

var (
	unitTokenPattern = regexp.MustCompile(`^([a-zA-Z]+\.?)\s*`)
	sourcesPattern   = regexp.MustCompile(`\s*\*\(([^)]+)\)\*\s*$`)
)

// Line is a parsed ingredient line.
type Line struct {
	Amount float64
	Unit   units.Unit
	// Name is lower-cased, trimmed and free of quantity and unit text.
	Name string
	// Sources are the recipe names from a trailing "*(A, B)*" annotation.
	Sources []string
	// Text is the input with the sources annotation removed.
	Text string
}

// Opaque reports whether neither a quantity nor a unit was recognised.
func (l Line) Opaque() bool {
	return l.Amount == 0 && l.Unit == units.None
}

// ParseLine splits an ingredient line such as "1 1/2 cups flour *(Bread)*"
// into amount, unit, name and sources. It returns false only for blank input.
//
// When nothing was recognised the name is the whole lower-cased text, so
// arbitrary prose is carried through rather than mis-parsed.
func ParseLine(text string) (Line, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Line{}, false
	}

	sources, bare := splitSources(text)
	line := Line{Sources: sources, Text: bare}

	q := ParseLeadingQuantity(bare)
	line.Amount = q.Amount

	name := q.Remainder
	if m := unitTokenPattern.FindStringSubmatch(name); m != nil {
		if u := units.Normalize(m[1]); u != units.None {
			line.Unit = u
			name = name[len(m[0]):]
		}
	}

	if line.Opaque() {
		name = bare
	}
	line.Name = NormalizeName(name)
	return line, true
}

// NormalizeName lower-cases, trims and NFC-normalizes an ingredient name so
// that equal names compare equal regardless of unicode composition.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
}

// splitSources removes a trailing "*(A, B)*" annotation from text and
// returns its comma-separated entries.
func splitSources(text string) ([]string, string) {
	m := sourcesPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, text
	}
	var sources []string
	for _, s := range strings.Split(text[m[2]:m[3]], ",") {
		if s = strings.TrimSpace(s); s != "" {
			sources = append(sources, s)
		}
	}
	return sources, strings.TrimSpace(text[:m[0]])
}
