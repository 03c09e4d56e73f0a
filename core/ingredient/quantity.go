// Package ingredient parses free-text ingredient lines into amount, unit
// and name, and formats amounts back into readable text.
//
// Parsing is deterministic pattern matching, not language understanding:
// text that does not start with a quantity or a known unit is carried
// through as an opaque name.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

// vulgarFractions maps unicode fraction glyphs to their value.
var vulgarFractions = []struct {
	glyph string
	value float64
}{
	{"½", 1.0 / 2},
	{"¼", 1.0 / 4},
	{"¾", 3.0 / 4},
	{"⅓", 1.0 / 3},
	{"⅔", 2.0 / 3},
	{"⅛", 1.0 / 8},
	{"⅜", 3.0 / 8},
	{"⅝", 5.0 / 8},
	{"⅞", 7.0 / 8},
}

var fractionReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(vulgarFractions)*2)
	for _, f := range vulgarFractions {
		pairs = append(pairs, f.glyph, " "+strconv.FormatFloat(f.value, 'f', -1, 64))
	}
	return strings.NewReplacer(pairs...)
}()

// quantityPattern matches, in order of preference:
//
//	"1 1/2"  whole and fraction
//	"1/2"    fraction
//	"2", "0.5", "1 0.5"  number, optionally followed by a decimal part
//	                     (the shape left behind by glyph substitution)
var quantityPattern = regexp.MustCompile(
	`^(?:(\d+(?:\.\d+)?)\s+(\d+)/(\d+)|(\d+)/(\d+)|(\d+(?:\.\d+)?)(?:\s+(\d*\.\d+))?)`,
)

// Quantity is the result of ParseLeadingQuantity.
type Quantity struct {
	// Amount is 0 when the text has no leading quantity.
	Amount float64
	// Remainder is the text after the quantity, trimmed.
	Remainder string
	// Found reports whether a quantity was matched.
	Found bool
}

// ParseLeadingQuantity reads a leading quantity such as "2", "1/2",
// "1 1/2", "0.5" or "1½" from text. Missing quantities are not an error:
// they yield a zero amount and the whole (glyph-substituted) text.
func ParseLeadingQuantity(text string) Quantity {
	s := strings.TrimSpace(fractionReplacer.Replace(text))

	m := quantityPattern.FindStringSubmatch(s)
	if m == nil {
		return Quantity{Remainder: s}
	}

	var amount float64
	switch {
	case m[1] != "":
		amount = number(m[1]) + fraction(m[2], m[3])
	case m[4] != "":
		amount = fraction(m[4], m[5])
	default:
		amount = number(m[6])
		if m[7] != "" {
			amount += number(m[7])
		}
	}

	return Quantity{
		Amount:    amount,
		Remainder: strings.TrimSpace(s[len(m[0]):]),
		Found:     true,
	}
}

func number(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func fraction(num, den string) float64 {
	d := number(den)
	if d == 0 {
		return 0
	}
	return number(num) / d
}
