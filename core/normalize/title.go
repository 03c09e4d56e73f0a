package normalize

import (
	"regexp"
	"strings"
)

// fillerWords are dietary labels and marketing words stripped from recipe
// titles. Longer phrases come before the words they contain.
var fillerWords = []string{
	`gluten[- ]?free`,
	`dairy[- ]?free`,
	`plant[- ]?based`,
	`guilt[- ]?free`,
	`lightened[- ]?up`,
	`vegetarian`,
	`vegan`,
	`paleo`,
	`whole30`,
	`keto`,
	`gf`,
	`df`,
	`the\s+ultimate`,
	`the\s+best`,
	`ultimate`,
	`incredible`,
	`delicious`,
	`homemade`,
	`awesome`,
	`classic`,
	`perfect`,
	`amazing`,
	`lighter`,
	`skinny`,
	`simple`,
	`tasty`,
	`great`,
	`quick`,
	`super`,
	`easy`,
	`best`,
	`healthy`,
}

var (
	fillerPatterns = func() []*regexp.Regexp {
		out := make([]*regexp.Regexp, len(fillerWords))
		for i, w := range fillerWords {
			out[i] = regexp.MustCompile(`(?i)\b` + w + `\b`)
		}
		return out
	}()
	leftoverPattern = regexp.MustCompile(`[\s,\-–—&|]+`)
)

// CleanTitle strips filler and dietary words from a recipe title, e.g.
// "Easy Vegan Gluten-Free Dumplings" → "Dumplings". If nothing would be
// left, the title is returned untouched.
func CleanTitle(name string) string {
	cleaned := name
	for _, re := range fillerPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(leftoverPattern.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return name
	}
	return cleaned
}
