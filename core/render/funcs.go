package render

import (
	"strings"
	"text/template"
	"time"
)

const timeLayout = "2006-01-02 15:04"

// dateLayouts are the date shapes accepted by magicTime.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// funcMap returns the helpers available to recipe templates. now is
// injected so rendering is deterministic in tests. The now helper formats
// the current time with a Go layout, e.g. {{now "02-01-2006"}}.
func funcMap(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"magicTime": func(args ...string) string { return magicTime(now(), args...) },
		"now":       func(layout string) string { return now().Format(layout) },
		"splitTags": splitTags,
	}
}

// magicTime formats times for frontmatter:
//
//	magicTime                      → now as "2006-01-02 15:04"
//	magicTime .DatePublished       → that date as "2006-01-02 15:04"
//	magicTime .TotalTime           → ISO-8601 "PT1H50M" as "1h 50m"
//	magicTime .DatePublished "..." → that date in the given layout
func magicTime(now time.Time, args ...string) string {
	switch len(args) {
	case 0:
		return now.Format(timeLayout)
	case 1:
		arg := strings.TrimSpace(args[0])
		if arg == "" {
			return ""
		}
		if t, ok := parseDate(arg); ok {
			return t.Format(timeLayout)
		}
		if strings.HasPrefix(arg, "PT") {
			return isoDuration(arg)
		}
		return ""
	case 2:
		if t, ok := parseDate(strings.TrimSpace(args[0])); ok {
			return t.Format(args[1])
		}
		return "Error in template or source"
	default:
		return "Error in template"
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isoDuration renders "PT1H50M" as "1h 50m".
func isoDuration(s string) string {
	r := strings.NewReplacer("H", "h ", "M", "m ", "S", "s ")
	return strings.TrimSpace(r.Replace(strings.TrimPrefix(s, "PT")))
}

// splitTags turns "a, b" into YAML list lines "- a\n- b\n".
func splitTags(tags string) string {
	if strings.TrimSpace(tags) == "" {
		return ""
	}
	var b strings.Builder
	for _, tag := range strings.Split(tags, ",") {
		b.WriteString("- " + strings.TrimSpace(tag) + "\n")
	}
	return b.String()
}
