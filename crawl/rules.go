package crawl

import (
	"net/url"
	"path"
	"strings"
)

// skippedExtensions are paths that never hold a recipe page.
var skippedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".avif": true,
	".css": true, ".js": true, ".json": true,
	".woff": true, ".woff2": true, ".ttf": true,
	".mp4": true, ".webm": true, ".mp3": true,
	".zip": true, ".gz": true, ".pdf": true, ".xml": true, ".rss": true,
}

// skippedSegments are path sections of sites that list or log in rather
// than show a recipe.
var skippedSegments = []string{"/wp-admin", "/wp-login", "/feed", "/cart", "/account", "/login"}

// IsSameDomain reports whether rawURL is on host domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsStaticAsset reports whether rawURL points at a file rather than a page.
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return skippedExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// IsCrawlable reports whether rawURL is an http(s) page on domain worth
// fetching.
func IsCrawlable(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return false
	}
	if parsed.Host != domain || IsStaticAsset(rawURL) {
		return false
	}
	lower := strings.ToLower(parsed.Path)
	for _, seg := range skippedSegments {
		if lower == seg || strings.HasPrefix(lower, seg+"/") {
			return false
		}
	}
	return true
}

// NormalizeURL drops the fragment and any trailing slash except the root's.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
