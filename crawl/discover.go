// Package crawl discovers the recipe pages of a site for grab --all.
// Pages come from sitemap.xml when the site has one, otherwise from a
// same-domain link crawl.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/gaurav-prasanna/recipegrab/core/fetch"
	"go.uber.org/zap"
)

// DefaultMaxPages bounds discovery when no limit is configured.
const DefaultMaxPages = 100

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemap covers both a <urlset> and a <sitemapindex> root.
type sitemap struct {
	XMLName  xml.Name
	URLs     []sitemapURL `xml:"url"`
	Sitemaps []sitemapURL `xml:"sitemap"`
}

// Discoverer finds same-domain pages reachable from a start URL.
type Discoverer struct {
	fetcher  core.Fetcher
	maxPages int
	log      *zap.Logger
}

// New creates a Discoverer. maxPages <= 0 uses DefaultMaxPages; a nil
// logger discards output.
func New(fetcher core.Fetcher, maxPages int, log *zap.Logger) *Discoverer {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Discoverer{fetcher: fetcher, maxPages: maxPages, log: log}
}

// Discover returns up to maxPages URLs to grab, starting from baseURL.
// The sitemap is tried first; link crawling is the fallback and always
// includes baseURL itself.
func (d *Discoverer) Discover(ctx context.Context, baseURL string) ([]string, error) {
	parsed, err := fetch.ValidateURL(baseURL)
	if err != nil {
		return nil, err
	}
	domain := parsed.Host

	sitemapLoc := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, domain)
	urls, err := d.fromSitemap(ctx, sitemapLoc, domain)
	if err == nil && len(urls) > 0 {
		d.log.Debug("discovered pages from sitemap", zap.String("sitemap", sitemapLoc), zap.Int("pages", len(urls)))
		return urls, nil
	}
	if err != nil {
		d.log.Debug("sitemap unavailable, crawling links", zap.String("sitemap", sitemapLoc), zap.Error(err))
	}

	return d.fromLinks(ctx, baseURL, domain)
}

// fromSitemap reads a sitemap and, for a sitemap index, its child
// sitemaps. Nested indexes are not followed.
func (d *Discoverer) fromSitemap(ctx context.Context, loc string, domain string) ([]string, error) {
	root, err := d.readSitemap(ctx, loc)
	if err != nil {
		return nil, err
	}

	queue := NewQueue()
	d.addPages(queue, root.URLs, domain)

	for _, child := range root.Sitemaps {
		if queue.Visited() >= d.maxPages {
			break
		}
		if !IsSameDomain(child.Loc, domain) {
			continue
		}
		sub, err := d.readSitemap(ctx, strings.TrimSpace(child.Loc))
		if err != nil {
			d.log.Warn("skipping child sitemap", zap.String("sitemap", child.Loc), zap.Error(err))
			continue
		}
		d.addPages(queue, sub.URLs, domain)
	}
	return queue.All(), nil
}

func (d *Discoverer) readSitemap(ctx context.Context, loc string) (*sitemap, error) {
	result, err := d.fetcher.Fetch(ctx, loc)
	if err != nil {
		return nil, err
	}
	var sm sitemap
	if err := xml.Unmarshal([]byte(result.HTML), &sm); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", loc, err)
	}
	return &sm, nil
}

func (d *Discoverer) addPages(queue *Queue, urls []sitemapURL, domain string) {
	for _, u := range urls {
		if queue.Visited() >= d.maxPages {
			return
		}
		loc := strings.TrimSpace(u.Loc)
		if IsCrawlable(loc, domain) {
			queue.Add(NormalizeURL(loc))
		}
	}
}

// fromLinks crawls breadth-first until maxPages pages have been fetched.
func (d *Discoverer) fromLinks(ctx context.Context, startURL string, domain string) ([]string, error) {
	queue := NewQueue()
	queue.Add(NormalizeURL(startURL))

	for fetched := 0; queue.HasNext() && fetched < d.maxPages; fetched++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue.Next()

		result, err := d.fetcher.Fetch(ctx, current)
		if err != nil {
			d.log.Debug("skipping page", zap.String("url", current), zap.Error(err))
			continue
		}

		links, err := extractLinks(result.HTML, result.URL)
		if err != nil {
			continue
		}
		for _, link := range links {
			if IsCrawlable(link, domain) {
				queue.Add(NormalizeURL(link))
			}
		}
	}

	pages := queue.All()
	if len(pages) > d.maxPages {
		pages = pages[:d.maxPages]
	}
	return pages, nil
}

// extractLinks returns every <a href> of the page resolved against baseURL.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if resolved := resolveURL(strings.TrimSpace(href), base); resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves href against base. Non-navigational links resolve
// to "".
func resolveURL(href string, base *url.URL) string {
	if href == "" || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
