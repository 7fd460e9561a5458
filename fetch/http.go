// Package fetch retrieves article pages and reduces them to plain text
// suitable for a language model: main-content extraction, boilerplate
// removal, and deterministic truncation.
package fetch

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/smhanov/huddle"
)

// TruncationMarker is appended whenever content is cut at maxLength.
const TruncationMarker = "\n\n[Article truncated for context management]"

// HTTPFetcher downloads an article and extracts its main text.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTP creates a fetcher with a modest timeout.
func NewHTTP() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: 15 * time.Second}}
}

// NewHTTPWithClient creates a fetcher using the supplied HTTP client.
func NewHTTPWithClient(client *http.Client) *HTTPFetcher {
	if client == nil {
		return NewHTTP()
	}
	return &HTTPFetcher{client: client}
}

// Fetch downloads the URL, extracts the main article text, and truncates it
// at maxLength characters with a marker. Fetching is idempotent per URL, and
// truncation is deterministic. Network failures, non-200 responses, and
// pages with no extractable text all wrap huddle.ErrContentUnavailable.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, maxLength int) (string, error) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty url", huddle.ErrContentUnavailable)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trimmed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", huddle.ErrContentUnavailable, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", huddle.ErrContentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: http %d", huddle.ErrContentUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", huddle.ErrContentUnavailable, err)
	}

	text := Extract(doc)
	if text == "" {
		return "", fmt.Errorf("%w: no extractable text", huddle.ErrContentUnavailable)
	}

	return Truncate(text, maxLength), nil
}

var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Share this article.*?(\n|$)`),
	regexp.MustCompile(`(?i)Follow.*?on Twitter.*?(\n|$)`),
	regexp.MustCompile(`(?i)ESPN\+.*?subscribe.*?(\n|$)`),
	regexp.MustCompile(`(?i)Advertisement(\n|$)`),
}

var (
	reSpaces     = regexp.MustCompile(` {2,}`)
	reBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Extract pulls the main readable text out of a parsed page. It drops
// script/style and chrome elements, prefers <article> then <main> content,
// and falls back to stripping the whole body.
func Extract(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, aside, form, noscript, iframe").Remove()

	var paragraphs []string
	for _, scope := range []string{"article", "main", "body"} {
		doc.Find(scope + " p").Each(func(_ int, sel *goquery.Selection) {
			t := strings.TrimSpace(sel.Text())
			if len(t) > 10 {
				paragraphs = append(paragraphs, t)
			}
		})
		if len(paragraphs) > 0 {
			break
		}
	}

	var text string
	if len(paragraphs) > 0 {
		text = strings.Join(paragraphs, "\n\n")
	} else if body, err := doc.Find("body").Html(); err == nil {
		text = StripTags(body)
	}
	return cleanText(text)
}

// StripTags removes HTML tags from a string and returns plain text, using
// bluemonday's strict policy.
func StripTags(raw string) string {
	p := bluemonday.StrictPolicy()
	return strings.TrimSpace(html.UnescapeString(p.Sanitize(raw)))
}

// cleanText removes sharing/advertising boilerplate and collapses
// whitespace.
func cleanText(text string) string {
	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	text = reSpaces.ReplaceAllString(text, " ")
	text = reBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Truncate cuts text at maxLength characters, appending TruncationMarker.
// maxLength <= 0 means no limit.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + TruncationMarker
}
