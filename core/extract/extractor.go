// ABOUTME: Page extraction service locating the readable text and content images of a page
// ABOUTME: Site-specific selectors first, then article containers, then the cleaned body

package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/pkg/utils/parse"
	"visual-summarizer-api/pkg/utils/text"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	// MinTextLength is the shortest page text worth summarizing
	MinTextLength = 50

	// MaxTextLength caps the text sent to the summarizer
	MaxTextLength = 15000

	// MaxImages caps the number of content images kept
	MaxImages = 10

	// MinImageWidth is the declared width an image must exceed
	MinImageWidth = 100

	articleMinLength  = 200
	socialUnitMinimum = 10
)

var (
	socialHosts     = []string{"twitter.com", "x.com"}
	socialSelectors = []string{`[data-testid="tweetText"]`, `article [lang]`}

	articleSelectors = []string{"article", `[role="article"]`, ".post-content", "main", ".content"}

	nonContentSelector = "script, style, nav, footer, header, aside"

	imageSelector = `article img, main img, .post-content img, .content img, [role="article"] img`
)

// Options tunes the extraction heuristic
type Options struct {
	// ReadabilityFallback tries go-readability before the cleaned body
	ReadabilityFallback bool
}

// Extractor locates readable text and images in a parsed page
type Extractor struct {
	opts Options
}

// NewExtractor creates a new extractor
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// ExtractHTML parses raw HTML and extracts its content
func (e *Extractor) ExtractHTML(r io.Reader, pageURL string) (domain.ExtractedContent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.ExtractedContent{}, fmt.Errorf("failed to parse page: %w", err)
	}
	return e.Extract(doc, pageURL), nil
}

// Extract returns the normalized text and content images of doc.
// It never touches the network and never modifies doc.
func (e *Extractor) Extract(doc *goquery.Document, pageURL string) domain.ExtractedContent {
	base, _ := url.Parse(pageURL)

	raw := e.rawText(doc, base)
	normalized := text.Truncate(text.CollapseWhitespace(raw), MaxTextLength)

	return domain.ExtractedContent{
		Text:   normalized,
		Images: Images(doc, base),
	}
}

// Text is a shortcut for Extract(doc, pageURL).Text
func (e *Extractor) Text(doc *goquery.Document, pageURL string) string {
	return e.Extract(doc, pageURL).Text
}

func (e *Extractor) rawText(doc *goquery.Document, base *url.URL) string {
	if base != nil && isSocialHost(base.Hostname()) {
		return socialText(doc)
	}

	for _, selector := range articleSelectors {
		candidate := doc.Find(selector).First()
		if candidate.Length() == 0 {
			continue
		}
		if t := candidate.Text(); text.Length(t) > articleMinLength {
			return t
		}
	}

	if e.opts.ReadabilityFallback {
		if t := readableText(doc, base); text.Length(t) > articleMinLength {
			return t
		}
	}

	return bodyText(doc)
}

// isSocialHost matches a social host or any of its subdomains
func isSocialHost(host string) bool {
	host = strings.ToLower(host)
	for _, h := range socialHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// socialText collects short-form post units, falling back to whole articles
func socialText(doc *goquery.Document) string {
	var joined string
	for _, selector := range socialSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}
		var units []string
		matches.Each(func(_ int, s *goquery.Selection) {
			if t := s.Text(); text.Length(t) > socialUnitMinimum {
				units = append(units, t)
			}
		})
		joined = strings.Join(units, "\n\n")
		break
	}

	if text.Length(joined) < MinTextLength {
		var articles []string
		doc.Find("article").Each(func(_ int, s *goquery.Selection) {
			articles = append(articles, s.Text())
		})
		joined = strings.Join(articles, "\n\n")
	}
	return joined
}

// bodyText returns the body text with non-content subtrees removed from a copy
func bodyText(doc *goquery.Document) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		body = doc.Selection
	}
	clone := body.Clone()
	clone.Find(nonContentSelector).Remove()
	return clone.Text()
}

func readableText(doc *goquery.Document, base *url.URL) string {
	page, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return ""
	}
	if base == nil {
		base = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(page), base)
	if err != nil {
		return ""
	}
	return article.TextContent
}

// Images returns up to MaxImages distinct content image URLs in document order
func Images(doc *goquery.Document, base *url.URL) []string {
	images := []string{}
	seen := make(map[string]struct{})

	doc.Find(imageSelector).EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := imageSource(img, base)
		if src == "" {
			return true
		}
		if _, dup := seen[src]; dup {
			return true
		}
		if strings.Contains(src, "avatar") || strings.Contains(src, "icon") {
			return true
		}
		if width, ok := parse.Pixels(img.AttrOr("width", "")); ok && width <= MinImageWidth {
			return true
		}

		seen[src] = struct{}{}
		images = append(images, src)
		return len(images) < MaxImages
	})

	return images
}

func imageSource(img *goquery.Selection, base *url.URL) string {
	src := strings.TrimSpace(img.AttrOr("src", ""))
	if src == "" {
		src = strings.TrimSpace(img.AttrOr("data-src", ""))
	}
	if src == "" {
		return ""
	}
	if base == nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
