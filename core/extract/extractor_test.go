package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse html: %v", err)
	}
	return doc
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(parts, " ")
}

func TestExtract_OnlyMainExceedsThreshold(t *testing.T) {
	mainText := words(60)
	html := `<html><body>
		<nav>Home About</nav>
		<article>short article</article>
		<main>
			<p>` + mainText[:200] + `</p>
			<p>` + mainText[200:] + `</p>
		</main>
		<footer>footer text</footer>
	</body></html>`

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, html), "https://example.com/post")

	want := strings.Join(strings.Fields(mustDoc(t, html).Find("main").Text()), " ")
	if got.Text != want {
		t.Errorf("Extract().Text = %q, want %q", got.Text, want)
	}
	if strings.Contains(got.Text, "footer text") || strings.Contains(got.Text, "short article") {
		t.Error("Extract() included text outside of <main>")
	}
}

func TestExtract_TruncatesToMaxLength(t *testing.T) {
	long := strings.Repeat("abcde ", 4000)
	html := `<html><body><main>` + long + `</main></body></html>`

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, html), "https://example.com/")

	if len(got.Text) != MaxTextLength {
		t.Fatalf("len(Text) = %d, want %d", len(got.Text), MaxTextLength)
	}
	if !strings.HasPrefix(strings.TrimSpace(long), got.Text) {
		t.Error("truncated text should be a prefix of the normalized text")
	}
}

func TestExtract_FirstArticleSelectorWins(t *testing.T) {
	articleText := "ARTICLE " + words(50)
	mainText := "MAIN " + words(50)
	html := `<html><body><main>` + mainText + `</main><article>` + articleText + `</article></body></html>`

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, html), "")

	if !strings.HasPrefix(got.Text, "ARTICLE") {
		t.Errorf("Extract() should prefer <article>, got %q", got.Text[:20])
	}
}

func TestExtract_FallsBackToCleanBody(t *testing.T) {
	html := `<html><head><title>T</title></head><body>
		<header>Site header</header>
		<nav>Menu</nav>
		<script>var x = 1;</script>
		<style>.a{}</style>
		<div>Visible paragraph one.</div>
		<aside>Related</aside>
		<div>Visible paragraph two.</div>
		<footer>Copyright</footer>
	</body></html>`

	e := NewExtractor(Options{})
	doc := mustDoc(t, html)
	got := e.Extract(doc, "https://example.com/")

	want := "Visible paragraph one. Visible paragraph two."
	if got.Text != want {
		t.Errorf("Extract().Text = %q, want %q", got.Text, want)
	}

	// The original document is left untouched
	if doc.Find("nav").Length() != 1 {
		t.Error("Extract() modified the source document")
	}
}

func TestExtract_EmptyPage(t *testing.T) {
	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, ""), "https://example.com/")

	if got.Text != "" {
		t.Errorf("Extract().Text = %q, want empty", got.Text)
	}
	if len(got.Images) != 0 {
		t.Errorf("Extract().Images = %v, want none", got.Images)
	}
}

func TestExtract_SocialPostUnits(t *testing.T) {
	html := `<html><body>
		<article><div data-testid="tweetText">First post with enough words to count as a unit</div></article>
		<article><div data-testid="tweetText">tiny</div></article>
		<article><div data-testid="tweetText">Second post that is also long enough to be kept</div></article>
	</body></html>`

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, html), "https://x.com/someone/status/1")

	want := "First post with enough words to count as a unit Second post that is also long enough to be kept"
	if got.Text != want {
		t.Errorf("Extract().Text = %q, want %q", got.Text, want)
	}
}

func TestExtract_SocialFallsBackToArticles(t *testing.T) {
	html := `<html><body>
		<article><span lang="en">Short one here</span> and surrounding article chrome</article>
		<article>Another article body with more words in it</article>
	</body></html>`

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, html), "https://twitter.com/someone")

	want := "Short one here and surrounding article chrome Another article body with more words in it"
	if got.Text != want {
		t.Errorf("Extract().Text = %q, want %q", got.Text, want)
	}
}

func TestImages_FiltersAndPreservesOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body><article>`)
	var want []string
	for i := 0; i < 12; i++ {
		switch i {
		case 2:
			b.WriteString(`<img src="https://cdn.example.com/icon-share.png" width="300">`)
		case 5:
			b.WriteString(`<img src="https://cdn.example.com/user-avatar-icon.jpg" width="300">`)
		case 7:
			b.WriteString(`<img src="https://cdn.example.com/narrow.jpg" width="80">`)
		default:
			src := fmt.Sprintf("https://cdn.example.com/photo%d.jpg", i)
			want = append(want, src)
			b.WriteString(`<img src="` + src + `" width="640">`)
		}
	}
	b.WriteString(`</article></body></html>`)

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, b.String()), "https://example.com/post")

	if len(got.Images) != 9 {
		t.Fatalf("len(Images) = %d, want 9: %v", len(got.Images), got.Images)
	}
	for i := range want {
		if got.Images[i] != want[i] {
			t.Errorf("Images[%d] = %q, want %q", i, got.Images[i], want[i])
		}
	}
}

func TestImages_DeduplicatesAndCaps(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body><main><article>`)
	b.WriteString(`<img src="/img/dup.jpg">`)
	b.WriteString(`</article>`)
	b.WriteString(`<img data-src="/img/dup.jpg">`)
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, `<img src="/img/%d.jpg" width="200">`, i)
	}
	b.WriteString(`</main></body></html>`)

	got := Images(mustDoc(t, b.String()), nil)

	if len(got) != MaxImages {
		t.Fatalf("len(Images) = %d, want %d", len(got), MaxImages)
	}
	if got[0] != "/img/dup.jpg" {
		t.Errorf("Images[0] = %q, want /img/dup.jpg", got[0])
	}
	if got[1] != "/img/0.jpg" {
		t.Errorf("Images[1] = %q, want /img/0.jpg", got[1])
	}
}

func TestImages_ResolvesRelativeSources(t *testing.T) {
	html := `<html><body><div class="content">
		<img src="" data-src="lazy.jpg">
		<img src="/abs/path.png">
		<img>
	</div></body></html>`

	e := NewExtractor(Options{})
	got := e.Extract(mustDoc(t, html), "https://example.com/blog/post")

	want := []string{"https://example.com/blog/lazy.jpg", "https://example.com/abs/path.png"}
	if len(got.Images) != len(want) {
		t.Fatalf("Images = %v, want %v", got.Images, want)
	}
	for i := range want {
		if got.Images[i] != want[i] {
			t.Errorf("Images[%d] = %q, want %q", i, got.Images[i], want[i])
		}
	}
}

func TestImages_IgnoresImagesOutsideContainers(t *testing.T) {
	html := `<html><body><header><img src="https://example.com/logo.png" width="400"></header>
		<article><img src="https://example.com/hero.png" width="400"></article></body></html>`

	got := Images(mustDoc(t, html), nil)

	if len(got) != 1 || got[0] != "https://example.com/hero.png" {
		t.Errorf("Images = %v, want only the article image", got)
	}
}

func TestExtractHTML(t *testing.T) {
	e := NewExtractor(Options{})
	got, err := e.ExtractHTML(strings.NewReader(`<main>`+words(60)+`</main>`), "https://example.com/")

	if err != nil {
		t.Fatalf("ExtractHTML returned error: %v", err)
	}
	if !strings.HasPrefix(got.Text, "word0 word1") {
		t.Errorf("ExtractHTML().Text = %q", got.Text)
	}
}

func TestExtract_LookalikeHostsUseArticleSelectors(t *testing.T) {
	mainText := words(60)
	html := `<html><body><main><p>` + mainText + `</p></main></body></html>`
	e := NewExtractor(Options{})

	for _, pageURL := range []string{
		"https://www.netflix.com/tudum/article",
		"https://dropbox.com/blog/post",
		"https://linux.com/news",
	} {
		got := e.Extract(mustDoc(t, html), pageURL)
		if got.Text != mainText {
			t.Errorf("%s: expected main text, got %q", pageURL, got.Text)
		}
	}
}

func TestIsSocialHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"x.com", true},
		{"twitter.com", true},
		{"mobile.twitter.com", true},
		{"WWW.X.COM", true},
		{"netflix.com", false},
		{"fedex.com", false},
		{"nottwitter.com", false},
		{"example.org", false},
	}

	for _, tt := range tests {
		if got := isSocialHost(tt.host); got != tt.want {
			t.Errorf("isSocialHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}
