// ABOUTME: ExtractedContent domain model represents the readable text and images of one page
// ABOUTME: Produced once per extraction call and never mutated afterwards

package domain

// ExtractedContent holds the normalized text and representative images of a page
type ExtractedContent struct {
	// Text is the whitespace-collapsed readable text, already truncated
	Text string `json:"text"`

	// Images holds distinct content image URLs in document order
	Images []string `json:"images"`
}

// Page is the raw page handed over by the hosting shell
type Page struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}
