// ABOUTME: Takeaways reply parser turning "## " sections into summary, key points and stats
// ABOUTME: Total function: unknown sections are ignored and unparseable replies keep the raw text

package parse

import (
	"strings"

	"visual-summarizer-api/core/domain"
)

const (
	sectionMarker = "## "
	bulletMarker  = "-"
)

type sectionKind int

const (
	sectionUnknown sectionKind = iota
	sectionSummary
	sectionPoints
	sectionStats
)

// classifySection decides a section kind from its title line
func classifySection(title string) sectionKind {
	title = strings.ToUpper(strings.TrimSpace(title))
	switch {
	case strings.Contains(title, "SUMMARY"):
		return sectionSummary
	case strings.Contains(title, "POINTS"):
		return sectionPoints
	case strings.Contains(title, "STATS"), strings.Contains(title, "DATA"):
		return sectionStats
	}
	return sectionUnknown
}

// ParseTakeaways parses a takeaways reply.
// Each field is collected independently of section order.
func ParseTakeaways(reply string) domain.TakeawaysDocument {
	doc := domain.TakeawaysDocument{
		KeyPoints: []domain.Point{},
	}
	var summaries []string
	recognized := false

	for _, chunk := range strings.Split(reply, sectionMarker) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		title, body, _ := strings.Cut(chunk, "\n")
		body = strings.TrimSpace(body)

		switch classifySection(title) {
		case sectionSummary:
			recognized = true
			if body != "" {
				summaries = append(summaries, body)
			}
		case sectionPoints:
			recognized = true
			for _, item := range bullets(body) {
				doc.KeyPoints = append(doc.KeyPoints, domain.Point{Text: item})
			}
		case sectionStats:
			recognized = true
			doc.Stats = append(doc.Stats, bullets(body)...)
		}
	}

	doc.Summary = strings.Join(summaries, "\n\n")
	if len(doc.Stats) == 0 {
		doc.Stats = []string{domain.NoStatsPlaceholder}
	}
	if !recognized {
		doc.Raw = reply
	}
	return doc
}

// bullets returns the text of every line starting with the bullet marker
func bullets(body string) []string {
	var items []string
	for _, line := range strings.Split(body, "\n") {
		item, ok := stripBullet(strings.TrimSpace(line))
		if !ok || item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// stripBullet removes a leading bullet marker and the spaces after it
func stripBullet(line string) (string, bool) {
	if !strings.HasPrefix(line, bulletMarker) {
		return line, false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, bulletMarker)), true
}
