// ABOUTME: Visual reply parser collecting mind map and structure fenced blocks
// ABOUTME: Falls back to the raw reply so the document is never empty

package parse

import (
	"strings"

	"visual-summarizer-api/core/domain"
)

const (
	tagMindmap   = "mindmap"
	tagStructure = "structure"
)

// ParseVisual parses a visual reply.
// Blocks with a blank body are treated as absent.
func ParseVisual(reply string) domain.VisualDocument {
	doc := domain.VisualDocument{
		Mindmaps:   []domain.MindmapNode{},
		Structures: []string{},
	}

	for _, block := range Blocks(reply) {
		body := strings.TrimSpace(block.Body)
		if body == "" {
			continue
		}
		switch block.Tag {
		case tagMindmap:
			if tree := ParseMindmap(body); tree != nil {
				doc.Mindmaps = append(doc.Mindmaps, *tree)
			}
		case tagStructure:
			doc.Structures = append(doc.Structures, body)
		}
	}

	if len(doc.Mindmaps) == 0 && len(doc.Structures) == 0 {
		doc.Structures = []string{reply}
		doc.IsFallback = true
	}
	return doc
}

// Parse dispatches reply to the parser of mode
func Parse(mode domain.Mode, reply string) domain.ParsedDocument {
	if mode == domain.ModeVisual {
		visual := ParseVisual(reply)
		return domain.ParsedDocument{Mode: mode, Visual: &visual}
	}
	takeaways := ParseTakeaways(reply)
	return domain.ParsedDocument{Mode: domain.ModeTakeaways, Takeaways: &takeaways}
}
