// ABOUTME: Indentation-driven mind map parser producing a root, category, leaf tree
// ABOUTME: Irregular lines are dropped rather than guessed

package parse

import (
	"strings"

	"visual-summarizer-api/core/domain"
)

// Indentation columns; a tab counts as one level.
const (
	levelWidth    = 2
	categoryLevel = 1
	leafLevel     = 2
)

// ParseMindmap builds a tree from an indented outline.
//
// Precedence for every line after the root:
//   - one level of indent starts a category (a bullet marker is stripped)
//   - two levels of indent is a leaf of the latest category
//   - no indent with a bullet marker is a leaf of the latest category
//   - no indent without a bullet, or more than two levels, is dropped
//   - a leaf before any category is dropped
//
// It returns nil when the outline has no non-blank line.
func ParseMindmap(outline string) *domain.MindmapNode {
	var root *domain.MindmapNode
	category := -1

	for _, line := range strings.Split(outline, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if root == nil {
			root = &domain.MindmapNode{Text: trimmed, Children: []domain.MindmapNode{}}
			continue
		}

		item, bullet := stripBullet(trimmed)
		if item == "" {
			continue
		}

		switch level := indentLevel(line); {
		case level == categoryLevel:
			root.Children = append(root.Children, domain.MindmapNode{Text: item, Children: []domain.MindmapNode{}})
			category = len(root.Children) - 1
		case level == leafLevel, level == 0 && bullet:
			if category < 0 {
				continue
			}
			parent := &root.Children[category]
			parent.Children = append(parent.Children, domain.MindmapNode{Text: item, Children: []domain.MindmapNode{}})
		}
	}

	return root
}

// indentLevel converts leading whitespace into a level, rounding down
func indentLevel(line string) int {
	columns := 0
	for _, r := range line {
		switch r {
		case ' ':
			columns++
		case '\t':
			columns += levelWidth
		default:
			return columns / levelWidth
		}
	}
	return columns / levelWidth
}
