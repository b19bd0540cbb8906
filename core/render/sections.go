// ABOUTME: Section renderers for takeaways and visual documents
// ABOUTME: Point affordances are derived from panel state passed in by the caller

package render

import (
	"fmt"

	"visual-summarizer-api/core/domain"
)

const (
	glyphUnsaved = "☆"
	glyphSaved   = "★"
	glyphExpand  = "→"

	detailLoadingText = "Loading..."
	detailFailedText  = "Could not load details"
)

// DetailStatus is the lifecycle of an expanded point's detail panel
type DetailStatus string

const (
	DetailNone    DetailStatus = ""
	DetailLoading DetailStatus = "loading"
	DetailLoaded  DetailStatus = "loaded"
	DetailFailed  DetailStatus = "failed"
)

// PointState is the interactive state of one key point
type PointState struct {
	Saved  bool
	Status DetailStatus
	Detail string
}

// PointStateFunc looks up the state of a key point by its text
type PointStateFunc func(text string) PointState

func noPointState(string) PointState { return PointState{} }

// RenderSections renders the body blocks of doc
func RenderSections(doc domain.ParsedDocument, state PointStateFunc) []VisualNode {
	switch {
	case doc.Takeaways != nil:
		return RenderTakeaways(*doc.Takeaways, state)
	case doc.Visual != nil:
		return RenderVisual(*doc.Visual)
	}
	return nil
}

// RenderTakeaways renders summary, key points and stats sections
func RenderTakeaways(doc domain.TakeawaysDocument, state PointStateFunc) []VisualNode {
	if state == nil {
		state = noPointState
	}
	if doc.Fallback() {
		return []VisualNode{preformatted("vs-structure", "📋 Response", doc.Raw)}
	}

	var blocks []VisualNode
	if doc.Summary != "" {
		blocks = append(blocks, el("div", "vs-section",
			textEl("h2", "", "Summary"),
			textEl("p", "", doc.Summary),
		))
	}

	if len(doc.KeyPoints) > 0 {
		list := el("ul", "vs-keypoints")
		for _, p := range doc.KeyPoints {
			list.Children = append(list.Children, RenderPoint(p.Text, state(p.Text)))
		}
		blocks = append(blocks, el("div", "vs-section", textEl("h2", "", "Key Points"), list))
	}

	stats := el("ul", "")
	for _, s := range doc.Stats {
		stats.Children = append(stats.Children, textEl("li", "", s))
	}
	blocks = append(blocks, el("div", "vs-section vs-stats", textEl("h2", "", "Stats & Data"), stats))

	return blocks
}

// RenderPoint renders one key point with its save and expand toggles
func RenderPoint(text string, st PointState) VisualNode {
	saveGlyph, saveClass := glyphUnsaved, "vs-save-point-btn"
	if st.Saved {
		saveGlyph, saveClass = glyphSaved, "vs-save-point-btn saved"
	}

	save := textEl("button", saveClass, saveGlyph).
		with("type", "button").
		with("title", "Save point").
		with("data-action", "toggle-save").
		with("data-point", text)
	expand := textEl("button", "vs-expand-btn", glyphExpand).
		with("type", "button").
		with("title", "More details").
		with("data-action", "toggle-expand").
		with("data-point", text)

	item := el("li", "",
		textEl("span", "vs-point-text", text),
		el("div", "vs-point-btns", save, expand),
	)

	switch st.Status {
	case DetailLoading:
		item.Children = append(item.Children, el("div", "vs-point-detail vs-loading-inline", textEl("span", "", detailLoadingText)))
	case DetailLoaded:
		item.Children = append(item.Children, el("div", "vs-point-detail", textEl("p", "", st.Detail)))
	case DetailFailed:
		item.Children = append(item.Children, el("div", "vs-point-detail vs-error-inline", textEl("span", "", detailFailedText)))
	}
	return item
}

// RenderVisual renders mind maps first, then structure blocks
func RenderVisual(doc domain.VisualDocument) []VisualNode {
	if doc.IsFallback {
		var blocks []VisualNode
		for _, s := range doc.Structures {
			blocks = append(blocks, preformatted("vs-structure", "📋 Response", s))
		}
		return blocks
	}

	var blocks []VisualNode
	for _, tree := range doc.Mindmaps {
		blocks = append(blocks, el("div", "vs-diagram", textEl("h3", "", "🧠 Mind Map"), RenderMindmap(tree)))
	}
	for _, s := range doc.Structures {
		blocks = append(blocks, preformatted("vs-structure", "📋 Structure", s))
	}
	return blocks
}

// RenderImages renders the thumbnail grid, or nil when there are no images
func RenderImages(images []string) *VisualNode {
	if len(images) == 0 {
		return nil
	}
	grid := el("div", "vs-images-grid")
	for _, src := range images {
		grid.Children = append(grid.Children, VisualNode{Tag: "img", Class: "vs-thumb"}.
			with("src", src).
			with("loading", "lazy"))
	}
	section := el("div", "vs-section vs-images", textEl("h2", "", fmt.Sprintf("Images (%d)", len(images))), grid)
	return &section
}

func preformatted(class, title, body string) VisualNode {
	return el("div", class, textEl("h3", "", title), textEl("pre", "vs-tree", body))
}
