// ABOUTME: Parsed document models for takeaways and visual summaries
// ABOUTME: Exactly one variant is populated per parse and neither is ever empty

package domain

// NoStatsPlaceholder is the single stat used when a reply lists no data
const NoStatsPlaceholder = "No specific data mentioned"

// Point is one key point of a takeaways summary.
// Saved and Expanded are derived from the panel state at render time.
type Point struct {
	Text     string `json:"text"`
	Saved    bool   `json:"saved"`
	Expanded bool   `json:"expanded"`
	Detail   string `json:"detail,omitempty"`
}

// TakeawaysDocument is the parsed form of a takeaways reply
type TakeawaysDocument struct {
	Summary   string   `json:"summary"`
	KeyPoints []Point  `json:"keyPoints"`
	Stats     []string `json:"stats"`

	// Raw holds the full reply when no known section was found
	Raw string `json:"raw,omitempty"`
}

// Fallback reports whether the reply matched none of the section conventions
func (d TakeawaysDocument) Fallback() bool {
	return d.Raw != ""
}

// MindmapNode is a node of a three level mind map tree
type MindmapNode struct {
	Text     string        `json:"text"`
	Children []MindmapNode `json:"children"`
}

// IsLeaf reports whether the node has no children
func (n MindmapNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// VisualDocument is the parsed form of a visual reply
type VisualDocument struct {
	Mindmaps   []MindmapNode `json:"mindmaps"`
	Structures []string      `json:"structures"`

	// IsFallback marks a document whose only structure is the raw reply
	IsFallback bool `json:"fallback,omitempty"`
}

// ParsedDocument holds exactly one of the two document variants
type ParsedDocument struct {
	Mode      Mode               `json:"mode"`
	Takeaways *TakeawaysDocument `json:"takeaways,omitempty"`
	Visual    *VisualDocument    `json:"visual,omitempty"`
}
