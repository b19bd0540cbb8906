// ABOUTME: Request models exchanged with the summarization collaborators
// ABOUTME: Both calls are single-shot request/response operations

package domain

// MaxPointLength bounds the point text sent to the explain service
const MaxPointLength = 500

// SummaryRequest asks the summarization service for a reply in one mode
type SummaryRequest struct {
	Task       Mode     `json:"task"`
	SourceText string   `json:"sourceText"`
	Language   Language `json:"language"`
}

// ExplainRequest asks the detail service to expand one key point
type ExplainRequest struct {
	Point    string   `json:"point"`
	Language Language `json:"language"`
}
