// ABOUTME: Public types for the Visual Summarizer library API
// ABOUTME: Re-exports the core domain and render types so callers need a single import

package summarizer

import (
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/panel"
	"visual-summarizer-api/core/render"
)

// Mode selects takeaways or visual output
type Mode = domain.Mode

// Modes
const (
	ModeTakeaways = domain.ModeTakeaways
	ModeVisual    = domain.ModeVisual
)

// Language selects the prompt language
type Language = domain.Language

// Languages
const (
	LanguageEnglish = domain.LanguageEnglish
	LanguageFrench  = domain.LanguageFrench
)

// Page is a page handed to OpenPanel
type Page = domain.Page

// Content is the readable text and images extracted from a page
type Content = domain.ExtractedContent

// Document is a parsed model reply
type Document = domain.ParsedDocument

// SavedPoint is an entry of the saved points list
type SavedPoint = domain.SavedPoint

// RecentSummary is an entry of the recent summaries list
type RecentSummary = domain.RecentSummary

// Node is one element of a rendered tree
type Node = render.VisualNode

// Panel is a live panel instance
type Panel = panel.Panel

// Snapshot is a point-in-time copy of a panel's visible state
type Snapshot = panel.Snapshot
