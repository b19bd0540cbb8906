// ABOUTME: Whole-panel renderer for every phase of the panel lifecycle
// ABOUTME: Header, mode tabs, phase-specific content and footer actions

package render

import "visual-summarizer-api/core/domain"

// View is everything the panel renderer needs from the panel state
type View struct {
	Mode     domain.Mode
	Phase    domain.Phase
	Document *domain.ParsedDocument
	Images   []string
	Message  string
	Points   PointStateFunc
}

// RenderPanel renders the complete panel for v
func RenderPanel(v View) VisualNode {
	return el("div", "vs-panel vs-visible",
		renderHeader(),
		renderTabs(v.Mode),
		RenderContent(v),
		renderFooter(v.Phase == domain.PhaseResult),
	).with("id", "visual-summarizer-panel")
}

// RenderContent renders only the content area for v.Phase
func RenderContent(v View) VisualNode {
	content := el("div", "vs-content").with("id", "vs-content")

	switch v.Phase {
	case domain.PhaseLoading:
		content.Children = append(content.Children, el("div", "vs-loading",
			el("div", "vs-spinner"),
			textEl("p", "", "Analyzing..."),
		))
	case domain.PhaseError:
		content.Children = append(content.Children, el("div", "vs-error",
			textEl("div", "vs-error-icon", "⚠️"),
			textEl("h3", "", "Error"),
			textEl("p", "", v.Message),
			actionButton("vs-generate-btn", "Try Again", "generate"),
		))
	case domain.PhaseResult:
		if v.Document == nil {
			break
		}
		class := "vs-takeaways"
		if v.Document.Visual != nil {
			class = "vs-visual"
		}
		container := el("div", class, RenderSections(*v.Document, v.Points)...)
		if images := RenderImages(v.Images); images != nil {
			container.Children = append(container.Children, *images)
		}
		content.Children = append(content.Children, container)
	default:
		content.Children = append(content.Children, el("div", "vs-welcome",
			textEl("div", "vs-welcome-icon", "✨"),
			textEl("h3", "", "Ready to Summarize"),
			textEl("p", "", "Click the button below to generate a summary."),
			actionButton("vs-generate-btn", "Generate Summary", "generate"),
		))
	}
	return content
}

func renderHeader() VisualNode {
	return el("div", "vs-header",
		el("div", "vs-title",
			textEl("span", "vs-logo", "🎯"),
			textEl("span", "", "Visual Summarizer"),
		),
		actionButton("vs-close-btn", "×", "close"),
	)
}

func renderTabs(active domain.Mode) VisualNode {
	tab := func(mode domain.Mode, label string) VisualNode {
		class := "vs-tab"
		if mode == active {
			class = "vs-tab active"
		}
		return actionButton(class, label, "switch-mode").with("data-mode", string(mode))
	}
	return el("div", "vs-tabs",
		tab(domain.ModeTakeaways, "📝 Takeaways"),
		tab(domain.ModeVisual, "🗺️ Visual"),
	)
}

func renderFooter(showActions bool) VisualNode {
	footer := el("div", "vs-footer")
	if showActions {
		footer.Children = append(footer.Children,
			actionButton("vs-regenerate-btn", "🔄 Regenerate", "generate"),
			actionButton("vs-save-btn", "💾 Save", "save-summary"),
		)
	}
	return footer
}

func actionButton(class, label, action string) VisualNode {
	return textEl("button", class, label).
		with("type", "button").
		with("data-action", action)
}
