// ABOUTME: Point-in-time copy of a panel's state for rendering and transport
// ABOUTME: Key point Saved/Expanded/Detail fields are filled in from the panel indexes

package panel

import (
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/render"
)

// Snapshot is an immutable copy of a panel's visible state
type Snapshot struct {
	ID       string                 `json:"id"`
	URL      string                 `json:"url"`
	Title    string                 `json:"title,omitempty"`
	Mode     domain.Mode            `json:"mode"`
	Phase    domain.Phase           `json:"phase"`
	Message  string                 `json:"message,omitempty"`
	Busy     bool                   `json:"busy"`
	Document *domain.ParsedDocument `json:"document,omitempty"`
	Images   []string               `json:"images"`

	points map[string]render.PointState
}

// PointState returns the interactive state of a key point
func (s Snapshot) PointState(text string) render.PointState {
	return s.points[text]
}

// View adapts the snapshot for the panel renderer
func (s Snapshot) View() render.View {
	return render.View{
		Mode:     s.Mode,
		Phase:    s.Phase,
		Document: s.Document,
		Images:   s.Images,
		Message:  s.Message,
		Points:   s.PointState,
	}
}

func (p *Panel) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:      p.id,
		URL:     p.page.URL,
		Title:   p.page.Title,
		Mode:    p.mode,
		Phase:   p.phase,
		Message: p.message,
		Busy:    p.busy,
		Images:  append([]string{}, p.content.Images...),
		points:  make(map[string]render.PointState),
	}
	for text := range p.saved {
		snap.points[text] = p.pointStateLocked(text)
	}
	for text := range p.expanded {
		snap.points[text] = p.pointStateLocked(text)
	}

	if p.phase != domain.PhaseResult {
		return snap
	}
	doc, ok := p.docs[p.mode]
	if !ok {
		return snap
	}

	if doc.Takeaways != nil {
		takeaways := *doc.Takeaways
		takeaways.KeyPoints = make([]domain.Point, len(doc.Takeaways.KeyPoints))
		for i, kp := range doc.Takeaways.KeyPoints {
			st := p.pointStateLocked(kp.Text)
			snap.points[kp.Text] = st
			takeaways.KeyPoints[i] = domain.Point{
				Text:     kp.Text,
				Saved:    st.Saved,
				Expanded: st.Status != render.DetailNone,
				Detail:   st.Detail,
			}
		}
		doc.Takeaways = &takeaways
	}
	snap.Document = &doc
	return snap
}

func (p *Panel) pointStateLocked(text string) render.PointState {
	st := render.PointState{Saved: p.saved[text]}
	if d, ok := p.expanded[text]; ok {
		st.Status = d.status
		st.Detail = d.text
	}
	return st
}
