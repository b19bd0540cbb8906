// ABOUTME: Panel state machine tracking mode, phase, per-mode documents and point state
// ABOUTME: One generation in flight at a time; responses landing after close are dropped

package panel

import (
	"context"
	"sync"
	"time"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/core/extract"
	"visual-summarizer-api/core/interfaces"
	"visual-summarizer-api/core/parse"
	"visual-summarizer-api/core/render"
	"visual-summarizer-api/pkg/utils/text"
)

const (
	msgSettingsUnreadable = "Extension error"
	msgNoAPIKey           = "API key not configured"

	// minPointLength is the shortest point text worth explaining
	minPointLength = 5
)

// Deps are the collaborators a panel talks to
type Deps struct {
	Summarizer  interfaces.Summarizer
	Explainer   interfaces.Explainer
	Settings    interfaces.SettingsProvider
	SavedPoints interfaces.SavedPointStore
	Recent      interfaces.RecentSummaryStore
	Logger      interfaces.Logger
}

type detail struct {
	status render.DetailStatus
	text   string
	seq    uint64
}

// Panel is the interactive state of one panel instance
type Panel struct {
	id      string
	page    domain.Page
	content domain.ExtractedContent
	deps    Deps
	now     func() time.Time

	mu      sync.Mutex
	mode    domain.Mode
	phase   domain.Phase
	message string
	busy    bool
	closed  bool

	docs        map[domain.Mode]domain.ParsedDocument
	saved       map[string]bool
	expanded    map[string]*detail
	detailCache map[string]string
	expandSeq   uint64
}

// New creates a panel in the welcome phase
func New(id string, page domain.Page, content domain.ExtractedContent, mode domain.Mode, deps Deps) *Panel {
	if !mode.Valid() {
		mode = domain.ModeTakeaways
	}
	return &Panel{
		id:          id,
		page:        domain.Page{URL: page.URL, Title: page.Title},
		content:     content,
		deps:        deps,
		now:         time.Now,
		mode:        mode,
		phase:       domain.PhaseWelcome,
		docs:        make(map[domain.Mode]domain.ParsedDocument),
		saved:       make(map[string]bool),
		expanded:    make(map[string]*detail),
		detailCache: make(map[string]string),
	}
}

// ID returns the panel identifier
func (p *Panel) ID() string {
	return p.id
}

// MarkSaved seeds the saved index from the durable store
func (p *Panel) MarkSaved(points []domain.SavedPoint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sp := range points {
		p.saved[sp.Text] = true
	}
}

// Generate requests a summary in the current mode and lands in result or error.
// Boundary failures are state, not errors: the returned error is only
// ErrBusy, ErrClosed or ErrStale.
func (p *Panel) Generate(ctx context.Context) (Snapshot, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Snapshot{}, apperrors.ErrClosed
	}
	if p.busy {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, apperrors.ErrBusy
	}
	p.busy = true
	mode := p.mode
	p.phase = domain.PhaseLoading
	p.message = ""
	p.mu.Unlock()

	started := p.now()
	doc, err := p.summarize(ctx, mode)

	p.mu.Lock()
	defer p.mu.Unlock()
	// busy blocks a second Generate, so only Close can overtake this one
	if p.closed {
		p.logDebug("Discarding stale generation", map[string]interface{}{"mode": string(mode)})
		return Snapshot{}, apperrors.ErrStale
	}
	p.busy = false

	if err != nil {
		p.phase = domain.PhaseError
		p.message = apperrors.UserMessage(err)
		p.logWarn("Generation failed", map[string]interface{}{
			"mode":  string(mode),
			"error": err.Error(),
		})
		return p.snapshotLocked(), nil
	}

	p.docs[mode] = doc
	p.phase = domain.PhaseResult
	p.logInfo("Generation finished", map[string]interface{}{
		"mode":        string(mode),
		"duration_ms": p.now().Sub(started).Milliseconds(),
	})
	return p.snapshotLocked(), nil
}

func (p *Panel) summarize(ctx context.Context, mode domain.Mode) (domain.ParsedDocument, error) {
	settings, err := p.deps.Settings.Settings(ctx)
	if err != nil {
		return domain.ParsedDocument{}, &apperrors.SettingsError{Message: msgSettingsUnreadable, Err: err}
	}
	if !settings.APIKeyConfigured {
		return domain.ParsedDocument{}, &apperrors.SettingsError{Message: msgNoAPIKey}
	}

	if n := text.Length(p.content.Text); n < extract.MinTextLength {
		return domain.ParsedDocument{}, &apperrors.ExtractionTooShortError{Length: n, Minimum: extract.MinTextLength}
	}

	reply, err := p.deps.Summarizer.Summarize(ctx, domain.SummaryRequest{
		Task:       mode,
		SourceText: p.content.Text,
		Language:   languageOf(settings),
	})
	if err != nil {
		return domain.ParsedDocument{}, err
	}
	return parse.Parse(mode, reply), nil
}

// SwitchMode changes the mode. Outside the welcome phase it shows the
// document already generated for that mode, or generates one.
func (p *Panel) SwitchMode(ctx context.Context, mode domain.Mode) (Snapshot, error) {
	if !mode.Valid() {
		return Snapshot{}, &apperrors.ValidationError{Field: "mode", Message: "must be takeaways or visual"}
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Snapshot{}, apperrors.ErrClosed
	}
	if p.busy {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, apperrors.ErrBusy
	}

	p.mode = mode
	if p.phase == domain.PhaseWelcome {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil
	}
	if _, ok := p.docs[mode]; ok {
		p.phase = domain.PhaseResult
		p.message = ""
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil
	}
	p.mu.Unlock()

	return p.Generate(ctx)
}

// ToggleSave flips whether a key point is saved.
// The store is written first; a storage failure leaves the index unchanged.
func (p *Panel) ToggleSave(ctx context.Context, pointText string) (Snapshot, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Snapshot{}, apperrors.ErrClosed
	}
	if !p.isKeyPointLocked(pointText) && !p.saved[pointText] {
		p.mu.Unlock()
		return Snapshot{}, errNotKeyPoint
	}
	page := p.page
	p.mu.Unlock()

	saved, err := p.deps.SavedPoints.Toggle(ctx, domain.SavedPoint{
		Text:      pointText,
		URL:       page.URL,
		Title:     page.Title,
		Timestamp: p.now(),
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.logWarn("Failed to toggle saved point", map[string]interface{}{"error": err.Error()})
		return p.snapshotLocked(), nil
	}
	if saved {
		p.saved[pointText] = true
	} else {
		delete(p.saved, pointText)
	}
	return p.snapshotLocked(), nil
}

// ToggleExpand collapses an open detail, or opens one and loads its text.
// Loaded text is reused for the life of the panel.
func (p *Panel) ToggleExpand(ctx context.Context, pointText string) (Snapshot, error) {
	if text.Length(pointText) < minPointLength {
		return Snapshot{}, &apperrors.ValidationError{Field: "text", Message: "point is too short to explain"}
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Snapshot{}, apperrors.ErrClosed
	}
	if _, open := p.expanded[pointText]; open {
		delete(p.expanded, pointText)
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil
	}
	if !p.isKeyPointLocked(pointText) {
		p.mu.Unlock()
		return Snapshot{}, errNotKeyPoint
	}
	if cached, ok := p.detailCache[pointText]; ok {
		p.expanded[pointText] = &detail{status: render.DetailLoaded, text: cached}
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil
	}
	p.expandSeq++
	seq := p.expandSeq
	p.expanded[pointText] = &detail{status: render.DetailLoading, seq: seq}
	p.mu.Unlock()

	explanation, err := p.explain(ctx, pointText)

	p.mu.Lock()
	defer p.mu.Unlock()
	current, open := p.expanded[pointText]
	if p.closed || !open || current.seq != seq {
		return Snapshot{}, apperrors.ErrStale
	}

	if err != nil {
		current.status = render.DetailFailed
		p.logWarn("Failed to load point details", map[string]interface{}{"error": err.Error()})
		return p.snapshotLocked(), nil
	}
	current.status = render.DetailLoaded
	current.text = explanation
	p.detailCache[pointText] = explanation
	return p.snapshotLocked(), nil
}

var errNotKeyPoint = &apperrors.ValidationError{Field: "text", Message: "not a key point of this summary"}

// isKeyPointLocked reports whether text is a key point of the takeaways document
func (p *Panel) isKeyPointLocked(text string) bool {
	doc, ok := p.docs[domain.ModeTakeaways]
	if !ok || doc.Takeaways == nil {
		return false
	}
	for _, point := range doc.Takeaways.KeyPoints {
		if point.Text == text {
			return true
		}
	}
	return false
}

func (p *Panel) explain(ctx context.Context, pointText string) (string, error) {
	language := domain.LanguageEnglish
	if settings, err := p.deps.Settings.Settings(ctx); err == nil {
		language = languageOf(settings)
	}
	return p.deps.Explainer.Explain(ctx, domain.ExplainRequest{
		Point:    text.Truncate(pointText, domain.MaxPointLength),
		Language: language,
	})
}

// SaveSummary records the current page in the recent summaries list.
// It reports whether the record was written.
func (p *Panel) SaveSummary(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false, apperrors.ErrClosed
	}
	if p.phase != domain.PhaseResult {
		p.mu.Unlock()
		return false, &apperrors.ValidationError{Field: "phase", Message: "no summary to save"}
	}
	summary := domain.RecentSummary{
		URL:       p.page.URL,
		Title:     p.page.Title,
		Mode:      p.mode,
		Timestamp: p.now(),
	}
	p.mu.Unlock()

	if err := p.deps.Recent.Add(ctx, summary); err != nil {
		p.logWarn("Failed to save summary", map[string]interface{}{"error": err.Error()})
		return false, nil
	}
	return true, nil
}

// Close discards all panel state. In-flight responses become stale.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.busy = false
	p.docs = make(map[domain.Mode]domain.ParsedDocument)
	p.saved = make(map[string]bool)
	p.expanded = make(map[string]*detail)
	p.detailCache = make(map[string]string)
}

// Closed reports whether Close was called
func (p *Panel) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Snapshot returns a copy of the current state
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func languageOf(s domain.Settings) domain.Language {
	if s.Language.Valid() {
		return s.Language
	}
	return domain.LanguageEnglish
}

func (p *Panel) logInfo(msg string, fields map[string]interface{}) {
	if p.deps.Logger != nil {
		fields["panel_id"] = p.id
		p.deps.Logger.Info(msg, fields)
	}
}

func (p *Panel) logWarn(msg string, fields map[string]interface{}) {
	if p.deps.Logger != nil {
		fields["panel_id"] = p.id
		p.deps.Logger.Warn(msg, fields)
	}
}

func (p *Panel) logDebug(msg string, fields map[string]interface{}) {
	if p.deps.Logger != nil {
		fields["panel_id"] = p.id
		p.deps.Logger.Debug(msg, fields)
	}
}
