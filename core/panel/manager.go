// ABOUTME: Panel registry keyed by UUID with idle expiry backed by go-cache
// ABOUTME: Eviction closes the panel so any response still in flight is discarded

package panel

import (
	"context"
	"strings"
	"time"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/core/extract"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultIdleTimeout is how long an untouched panel is kept
const DefaultIdleTimeout = 30 * time.Minute

// Manager creates, finds and closes panels
type Manager struct {
	deps      Deps
	extractor *extract.Extractor
	panels    *gocache.Cache
}

// NewManager creates a manager; idleTimeout <= 0 uses DefaultIdleTimeout
func NewManager(deps Deps, extractor *extract.Extractor, idleTimeout time.Duration) *Manager {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if extractor == nil {
		extractor = extract.NewExtractor(extract.Options{})
	}

	panels := gocache.New(idleTimeout, idleTimeout/2)
	panels.OnEvicted(func(id string, v interface{}) {
		if p, ok := v.(*Panel); ok {
			p.Close()
		}
		if deps.Logger != nil {
			deps.Logger.Debug("Panel closed", map[string]interface{}{"panel_id": id})
		}
	})

	return &Manager{
		deps:      deps,
		extractor: extractor,
		panels:    panels,
	}
}

// Open extracts the page content and registers a new panel in the welcome phase.
// The initial mode and saved index come from the store on a best-effort basis.
func (m *Manager) Open(ctx context.Context, page domain.Page) (*Panel, error) {
	if strings.TrimSpace(page.URL) == "" {
		return nil, &apperrors.ValidationError{Field: "url", Message: "cannot be empty"}
	}

	content, err := m.extractor.ExtractHTML(strings.NewReader(page.HTML), page.URL)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to extract page")
	}

	mode := domain.ModeTakeaways
	if settings, err := m.deps.Settings.Settings(ctx); err == nil && settings.DefaultMode.Valid() {
		mode = settings.DefaultMode
	}

	p := New(uuid.NewString(), page, content, mode, m.deps)

	if m.deps.SavedPoints != nil {
		saved, err := m.deps.SavedPoints.List(ctx)
		if err != nil {
			if m.deps.Logger != nil {
				m.deps.Logger.Warn("Failed to load saved points", map[string]interface{}{"error": err.Error()})
			}
		} else {
			p.MarkSaved(saved)
		}
	}

	m.panels.SetDefault(p.ID(), p)

	if m.deps.Logger != nil {
		m.deps.Logger.Info("Panel opened", map[string]interface{}{
			"panel_id":    p.ID(),
			"url":         page.URL,
			"text_length": len([]rune(content.Text)),
			"images":      len(content.Images),
		})
	}
	return p, nil
}

// Get returns a live panel and refreshes its idle timer
func (m *Manager) Get(id string) (*Panel, error) {
	v, ok := m.panels.Get(id)
	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "panel", ID: id}
	}
	p := v.(*Panel)
	m.touch(id, p)
	return p, nil
}

// touch restarts the idle timer unless the panel was removed meanwhile
func (m *Manager) touch(id string, p *Panel) {
	_ = m.panels.Replace(id, p, gocache.DefaultExpiration)
}

// Close closes and forgets a panel
func (m *Manager) Close(id string) error {
	if _, ok := m.panels.Get(id); !ok {
		return &apperrors.NotFoundError{Resource: "panel", ID: id}
	}
	m.panels.Delete(id)
	return nil
}

// Count returns the number of live panels
func (m *Manager) Count() int {
	return m.panels.ItemCount()
}
