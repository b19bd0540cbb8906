// ABOUTME: Feature flags gating the readability fallback, rate limiting and page fetching
// ABOUTME: Env-backed flags for the server, static flags for tests and embedding

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag names one optional behavior
type FeatureFlag string

const (
	// ReadabilityFallback tries go-readability before the cleaned page body
	ReadabilityFallback FeatureFlag = "readability_fallback"

	// RateLimitEnabled enables per-IP rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// PageFetchEnabled lets panels be opened from a URL alone
	PageFetchEnabled FeatureFlag = "page_fetch_enabled"
)

// Known lists every flag the service reads
var Known = []FeatureFlag{ReadabilityFallback, RateLimitEnabled, PageFetchEnabled}

// Manager answers flag lookups; all flags default to off
type Manager interface {
	IsEnabled(ctx context.Context, flag FeatureFlag) bool
	SetEnabled(flag FeatureFlag, enabled bool)

	// Snapshot returns the current state of every known flag
	Snapshot() map[FeatureFlag]bool
}

// EnvManager reads PREFIX + upper-cased flag name on every lookup.
// Values set through SetEnabled take precedence over the environment.
type EnvManager struct {
	prefix string

	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
}

// NewEnvManager creates an env-backed manager; an empty prefix means "FEATURE_"
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{prefix: prefix, overrides: make(map[FeatureFlag]bool)}
}

// EnvKey is the variable consulted for flag
func (m *EnvManager) EnvKey(flag FeatureFlag) string {
	return m.prefix + strings.ToUpper(string(flag))
}

func (m *EnvManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	enabled, ok := m.overrides[flag]
	m.mu.RUnlock()
	if ok {
		return enabled
	}
	return truthy(os.Getenv(m.EnvKey(flag)))
}

func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	m.overrides[flag] = enabled
	m.mu.Unlock()
}

func (m *EnvManager) Snapshot() map[FeatureFlag]bool {
	return snapshot(m)
}

// truthy accepts true, 1 and enabled in any case
func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "enabled":
		return true
	}
	return false
}

// StaticManager holds flags in memory
type StaticManager struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

// NewStaticManager copies flags; a nil map leaves everything off
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	m := &StaticManager{flags: make(map[FeatureFlag]bool, len(flags))}
	for k, v := range flags {
		m.flags[k] = v
	}
	return m
}

func (m *StaticManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	m.flags[flag] = enabled
	m.mu.Unlock()
}

func (m *StaticManager) Snapshot() map[FeatureFlag]bool {
	return snapshot(m)
}

func snapshot(m Manager) map[FeatureFlag]bool {
	ctx := context.Background()
	out := make(map[FeatureFlag]bool, len(Known))
	for _, flag := range Known {
		out[flag] = m.IsEnabled(ctx, flag)
	}
	return out
}
