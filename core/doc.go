// Package core contains the business logic for the Visual Summarizer API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Page, ParsedDocument, SavedPoint, Settings)
// - extract: Readable text and content image extraction from page HTML
// - parse: Takeaways and visual reply parsers, including the mind map outline
// - render: Visual node tree renderer for every panel phase
// - panel: Panel lifecycle state machine and the manager holding open panels
// - savedpoints: Bounded saved point and recent summary lists on a key-value store
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, model)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Parsers and renderers are total functions
//
// # Usage Example
//
//	import (
//	    "visual-summarizer-api/core/domain"
//	    "visual-summarizer-api/core/panel"
//	)
//
//	manager := panel.NewManager(panel.Deps{
//	    Summarizer:  summarizer,  // implements interfaces.Summarizer
//	    Explainer:   explainer,   // implements interfaces.Explainer
//	    Settings:    settings,    // implements interfaces.SettingsProvider
//	    SavedPoints: store,       // implements interfaces.SavedPointStore
//	    Recent:      store.Recent(),
//	}, logger, 30*time.Minute)
//
//	p, err := manager.Open(ctx, domain.Page{URL: pageURL, HTML: html})
//	snap, err := p.Generate(ctx)
package core
