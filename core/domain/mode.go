// ABOUTME: Mode and Phase enumerate the orthogonal axes of the panel state
// ABOUTME: Mode selects the kind of summary, Phase tracks the lifecycle of the display

package domain

// Mode selects which kind of summary the panel shows
type Mode string

const (
	// ModeTakeaways shows summary, key points and stats
	ModeTakeaways Mode = "takeaways"

	// ModeVisual shows mind maps and structure blocks
	ModeVisual Mode = "visual"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeTakeaways || m == ModeVisual
}

// Phase is the lifecycle state of the panel content area
type Phase string

const (
	PhaseWelcome Phase = "welcome"
	PhaseLoading Phase = "loading"
	PhaseResult  Phase = "result"
	PhaseError   Phase = "error"
)

// Language is the locale used for prompts
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageFrench
}
