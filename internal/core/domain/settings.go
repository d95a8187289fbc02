package domain

const unknownDescription = "Unknown"

// Theme identifies a UI colour theme.
type Theme string

// Available themes.
const (
	// ThemeLight is the light colour theme.
	ThemeLight Theme = "light"

	// ThemeDark is the dark colour theme.
	ThemeDark Theme = "dark"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return unknownDescription
	}
}

// Settings holds all user preferences. There is exactly one instance,
// merge-updated field by field.
type Settings struct {
	// Theme is the UI colour theme.
	Theme Theme `json:"theme"`

	// DefaultCardID is a weak reference to the primary Card's ID.
	// Empty means no default is set. If the referenced card is deleted,
	// the card service repoints it to a surviving card or clears it.
	DefaultCardID string `json:"defaultCardId,omitempty"`

	// AIAPIKey is the generative text backend credential. Optional;
	// follow-up generation falls back to canned templates without it.
	AIAPIKey string `json:"aiApiKey,omitempty"`

	// EnableVoiceNotes toggles voice note capture on contacts.
	EnableVoiceNotes bool `json:"enableVoiceNotes"`
}

// SettingsPatch is a partial Settings record for merge-updates.
// Nil fields are left unchanged.
type SettingsPatch struct {
	Theme            *Theme
	DefaultCardID    *string
	AIAPIKey         *string
	EnableVoiceNotes *bool
}

// Apply shallow-merges the patch over the settings and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.DefaultCardID != nil {
		s.DefaultCardID = *p.DefaultCardID
	}
	if p.AIAPIKey != nil {
		s.AIAPIKey = *p.AIAPIKey
	}
	if p.EnableVoiceNotes != nil {
		s.EnableVoiceNotes = *p.EnableVoiceNotes
	}
	return s
}

// DefaultSettings returns settings with sensible defaults.
// The AI API key is left unconfigured; users must set it explicitly.
func DefaultSettings() Settings {
	return Settings{
		Theme:            ThemeLight,
		DefaultCardID:    "",
		AIAPIKey:         "",
		EnableVoiceNotes: true,
	}
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}
