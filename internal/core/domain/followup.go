package domain

// FollowUpStyle selects the tone of a generated follow-up message.
type FollowUpStyle string

// Available follow-up styles.
const (
	// StyleDefault lets the generator choose; treated as formal for
	// prompt construction.
	StyleDefault FollowUpStyle = "default"

	// StyleFormal produces professional, reserved wording.
	StyleFormal FollowUpStyle = "formal"

	// StyleCasual produces relaxed, conversational wording.
	StyleCasual FollowUpStyle = "casual"

	// StyleFriendly produces warm, enthusiastic wording.
	StyleFriendly FollowUpStyle = "friendly"
)

// IsValid returns true if the style is recognised.
func (s FollowUpStyle) IsValid() bool {
	switch s {
	case StyleDefault, StyleFormal, StyleCasual, StyleFriendly:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s FollowUpStyle) String() string {
	return string(s)
}

// AllFollowUpStyles returns the selectable styles.
func AllFollowUpStyles() []FollowUpStyle {
	return []FollowUpStyle{StyleDefault, StyleFormal, StyleCasual, StyleFriendly}
}

// FollowUpRequest carries everything needed to draft follow-up messages
// for a contact after a meeting.
type FollowUpRequest struct {
	// ContactName is the person to follow up with. Required; a blank
	// name forces the canned fallback.
	ContactName string

	// Title is the contact's job title.
	Title string

	// Company is the contact's organisation.
	Company string

	// MeetingNotes describes what was discussed.
	MeetingNotes string

	// Goals describes what the user wants from the follow-up.
	Goals string

	// Style selects the preferred tone.
	Style FollowUpStyle

	// SenderName signs the message. Defaults to a neutral sign-off
	// when empty.
	SenderName string
}

// HasContext reports whether the request carries any meeting context.
// Without notes or goals there is nothing for the backend to work with,
// so generation falls back to canned templates.
func (r *FollowUpRequest) HasContext() bool {
	return r.MeetingNotes != "" || r.Goals != ""
}

// FollowUpMessage is a single drafted message.
type FollowUpMessage struct {
	// Subject is the suggested subject line.
	Subject string `json:"subject"`

	// Body is the message text.
	Body string `json:"body"`
}

// FollowUpResult holds the three tonal variants of a follow-up draft.
// All three are always populated: either from the generative backend or
// from the deterministic templates.
type FollowUpResult struct {
	// Formal is the professional variant.
	Formal FollowUpMessage `json:"formal"`

	// Casual is the relaxed variant.
	Casual FollowUpMessage `json:"casual"`

	// Friendly is the warm variant.
	Friendly FollowUpMessage `json:"friendly"`

	// Generated is true when the messages came from the generative
	// backend rather than the canned templates.
	Generated bool `json:"isGenerated"`

	// FallbackReason states which precondition failed when Generated is
	// false. Empty on fully generated results.
	FallbackReason string `json:"error,omitempty"`
}

// Message returns the variant for the given style.
// StyleDefault maps to the formal variant.
func (r *FollowUpResult) Message(style FollowUpStyle) FollowUpMessage {
	switch style {
	case StyleCasual:
		return r.Casual
	case StyleFriendly:
		return r.Friendly
	case StyleFormal, StyleDefault:
		return r.Formal
	default:
		return r.Formal
	}
}
