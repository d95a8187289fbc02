package domain

import (
	"strings"
	"time"
)

// Contact represents a person the user met, captured by scanning a
// vCard QR code or entered manually.
type Contact struct {
	// ID is the unique identifier, assigned on first save.
	ID string `json:"id"`

	// CardData holds the person's card-shaped details.
	// CardData.Name must be non-empty.
	CardData Card `json:"cardData"`

	// Notes is free text about the person.
	Notes string `json:"notes,omitempty"`

	// Tags are free-text labels used for filtering.
	// Stored case-sensitively, matched case-insensitively.
	Tags []string `json:"tags,omitempty"`

	// MeetingContext records where or how the contact was met.
	MeetingContext string `json:"meetingContext,omitempty"`

	// VoiceNoteURI is an opaque reference to a recorded voice note.
	VoiceNoteURI string `json:"voiceNoteUri,omitempty"`

	// CreatedAt is set once, when the contact is first saved.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set on every save.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTag reports whether the contact carries the given tag.
// Matching is case-insensitive; a blank tag never matches.
func (c *Contact) HasTag(tag string) bool {
	if strings.TrimSpace(tag) == "" {
		return false
	}
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matches reports whether the query appears, case-insensitively, in the
// contact's name, company, title, email, or notes.
func (c *Contact) Matches(query string) bool {
	q := strings.ToLower(query)
	fields := []string{
		c.CardData.Name,
		c.CardData.Company,
		c.CardData.Title,
		c.CardData.Email,
		c.Notes,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
