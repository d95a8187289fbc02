package domain

import (
	"strings"
	"time"
)

// Card represents a user-authored digital business card.
// Name is the only required field; Email, when present, must have a
// basic local@domain.tld shape (see ValidateCard).
type Card struct {
	// ID is the unique identifier, assigned on first save.
	ID string `json:"id"`

	// Name is the card holder's full name. Required.
	Name string `json:"name"`

	// Title is the job title.
	Title string `json:"title,omitempty"`

	// Company is the organisation name.
	Company string `json:"company,omitempty"`

	// Email is the contact email address.
	Email string `json:"email,omitempty"`

	// Phone is the contact phone number.
	Phone string `json:"phone,omitempty"`

	// Website is the personal or company website URL.
	Website string `json:"website,omitempty"`

	// LinkedIn is a LinkedIn profile URL or bare username.
	LinkedIn string `json:"linkedin,omitempty"`

	// Twitter is a Twitter profile URL or handle (with or without @).
	Twitter string `json:"twitter,omitempty"`

	// Bio is a short free-text description.
	Bio string `json:"bio,omitempty"`

	// PhotoURI is an opaque reference to an image resource.
	// Either a base64 data URI or a local file reference.
	PhotoURI string `json:"photoUri,omitempty"`

	// CreatedAt is set once, when the card is first saved.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set on every save.
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName returns the name with the title appended when present.
// Used for display in CLI/TUI listings.
func (c *Card) DisplayName() string {
	if c.Title != "" {
		return c.Name + " - " + c.Title
	}
	return c.Name
}

// HasPhoto returns true if the card carries an embeddable photo,
// i.e. a base64 data URI rather than a local file reference.
func (c *Card) HasPhoto() bool {
	return strings.HasPrefix(c.PhotoURI, "data:")
}
