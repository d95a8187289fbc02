package driving

import (
	"context"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// ContactService manages collected contacts.
type ContactService interface {
	// SaveContact validates and persists a contact, assigning an ID and
	// creation timestamp when absent. Returns the saved record.
	SaveContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)

	// AllContacts returns the full collection.
	AllContacts(ctx context.Context) ([]domain.Contact, error)

	// ContactByID returns the contact with the given ID, or ErrNotFound.
	ContactByID(ctx context.Context, id string) (*domain.Contact, error)

	// DeleteContact removes a contact by ID.
	DeleteContact(ctx context.Context, id string) error

	// SearchContacts returns contacts whose name, company, title, email,
	// or notes contain the query, case-insensitively. A blank query
	// returns the full collection.
	SearchContacts(ctx context.Context, query string) ([]domain.Contact, error)

	// FilterByTag returns contacts carrying the tag, matched
	// case-insensitively. A blank tag returns the full collection.
	FilterByTag(ctx context.Context, tag string) ([]domain.Contact, error)

	// FilterContacts applies the search query first, then narrows the
	// result by tag.
	FilterContacts(ctx context.Context, query, tag string) ([]domain.Contact, error)

	// ExportCSV serialises the collection to CSV with the fixed column
	// order Name,Title,Company,Email,Phone,Website,Notes,Meeting
	// Context,Created Date. Returns an empty string for an empty
	// collection.
	ExportCSV(ctx context.Context) (string, error)
}
