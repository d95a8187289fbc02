package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// csvHeader is the fixed column order for contact exports.
const csvHeader = "Name,Title,Company,Email,Phone,Website,Notes,Meeting Context,Created Date"

// csvDateLayout renders Created Date as a human-readable date rather
// than an ISO timestamp.
const csvDateLayout = "Jan 2, 2006"

// ContactService manages collected contacts.
type ContactService struct {
	kv driven.KVStore
}

// NewContactService creates a new contact service.
func NewContactService(kv driven.KVStore) *ContactService {
	return &ContactService{kv: kv}
}

// SaveContact validates and persists a contact.
// A contact without an ID gets a fresh ID and creation timestamp.
// Saving with an existing ID overwrites in place, so retries are
// idempotent.
func (s *ContactService) SaveContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if err := domain.ValidateContact(&contact); err != nil {
		return nil, err
	}

	now := time.Now()
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now

	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range contacts {
		if contacts[i].ID == contact.ID {
			contacts[i] = contact
			replaced = true
			break
		}
	}
	if !replaced {
		contacts = append(contacts, contact)
	}

	if err := saveContacts(ctx, s.kv, contacts); err != nil {
		return nil, err
	}
	return &contact, nil
}

// AllContacts returns the full collection.
func (s *ContactService) AllContacts(ctx context.Context) ([]domain.Contact, error) {
	return loadContacts(ctx, s.kv)
}

// ContactByID returns the contact with the given ID.
func (s *ContactService) ContactByID(ctx context.Context, id string) (*domain.Contact, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrInvalidInput)
	}
	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteContact removes a contact by ID.
func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: contact id is required", domain.ErrInvalidInput)
	}

	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return err
	}

	remaining := contacts[:0:0]
	found := false
	for _, c := range contacts {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return domain.ErrNotFound
	}

	return saveContacts(ctx, s.kv, remaining)
}

// SearchContacts returns contacts matching the query across name,
// company, title, email, and notes. A blank query returns the full
// collection.
func (s *ContactService) SearchContacts(ctx context.Context, query string) ([]domain.Contact, error) {
	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	return filterBySearch(contacts, query), nil
}

// FilterByTag returns contacts carrying the tag. A blank tag returns
// the full collection.
func (s *ContactService) FilterByTag(ctx context.Context, tag string) ([]domain.Contact, error) {
	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	return filterByTag(contacts, tag), nil
}

// FilterContacts applies the search query first, then narrows the
// result by tag - not the reverse, and not an independent union.
func (s *ContactService) FilterContacts(ctx context.Context, query, tag string) ([]domain.Contact, error) {
	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	return filterByTag(filterBySearch(contacts, query), tag), nil
}

func filterBySearch(contacts []domain.Contact, query string) []domain.Contact {
	query = strings.TrimSpace(query)
	if query == "" {
		return contacts
	}
	matched := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Matches(query) {
			matched = append(matched, c)
		}
	}
	return matched
}

func filterByTag(contacts []domain.Contact, tag string) []domain.Contact {
	if strings.TrimSpace(tag) == "" {
		return contacts
	}
	matched := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.HasTag(tag) {
			matched = append(matched, c)
		}
	}
	return matched
}

// ExportCSV serialises the contact collection.
// Fields containing a comma are wrapped in double quotes; embedded
// double quotes are left as-is. An empty collection yields an empty
// string rather than a lone header row.
func (s *ContactService) ExportCSV(ctx context.Context) (string, error) {
	contacts, err := loadContacts(ctx, s.kv)
	if err != nil {
		return "", err
	}
	if len(contacts) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, c := range contacts {
		fields := []string{
			c.CardData.Name,
			c.CardData.Title,
			c.CardData.Company,
			c.CardData.Email,
			c.CardData.Phone,
			c.CardData.Website,
			c.Notes,
			c.MeetingContext,
			c.CreatedAt.Format(csvDateLayout),
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(csvField(f))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// csvField wraps comma-containing values in double quotes.
func csvField(value string) string {
	if strings.Contains(value, ",") {
		return `"` + value + `"`
	}
	return value
}
