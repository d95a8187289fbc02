package driving

import (
	"context"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// CardService manages the user's own business cards.
type CardService interface {
	// SaveCard validates and persists a card, assigning an ID and
	// creation timestamp when absent. The first card ever saved becomes
	// the default. Returns the saved record.
	SaveCard(ctx context.Context, card domain.Card) (*domain.Card, error)

	// PrimaryCard returns the card referenced by the settings'
	// DefaultCardID, reconciling a dangling reference if the card was
	// deleted. Returns ErrNotFound when no cards exist.
	PrimaryCard(ctx context.Context) (*domain.Card, error)

	// AllCards returns the full collection. Callers must not rely on
	// ordering.
	AllCards(ctx context.Context) ([]domain.Card, error)

	// CardByID returns the card with the given ID, or ErrNotFound.
	CardByID(ctx context.Context, id string) (*domain.Card, error)

	// DeleteCard removes a card. If it was the default, another
	// surviving card is promoted, or the default is cleared when none
	// remain.
	DeleteCard(ctx context.Context, id string) error

	// SaveDraft stores an in-progress edit in the single draft slot,
	// independent of the main collection. Drafts are not validated.
	SaveDraft(ctx context.Context, card domain.Card) (*domain.Card, error)

	// Draft returns the current draft, or ErrNotFound when the slot is
	// empty.
	Draft(ctx context.Context) (*domain.Card, error)

	// ClearDraft empties the draft slot.
	ClearDraft(ctx context.Context) error
}
