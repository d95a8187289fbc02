package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
	"github.com/sirakinb/drop-card/internal/logger"
)

// Ensure CardService implements the interface.
var _ driving.CardService = (*CardService)(nil)

// CardService manages the user's own business cards.
//
// "Primary card" is derived: cards live in a single collection and the
// settings record carries a weak DefaultCardID reference. A dangling
// reference (the default card was deleted) is reconciled on read by
// repointing to any surviving card.
type CardService struct {
	kv driven.KVStore
}

// NewCardService creates a new card service.
func NewCardService(kv driven.KVStore) *CardService {
	return &CardService{kv: kv}
}

// SaveCard validates and persists a card.
// A card without an ID is treated as new: it gets a fresh ID and
// creation timestamp. Saving with an existing ID overwrites in place,
// so retries are idempotent. The first card ever saved becomes the
// default when none is set.
func (s *CardService) SaveCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	if err := domain.ValidateCard(&card); err != nil {
		return nil, err
	}

	now := time.Now()
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
	}
	card.UpdatedAt = now

	return s.saveValidated(ctx, card)
}

// saveValidated upserts an already-validated card and applies the
// first-card-default rule.
func (s *CardService) saveValidated(ctx context.Context, card domain.Card) (*domain.Card, error) {
	cards, err := loadCards(ctx, s.kv)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range cards {
		if cards[i].ID == card.ID {
			cards[i] = card
			replaced = true
			break
		}
	}
	if !replaced {
		cards = append(cards, card)
	}

	if err := saveCards(ctx, s.kv, cards); err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	if settings.DefaultCardID == "" {
		settings.DefaultCardID = card.ID
		if err := saveSettings(ctx, s.kv, settings); err != nil {
			return nil, err
		}
		logger.Debug("card %s set as default", card.ID)
	}

	return &card, nil
}

// PrimaryCard returns the default card.
// The collection and the settings reference are written independently,
// so the reference can point at a deleted card; this read reconciles
// that by promoting a surviving card and repointing the reference.
func (s *CardService) PrimaryCard(ctx context.Context) (*domain.Card, error) {
	cards, err := loadCards(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, domain.ErrNotFound
	}

	settings, err := loadSettings(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	if settings.DefaultCardID != "" {
		for i := range cards {
			if cards[i].ID == settings.DefaultCardID {
				return &cards[i], nil
			}
		}
		logger.Warn("default card %s no longer exists, repointing", settings.DefaultCardID)
	}

	// Unset or dangling reference: promote an arbitrary survivor.
	settings.DefaultCardID = cards[0].ID
	if err := saveSettings(ctx, s.kv, settings); err != nil {
		return nil, err
	}
	return &cards[0], nil
}

// AllCards returns the full collection. No ordering is guaranteed.
func (s *CardService) AllCards(ctx context.Context) ([]domain.Card, error) {
	return loadCards(ctx, s.kv)
}

// CardByID returns the card with the given ID.
func (s *CardService) CardByID(ctx context.Context, id string) (*domain.Card, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: card id is required", domain.ErrInvalidInput)
	}
	cards, err := loadCards(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteCard removes a card from the collection. When the deleted card
// was the default, the reference is repointed to a surviving card, or
// cleared when none remain so the next save re-runs the
// first-card-default rule.
func (s *CardService) DeleteCard(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: card id is required", domain.ErrInvalidInput)
	}

	cards, err := loadCards(ctx, s.kv)
	if err != nil {
		return err
	}

	remaining := cards[:0:0]
	found := false
	for _, c := range cards {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return domain.ErrNotFound
	}

	if err := saveCards(ctx, s.kv, remaining); err != nil {
		return err
	}

	settings, err := loadSettings(ctx, s.kv)
	if err != nil {
		return err
	}
	if settings.DefaultCardID == id {
		settings.DefaultCardID = ""
		if len(remaining) > 0 {
			settings.DefaultCardID = remaining[0].ID
		}
		if err := saveSettings(ctx, s.kv, settings); err != nil {
			return err
		}
	}

	return nil
}

// SaveDraft stores an in-progress edit in the single draft slot.
// Drafts are deliberately not validated - an interrupted edit session
// may hold a half-filled card.
func (s *CardService) SaveDraft(ctx context.Context, card domain.Card) (*domain.Card, error) {
	card.UpdatedAt = time.Now()

	data, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding draft: %v", domain.ErrStorage, err)
	}
	if err := s.kv.Set(ctx, driven.KeyDraftCard, string(data)); err != nil {
		return nil, fmt.Errorf("%w: writing draft: %v", domain.ErrStorage, err)
	}
	return &card, nil
}

// Draft returns the current draft.
func (s *CardService) Draft(ctx context.Context) (*domain.Card, error) {
	raw, ok, err := s.kv.Get(ctx, driven.KeyDraftCard)
	if err != nil {
		return nil, fmt.Errorf("%w: reading draft: %v", domain.ErrStorage, err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	var card domain.Card
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		return nil, fmt.Errorf("%w: decoding draft: %v", domain.ErrStorage, err)
	}
	return &card, nil
}

// ClearDraft empties the draft slot. Clearing an empty slot is not an
// error.
func (s *CardService) ClearDraft(ctx context.Context) error {
	if err := s.kv.Remove(ctx, driven.KeyDraftCard); err != nil {
		return fmt.Errorf("%w: clearing draft: %v", domain.ErrStorage, err)
	}
	return nil
}
