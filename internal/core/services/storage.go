package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
)

// Collection load/save helpers shared by the repository services.
// Records are persisted as JSON under one key per logical collection.

func loadCards(ctx context.Context, kv driven.KVStore) ([]domain.Card, error) {
	raw, ok, err := kv.Get(ctx, driven.KeyCards)
	if err != nil {
		return nil, fmt.Errorf("%w: reading cards: %v", domain.ErrStorage, err)
	}
	if !ok {
		return nil, nil
	}
	var cards []domain.Card
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil, fmt.Errorf("%w: decoding cards: %v", domain.ErrStorage, err)
	}
	return cards, nil
}

func saveCards(ctx context.Context, kv driven.KVStore, cards []domain.Card) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("%w: encoding cards: %v", domain.ErrStorage, err)
	}
	if err := kv.Set(ctx, driven.KeyCards, string(data)); err != nil {
		return fmt.Errorf("%w: writing cards: %v", domain.ErrStorage, err)
	}
	return nil
}

func loadContacts(ctx context.Context, kv driven.KVStore) ([]domain.Contact, error) {
	raw, ok, err := kv.Get(ctx, driven.KeyContacts)
	if err != nil {
		return nil, fmt.Errorf("%w: reading contacts: %v", domain.ErrStorage, err)
	}
	if !ok {
		return nil, nil
	}
	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return nil, fmt.Errorf("%w: decoding contacts: %v", domain.ErrStorage, err)
	}
	return contacts, nil
}

func saveContacts(ctx context.Context, kv driven.KVStore, contacts []domain.Contact) error {
	data, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("%w: encoding contacts: %v", domain.ErrStorage, err)
	}
	if err := kv.Set(ctx, driven.KeyContacts, string(data)); err != nil {
		return fmt.Errorf("%w: writing contacts: %v", domain.ErrStorage, err)
	}
	return nil
}

// loadSettings returns stored settings, or defaults when the key was
// never written.
func loadSettings(ctx context.Context, kv driven.KVStore) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	raw, ok, err := kv.Get(ctx, driven.KeySettings)
	if err != nil {
		return defaults, fmt.Errorf("%w: reading settings: %v", domain.ErrStorage, err)
	}
	if !ok {
		return defaults, nil
	}
	settings := defaults
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return defaults, fmt.Errorf("%w: decoding settings: %v", domain.ErrStorage, err)
	}
	if !settings.Theme.IsValid() {
		settings.Theme = defaults.Theme
	}
	return settings, nil
}

func saveSettings(ctx context.Context, kv driven.KVStore, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: encoding settings: %v", domain.ErrStorage, err)
	}
	if err := kv.Set(ctx, driven.KeySettings, string(data)); err != nil {
		return fmt.Errorf("%w: writing settings: %v", domain.ErrStorage, err)
	}
	return nil
}
