package driven

import "context"

// Storage keys for the logical collections, namespaced to avoid
// collision with unrelated data sharing the store.
const (
	// KeyCards holds the full card collection as a JSON array.
	KeyCards = "dropcard/cards"

	// KeyContacts holds the full contact collection as a JSON array.
	KeyContacts = "dropcard/contacts"

	// KeySettings holds the single settings record as a JSON object.
	KeySettings = "dropcard/settings"

	// KeyDraftCard holds the single-slot in-progress card edit.
	KeyDraftCard = "dropcard/draft-card"
)

// AllKeys returns every storage key owned by the application.
// Used by the settings service's clear-all operation.
func AllKeys() []string {
	return []string{KeyCards, KeyContacts, KeySettings, KeyDraftCard}
}

// KVStore is an async, string-keyed, string-valued persistent map.
// Writes are assumed crash-safe per individual key; there is no
// cross-key transactionality, so services read-modify-write a whole
// collection under a single key on every mutation.
type KVStore interface {
	// Get retrieves the value for a key.
	// The boolean reports whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value under a key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes a key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes several keys. Each removal may fail
	// independently; implementations continue past individual failures
	// and return the first error encountered.
	RemoveMany(ctx context.Context, keys []string) error

	// Close releases resources.
	Close() error
}
