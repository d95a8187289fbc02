package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirakinb/drop-card/internal/adapters/driven/storage/memory"
	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
)

func TestSaveCard_AssignsIDAndTimestamps(t *testing.T) {
	kv := memory.NewKVStore()
	svc := NewCardService(kv)

	saved, err := svc.SaveCard(context.Background(), domain.Card{Name: "Ada Lovelace"})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestSaveCard_InvalidWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		card domain.Card
	}{
		{name: "blank name", card: domain.Card{Name: "   "}},
		{name: "malformed email", card: domain.Card{Name: "Ada", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := memory.NewKVStore()
			svc := NewCardService(kv)

			_, err := svc.SaveCard(context.Background(), tt.card)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 0, kv.Len(), "failed save must not touch storage")
		})
	}
}

func TestSaveCard_UpsertByID(t *testing.T) {
	kv := memory.NewKVStore()
	svc := NewCardService(kv)
	ctx := context.Background()

	saved, err := svc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)

	saved.Title = "Engineer"
	updated, err := svc.SaveCard(ctx, *saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)

	cards, err := svc.AllCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Engineer", cards[0].Title)
}

func TestSaveCard_FirstCardBecomesDefault(t *testing.T) {
	kv := memory.NewKVStore()
	cardSvc := NewCardService(kv)
	settingsSvc := NewSettingsService(kv)
	ctx := context.Background()

	first, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)

	_, err = cardSvc.SaveCard(ctx, domain.Card{Name: "Grace"})
	require.NoError(t, err)

	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, settings.DefaultCardID, "only the first save sets the default")
}

func TestPrimaryCard_Empty(t *testing.T) {
	svc := NewCardService(memory.NewKVStore())

	_, err := svc.PrimaryCard(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrimaryCard_FollowsDefault(t *testing.T) {
	kv := memory.NewKVStore()
	cardSvc := NewCardService(kv)
	settingsSvc := NewSettingsService(kv)
	ctx := context.Background()

	_, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)
	second, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Grace"})
	require.NoError(t, err)

	require.NoError(t, settingsSvc.SetDefaultCard(ctx, second.ID))

	primary, err := cardSvc.PrimaryCard(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, primary.ID)
}

func TestPrimaryCard_ReconcilesDanglingDefault(t *testing.T) {
	kv := memory.NewKVStore()
	cardSvc := NewCardService(kv)
	settingsSvc := NewSettingsService(kv)
	ctx := context.Background()

	survivor, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)

	require.NoError(t, settingsSvc.SetDefaultCard(ctx, "gone"))

	primary, err := cardSvc.PrimaryCard(ctx)
	require.NoError(t, err)
	assert.Equal(t, survivor.ID, primary.ID)

	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, survivor.ID, settings.DefaultCardID, "reference is repointed, not just resolved")
}

func TestCardByID(t *testing.T) {
	kv := memory.NewKVStore()
	svc := NewCardService(kv)
	ctx := context.Background()

	saved, err := svc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)

	found, err := svc.CardByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)

	_, err = svc.CardByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CardByID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteCard_RepointsDefault(t *testing.T) {
	kv := memory.NewKVStore()
	cardSvc := NewCardService(kv)
	settingsSvc := NewSettingsService(kv)
	ctx := context.Background()

	first, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)
	second, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Grace"})
	require.NoError(t, err)

	require.NoError(t, cardSvc.DeleteCard(ctx, first.ID))

	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, settings.DefaultCardID)
}

func TestDeleteCard_LastCardClearsDefault(t *testing.T) {
	kv := memory.NewKVStore()
	cardSvc := NewCardService(kv)
	settingsSvc := NewSettingsService(kv)
	ctx := context.Background()

	only, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Ada"})
	require.NoError(t, err)

	require.NoError(t, cardSvc.DeleteCard(ctx, only.ID))

	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.DefaultCardID)

	// The next save re-runs the first-card rule.
	next, err := cardSvc.SaveCard(ctx, domain.Card{Name: "Grace"})
	require.NoError(t, err)
	settings, err = settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, next.ID, settings.DefaultCardID)
}

func TestDeleteCard_Missing(t *testing.T) {
	svc := NewCardService(memory.NewKVStore())

	err := svc.DeleteCard(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftLifecycle(t *testing.T) {
	kv := memory.NewKVStore()
	svc := NewCardService(kv)
	ctx := context.Background()

	// Drafts are not validated, so a half-filled card is acceptable.
	saved, err := svc.SaveDraft(ctx, domain.Card{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	draft, err := svc.Draft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", draft.Email)

	require.NoError(t, svc.ClearDraft(ctx))
	_, err = svc.Draft(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Clearing an empty slot is not an error.
	assert.NoError(t, svc.ClearDraft(ctx))
}

func TestCardService_StorageFailure(t *testing.T) {
	kv := memory.NewKVStore()
	kv.FailKeys = map[string]bool{driven.KeyCards: true}
	svc := NewCardService(kv)

	_, err := svc.SaveCard(context.Background(), domain.Card{Name: "Ada"})
	assert.ErrorIs(t, err, domain.ErrStorage)
}
