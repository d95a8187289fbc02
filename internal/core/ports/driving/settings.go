package driving

import (
	"context"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// SettingsService manages the single user preferences record.
type SettingsService interface {
	// Get retrieves current settings, or defaults when never
	// initialised.
	Get(ctx context.Context) (*domain.Settings, error)

	// Update shallow-merges the patch over current settings, persists,
	// and returns the merged result.
	Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)

	// SetDefaultCard writes DefaultCardID.
	SetDefaultCard(ctx context.Context, cardID string) error

	// ClearAll deletes every card, contact, and draft storage key and
	// resets settings to defaults. Individual key removals may fail
	// independently; the reset proceeds regardless.
	ClearAll(ctx context.Context) error
}
