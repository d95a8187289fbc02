package services

import (
	"context"

	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
	"github.com/sirakinb/drop-card/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the single user preferences record.
type SettingsService struct {
	kv driven.KVStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(kv driven.KVStore) *SettingsService {
	return &SettingsService{kv: kv}
}

// Get retrieves current settings, or defaults when never initialised.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := loadSettings(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update shallow-merges the patch over current settings and persists
// the result.
func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	current, err := loadSettings(ctx, s.kv)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(current)
	if !merged.Theme.IsValid() {
		merged.Theme = current.Theme
	}

	if err := saveSettings(ctx, s.kv, merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// SetDefaultCard writes DefaultCardID.
func (s *SettingsService) SetDefaultCard(ctx context.Context, cardID string) error {
	_, err := s.Update(ctx, domain.SettingsPatch{DefaultCardID: &cardID})
	return err
}

// ClearAll deletes every application storage key and resets settings to
// defaults. Individual key removals may fail independently; the reset
// is attempted regardless and the first failure is reported.
func (s *SettingsService) ClearAll(ctx context.Context) error {
	removeErr := s.kv.RemoveMany(ctx, driven.AllKeys())
	if removeErr != nil {
		logger.Warn("clear all: some keys could not be removed: %v", removeErr)
	}

	if err := saveSettings(ctx, s.kv, domain.DefaultSettings()); err != nil {
		return err
	}
	return removeErr
}
