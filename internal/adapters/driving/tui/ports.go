package tui

import (
	"errors"

	"github.com/sirakinb/drop-card/internal/core/ports/driving"
)

// ErrMissingContactService is returned when the contact service is not provided.
var ErrMissingContactService = errors.New("tui: contact service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Contact provides the contact collection being browsed.
	Contact driving.ContactService

	// Settings selects the colour theme. Optional; the dark theme is
	// used when absent.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Contact == nil {
		return ErrMissingContactService
	}
	return nil
}
