package mcp

import (
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Card manages the user's own cards.
	Card driving.CardService

	// Contact manages collected contacts.
	Contact driving.ContactService

	// FollowUp drafts follow-up messages.
	FollowUp driving.FollowUpService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Card == nil {
		return ErrMissingCardService
	}
	if p.Contact == nil {
		return ErrMissingContactService
	}
	// FollowUp is optional; the tool reports unavailability when nil.
	return nil
}
