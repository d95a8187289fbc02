package driving

import (
	"context"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// FollowUpService drafts follow-up messages for a contact.
type FollowUpService interface {
	// Generate produces the three tonal variants for a request. It
	// never returns usable-text failures to the caller: when the
	// generative backend is unavailable, misconfigured, or errors, the
	// result carries deterministic template output with Generated=false
	// and the reason recorded.
	Generate(ctx context.Context, req domain.FollowUpRequest) (*domain.FollowUpResult, error)
}
