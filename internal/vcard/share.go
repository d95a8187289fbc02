package vcard

import (
	"fmt"
	"strings"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// DefaultScheme is the URI scheme used for deep links when none is
// configured.
const DefaultScheme = "dropcard://"

// ShareableText builds a human-readable multi-line summary of a card.
// Absent fields are omitted entirely, and blank-line separators appear
// only between populated groups.
func ShareableText(card *domain.Card) string {
	var groups []string

	var identity []string
	if card.Name != "" {
		identity = append(identity, card.Name)
	}
	if card.Title != "" {
		identity = append(identity, card.Title)
	}
	if card.Company != "" {
		identity = append(identity, card.Company)
	}
	if len(identity) > 0 {
		groups = append(groups, strings.Join(identity, "\n"))
	}

	var reach []string
	if card.Phone != "" {
		reach = append(reach, "📞 "+card.Phone)
	}
	if card.Email != "" {
		reach = append(reach, "✉️ "+card.Email)
	}
	if card.Website != "" {
		reach = append(reach, "🌐 "+card.Website)
	}
	if len(reach) > 0 {
		groups = append(groups, strings.Join(reach, "\n"))
	}

	var social []string
	if card.LinkedIn != "" {
		social = append(social, "LinkedIn: "+NormaliseLinkedIn(card.LinkedIn))
	}
	if card.Twitter != "" {
		social = append(social, "Twitter: "+NormaliseTwitter(card.Twitter))
	}
	if len(social) > 0 {
		groups = append(groups, strings.Join(social, "\n"))
	}

	return strings.Join(groups, "\n\n")
}

// DeepLink returns the app link for a card, <scheme>card/<id>.
// An empty scheme falls back to DefaultScheme. The card must have been
// saved: a card without an ID cannot be linked to.
func DeepLink(card *domain.Card, scheme string) (string, error) {
	if card == nil || card.ID == "" {
		return "", fmt.Errorf("%w: card id is required for a deep link", domain.ErrInvalidInput)
	}
	if scheme == "" {
		scheme = DefaultScheme
	}
	return scheme + "card/" + card.ID, nil
}
