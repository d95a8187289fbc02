package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is the minimal local@domain.tld shape check.
// It is deliberately loose: the goal is catching obvious typos, not
// enforcing RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCard checks the minimal shape invariants before a card is
// persisted: a non-blank name, and a plausible email when one is set.
func ValidateCard(card *Card) error {
	if card == nil {
		return fmt.Errorf("%w: card is nil", ErrValidation)
	}
	if strings.TrimSpace(card.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if card.Email != "" && !emailPattern.MatchString(card.Email) {
		return fmt.Errorf("%w: email %q is not a valid address", ErrValidation, card.Email)
	}
	return nil
}

// ValidateContact checks that the embedded card data names a person.
func ValidateContact(contact *Contact) error {
	if contact == nil {
		return fmt.Errorf("%w: contact is nil", ErrValidation)
	}
	if strings.TrimSpace(contact.CardData.Name) == "" {
		return fmt.Errorf("%w: contact name is required", ErrValidation)
	}
	return nil
}
