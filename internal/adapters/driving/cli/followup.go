package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

var (
	followUpNotes  string
	followUpGoals  string
	followUpStyle  string
	followUpSender string
	followUpAll    bool
)

var followUpCmd = &cobra.Command{
	Use:   "followup <contact-id>",
	Short: "Draft a follow-up message for a contact",
	Long: `Draft follow-up messages after a meeting.

With an AI API key configured (settings set-api-key), messages are
generated from your meeting notes and goals. Without one, deterministic
templates are filled in instead - you always get usable text.`,
	Args: cobra.ExactArgs(1),
	RunE: runFollowUp,
}

func init() {
	followUpCmd.Flags().StringVar(&followUpNotes, "notes", "", "what was discussed")
	followUpCmd.Flags().StringVar(&followUpGoals, "goals", "", "what the follow-up should achieve")
	followUpCmd.Flags().StringVar(&followUpStyle, "style", "default", "tone: default, formal, casual, or friendly")
	followUpCmd.Flags().StringVar(&followUpSender, "sender", "", "name to sign with")
	followUpCmd.Flags().BoolVar(&followUpAll, "all", false, "print all three tonal variants")
	rootCmd.AddCommand(followUpCmd)
}

func runFollowUp(cmd *cobra.Command, args []string) error {
	if followUpService == nil || contactService == nil {
		return errors.New("follow-up service not configured")
	}

	style := domain.FollowUpStyle(followUpStyle)
	if !style.IsValid() {
		return fmt.Errorf("unknown style %q (use default, formal, casual, or friendly)", followUpStyle)
	}

	contact, err := contactService.ContactByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up contact: %w", err)
	}

	sender := followUpSender
	if sender == "" && cardService != nil {
		// Sign with the default card's name when available.
		if card, err := cardService.PrimaryCard(cmd.Context()); err == nil {
			sender = card.Name
		}
	}

	result, err := followUpService.Generate(cmd.Context(), domain.FollowUpRequest{
		ContactName:  contact.CardData.Name,
		Title:        contact.CardData.Title,
		Company:      contact.CardData.Company,
		MeetingNotes: followUpNotes,
		Goals:        followUpGoals,
		Style:        style,
		SenderName:   sender,
	})
	if err != nil {
		return fmt.Errorf("generating follow-up: %w", err)
	}

	if !result.Generated {
		cmd.Printf("Using template fallback (%s)\n\n", result.FallbackReason)
	}

	if followUpAll {
		printMessage(cmd, "FORMAL", result.Formal)
		printMessage(cmd, "CASUAL", result.Casual)
		printMessage(cmd, "FRIENDLY", result.Friendly)
		return nil
	}

	msg := result.Message(style)
	cmd.Printf("Subject: %s\n\n%s\n", msg.Subject, msg.Body)
	return nil
}

func printMessage(cmd *cobra.Command, label string, msg domain.FollowUpMessage) {
	cmd.Printf("--- %s ---\n", label)
	cmd.Printf("Subject: %s\n\n%s\n\n", msg.Subject, msg.Body)
}
