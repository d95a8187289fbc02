package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// Flag targets for card save and card draft save.
var cardFlags domain.Card

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage your own business cards",
	Long: `Create, inspect, and delete your own business cards.

The first card you save becomes the default card used for sharing.`,
}

var cardSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a card",
	Long: `Create a new card, or update an existing one when --id is given.
Name is required; email, when given, must look like an address.`,
	RunE: runCardSave,
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards",
	RunE:  runCardList,
}

var cardShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a card (the default card when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCardShow,
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardDelete,
}

var cardDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the in-progress card draft",
	Long: `The draft is a single holding slot for an unfinished card edit.
It is not validated, so partial cards can be parked and resumed.`,
	RunE: runCardDraftShow,
}

var cardDraftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store the draft",
	RunE:  runCardDraftSave,
}

var cardDraftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the draft",
	RunE:  runCardDraftClear,
}

func addCardFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cardFlags.ID, "id", "", "card id (update an existing card)")
	cmd.Flags().StringVar(&cardFlags.Name, "name", "", "full name")
	cmd.Flags().StringVar(&cardFlags.Title, "title", "", "job title")
	cmd.Flags().StringVar(&cardFlags.Company, "company", "", "organisation")
	cmd.Flags().StringVar(&cardFlags.Email, "email", "", "email address")
	cmd.Flags().StringVar(&cardFlags.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&cardFlags.Website, "website", "", "website URL")
	cmd.Flags().StringVar(&cardFlags.LinkedIn, "linkedin", "", "LinkedIn profile URL or username")
	cmd.Flags().StringVar(&cardFlags.Twitter, "twitter", "", "Twitter profile URL or handle")
	cmd.Flags().StringVar(&cardFlags.Bio, "bio", "", "short description")
}

func init() {
	addCardFieldFlags(cardSaveCmd)
	addCardFieldFlags(cardDraftSaveCmd)

	cardDraftCmd.AddCommand(cardDraftSaveCmd)
	cardDraftCmd.AddCommand(cardDraftClearCmd)

	cardCmd.AddCommand(cardSaveCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardShowCmd)
	cardCmd.AddCommand(cardDeleteCmd)
	cardCmd.AddCommand(cardDraftCmd)
	rootCmd.AddCommand(cardCmd)
}

func runCardSave(cmd *cobra.Command, _ []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	saved, err := cardService.SaveCard(cmd.Context(), cardFlags)
	if err != nil {
		return fmt.Errorf("saving card: %w", err)
	}

	cmd.Printf("Saved card %s (%s)\n", saved.ID, saved.DisplayName())
	return nil
}

func runCardList(cmd *cobra.Command, _ []string) error {
	if cardService == nil || settingsService == nil {
		return errors.New("card service not configured")
	}

	cards, err := cardService.AllCards(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing cards: %w", err)
	}
	if len(cards) == 0 {
		cmd.Println("No cards yet. Create one with: dropcard card save --name \"Your Name\"")
		return nil
	}

	settings, err := settingsService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	for i := range cards {
		marker := " "
		if cards[i].ID == settings.DefaultCardID {
			marker = "*"
		}
		cmd.Printf("%s %s  %s\n", marker, cards[i].ID, cards[i].DisplayName())
	}
	return nil
}

func runCardShow(cmd *cobra.Command, args []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	card, err := resolveCard(cmd, args)
	if err != nil {
		return err
	}

	cmd.Println(renderCard(card))
	return nil
}

func runCardDelete(cmd *cobra.Command, args []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	if err := cardService.DeleteCard(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	cmd.Printf("Deleted card %s\n", args[0])
	return nil
}

func runCardDraftShow(cmd *cobra.Command, _ []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	draft, err := cardService.Draft(cmd.Context())
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("No draft in progress.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading draft: %w", err)
	}

	cmd.Println(renderCard(draft))
	return nil
}

func runCardDraftSave(cmd *cobra.Command, _ []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	if _, err := cardService.SaveDraft(cmd.Context(), cardFlags); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	cmd.Println("Draft saved.")
	return nil
}

func runCardDraftClear(cmd *cobra.Command, _ []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	if err := cardService.ClearDraft(cmd.Context()); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	cmd.Println("Draft cleared.")
	return nil
}

// resolveCard returns the card named by the first argument, or the
// default card when no argument is given.
func resolveCard(cmd *cobra.Command, args []string) (*domain.Card, error) {
	if len(args) > 0 {
		card, err := cardService.CardByID(cmd.Context(), args[0])
		if err != nil {
			return nil, fmt.Errorf("looking up card: %w", err)
		}
		return card, nil
	}

	card, err := cardService.PrimaryCard(cmd.Context())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errors.New("no cards yet; create one with: dropcard card save --name \"Your Name\"")
	}
	if err != nil {
		return nil, fmt.Errorf("looking up default card: %w", err)
	}
	return card, nil
}

var cardBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

var cardNameStyle = lipgloss.NewStyle().Bold(true)

// renderCard draws a card as a bordered block, omitting absent fields.
func renderCard(card *domain.Card) string {
	lines := []string{cardNameStyle.Render(card.Name)}
	if card.Title != "" {
		lines = append(lines, card.Title)
	}
	if card.Company != "" {
		lines = append(lines, card.Company)
	}
	details := []struct{ label, value string }{
		{"Email", card.Email},
		{"Phone", card.Phone},
		{"Web", card.Website},
		{"LinkedIn", card.LinkedIn},
		{"Twitter", card.Twitter},
	}
	first := true
	for _, d := range details {
		if d.value == "" {
			continue
		}
		if first {
			lines = append(lines, "")
			first = false
		}
		lines = append(lines, fmt.Sprintf("%s: %s", d.label, d.value))
	}
	if card.Bio != "" {
		lines = append(lines, "", card.Bio)
	}

	return cardBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
