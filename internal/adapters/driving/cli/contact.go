package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

var (
	contactCardFlags domain.Card
	contactNotes     string
	contactTags      []string
	contactContext   string
	contactListTag   string
	contactSearchTag string
	contactExportOut string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage collected contacts",
	Long:  `Add, search, tag, and export the contacts you collect.`,
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a contact",
	RunE:  runContactAdd,
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts, optionally filtered by tag",
	RunE:  runContactList,
}

var contactShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactShow,
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactDelete,
}

var contactSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts",
	Long: `Search contacts by name, company, title, email, or notes.
Combine with --tag to narrow the result further.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactSearch,
}

var contactExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all contacts as CSV",
	RunE:  runContactExport,
}

func init() {
	contactAddCmd.Flags().StringVar(&contactCardFlags.ID, "id", "", "contact id (update an existing contact)")
	contactAddCmd.Flags().StringVar(&contactCardFlags.Name, "name", "", "full name")
	contactAddCmd.Flags().StringVar(&contactCardFlags.Title, "title", "", "job title")
	contactAddCmd.Flags().StringVar(&contactCardFlags.Company, "company", "", "organisation")
	contactAddCmd.Flags().StringVar(&contactCardFlags.Email, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&contactCardFlags.Phone, "phone", "", "phone number")
	contactAddCmd.Flags().StringVar(&contactNotes, "notes", "", "free-text notes")
	contactAddCmd.Flags().StringSliceVar(&contactTags, "tag", nil, "tag (repeatable)")
	contactAddCmd.Flags().StringVar(&contactContext, "context", "", "where or how you met")

	contactListCmd.Flags().StringVar(&contactListTag, "tag", "", "only contacts carrying this tag")
	contactSearchCmd.Flags().StringVar(&contactSearchTag, "tag", "", "narrow matches to this tag")
	contactExportCmd.Flags().StringVarP(&contactExportOut, "output", "o", "", "write CSV to a file instead of stdout")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactSearchCmd)
	contactCmd.AddCommand(contactExportCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactAdd(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	saved, err := contactService.SaveContact(cmd.Context(), domain.Contact{
		ID:             contactCardFlags.ID,
		CardData:       contactCardFlags,
		Notes:          contactNotes,
		Tags:           contactTags,
		MeetingContext: contactContext,
	})
	if err != nil {
		return fmt.Errorf("saving contact: %w", err)
	}

	cmd.Printf("Saved contact %s (%s)\n", saved.ID, saved.CardData.Name)
	return nil
}

func runContactList(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contacts, err := contactService.FilterByTag(cmd.Context(), contactListTag)
	if err != nil {
		return fmt.Errorf("listing contacts: %w", err)
	}

	printContactList(cmd, contacts)
	return nil
}

func runContactShow(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contact, err := contactService.ContactByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up contact: %w", err)
	}

	cmd.Println(renderCard(&contact.CardData))
	if contact.MeetingContext != "" {
		cmd.Printf("Met: %s\n", contact.MeetingContext)
	}
	if len(contact.Tags) > 0 {
		cmd.Printf("Tags: %s\n", strings.Join(contact.Tags, ", "))
	}
	if contact.Notes != "" {
		cmd.Printf("Notes: %s\n", contact.Notes)
	}
	return nil
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	if err := contactService.DeleteContact(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	cmd.Printf("Deleted contact %s\n", args[0])
	return nil
}

func runContactSearch(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contacts, err := contactService.FilterContacts(cmd.Context(), args[0], contactSearchTag)
	if err != nil {
		return fmt.Errorf("searching contacts: %w", err)
	}

	printContactList(cmd, contacts)
	return nil
}

func runContactExport(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	csv, err := contactService.ExportCSV(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting contacts: %w", err)
	}

	if contactExportOut == "" {
		cmd.Print(csv)
		return nil
	}
	if err := os.WriteFile(contactExportOut, []byte(csv), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", contactExportOut, err)
	}
	cmd.Printf("Wrote %s\n", contactExportOut)
	return nil
}

func printContactList(cmd *cobra.Command, contacts []domain.Contact) {
	if len(contacts) == 0 {
		cmd.Println("No contacts found.")
		return
	}
	for i := range contacts {
		line := contacts[i].CardData.DisplayName()
		if contacts[i].CardData.Company != "" {
			line += " @ " + contacts[i].CardData.Company
		}
		if len(contacts[i].Tags) > 0 {
			line += "  [" + strings.Join(contacts[i].Tags, ", ") + "]"
		}
		cmd.Printf("%s  %s\n", contacts[i].ID, line)
	}
}
