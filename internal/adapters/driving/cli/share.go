package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirakinb/drop-card/internal/vcard"
)

var (
	shareFormat string
	shareOut    string
)

var shareCmd = &cobra.Command{
	Use:   "share [card-id]",
	Short: "Share a card (the default card when no id is given)",
	Long: `Produce a shareable rendering of a card.

Formats:
  vcard - the vCard 3.0 payload used for QR codes and .vcf files
  text  - a human-readable summary for pasting into a message
  link  - the deep link that opens the card in the app`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVarP(&shareFormat, "format", "f", "vcard", "output format: vcard, text, or link")
	shareCmd.Flags().StringVarP(&shareOut, "output", "o", "", "write to a file instead of stdout (e.g. card.vcf)")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	if cardService == nil {
		return errors.New("card service not configured")
	}

	card, err := resolveCard(cmd, args)
	if err != nil {
		return err
	}

	var out string
	switch shareFormat {
	case "vcard":
		out, err = vcard.Encode(card)
		if err != nil {
			return fmt.Errorf("encoding card: %w", err)
		}
	case "text":
		out = vcard.ShareableText(card) + "\n"
	case "link":
		out, err = vcard.DeepLink(card, shareScheme())
		if err != nil {
			return fmt.Errorf("building link: %w", err)
		}
		out += "\n"
	default:
		return fmt.Errorf("unknown format %q (use vcard, text, or link)", shareFormat)
	}

	if shareOut == "" {
		cmd.Print(out)
		return nil
	}
	if err := os.WriteFile(shareOut, []byte(out), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", shareOut, err)
	}
	cmd.Printf("Wrote %s\n", shareOut)
	return nil
}
