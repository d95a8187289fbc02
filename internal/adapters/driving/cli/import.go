package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirakinb/drop-card/internal/adapters/driving/watch"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
)

var importWatchDir string

var importCmd = &cobra.Command{
	Use:   "import [file.vcf]",
	Short: "Import contacts from vCard files",
	Long: `Import a single .vcf file as a contact, or watch a drop directory
and import every .vcf file that appears in it.

Examples:
  dropcard import grace.vcf
  dropcard import --watch ~/Downloads/cards`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importWatchDir, "watch", "", "watch this directory instead of importing one file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	if importWatchDir != "" {
		watcher := watch.NewWatcher(contactService, importWatchDir)
		cmd.Printf("Watching %s for .vcf files (Ctrl-C to stop)\n", importWatchDir)
		return watcher.Run(cmd.Context())
	}

	if len(args) == 0 {
		if dir := configuredWatchDir(); dir != "" {
			watcher := watch.NewWatcher(contactService, dir)
			cmd.Printf("Watching %s for .vcf files (Ctrl-C to stop)\n", dir)
			return watcher.Run(cmd.Context())
		}
		return errors.New("pass a .vcf file or --watch <dir>")
	}

	contact, err := watch.ImportFile(cmd.Context(), contactService, args[0])
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	cmd.Printf("Imported %s as contact %s\n", contact.CardData.Name, contact.ID)
	return nil
}

// configuredWatchDir returns the import watch directory from config, if
// any.
func configuredWatchDir() string {
	if configStore == nil {
		return ""
	}
	return configStore.GetString(driven.ConfigKeyWatchDir)
}
