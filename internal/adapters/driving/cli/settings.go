package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

var (
	settingsTheme       string
	settingsDefaultCard string
	settingsVoiceNotes  bool
	settingsClearYes    bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the theme, default card, AI credential, and
voice note capture.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings",
	Long: `Update one or more settings. Only the flags you pass are changed;
everything else keeps its current value.`,
	RunE: runSettingsSet,
}

var settingsSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Set the AI API key",
	Long: `Set the credential for AI follow-up generation.
The key is read from the terminal without echo.`,
	RunE: runSettingsSetAPIKey,
}

var settingsClearAllCmd = &cobra.Command{
	Use:   "clear-all",
	Short: "Delete all cards, contacts, and settings",
	RunE:  runSettingsClearAll,
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsTheme, "theme", "", "colour theme (light or dark)")
	settingsSetCmd.Flags().StringVar(&settingsDefaultCard, "default-card", "", "default card id")
	settingsSetCmd.Flags().BoolVar(&settingsVoiceNotes, "voice-notes", false, "enable voice note capture")
	settingsClearAllCmd.Flags().BoolVar(&settingsClearYes, "yes", false, "skip the confirmation prompt")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSetAPIKeyCmd)
	settingsCmd.AddCommand(settingsClearAllCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  Theme: %s\n", settings.Theme.Description())
	if settings.DefaultCardID != "" {
		cmd.Printf("  Default card: %s\n", settings.DefaultCardID)
	} else {
		cmd.Println("  Default card: (not set)")
	}
	if settings.AIAPIKey != "" {
		cmd.Printf("  AI API key: %s\n", maskAPIKey(settings.AIAPIKey))
	} else {
		cmd.Println("  AI API key: (not set)")
	}
	cmd.Printf("  Voice notes: %v\n", settings.EnableVoiceNotes)
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var patch domain.SettingsPatch
	if cmd.Flags().Changed("theme") {
		theme := domain.Theme(strings.ToLower(settingsTheme))
		if !theme.IsValid() {
			return fmt.Errorf("unknown theme %q (use light or dark)", settingsTheme)
		}
		patch.Theme = &theme
	}
	if cmd.Flags().Changed("default-card") {
		// Resolve to make sure the card exists before pointing at it.
		if cardService != nil {
			if _, err := cardService.CardByID(cmd.Context(), settingsDefaultCard); err != nil {
				return fmt.Errorf("default card: %w", err)
			}
		}
		patch.DefaultCardID = &settingsDefaultCard
	}
	if cmd.Flags().Changed("voice-notes") {
		patch.EnableVoiceNotes = &settingsVoiceNotes
	}

	if patch.Theme == nil && patch.DefaultCardID == nil && patch.EnableVoiceNotes == nil {
		return errors.New("nothing to change; pass --theme, --default-card, or --voice-notes")
	}

	if _, err := settingsService.Update(cmd.Context(), patch); err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	cmd.Println("Settings updated.")
	return nil
}

func runSettingsSetAPIKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("AI API key: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return errors.New("no key entered")
	}
	if !strings.HasPrefix(key, "sk-") {
		cmd.Println("Warning: key does not start with sk-; follow-up generation will use canned templates.")
	}

	if _, err := settingsService.Update(cmd.Context(), domain.SettingsPatch{AIAPIKey: &key}); err != nil {
		return fmt.Errorf("storing key: %w", err)
	}
	cmd.Printf("Stored key %s\n", maskAPIKey(key))
	return nil
}

func runSettingsClearAll(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if !settingsClearYes {
		return errors.New("refusing to delete everything without --yes")
	}

	if err := settingsService.ClearAll(cmd.Context()); err != nil {
		return fmt.Errorf("clearing data: %w", err)
	}
	cmd.Println("All cards, contacts, and settings removed.")
	return nil
}

// maskAPIKey hides all but the first and last few characters of a key.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:5] + "..." + key[len(key)-4:]
}
