// Package cli implements the dropcard command line interface.
// Commands are thin drivers over the core services, which are injected
// once at process start via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sirakinb/drop-card/internal/core/ports/driven"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
	"github.com/sirakinb/drop-card/internal/logger"
)

// version is the application version, set at build time via ldflags.
var version = "dev"

// Injected services. Nil until SetServices is called; commands guard
// against missing services so partial wiring fails with a clear message.
var (
	cardService     driving.CardService
	contactService  driving.ContactService
	settingsService driving.SettingsService
	followUpService driving.FollowUpService
	configStore     driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "dropcard",
	Short: "Digital business cards from the terminal",
	Long: `DropCard manages your digital business cards and the contacts you
collect: create and share cards as vCard QR payloads, import .vcf files,
tag and search contacts, and draft follow-up messages after meetings.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Services bundles everything the CLI needs injected.
type Services struct {
	Card     driving.CardService
	Contact  driving.ContactService
	Settings driving.SettingsService
	FollowUp driving.FollowUpService
	Config   driven.ConfigStore
}

// SetServices injects the core services the commands operate on.
func SetServices(s Services) {
	cardService = s.Card
	contactService = s.Contact
	settingsService = s.Settings
	followUpService = s.FollowUp
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// shareScheme returns the configured deep link scheme, or empty for the
// default.
func shareScheme() string {
	if configStore == nil {
		return ""
	}
	return configStore.GetString(driven.ConfigKeyShareScheme)
}
