package cli

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sirakinb/drop-card/internal/adapters/driven/storage/memory"
	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/services"
)

// setupTestServices wires the commands to real services over an
// in-memory store. The returned cleanup restores the nil services and
// resets the package-level flag state between tests.
func setupTestServices() func() {
	kv := memory.NewKVStore()
	SetServices(Services{
		Card:     services.NewCardService(kv),
		Contact:  services.NewContactService(kv),
		Settings: services.NewSettingsService(kv),
		FollowUp: services.NewFollowUpService(nil, ""),
	})

	return func() {
		SetServices(Services{})
		resetFlags()
	}
}

// resetFlags clears package-level flag targets, which persist between
// Execute calls.
func resetFlags() {
	cardFlags = domain.Card{}
	contactCardFlags = domain.Card{}
	contactNotes = ""
	contactTags = nil
	contactContext = ""
	contactListTag = ""
	contactSearchTag = ""
	contactExportOut = ""
	settingsTheme = ""
	settingsDefaultCard = ""
	settingsVoiceNotes = false
	settingsClearYes = false
	followUpNotes = ""
	followUpGoals = ""
	followUpStyle = "default"
	followUpSender = ""
	followUpAll = false
	shareFormat = "vcard"
	shareOut = ""
	importWatchDir = ""
	verboseFlag = false

	// Cobra keeps Changed across Execute calls, which would leak into
	// the next test's patch building.
	for _, c := range []*cobra.Command{
		cardSaveCmd, cardDraftSaveCmd,
		contactAddCmd, contactListCmd, contactSearchCmd, contactExportCmd,
		settingsSetCmd, settingsClearAllCmd,
		followUpCmd, shareCmd, importCmd,
	} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// execute runs the root command with the given arguments and returns
// the combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
