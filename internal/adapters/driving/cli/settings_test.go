package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Theme: Light")
	assert.Contains(t, out, "Default card: (not set)")
	assert.Contains(t, out, "AI API key: (not set)")
	assert.Contains(t, out, "Voice notes: true")
}

func TestSettingsCmd_BareShowsSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSetCmd_Theme(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings", "set", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings updated")

	resetFlags()
	out, err = execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: Dark")
}

func TestSettingsSetCmd_UnknownTheme(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "--theme", "sepia")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestSettingsSetCmd_DefaultCard(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("card", "save", "--name", "First Card")
	require.NoError(t, err)
	resetFlags()
	out, err = execute("card", "save", "--name", "Second Card")
	require.NoError(t, err)
	second := savedID(t, out)
	resetFlags()

	out, err = execute("settings", "set", "--default-card", second)
	require.NoError(t, err)
	assert.Contains(t, out, "Settings updated")

	resetFlags()
	out, err = execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Default card: "+second)
}

func TestSettingsSetCmd_DefaultCardMustExist(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "--default-card", "no-such-card")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "default card")
}

func TestSettingsSetCmd_NothingToChange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestSettingsClearAllCmd_RequiresYes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "clear-all")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestSettingsClearAllCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("card", "save", "--name", "Grace Hopper")
	require.NoError(t, err)
	resetFlags()

	out, err := execute("settings", "clear-all", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "removed")

	resetFlags()
	out, err = execute("card", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No cards yet")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := execute("settings", "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "sk-ab...wxyz", maskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
