package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirakinb/drop-card/internal/adapters/driven/storage/memory"
	"github.com/sirakinb/drop-card/internal/adapters/driving/tui/styles"
	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/services"
)

func testApp(t *testing.T) *App {
	t.Helper()

	kv := memory.NewKVStore()
	contacts := services.NewContactService(kv)

	for _, c := range []domain.Contact{
		{CardData: domain.Card{Name: "Grace Hopper", Company: "US Navy"}, Tags: []string{"compilers"}},
		{CardData: domain.Card{Name: "Ada Lovelace", Title: "Analyst"}},
	} {
		_, err := contacts.SaveContact(context.Background(), c)
		require.NoError(t, err)
	}

	app, err := NewApp(&Ports{Contact: contacts})
	require.NoError(t, err)
	return app
}

// load runs the pending contact query and feeds the result back in.
func load(t *testing.T, app *App, query string) {
	t.Helper()
	msg := app.loadContacts(query)()
	model, _ := app.Update(msg)
	require.IsType(t, &App{}, model)
}

func TestNewApp_MissingContactService(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingContactService)
}

func TestNewApp_UsesConfiguredTheme(t *testing.T) {
	kv := memory.NewKVStore()
	settings := services.NewSettingsService(kv)
	light := domain.ThemeLight
	_, err := settings.Update(context.Background(), domain.SettingsPatch{Theme: &light})
	require.NoError(t, err)

	app, err := NewApp(&Ports{
		Contact:  services.NewContactService(kv),
		Settings: settings,
	})
	require.NoError(t, err)
	assert.Equal(t, styles.LightTheme(), app.styles.Theme())
}

func TestApp_LoadsContacts(t *testing.T) {
	app := testApp(t)
	load(t, app, "")

	assert.Len(t, app.contacts, 2)
	assert.NoError(t, app.err)
}

func TestApp_FilterNarrowsList(t *testing.T) {
	app := testApp(t)
	load(t, app, "navy")

	require.Len(t, app.contacts, 1)
	assert.Equal(t, "Grace Hopper", app.contacts[0].CardData.Name)
}

func TestApp_Navigation(t *testing.T) {
	app := testApp(t)
	load(t, app, "")

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	assert.Equal(t, 0, app.selected)

	app.Update(down)
	assert.Equal(t, 1, app.selected)

	// Clamped at the end of the list.
	app.Update(down)
	assert.Equal(t, 1, app.selected)

	app.Update(up)
	assert.Equal(t, 0, app.selected)

	app.Update(up)
	assert.Equal(t, 0, app.selected)
}

func TestApp_DetailPane(t *testing.T) {
	app := testApp(t)
	load(t, app, "")
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, app.detail)
	assert.Contains(t, app.View(), app.detail.CardData.Name)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, app.detail)
}

func TestApp_EscClearsFilterThenQuits(t *testing.T) {
	app := testApp(t)
	load(t, app, "")

	app.input.SetValue("grace")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, app.input.Value())
	assert.NotNil(t, cmd)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_TypingTriggersReload(t *testing.T) {
	app := testApp(t)
	load(t, app, "")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Equal(t, "a", app.input.Value())
	assert.NotNil(t, cmd)
}

func TestApp_ViewListsContacts(t *testing.T) {
	app := testApp(t)
	load(t, app, "")
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := app.View()
	assert.Contains(t, view, "Grace Hopper")
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "2 contact(s)")
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app := testApp(t)
	assert.Equal(t, "Loading...", app.View())
}

func TestApp_QuitKey(t *testing.T) {
	app := testApp(t)
	load(t, app, "")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestContactLine(t *testing.T) {
	line := contactLine(domain.Contact{CardData: domain.Card{Name: "Grace", Title: "RADM", Company: "US Navy"}})
	assert.Equal(t, "Grace  RADM · US Navy", line)

	line = contactLine(domain.Contact{CardData: domain.Card{Name: "Ada"}})
	assert.Equal(t, "Ada", line)
	assert.False(t, strings.HasSuffix(line, " "))
}
