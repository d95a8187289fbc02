// Package tui implements the interactive contacts browser built on Bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sirakinb/drop-card/internal/adapters/driving/tui/keymap"
	"github.com/sirakinb/drop-card/internal/adapters/driving/tui/styles"
	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
)

// contactsLoadedMsg carries the result of a contact query.
type contactsLoadedMsg struct {
	contacts []domain.Contact
	err      error
}

// App is the contacts browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// input is the live filter field.
	input textinput.Model

	// contacts is the currently displayed list.
	contacts []domain.Contact

	// selected is the index of the highlighted contact.
	selected int

	// detail is the contact shown in the detail pane, nil when browsing.
	detail *domain.Contact

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Type to filter contacts..."
	input.Prompt = "🔍 "
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.NewStyles(themeFor(ports.Settings)),
		keys:   keymap.DefaultKeyMap(),
		input:  input,
	}, nil
}

// themeFor resolves the configured colour theme.
func themeFor(settings driving.SettingsService) *styles.Theme {
	if settings == nil {
		return styles.DefaultTheme()
	}
	s, err := settings.Get(context.Background())
	if err != nil {
		return styles.DefaultTheme()
	}
	return styles.ForName(s.Theme.String())
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("dropcard - Contacts"),
		a.loadContacts(""),
	)
}

// loadContacts returns a command that queries contacts matching the filter.
func (a *App) loadContacts(query string) tea.Cmd {
	return func() tea.Msg {
		contacts, err := a.ports.Contact.SearchContacts(a.ctx, query)
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.Width = msg.Width - 6
		return a, nil

	case contactsLoadedMsg:
		a.err = msg.err
		if msg.err == nil {
			a.contacts = msg.contacts
		}
		if a.selected >= len(a.contacts) {
			a.selected = 0
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes key presses to the browser or the detail pane.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	if a.detail != nil {
		if key.Matches(msg, a.keys.Back) || key.Matches(msg, a.keys.Select) {
			a.detail = nil
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.selected < len(a.contacts)-1 {
			a.selected++
		}
		return a, nil

	case key.Matches(msg, a.keys.Select):
		if a.selected < len(a.contacts) {
			contact := a.contacts[a.selected]
			a.detail = &contact
		}
		return a, nil

	case key.Matches(msg, a.keys.Back):
		if a.input.Value() == "" {
			return a, tea.Quit
		}
		a.input.SetValue("")
		a.selected = 0
		return a, a.loadContacts("")
	}

	// Everything else edits the filter.
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.selected = 0
		return a, tea.Batch(cmd, a.loadContacts(a.input.Value()))
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.detail != nil {
		return a.detailView()
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("DropCard Contacts"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	if len(a.contacts) == 0 {
		b.WriteString(a.styles.Muted.Render("No contacts found."))
		b.WriteString("\n")
	} else {
		for i, contact := range a.contacts {
			line := contactLine(contact)
			if i == a.selected {
				b.WriteString(a.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(a.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(a.statusBar())
	return b.String()
}

// detailView renders the selected contact in a bordered pane.
func (a *App) detailView() string {
	c := a.detail

	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render(c.CardData.Name))
	b.WriteString("\n")
	if c.CardData.Title != "" || c.CardData.Company != "" {
		b.WriteString(a.styles.Muted.Render(joinNonEmpty(" · ", c.CardData.Title, c.CardData.Company)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, row := range []struct{ label, value string }{
		{"Email", c.CardData.Email},
		{"Phone", c.CardData.Phone},
		{"Website", c.CardData.Website},
		{"Met at", c.MeetingContext},
		{"Notes", c.Notes},
	} {
		if row.value == "" {
			continue
		}
		b.WriteString(a.styles.Muted.Render(row.label+": ") + a.styles.Normal.Render(row.value))
		b.WriteString("\n")
	}
	if len(c.Tags) > 0 {
		b.WriteString(a.styles.Muted.Render("Tags: ") + a.styles.Normal.Render(strings.Join(c.Tags, ", ")))
		b.WriteString("\n")
	}

	pane := a.styles.Border.Padding(0, 2).Render(b.String())
	help := a.styles.Help.Render("esc/enter back · ctrl+c quit")
	return pane + "\n" + help
}

// statusBar renders the contact count and keybinding hints.
func (a *App) statusBar() string {
	count := fmt.Sprintf("%d contact(s)", len(a.contacts))

	var hints []string
	for _, binding := range a.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}

	return a.styles.StatusBar.Render(count + "  " + strings.Join(hints, " · "))
}

// contactLine formats a contact for the list.
func contactLine(c domain.Contact) string {
	return joinNonEmpty("  ", c.CardData.Name, joinNonEmpty(" · ", c.CardData.Title, c.CardData.Company))
}

// joinNonEmpty joins the non-empty parts with the separator.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
