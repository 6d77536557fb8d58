// Package items is the screen listing the items of one tasks list.
package items

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/icon"
	"github.com/activitylist/activitylist/internal/keys"
	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/theme"
)

// Loader reads the items of the open list.
type Loader interface {
	ReadTaskItems(ctx context.Context) ([]model.TaskItemInfo[icon.Icon], error)
}

// ItemsLoadedMsg carries the result of a load for list ListID.
type ItemsLoadedMsg struct {
	ListID uuid.UUID
	Infos  []model.TaskItemInfo[icon.Icon]
	Err    error
}

// BackMsg is sent when the user leaves the screen.
type BackMsg struct{}

type row struct {
	info model.TaskItemInfo[icon.Icon]
}

func (r row) FilterValue() string { return r.info.Name }

type delegate struct{}

func (delegate) Height() int                         { return 1 }
func (delegate) Spacing() int                        { return 0 }
func (delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}

	line := fmt.Sprintf("%s %s  %s",
		theme.ActivityStyle(r.info.Type).Render(r.info.Icon.Glyph),
		r.info.Name,
		theme.SubtitleStyle.Render(r.info.CreatedAt.Local().Format("Jan 02 15:04")),
	)
	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// Model is the screen of one open list.
type Model struct {
	list   list.Model
	loader Loader
	keys   *keys.KeyMap
	listID uuid.UUID
	kind   model.ActivityType
	failed bool
	loaded bool
	width  int
	height int
}

// New creates an items screen with no list open.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, delegate{}, width, height)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.TitleStyle

	return Model{list: l, keys: k, width: width, height: height}
}

// Open switches the screen to the list listID and returns the command
// loading its items.
func (m *Model) Open(listID uuid.UUID, name string, kind model.ActivityType, loader Loader) tea.Cmd {
	m.listID = listID
	m.kind = kind
	m.loader = loader
	m.failed = false
	m.loaded = false
	m.list.Title = name
	return tea.Batch(m.list.SetItems(nil), m.Load())
}

// Load returns a command reading the open list's items.
func (m Model) Load() tea.Cmd {
	loader, listID := m.loader, m.listID
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		infos, err := loader.ReadTaskItems(context.Background())
		return ItemsLoadedMsg{ListID: listID, Infos: infos, Err: err}
	}
}

// Update handles messages for the items screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemsLoadedMsg:
		if msg.ListID != m.listID {
			return m, nil
		}
		m.loaded = true
		if msg.Err != nil {
			m.failed = true
			return m, m.list.SetItems(nil)
		}
		m.failed = false
		rows := make([]list.Item, len(msg.Infos))
		for i, info := range msg.Infos {
			rows[i] = row{info: info}
		}
		return m, m.list.SetItems(rows)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the items screen.
func (m Model) View() string {
	switch {
	case m.failed:
		return m.centered(theme.NoticeStyle.Render("The items of this list could not be loaded."))
	case m.loaded && len(m.list.Items()) == 0:
		return m.centered(theme.HelpStyle.Render("Nothing here yet.\nPress n to add an item."))
	}
	return m.list.View()
}

func (m Model) centered(s string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(s)
}

// ListID returns the open list.
func (m Model) ListID() uuid.UUID { return m.listID }

// Type returns the activity type of the open list.
func (m Model) Type() model.ActivityType { return m.kind }

// Name returns the open list's name.
func (m Model) Name() string { return m.list.Title }

// Failed reports whether the last load failed.
func (m Model) Failed() bool { return m.failed }

// Len returns the number of items shown.
func (m Model) Len() int { return len(m.list.Items()) }

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
