// Package home is the screen listing every tasks list with its item count.
package home

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

// Loader reads the home screen records.
type Loader interface {
	ReadTasksInfos(ctx context.Context) ([]model.TasksListInfo[icon.Icon], error)
}

// ListsLoadedMsg carries the result of a Load.
type ListsLoadedMsg struct {
	Infos []model.TasksListInfo[icon.Icon]
	Err   error
}

// SelectedListMsg is sent when the user opens a list.
type SelectedListMsg struct {
	ID   uuid.UUID
	Name string
	Type model.ActivityType
}

// Row adapts a TasksListInfo to a bubbles/list item.
type Row struct {
	Info model.TasksListInfo[icon.Icon]
}

// FilterValue returns the list name.
func (r Row) FilterValue() string { return r.Info.Name }

// Subtitle returns the item count line.
func (r Row) Subtitle() string { return fmt.Sprintf("%d Tasks", r.Info.TasksCount) }

type delegate struct{}

func (delegate) Height() int                         { return 2 }
func (delegate) Spacing() int                        { return 1 }
func (delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(Row)
	if !ok {
		return
	}

	glyph := theme.ActivityStyle(row.Info.Type).Render(row.Info.Icon.Glyph)
	body := lipgloss.JoinVertical(lipgloss.Left,
		row.Info.Name,
		theme.SubtitleStyle.Render(row.Subtitle()),
	)
	line := lipgloss.JoinHorizontal(lipgloss.Top, glyph, " ", body)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// Model is the home screen.
type Model struct {
	list   list.Model
	loader Loader
	keys   *keys.KeyMap
	failed bool
	loaded bool
	width  int
	height int
}

// New creates the home screen reading from loader.
func New(loader Loader, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, delegate{}, width, height)
	l.Title = "Lists"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.TitleStyle

	return Model{
		list:   l,
		loader: loader,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init loads the lists.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load returns a command reading the home screen records.
func (m Model) Load() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		infos, err := loader.ReadTasksInfos(context.Background())
		return ListsLoadedMsg{Infos: infos, Err: err}
	}
}

// Update handles messages for the home screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ListsLoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.failed = true
			return m, m.list.SetItems(nil)
		}
		m.failed = false
		items := make([]list.Item, len(msg.Infos))
		for i, info := range msg.Infos {
			items[i] = Row{Info: info}
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Select) {
			row, ok := m.list.SelectedItem().(Row)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return SelectedListMsg{ID: row.Info.ID, Name: row.Info.Name, Type: row.Info.Type}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the home screen. The list is hidden after a failed load.
func (m Model) View() string {
	switch {
	case m.failed:
		return m.centered(theme.NoticeStyle.Render("Your lists could not be loaded."))
	case m.loaded && len(m.list.Items()) == 0:
		return m.centered(theme.HelpStyle.Render("No lists yet.\nPress n to add one."))
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

// Failed reports whether the last load failed.
func (m Model) Failed() bool { return m.failed }

// Len returns the number of lists shown.
func (m Model) Len() int { return len(m.list.Items()) }

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
