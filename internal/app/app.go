// Package app is the root Bubble Tea model of the terminal interface.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/activitylist/activitylist/internal/icon"
	"github.com/activitylist/activitylist/internal/keys"
	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/service"
	"github.com/activitylist/activitylist/internal/store"
	"github.com/activitylist/activitylist/internal/theme"
	"github.com/activitylist/activitylist/internal/ui"
	"github.com/activitylist/activitylist/internal/ui/entryform"
	helpview "github.com/activitylist/activitylist/internal/ui/help"
	"github.com/activitylist/activitylist/internal/ui/home"
	"github.com/activitylist/activitylist/internal/ui/items"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewHome ViewState = iota
	ViewItems
	ViewNewList
	ViewNewItem
	ViewHelp
)

// Options configures New.
type Options struct {
	Lists  *store.TasksListStore
	Items  *store.TaskItemStore
	Logger *log.Logger
	Clock  store.Clock
}

// Model is the root Bubble Tea model that routes between screens.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	lists        *store.TasksListStore
	itemStore    *store.TaskItemStore
	logger       *log.Logger
	clock        store.Clock
	keys         *keys.KeyMap
	home         home.Model
	items        items.Model
	form         entryform.Model
	helpView     helpview.Model
	notice       string
	ready        bool
}

// New creates the root model.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	k := keys.DefaultKeyMap()
	homeSvc := service.NewHomeService[icon.Icon](opts.Lists, icon.Service{})

	return Model{
		currentView: ViewHome,
		lists:       opts.Lists,
		itemStore:   opts.Items,
		logger:      opts.Logger,
		clock:       opts.Clock,
		keys:        k,
		home:        home.New(homeSvc, k, 80, 22),
		items:       items.New(k, 80, 22),
		form:        entryform.New(80, 22),
		helpView:    helpview.New(k, 80, 22),
	}
}

// Init loads the home screen.
func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := msg.Width, m.layout.ContentHeight()
		m.home.SetSize(w, h)
		m.items.SetSize(w, h)
		m.form.SetSize(w, h)
		m.helpView.SetSize(w, h)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case home.ListsLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("reading lists", "err", msg.Err)
		}
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd

	case home.SelectedListMsg:
		m.currentView = ViewItems
		loader := service.NewTaskItemsService[icon.Icon](msg.ID, m.itemStore, icon.Service{})
		return m, m.items.Open(msg.ID, msg.Name, msg.Type, loader)

	case items.ItemsLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("reading items", "list", msg.ListID, "err", msg.Err)
		}
		var cmd tea.Cmd
		m.items, cmd = m.items.Update(msg)
		return m, cmd

	case items.BackMsg:
		m.currentView = ViewHome
		return m, m.home.Load()

	case entryform.SubmittedMsg:
		view := m.currentView
		m.currentView = m.previousView
		if view == ViewNewItem {
			return m, m.createItem(msg.Name, msg.Type)
		}
		return m, m.createList(msg.Name, msg.Type)

	case entryform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case listCreatedMsg:
		if msg.err != nil {
			m.notice = "The list could not be saved."
			m.logger.Error("saving list", "err", msg.err)
			return m, nil
		}
		return m, m.home.Load()

	case itemCreatedMsg:
		if msg.err != nil {
			m.notice = "The item could not be saved."
			m.logger.Error("saving item", "list", msg.listID, "err", msg.err)
			return m, nil
		}
		if m.currentView == ViewItems && m.items.ListID() == msg.listID {
			return m, m.items.Load()
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Forms own the keyboard until they are submitted or aborted.
		if m.currentView == ViewNewList || m.currentView == ViewNewItem {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case m.currentView == ViewHelp && key.Matches(msg, m.keys.Back):
			m.currentView = m.previousView
			return m, nil

		case m.currentView == ViewHome && key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			switch m.currentView {
			case ViewHome:
				return m, m.home.Load()
			case ViewItems:
				return m, m.items.Load()
			}

		case key.Matches(msg, m.keys.New):
			switch m.currentView {
			case ViewHome:
				m.previousView = ViewHome
				m.currentView = ViewNewList
				return m, m.form.Start("New List", model.ActivityUndefined)
			case ViewItems:
				m.previousView = ViewItems
				m.currentView = ViewNewItem
				return m, m.form.Start("New Item in "+m.items.Name(), m.items.Type())
			}
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewItems:
		m.items, cmd = m.items.Update(msg)
	case ViewNewList, ViewNewItem:
		m.form, cmd = m.form.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Activity Lists", m.headerStatus())
	hints := m.helpView.ShortView()
	if m.notice != "" {
		hints = theme.NoticeStyle.Render(m.notice)
	}

	return m.layout.Frame(header, m.renderContent(), m.layout.RenderStatusBar(hints))
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHome:
		return m.home.View()
	case ViewItems:
		return m.items.View()
	case ViewNewList, ViewNewItem:
		return m.form.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

func (m Model) headerStatus() string {
	switch {
	case m.currentView == ViewItems:
		return fmt.Sprintf("%d Tasks", m.items.Len())
	case m.home.Failed():
		return "unavailable"
	default:
		return fmt.Sprintf("%d lists", m.home.Len())
	}
}

// CurrentView returns the active view.
func (m Model) CurrentView() ViewState { return m.currentView }
