// Package entryform is the form used to add a tasks list or a task item.
package entryform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/activitylist/activitylist/internal/icon"
	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/theme"
)

// SubmittedMsg is dispatched when the form is completed.
type SubmittedMsg struct {
	Name string
	Type model.ActivityType
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// bindings holds field values on the heap so that huh's Value() pointers
// remain valid across Bubble Tea model copies.
type bindings struct {
	name string
	kind model.ActivityType
}

// Model is the Bubble Tea model of the entry form.
type Model struct {
	form   *huh.Form
	fb     *bindings
	title  string
	width  int
	height int
}

// New creates an idle entry form.
func New(width, height int) Model {
	return Model{fb: &bindings{}, width: width, height: height}
}

// Start resets the form under the given title. kind preselects the
// activity type.
func (m *Model) Start(title string, kind model.ActivityType) tea.Cmd {
	m.title = title
	m.fb.name = ""
	m.fb.kind = kind
	m.form = m.build()
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submitted := SubmittedMsg{Name: strings.TrimSpace(m.fb.name), Type: m.fb.kind}
		m.form = nil
		return m, func() tea.Msg { return submitted }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	content := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render(m.title) + "\n" + m.form.View()

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) build() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("What is it called?").
				Value(&m.fb.name).
				Validate(validateRequired("Name")),
			huh.NewSelect[model.ActivityType]().
				Title("Activity").
				Options(activityOptions()...).
				Value(&m.fb.kind),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func activityOptions() []huh.Option[model.ActivityType] {
	opts := make([]huh.Option[model.ActivityType], len(model.ActivityTypes))
	for i, kind := range model.ActivityTypes {
		ic := icon.Service{}.Image(kind)
		opts[i] = huh.NewOption(ic.Glyph+" "+ic.Name, kind)
	}
	return opts
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
