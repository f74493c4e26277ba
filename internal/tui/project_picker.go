package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/h0rv/projbook/internal/domain"
)

// ErrNoProjectSelected is returned by PickProject when the user leaves the
// picker without choosing.
var ErrNoProjectSelected = errors.New("no project selected")

// projectItem wraps a domain.Project for use in bubbles/list.
type projectItem struct {
	project *domain.Project
}

func (i projectItem) FilterValue() string {
	return i.project.Name.String()
}

func (i projectItem) Title() string {
	return i.project.UI()
}

func (i projectItem) Description() string {
	return fmt.Sprintf("%s · %s", i.project.Repository.UI(), i.project.IssueSummary())
}

// projectDelegate is a custom item delegate for project items.
type projectDelegate struct{}

func (d projectDelegate) Height() int                             { return 2 }
func (d projectDelegate) Spacing() int                            { return 1 }
func (d projectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(projectItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	desc := i.Description()

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+str))
		fmt.Fprint(w, "\n  "+NormalItemStyle.Render(desc))
	} else {
		fmt.Fprint(w, NormalItemStyle.Render("  "+str))
		fmt.Fprint(w, "\n  "+lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(desc))
	}
}

// ProjectPickerModel displays a list of projects for the user to select.
type ProjectPickerModel struct {
	list list.Model
}

// NewProjectPickerModel creates a new ProjectPickerModel titled title.
func NewProjectPickerModel(title string, projects []*domain.Project) ProjectPickerModel {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	l := list.New(items, projectDelegate{}, defaultWidth, defaultHeight-4)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle

	return ProjectPickerModel{list: l}
}

// Init initializes the model.
func (m ProjectPickerModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages and updates the model state.
func (m ProjectPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter input while it is focused.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, func() tea.Msg {
				return QuitMsg{}
			}
		case "enter":
			if item, ok := m.list.SelectedItem().(projectItem); ok {
				return m, func() tea.Msg {
					return ProjectSelectedMsg{Project: item.project}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m ProjectPickerModel) View() string {
	return m.list.View()
}

// pickerProgram ends the program once the picker reports a choice.
type pickerProgram struct {
	picker tea.Model
	chosen *domain.Project
}

func (p pickerProgram) Init() tea.Cmd { return p.picker.Init() }

func (p pickerProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProjectSelectedMsg:
		p.chosen = msg.Project
		return p, tea.Quit
	case QuitMsg:
		return p, tea.Quit
	}
	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)
	return p, cmd
}

func (p pickerProgram) View() string { return p.picker.View() }

// PickProject lets the user choose one of projects interactively.
func PickProject(title string, projects []*domain.Project) (*domain.Project, error) {
	if len(projects) == 0 {
		return nil, ErrNoProjectSelected
	}
	final, err := tea.NewProgram(pickerProgram{picker: NewProjectPickerModel(title, projects)}, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	if chosen := final.(pickerProgram).chosen; chosen != nil {
		return chosen, nil
	}
	return nil, ErrNoProjectSelected
}
