package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"

	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/store"
)

// Fallback terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minBodyHeight = 4
)

// MessageWelcome is shown before the first command.
const MessageWelcome = "Welcome to projbook! Type help to see the commands."

// MessageNoRepository is shown when ctrl+o is pressed on an entry without one.
const MessageNoRepository = "The selected entry has no repository"

// MessageHelpShown replaces the command reference in the result box while
// the help overlay shows it.
const MessageHelpShown = "Press ? or esc to close the help."

// Shell runs command lines against an address book.
type Shell interface {
	Execute(ctx context.Context, input string) (command.Result, error)
	Store() *store.Store
}

// AppModel is the root Bubble Tea model: a command prompt, the message of
// the last command, and the entity list it brought to the front.
type AppModel struct {
	// Dependencies
	shell   Shell
	ctx     context.Context
	openURL func(url string) error

	// UI components
	keymap KeyMap
	help   HelpModel
	input  textinput.Model
	list   listModel

	// View state
	view     command.View
	message  string
	isError  bool
	showHelp bool
	busy     bool
	quitting bool
	width    int
	height   int
}

// NewAppModel creates the shell showing every project.
func NewAppModel(ctx context.Context, shell Shell) AppModel {
	ti := textinput.New()
	ti.Placeholder = "project -l"
	ti.Prompt = PromptStyle.Render("> ")
	ti.Focus()

	m := AppModel{
		shell:   shell,
		ctx:     ctx,
		openURL: browser.OpenURL,
		keymap:  DefaultKeyMap(),
		help:    NewHelpModel(DefaultKeyMap()),
		input:   ti,
		list:    newListModel(),
		view:    command.ViewProjects,
		message: MessageWelcome,
	}
	m.refreshAll()
	return m
}

// WithError shows err in place of the welcome message, e.g. a book that
// could not be loaded.
func (m AppModel) WithError(err error) AppModel {
	if err != nil {
		m.message = err.Error()
		m.isError = true
	}
	return m
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.WindowSize())
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		m.busy = false
		return m.applyResult(msg)

	case openedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Could not open %s: %v", msg.url, msg.err)
			m.isError = true
		} else {
			m.message = "Opened " + msg.url
			m.isError = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case m.busy:
		// The store is being written; ignore input until the result arrives.
		return m, nil

	case key.Matches(msg, m.keymap.Help) && m.input.Value() == "":
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.NextView):
		m.view = m.view.Next()
		m.refresh(m.view)
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		m.list.move(m.view, -1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.list.move(m.view, 1)
		return m, nil

	case key.Matches(msg, m.keymap.Open):
		e, ok := m.list.current(m.view)
		if !ok || e.repository.IsEmpty() {
			m.message = MessageNoRepository
			m.isError = true
			return m, nil
		}
		return m, m.open(e.repository.URL())

	case key.Matches(msg, m.keymap.Clear):
		m.input.Reset()
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.busy = true
		return m, m.execute(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyResult shows the outcome of a command. A failed command keeps its
// input so it can be corrected.
func (m AppModel) applyResult(msg resultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.message = msg.err.Error()
		m.isError = true
		return m, nil
	}

	r := msg.result
	m.input.Reset()
	m.message = r.Message
	m.isError = false
	m.showHelp = r.Help
	if r.Help {
		m.message = MessageHelpShown
	}

	if r.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	if r.Changed {
		m.refreshAll()
	}
	if r.View != command.ViewNone {
		m.view = r.View
		switch r.View {
		case command.ViewClients:
			m.list.set(r.View, entries(r.Clients, clientEntry))
		case command.ViewProjects:
			m.list.set(r.View, entries(r.Projects, projectEntry))
		case command.ViewIssues:
			m.list.set(r.View, entries(r.Issues, issueEntry))
		}
	}
	return m, nil
}

// refresh lists the whole collection of view.
func (m *AppModel) refresh(view command.View) {
	s := m.shell.Store()
	switch view {
	case command.ViewClients:
		m.list.set(view, entries(s.Clients(), clientEntry))
	case command.ViewProjects:
		m.list.set(view, entries(s.Projects(), projectEntry))
	case command.ViewIssues:
		m.list.set(view, entries(s.Issues(), issueEntry))
	}
}

func (m *AppModel) refreshAll() {
	for _, v := range []command.View{command.ViewClients, command.ViewProjects, command.ViewIssues} {
		m.refresh(v)
	}
}

// execute runs a command line in the background.
func (m AppModel) execute(line string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.shell.Execute(m.ctx, line)
		return resultMsg{input: line, result: result, err: err}
	}
}

// open opens url in the default browser.
func (m AppModel) open(url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: m.openURL(url)}
	}
}

// View renders the shell.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}

	header := m.renderHeader()
	result := m.renderResult(width)
	prompt := m.input.View()
	footer := HelpStyle.Render(m.help.ShortView(width))

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(result) -
		lipgloss.Height(prompt) - lipgloss.Height(footer)
	bodyHeight = max(bodyHeight, minBodyHeight)

	var body string
	if m.showHelp {
		body = m.help.View(width, command.HelpMessage)
	} else {
		body = m.renderBody(width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, result, prompt, footer)
}

func (m AppModel) renderHeader() string {
	tabs := make([]string, 0, 3)
	for _, v := range []command.View{command.ViewClients, command.ViewProjects, command.ViewIssues} {
		label := fmt.Sprintf("%s (%d)", v, len(m.list.entries[v]))
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return TitleStyle.Render("projbook") + "  " + strings.Join(tabs, "  ")
}

// renderBody puts the list of the current view next to the details of its
// selected entry.
func (m AppModel) renderBody(width, height int) string {
	listWidth := int(float64(width) * listPanelRatio)
	detailWidth := width - listWidth
	if detailWidth < minDetailWidth {
		listWidth = width
		detailWidth = 0
	}

	list := m.list.render(m.view, listWidth, height)
	if detailWidth == 0 {
		return list
	}
	e, ok := m.list.current(m.view)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, renderDetail(e, ok, detailWidth, height))
}

func (m AppModel) renderResult(width int) string {
	text := wordwrap.String(m.message, max(width-4, 10))
	if m.isError {
		text = ErrorStyle.Render(text)
	}
	return resultBoxStyle.Width(max(width-2, 10)).Render(text)
}
