package tui

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/logging"
	"github.com/h0rv/projbook/internal/logic"
	"github.com/h0rv/projbook/internal/storage"
)

// createTestApp creates a shell over an empty book in a temp directory.
func createTestApp(t *testing.T) AppModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.json")
	m := logic.New(context.Background(), storage.NewJSONStorage(path), logging.New(io.Discard, logging.LevelError))
	require.NoError(t, m.LoadError())
	return NewAppModel(context.Background(), m)
}

func typeText(app AppModel, text string) AppModel {
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return model.(AppModel)
}

func press(app AppModel, k tea.KeyType) (AppModel, tea.Cmd) {
	model, cmd := app.Update(tea.KeyMsg{Type: k})
	return model.(AppModel), cmd
}

// run types line, submits it and feeds the command's result back.
func run(t *testing.T, app AppModel, line string) (AppModel, tea.Cmd) {
	t.Helper()
	app, cmd := press(typeText(app, line), tea.KeyEnter)
	require.NotNil(t, cmd, "submitting %q must start the command", line)
	assert.True(t, app.busy)
	model, next := app.Update(cmd())
	return model.(AppModel), next
}

func TestAppModel_Initial(t *testing.T) {
	app := createTestApp(t)

	assert.Equal(t, command.ViewProjects, app.view)
	assert.Equal(t, MessageWelcome, app.message)
	assert.False(t, app.isError)
	assert.Contains(t, app.View(), "projects (0)")
}

func TestAppModel_RunCommand(t *testing.T) {
	app := createTestApp(t)

	app, _ = run(t, app, "project -a n/Website r/octo/site")
	assert.False(t, app.busy)
	assert.False(t, app.isError)
	assert.Equal(t, "New project added: Website (#1)", app.message)
	assert.Equal(t, command.ViewProjects, app.view)
	assert.Empty(t, app.input.Value(), "input is cleared after success")
	require.Len(t, app.list.entries[command.ViewProjects], 1)
	assert.Contains(t, app.View(), "Website (#1)")

	app, _ = run(t, app, "client -a n/Amy pid/1")
	assert.Equal(t, command.ViewClients, app.view)
	require.Len(t, app.list.entries[command.ViewClients], 1)

	// Other lists pick up the new link as well.
	project := app.list.entries[command.ViewProjects][0]
	assert.Contains(t, project.fields, field{"Client", "Client: Amy (#1)"})
}

func TestAppModel_CommandError(t *testing.T) {
	app := createTestApp(t)

	app, _ = run(t, app, "project -a")
	assert.True(t, app.isError)
	assert.True(t, strings.HasPrefix(app.message, "Invalid command format!"))
	assert.Equal(t, "project -a", app.input.Value(), "failed input is kept for correction")
}

func TestAppModel_EmptySubmitDoesNothing(t *testing.T) {
	app := createTestApp(t)

	app, cmd := press(app, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, app.busy)
}

func TestAppModel_FindThenTab(t *testing.T) {
	app := createTestApp(t)
	app, _ = run(t, app, "project -a n/Website")
	app, _ = run(t, app, "project -a n/Backend")

	app, _ = run(t, app, "project -f n/website")
	assert.Equal(t, "1 projects listed!", app.message)
	assert.Len(t, app.list.entries[command.ViewProjects], 1)

	// Cycling through every view lists whole collections again.
	app, _ = press(app, tea.KeyTab)
	assert.Equal(t, command.ViewIssues, app.view)
	app, _ = press(app, tea.KeyTab)
	assert.Equal(t, command.ViewClients, app.view)
	app, _ = press(app, tea.KeyTab)
	assert.Equal(t, command.ViewProjects, app.view)
	assert.Len(t, app.list.entries[command.ViewProjects], 2)
}

func TestAppModel_Navigation(t *testing.T) {
	app := createTestApp(t)
	app, _ = run(t, app, "project -a n/Website")
	app, _ = run(t, app, "project -a n/Backend")

	app, _ = press(app, tea.KeyDown)
	e, ok := app.list.current(command.ViewProjects)
	require.True(t, ok)
	assert.Equal(t, "Backend (#2)", e.title)

	app, _ = press(app, tea.KeyDown)
	assert.Equal(t, 1, app.list.selected[command.ViewProjects], "selection stops at the last entry")

	app, _ = press(app, tea.KeyUp)
	app, _ = press(app, tea.KeyUp)
	assert.Equal(t, 0, app.list.selected[command.ViewProjects])
}

func TestAppModel_OpenRepository(t *testing.T) {
	app := createTestApp(t)
	var opened []string
	app.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	app, _ = run(t, app, "project -a n/Offline")
	app, cmd := press(app, tea.KeyCtrlO)
	assert.Nil(t, cmd)
	assert.Equal(t, MessageNoRepository, app.message)
	assert.True(t, app.isError)

	app, _ = run(t, app, "project -e pid/1 r/octo/site")
	app, cmd = press(app, tea.KeyCtrlO)
	require.NotNil(t, cmd)
	model, _ := app.Update(cmd())
	app = model.(AppModel)

	assert.Equal(t, []string{"https://github.com/octo/site"}, opened)
	assert.Equal(t, "Opened https://github.com/octo/site", app.message)
	assert.False(t, app.isError)
}

func TestAppModel_Help(t *testing.T) {
	app := createTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	app = model.(AppModel)
	assert.True(t, app.showHelp)
	assert.Empty(t, app.input.Value(), "? toggles help instead of typing")

	app, _ = press(app, tea.KeyEsc)
	assert.False(t, app.showHelp)

	app, _ = run(t, app, "help")
	assert.True(t, app.showHelp)
	assert.Equal(t, MessageHelpShown, app.message)

	// Inside a command, ? is just text.
	app, _ = press(app, tea.KeyEsc)
	app = typeText(app, "project -f n/")
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	app = model.(AppModel)
	assert.False(t, app.showHelp)
	assert.Equal(t, "project -f n/?", app.input.Value())
}

func TestAppModel_Exit(t *testing.T) {
	app := createTestApp(t)

	app, cmd := run(t, app, "exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, app.quitting)
	assert.Empty(t, app.View())
}

func TestAppModel_WithError(t *testing.T) {
	app := createTestApp(t).WithError(assert.AnError)
	assert.True(t, app.isError)
	assert.Equal(t, assert.AnError.Error(), app.message)
}

func TestListModel_Scroll(t *testing.T) {
	l := newListModel()
	es := make([]entry, 10)
	for i := range es {
		es[i] = entry{title: string(rune('a' + i))}
	}
	l.set(command.ViewIssues, es)

	l.move(command.ViewIssues, 7)
	out := l.render(command.ViewIssues, 40, 8) // three entries fit
	assert.Equal(t, 5, l.offset[command.ViewIssues])
	assert.Contains(t, out, "↑ 5 more")
	assert.Contains(t, out, "↓ 2 more")
	assert.Contains(t, out, "> h")

	// Shrinking the list keeps the selection in range.
	l.set(command.ViewIssues, es[:3])
	assert.Equal(t, 2, l.selected[command.ViewIssues])
}

func TestListModel_Empty(t *testing.T) {
	l := newListModel()
	l.move(command.ViewClients, 1)
	_, ok := l.current(command.ViewClients)
	assert.False(t, ok)
	assert.Contains(t, l.render(command.ViewClients, 40, 8), "(empty)")
}

func TestProjectPicker(t *testing.T) {
	app := createTestApp(t)
	app, _ = run(t, app, "project -a n/Website r/octo/site")
	app, _ = run(t, app, "project -a n/Backend r/octo/api")
	projects := app.shell.Store().Projects()

	picker := NewProjectPickerModel("Import issues into", projects)
	model, _ := picker.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ProjectSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.Project.ID())

	prog := pickerProgram{picker: model}
	final, quit := prog.Update(msg)
	require.NotNil(t, quit)
	assert.Equal(t, msg.Project, final.(pickerProgram).chosen)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, QuitMsg{}, cmd())
}
