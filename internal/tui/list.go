package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
)

// Each entry takes a title line and a summary line.
const entryLines = 2

// field is one labelled value of an entry's detail panel.
type field struct {
	label string
	value string
}

// entry is one row of an entity list.
type entry struct {
	title   string
	summary string
	fields  []field
	// repository is what ctrl+o opens; empty when the entry has none.
	repository domain.Repository
}

func clientEntry(c *domain.Client) entry {
	projects := make([]string, 0, len(c.Projects()))
	for _, p := range c.Projects() {
		projects = append(projects, p.UI())
	}
	return entry{
		title:   c.UI(),
		summary: fmt.Sprintf("%s · %s", c.Phone.UI(), c.Email.UI()),
		fields: []field{
			{"Phone", c.Phone.UI()},
			{"Email", c.Email.UI()},
			{"Projects", strings.Join(projects, ", ")},
		},
	}
}

func projectEntry(p *domain.Project) entry {
	return entry{
		title:   p.UI(),
		summary: fmt.Sprintf("%s · %s", p.Deadline.UI(), p.IssueSummary()),
		fields: []field{
			{"Repository", p.Repository.UI()},
			{"Deadline", p.Deadline.UI()},
			{"Client", p.ClientUI()},
			{"Issues", p.IssueSummary()},
		},
		repository: p.Repository,
	}
}

func issueEntry(i *domain.Issue) entry {
	e := entry{
		title:   i.UI(),
		summary: fmt.Sprintf("%s · %s · %s", i.Priority.UI(), i.Status.UI(), i.Deadline.UI()),
		fields: []field{
			{"Priority", i.Priority.String()},
			{"Status", i.Status.UI()},
			{"Deadline", i.Deadline.UI()},
		},
	}
	if p := i.Project(); p != nil {
		e.fields = append(e.fields, field{"Project", p.UI()})
		e.repository = p.Repository
	}
	return e
}

func entries[T any](items []T, build func(T) entry) []entry {
	out := make([]entry, len(items))
	for i, item := range items {
		out[i] = build(item)
	}
	return out
}

// listModel keeps the displayed entries and the selection of every view.
type listModel struct {
	entries  map[command.View][]entry
	selected map[command.View]int
	offset   map[command.View]int
}

func newListModel() listModel {
	return listModel{
		entries:  make(map[command.View][]entry),
		selected: make(map[command.View]int),
		offset:   make(map[command.View]int),
	}
}

// set replaces the entries of view and keeps the selection in range.
func (l *listModel) set(view command.View, es []entry) {
	l.entries[view] = es
	if l.selected[view] >= len(es) {
		l.selected[view] = max(len(es)-1, 0)
	}
	if l.offset[view] > l.selected[view] {
		l.offset[view] = l.selected[view]
	}
}

// move shifts the selection of view by delta, clamped to the list.
func (l *listModel) move(view command.View, delta int) {
	n := len(l.entries[view])
	if n == 0 {
		return
	}
	l.selected[view] = min(max(l.selected[view]+delta, 0), n-1)
}

// current returns the selected entry of view.
func (l listModel) current(view command.View) (entry, bool) {
	es := l.entries[view]
	i := l.selected[view]
	if i < 0 || i >= len(es) {
		return entry{}, false
	}
	return es[i], true
}

// scroll keeps the selected entry of view inside a window of visible entries.
func (l *listModel) scroll(view command.View, visible int) {
	sel := l.selected[view]
	switch {
	case sel < l.offset[view]:
		l.offset[view] = sel
	case sel >= l.offset[view]+visible:
		l.offset[view] = sel - visible + 1
	}
}

// render draws the entries of view into a box of the given size.
func (l *listModel) render(view command.View, width, height int) string {
	es := l.entries[view]
	innerWidth := max(width-4, 10)
	visible := max((height-2)/entryLines, 1)
	l.scroll(view, visible)

	var lines []string
	offset := l.offset[view]
	if offset > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("↑ %d more", offset)))
	}

	end := min(offset+visible, len(es))
	for i := offset; i < end; i++ {
		e := es[i]
		title := truncate.StringWithTail(e.title, uint(innerWidth-2), "…")
		summary := truncate.StringWithTail(e.summary, uint(innerWidth-2), "…")
		if i == l.selected[view] {
			lines = append(lines, SelectedItemStyle.Render("> "+title))
		} else {
			lines = append(lines, NormalItemStyle.Render("  "+title))
		}
		lines = append(lines, dimStyle.Render("  "+summary))
	}

	if remaining := len(es) - end; remaining > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("↓ %d more", remaining)))
	}
	if len(es) == 0 {
		lines = append(lines, dimStyle.Render("(empty)"))
	}

	return lipgloss.NewStyle().
		Width(width-2).
		Height(max(height-2, 1)).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(strings.Join(lines, "\n"))
}
