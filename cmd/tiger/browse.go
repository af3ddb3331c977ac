package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tiger-tools/cmd/tiger/report"
)

type browseState int

const (
	stateList browseState = iota
	stateDetail
)

var (
	styleBase = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	styleDetail = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3).
			MarginLeft(2)
)

// browseModel lists diagnostics in a table. Enter shows one in full, `s`
// raises the minimum severity shown and wraps around.
type browseModel struct {
	table table.Model
	all   []report.Diagnostic
	shown []report.Diagnostic
	min   report.Severity
	links report.LinkResolver
	state browseState
}

func newBrowseModel(diags []report.Diagnostic, min report.Severity, links report.LinkResolver) browseModel {
	columns := []table.Column{
		{Title: "SEVERITY", Width: 8},
		{Title: "KEY", Width: 16},
		{Title: "LOCATION", Width: 40},
		{Title: "MESSAGE", Width: 70},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := browseModel{table: t, all: diags, min: min, links: links}
	m.filter()
	return m
}

func (m *browseModel) filter() {
	m.shown = m.shown[:0]
	for _, d := range m.all {
		if d.Severity >= m.min {
			m.shown = append(m.shown, d)
		}
	}
	m.table.SetRows(toRows(m.shown))
	m.table.SetCursor(0)
}

func toRows(diags []report.Diagnostic) []table.Row {
	rows := make([]table.Row, len(diags))
	for i, d := range diags {
		rows[i] = table.Row{d.Severity.String(), d.Key.String(), d.Loc().String(), d.Msg}
	}
	return rows
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateDetail {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.state = stateList
			}
		}
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if len(m.shown) > 0 {
				m.state = stateDetail
			}
			return m, nil
		case "s":
			m.min++
			if m.min > report.Fatal {
				m.min = report.Tips
			}
			m.filter()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	title := styleTitle.Render(fmt.Sprintf("%s  %d of %d diagnostics, %s and up", appName, len(m.shown), len(m.all), m.min))
	tableView := styleBase.Render(m.table.View())

	if m.state == stateDetail {
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.shown) {
			var sb strings.Builder
			_ = report.Render(&sb, m.shown[idx:idx+1], report.RenderOptions{Color: true, Links: m.links})
			help := styleHelp.Render("esc  back    q  quit")
			return title + "\n" + styleDetail.Render(strings.TrimRight(sb.String(), "\n")) + "\n" + help
		}
	}
	help := styleHelp.Render("↑/↓  navigate    enter  details    s  severity    q  quit")
	return title + "\n" + tableView + "\n" + help
}

func browse(diags []report.Diagnostic, min report.Severity, links report.LinkResolver) error {
	p := tea.NewProgram(newBrowseModel(diags, min, links), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
