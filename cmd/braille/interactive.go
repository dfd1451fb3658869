package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/braille/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type pane int

const (
	paneForward pane = iota
	paneMirrored
	paneDots
	paneCount
)

func (p pane) String() string {
	switch p {
	case paneForward:
		return "forward"
	case paneMirrored:
		return "mirrored"
	case paneDots:
		return "dots"
	default:
		return "unknown"
	}
}

type interactiveModel struct {
	tr     *transcoder.Transcoder
	result *transcoder.Result
	input  textarea.Model
	pane   pane
	width  int
}

func newInteractiveModel(tr *transcoder.Transcoder) *interactiveModel {
	ta := textarea.New()
	ta.Placeholder = "Escribe un texto"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.Focus()

	return &interactiveModel{
		tr:     tr,
		input:  ta,
		result: tr.Translate(""),
		pane:   paneForward,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.pane = (m.pane + 1) % paneCount
			return m, nil

		case "shift+tab":
			m.pane = (m.pane + paneCount - 1) % paneCount
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.result = m.tr.Translate(v)
	}
	return m, cmd
}

func (m *interactiveModel) output() string {
	switch m.pane {
	case paneMirrored:
		return m.result.Mirrored
	case paneDots:
		return m.result.DotCode
	default:
		return m.result.Forward
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Braille"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for p := pane(0); p < paneCount; p++ {
		if p > 0 {
			b.WriteString(" ")
		}
		if p == m.pane {
			b.WriteString(selectedStyle.Render(" " + p.String() + " "))
		} else {
			b.WriteString(paneStyle.Render(" " + p.String() + " "))
		}
	}
	b.WriteString("\n\n")

	out := resultStyle
	if m.width > 0 {
		out = out.Width(m.width)
	}
	b.WriteString(out.Render(m.output()))
	b.WriteString("\n")

	if n := len(m.result.Unresolved); n > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d unresolved: %s", n, unresolvedList(m.result.Unresolved))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next view • shift+tab previous view • esc quit"))

	return b.String()
}

func unresolvedList(u []transcoder.Unresolved) string {
	parts := make([]string, len(u))
	for i, c := range u {
		parts[i] = fmt.Sprintf("%q %d:%d", c.Char, c.Line, c.Column)
	}
	return strings.Join(parts, ", ")
}

func runInteractive(tr *transcoder.Transcoder) error {
	p := tea.NewProgram(newInteractiveModel(tr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
