package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/pretty-debug/internal/termsize"
	"github.com/wippyai/pretty-debug/pretty"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
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

// previewWidth bounds the one-line previews in the document list.
const previewWidth = 60

type modelState int

const (
	stateSelectDoc modelState = iota
	stateEditWidth
	stateShowResult
)

type interactiveModel struct {
	err       error
	source    string
	result    string
	docs      []any
	input     textinput.Model
	selected  int
	width     int // explicit break length, 0 = follow the window
	termWidth int
	state     modelState
}

func newInteractiveModel(docs []any, source string, width int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "window width"
	ti.Prompt = "break length: "
	ti.CharLimit = 4
	ti.Width = 10
	if width > 0 {
		ti.SetValue(strconv.Itoa(width))
	}

	return &interactiveModel{
		source:    source,
		docs:      docs,
		input:     ti,
		width:     width,
		termWidth: termsize.BreakLength(),
		state:     stateSelectDoc,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		if m.state == stateShowResult && m.width == 0 {
			m.renderSelected()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEditWidth {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectDoc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectDoc && m.selected < len(m.docs)-1 {
				m.selected++
			}

		case "w":
			if m.state != stateEditWidth {
				m.state = stateEditWidth
				m.err = nil
				m.input.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateSelectDoc:
				if len(m.docs) > 0 {
					m.renderSelected()
					m.state = stateShowResult
				}
				return m, nil

			case stateEditWidth:
				if err := m.applyWidth(); err != nil {
					m.err = err
					return m, nil
				}
				m.input.Blur()
				m.renderSelected()
				m.state = stateShowResult
				return m, nil

			case stateShowResult:
				m.state = stateSelectDoc
				m.result = ""
			}

		case "esc":
			switch m.state {
			case stateEditWidth:
				m.input.Blur()
				m.err = nil
				m.state = stateSelectDoc
			case stateShowResult:
				m.state = stateSelectDoc
				m.result = ""
			}
		}
	}

	if m.state == stateEditWidth {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) applyWidth() error {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.width = 0
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return fmt.Errorf("break length must be a positive number, got %q", text)
	}
	m.width = n
	return nil
}

// breakLength is the explicit width, or the window width when none is set.
func (m *interactiveModel) breakLength() int {
	if m.width > 0 {
		return m.width
	}
	return m.termWidth
}

func (m *interactiveModel) renderSelected() {
	if m.selected < len(m.docs) {
		m.result = pretty.Inspect(m.docs[m.selected], pretty.WithBreakLength(m.breakLength()))
	}
}

func (m *interactiveModel) View() string {
	if len(m.docs) == 0 {
		return errorStyle.Render("No documents in "+m.source) + "\n\n" + helpStyle.Render("q quit")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Inspect"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString(" ")
	b.WriteString(kindStyle.Render(fmt.Sprintf("width %d", m.breakLength())))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectDoc:
		b.WriteString("Select a document:\n\n")
		for i, doc := range m.docs {
			line := m.formatDoc(i, doc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter show • w width • q quit"))

	case stateEditWidth:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • empty follows the window • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Document %d of %d:\n\n", m.selected+1, len(m.docs)))
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • w width • q quit"))
	}

	return b.String()
}

// formatDoc renders a one-line preview: the value's kind and its unfolded
// text, truncated.
func (m *interactiveModel) formatDoc(i int, doc any) string {
	text := pretty.Inspect(doc, pretty.WithBreakLength(1<<20))
	if cut := truncateRunes(text, previewWidth); cut != text {
		text = cut + "…"
	}
	return fmt.Sprintf("%d. %s %s", i+1, kindStyle.Render(pretty.Classify(doc).String()), text)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func runInteractive(docs []any, source string, width int) error {
	p := tea.NewProgram(newInteractiveModel(docs, source, width), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
