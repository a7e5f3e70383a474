package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// BuiltinSelector is the in-process fallback when fzf is absent: a textinput
// over a fuzzy-filtered candidate list.
type BuiltinSelector struct{}

const selectorListHeight = 12

type selectorModel struct {
	input    textinput.Model
	options  []string
	filtered []int // indices into options, in match-rank order
	cursor   int
	height   int
	choice   string
}

func newSelectorModel(options []string, prompt string) selectorModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = PromptStyle
	ti.TextStyle = NormalStyle
	ti.CharLimit = 256
	ti.Focus()

	m := selectorModel{
		input:   ti,
		options: options,
		height:  selectorListHeight,
	}
	m.filtered = filterOptions("", options)
	return m
}

// filterOptions returns the indices of options matching query, best match
// first. An empty query keeps the original order.
func filterOptions(query string, options []string) []int {
	if strings.TrimSpace(query) == "" {
		all := make([]int, len(options))
		for i := range options {
			all[i] = i
		}
		return all
	}
	matches := fuzzy.Find(query, options)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	return idx
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.choice = ""
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.choice = m.options[m.filtered[m.cursor]]
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.filtered = filterOptions(m.input.Value(), m.options)
		m.cursor = 0
	}
	return m, cmd
}

func (m selectorModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// window of rows around the cursor
	start := 0
	if m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	end := start + m.height
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		line := m.options[m.filtered[i]]
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(DimStyle.Render(fmt.Sprintf("%d/%d  ↑/↓ move · enter select · esc cancel", len(m.filtered), len(m.options))))
	return b.String()
}

func (BuiltinSelector) Select(options []string, prompt string) (string, error) {
	p := tea.NewProgram(newSelectorModel(options, prompt))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run selector: %w", err)
	}
	return final.(selectorModel).choice, nil
}
