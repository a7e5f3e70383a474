package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Pager displays a fully composed document. The core hands the text over and
// has no further interaction with it.
type Pager interface {
	Show(text string) error
}

// CommandPager pipes the document into an external pager process attached to
// the terminal.
type CommandPager struct {
	Path string
	Args []string
}

func (p CommandPager) Show(text string) error {
	cmd := exec.Command(p.Path, p.Args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

// parsePagerCommand splits a $PAGER value into binary and arguments.
func parsePagerCommand(value string) (CommandPager, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return CommandPager{}, false
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return CommandPager{}, false
	}
	return CommandPager{Path: fields[0], Args: fields[1:]}, true
}

// ResolvePager picks a pager: $PAGER, then less, then more, then the
// built-in viewport pager. When stdout is not a terminal the document is
// written straight through instead of paged.
func ResolvePager() Pager {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return writePager{}
	}
	if p, ok := parsePagerCommand(os.Getenv("PAGER")); ok {
		return p
	}
	if _, err := exec.LookPath("less"); err == nil {
		return CommandPager{Path: "less", Args: []string{"-R"}}
	}
	if _, err := exec.LookPath("more"); err == nil {
		return CommandPager{Path: "more"}
	}
	return BuiltinPager{}
}

// writePager dumps the document to stdout; used when output is redirected.
type writePager struct{}

func (writePager) Show(text string) error {
	_, err := fmt.Print(text)
	return err
}

// BuiltinPager is the in-process scrollback fallback.
type BuiltinPager struct{}

type pagerModel struct {
	vp      viewport.Model
	content string
	ready   bool
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-footerHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	footer := StatusBarStyle.Render(fmt.Sprintf("%3.0f%% · q quit", m.vp.ScrollPercent()*100))
	return m.vp.View() + "\n" + footer
}

func (BuiltinPager) Show(text string) error {
	p := tea.NewProgram(pagerModel{content: text}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}
