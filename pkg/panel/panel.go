// Package panel is the interactive touchscreen: two buttons on a
// bubbletea program, with the machine's printed output shown underneath.
package panel

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/brew/pkg/render"
	"github.com/dkoosis/brew/pkg/touchscreen"
)

// OutputLog collects lines written by the machine so the panel can show
// them. It is safe for concurrent use.
type OutputLog struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	lines []string
}

// Write implements io.Writer, splitting input into complete lines.
func (l *OutputLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Write(p)
	for {
		line, err := l.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write.
			l.buf.Reset()
			l.buf.WriteString(line)
			break
		}
		l.lines = append(l.lines, strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Lines returns a copy of the complete lines written so far.
func (l *OutputLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Run starts the panel and blocks until the user quits or ctx ends.
// cm should print into log for its output to appear on screen.
func Run(ctx context.Context, cm touchscreen.CoffeeMachine, log *OutputLog, theme render.Theme) error {
	program := tea.NewProgram(New(cm, log, theme), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model behind the panel.
type Model struct {
	cm       touchscreen.CoffeeMachine
	log      *OutputLog
	theme    render.Theme
	focus    int
	presses  int
	viewport viewport.Model
	ready    bool
	quitting bool
}

// New builds a panel model driving cm.
func New(cm touchscreen.CoffeeMachine, log *OutputLog, theme render.Theme) Model {
	vp := viewport.New(40, 8)
	vp.SetContent("Touch a selection")
	return Model{cm: cm, log: log, theme: theme, viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h", "shift+tab":
			if m.focus > 0 {
				m.focus--
			}
			return m, nil
		case "right", "l", "tab":
			if m.focus < len(touchscreen.Selections)-1 {
				m.focus++
			}
			return m, nil
		case "enter", " ":
			m.press(touchscreen.Selections[m.focus])
			return m, nil
		case "1", "2", "a", "b":
			if sel, err := touchscreen.ParseSelection(msg.String()); err == nil {
				m.focus = indexOf(sel)
				m.press(sel)
			}
			return m, nil
		}
		// Keys the panel does not use scroll the output log.
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8 // title, buttons, help, borders
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.ready = true
		m.refresh()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) press(sel touchscreen.Selection) {
	if err := touchscreen.Press(m.cm, sel); err != nil {
		return
	}
	m.presses++
	m.refresh()
}

func (m *Model) refresh() {
	if m.presses == 0 {
		return
	}
	m.viewport.SetContent(strings.Join(m.log.Lines(), "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme
	var sb strings.Builder
	sb.WriteString(t.Bold.Render(t.Icons.Cup + " Touchscreen"))
	sb.WriteString("\n\n")

	button := lipgloss.NewStyle().Border(t.Border).Padding(0, 2)
	buttons := make([]string, len(touchscreen.Selections))
	for i, sel := range touchscreen.Selections {
		label := sel.Key() + " " + sel.String()
		if i == m.focus {
			buttons[i] = button.BorderForeground(t.Primary.GetForeground()).Render(t.Bold.Render(label))
		} else {
			buttons[i] = button.Render(label)
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Border(t.Border).Render(m.viewport.View()))
	sb.WriteString("\n")
	sb.WriteString(t.Muted.Render("←/→ move " + t.Icons.Bullet + " enter press " + t.Icons.Bullet + " 1/2 direct " + t.Icons.Bullet + " q quit"))
	return sb.String()
}

// Presses reports how many selections were pressed.
func (m Model) Presses() int {
	return m.presses
}

// Focus returns the selection under the cursor.
func (m Model) Focus() touchscreen.Selection {
	return touchscreen.Selections[m.focus]
}

func indexOf(sel touchscreen.Selection) int {
	for i, s := range touchscreen.Selections {
		if s == sel {
			return i
		}
	}
	return 0
}
