package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/brew/pkg/machine"
	"github.com/dkoosis/brew/pkg/render"
	"github.com/dkoosis/brew/pkg/touchscreen"
)

func newTestModel(t *testing.T) (Model, *OutputLog) {
	t.Helper()
	log := &OutputLog{}
	a, err := touchscreen.NewAdapter(machine.NewWithWriter(log))
	require.NoError(t, err)
	return New(a, log, render.MonoTheme()), log
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestPanel_EnterPressesFocusedButton(t *testing.T) {
	m, log := newTestModel(t)

	m = send(m, "enter", "right", "enter")

	assert.Equal(t, []string{machine.MessageA, machine.MessageB}, log.Lines())
	assert.Equal(t, 2, m.Presses())
	assert.Equal(t, touchscreen.Second, m.Focus())
}

func TestPanel_DirectKeys(t *testing.T) {
	m, log := newTestModel(t)

	m = send(m, "2", "1", "1")

	assert.Equal(t, []string{machine.MessageB, machine.MessageA, machine.MessageA}, log.Lines())
	assert.Equal(t, touchscreen.First, m.Focus())
}

func TestPanel_FocusStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, "left", "left")
	assert.Equal(t, touchscreen.First, m.Focus())

	m = send(m, "right", "right", "right")
	assert.Equal(t, touchscreen.Second, m.Focus())
}

func TestPanel_ViewShowsOutput(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = send(next.(Model), "1")

	view := m.View()
	assert.Contains(t, view, "Touchscreen")
	assert.Contains(t, view, machine.MessageA)
}

func TestPanel_Quit(t *testing.T) {
	m, log := newTestModel(t)

	next, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
	assert.Empty(t, log.Lines())
}

func TestOutputLog_PartialWrites(t *testing.T) {
	var l OutputLog
	_, _ = l.Write([]byte("A - Sel"))
	assert.Empty(t, l.Lines())

	_, _ = l.Write([]byte("ected\nB - Selected\n"))
	assert.Equal(t, []string{"A - Selected", "B - Selected"}, l.Lines())
}

func TestPanel_NewestOutputVisibleAfterPress(t *testing.T) {
	for _, last := range []string{"a", "b", " "} {
		t.Run("last key "+last, func(t *testing.T) {
			m, log := newTestModel(t)
			next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
			m = next.(Model)

			for i := 0; i < 8; i++ {
				m = send(m, "1")
			}
			m = send(m, last)

			lines := log.Lines()
			require.Len(t, lines, 9)
			assert.True(t, m.viewport.AtBottom(), "output log scrolled away from the newest line")
			assert.Contains(t, m.View(), lines[len(lines)-1])
		})
	}
}

func TestPanel_ScrollKeysReachViewport(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m = next.(Model)
	for i := 0; i < 8; i++ {
		m = send(m, "2")
	}
	require.True(t, m.viewport.AtBottom())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.False(t, m.viewport.AtBottom())
	assert.Equal(t, 8, m.Presses())
}
