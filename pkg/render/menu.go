package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/brew/pkg/touchscreen"
)

// Menu renders the touchscreen's selection list.
type Menu struct {
	theme Theme
	width int
}

// NewMenu creates a menu renderer with the given theme.
func NewMenu(theme Theme, width int) *Menu {
	if width <= 0 {
		width = 80
	}
	return &Menu{theme: theme, width: width}
}

// Render formats sels as one row per selection:
// key, selection name, and the legacy button it reaches.
func (m *Menu) Render(sels []touchscreen.Selection) string {
	names := make([]string, len(sels))
	nameWidth := 0
	for i, s := range sels {
		names[i] = title(s.String() + " selection")
		if w := runewidth.StringWidth(names[i]); w > nameWidth {
			nameWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(m.theme.Bold.Render(m.theme.Icons.Cup + " Touchscreen"))
	sb.WriteString("\n")
	for i, s := range sels {
		key := "[" + s.Key() + "]"
		legacy := m.theme.Icons.Arrow + " " + s.LegacyButton()
		sb.WriteString("  " + m.theme.Primary.Render(key) + " ")
		// Narrow terminals get the selection names only.
		if 2+len(key)+1+nameWidth+1+runewidth.StringWidth(legacy) > m.width {
			sb.WriteString(names[i])
		} else {
			sb.WriteString(padRight(names[i], nameWidth) + " " + m.theme.Muted.Render(legacy))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
