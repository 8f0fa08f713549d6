package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/brew/pkg/touchscreen"
)

func TestMenu_RenderMono(t *testing.T) {
	out := NewMenu(MonoTheme(), 80).Render(touchscreen.Selections)

	want := "* Touchscreen\n" +
		"  [1] First Selection  -> SelectA\n" +
		"  [2] Second Selection -> SelectB\n"
	assert.Equal(t, want, out)
}

func TestMenu_NarrowDropsLegacyColumn(t *testing.T) {
	out := NewMenu(MonoTheme(), 20).Render(touchscreen.Selections)

	assert.Contains(t, out, "[1] First Selection\n")
	assert.NotContains(t, out, "SelectA")
}

func TestMenu_NeverPrintsMachineOutput(t *testing.T) {
	out := NewMenu(DefaultTheme(), 80).Render(touchscreen.Selections)
	assert.False(t, strings.Contains(out, "Selected"), "menu must not impersonate the machine:\n%s", out)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("default").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
}

func TestPadRight_UsesDisplayWidth(t *testing.T) {
	assert.Equal(t, "☕  ", padRight("☕", 4))
	assert.Equal(t, "abc", padRight("abc", 2))
}
