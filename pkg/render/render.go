// Package render formats brew's menu for the terminal.
package render

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaserPool holds English title casers; a cases.Caser is not safe
// for concurrent use.
var titleCaserPool = sync.Pool{
	New: func() any {
		c := cases.Title(language.English)
		return &c
	},
}

// title converts s to title case.
func title(s string) string {
	c, _ := titleCaserPool.Get().(*cases.Caser)
	if c == nil {
		return cases.Title(language.English).String(s)
	}
	defer titleCaserPool.Put(c)
	return c.String(s)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
