package touchscreen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSelection is returned for input that names no selection.
var ErrUnknownSelection = errors.New("unknown selection")

// Selection identifies one touchscreen button.
type Selection int

const (
	First Selection = iota + 1
	Second
)

// Selections lists the buttons in panel order.
var Selections = []Selection{First, Second}

func (s Selection) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("selection(%d)", int(s))
	}
}

// Key is the shortcut shown on the panel and accepted by ParseSelection.
func (s Selection) Key() string {
	switch s {
	case First:
		return "1"
	case Second:
		return "2"
	default:
		return "?"
	}
}

// LegacyButton names the OldCoffeeMachine operation the selection reaches.
func (s Selection) LegacyButton() string {
	switch s {
	case First:
		return "SelectA"
	case Second:
		return "SelectB"
	default:
		return ""
	}
}

// ParseSelection accepts "first", "1", "a" or "second", "2", "b",
// ignoring case and surrounding space.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "1", "a":
		return First, nil
	case "second", "2", "b":
		return Second, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSelection, s)
	}
}

// ParseSelections parses every element of names, stopping at the first error.
func ParseSelections(names []string) ([]Selection, error) {
	sels := make([]Selection, 0, len(names))
	for _, n := range names {
		sel, err := ParseSelection(n)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

// Press dispatches sel onto cm.
func Press(cm CoffeeMachine, sel Selection) error {
	switch sel {
	case First:
		cm.ChooseFirstSelection()
	case Second:
		cm.ChooseSecondSelection()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSelection, sel)
	}
	return nil
}

// PressAll presses sels in order. Nothing is pressed if any selection is
// invalid.
func PressAll(cm CoffeeMachine, sels []Selection) error {
	for _, sel := range sels {
		if sel != First && sel != Second {
			return fmt.Errorf("%w: %s", ErrUnknownSelection, sel)
		}
	}
	for _, sel := range sels {
		if err := Press(cm, sel); err != nil {
			return err
		}
	}
	return nil
}
