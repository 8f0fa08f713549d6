// Package machine models the legacy coffee machine: a two-button device
// whose operations print a fixed confirmation line.
package machine

import (
	"fmt"
	"io"
	"os"
)

// Confirmation lines printed by the legacy machine.
const (
	MessageA = "A - Selected"
	MessageB = "B - Selected"
)

// OldCoffeeMachine is the pre-existing machine with its own button names.
// It keeps no state besides the stream it prints to.
type OldCoffeeMachine struct {
	out io.Writer
}

// New returns a machine that prints to standard output.
func New() *OldCoffeeMachine {
	return &OldCoffeeMachine{out: os.Stdout}
}

// NewWithWriter returns a machine that prints to w.
// A nil w means standard output.
func NewWithWriter(w io.Writer) *OldCoffeeMachine {
	if w == nil {
		w = os.Stdout
	}
	return &OldCoffeeMachine{out: w}
}

// SelectA prints MessageA.
func (m *OldCoffeeMachine) SelectA() {
	_, _ = fmt.Fprintln(m.out, MessageA)
}

// SelectB prints MessageB.
func (m *OldCoffeeMachine) SelectB() {
	_, _ = fmt.Fprintln(m.out, MessageB)
}
