package touchscreen

import (
	"errors"

	"github.com/dkoosis/brew/pkg/machine"
)

// ErrNoMachine is returned when an adapter is built without a machine.
var ErrNoMachine = errors.New("touchscreen: legacy machine is required")

// CoffeeMachine is the capability the touchscreen panel drives.
type CoffeeMachine interface {
	ChooseFirstSelection()
	ChooseSecondSelection()
}

// Adapter implements CoffeeMachine on top of an OldCoffeeMachine.
type Adapter struct {
	machine *machine.OldCoffeeMachine
}

var _ CoffeeMachine = (*Adapter)(nil)

// NewAdapter wraps m. It fails with ErrNoMachine if m is nil and prints
// nothing in that case.
func NewAdapter(m *machine.OldCoffeeMachine) (*Adapter, error) {
	if m == nil {
		return nil, ErrNoMachine
	}
	return &Adapter{machine: m}, nil
}

// ChooseFirstSelection presses the legacy A button.
func (a *Adapter) ChooseFirstSelection() {
	a.machine.SelectA()
}

// ChooseSecondSelection presses the legacy B button.
func (a *Adapter) ChooseSecondSelection() {
	a.machine.SelectB()
}
