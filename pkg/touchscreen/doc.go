// Package touchscreen defines the CoffeeMachine capability the new
// touchscreen front panel speaks, and an Adapter that lets the legacy
// machine.OldCoffeeMachine serve it.
//
// The adapter owns a single legacy machine, fixed at construction, and
// forwards every call synchronously:
//
//	ChooseFirstSelection  -> OldCoffeeMachine.SelectA
//	ChooseSecondSelection -> OldCoffeeMachine.SelectB
//
// Adapters carry no mutable state, so one adapter may be shared by
// concurrent callers without locking. Output interleaving across
// goroutines is then up to the machine's writer.
package touchscreen
