package prover

import "fmt"

// PossibleWorld is an opaque small integer identifier naming a node of the
// accessibility graph. World 0 is always the designated actual world: the
// engine adds it to every proof's AccessibilityGraph before the first rule
// runs.
type PossibleWorld int

// ZeroWorld is the designated actual world.
const ZeroWorld PossibleWorld = 0

// Fork returns the next unused world above the receiver. Callers allocate a
// fresh world as maxExistingWorld.Fork() after taking the max of the
// graph's current node set.
func (w PossibleWorld) Fork() PossibleWorld {
	return w + 1
}

func (w PossibleWorld) String() string {
	return fmt.Sprintf("w%d", int(w))
}
