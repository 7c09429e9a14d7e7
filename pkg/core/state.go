package core

import "fmt"

// State is the value stored in a single grid cell. Its meaning depends on the
// Family of the grid holding it.
type State uint8

// Binary family states.
const (
	Off State = 0
	On  State = 1
)

// Three-state family states.
const (
	Dead       State = 0
	Firing     State = 1
	Refractory State = 2
)

// Family identifies which automaton a grid belongs to.
type Family uint8

const (
	// Binary is the birth/survival family with On/Off cells.
	Binary Family = iota
	// ThreeState is the firing/refractory/dead family.
	ThreeState
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Binary:
		return "binary"
	case ThreeState:
		return "three-state"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// Known reports whether f is a supported family.
func (f Family) Known() bool { return f == Binary || f == ThreeState }

// Valid reports whether s belongs to the family's enumeration.
func (f Family) Valid(s State) bool {
	switch f {
	case Binary:
		return s == Off || s == On
	case ThreeState:
		return s == Dead || s == Firing || s == Refractory
	default:
		return false
	}
}

// Live returns the state a random fill or a pattern's On cell maps to.
func (f Family) Live() State {
	if f == ThreeState {
		return Firing
	}
	return On
}

// Rune returns the text glyph used when printing a grid of this family.
func (f Family) Rune(s State) rune {
	switch {
	case s == 0:
		return '.'
	case f == ThreeState && s == Refractory:
		return 'o'
	default:
		return '#'
	}
}
