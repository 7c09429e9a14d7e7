package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Generation() int
	Reset(seed int64) error
	Step()
	Cells() []State
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, InvalidParameterf("unknown sim %q", name)
	}
	return f, nil
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named simulation from cfg.
func New(name string, cfg map[string]string) (Sim, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	sim, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return sim, nil
}
