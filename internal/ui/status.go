package ui

import (
	"fmt"

	"lifegrid/pkg/core"
)

// Live counts cells in the live state of either family (On or Firing).
func Live(cells []core.State) int {
	n := 0
	for _, c := range cells {
		if c == core.On {
			n++
		}
	}
	return n
}

// Status formats a one-line summary of sim.
func Status(sim core.Sim) string {
	return fmt.Sprintf("%s  gen %d  live %d", sim.Name(), sim.Generation(), Live(sim.Cells()))
}
