package briansbrain

import internalcore "lifegrid/internal/core"

// Parameters describes the configuration the sim was built with.
func (b *Brain) Parameters() internalcore.ParameterSnapshot {
	g := b.cfg.Grid
	return internalcore.ParameterSnapshot{Groups: []internalcore.ParameterGroup{{
		Name: "Grid",
		Params: []internalcore.Parameter{
			internalcore.IntParam("n", "Size", b.cur.Size()),
			internalcore.StringParam("mode", "Seed mode", g.Mode.String()),
			internalcore.FloatParam("density", "Density", g.Density),
			internalcore.Int64Param("seed", "Seed", b.seed),
		},
	}}}
}
