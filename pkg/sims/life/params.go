package life

import internalcore "lifegrid/internal/core"

// Parameters describes the configuration the sim was built with.
func (l *Life) Parameters() internalcore.ParameterSnapshot {
	g := l.cfg.Grid
	return internalcore.ParameterSnapshot{Groups: []internalcore.ParameterGroup{
		{
			Name: "Grid",
			Params: []internalcore.Parameter{
				internalcore.IntParam("n", "Size", l.cur.Size()),
				internalcore.StringParam("mode", "Seed mode", g.Mode.String()),
				internalcore.FloatParam("density", "Density", g.Density),
				internalcore.StringParam("orientation", "Orientation", g.Orientation.String()),
				internalcore.BoolParam("eater", "Eater", g.WithEater),
				internalcore.Int64Param("seed", "Seed", l.seed),
			},
		},
		{
			Name: "Rule",
			Params: []internalcore.Parameter{
				internalcore.StringParam("rule", "Rule", l.rule.String()),
			},
		},
	}}
}
