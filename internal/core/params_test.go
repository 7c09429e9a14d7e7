package core

import "testing"

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("n", "Size", 64), FloatParam("density", "Density", 0.25)}},
		{Name: "Rule", Params: []Parameter{StringParam("rule", "Rule", "B3/S23"), BoolParam("eater", "Eater", true)}},
	}}
	cases := map[string]string{"n": "64", "density": "0.25", "rule": "B3/S23", "eater": "true"}
	for key, want := range cases {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s=%q, want %q", key, p.Value, want)
		}
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected parameter")
	}
	if p := Int64Param("seed", "Seed", -3); p.Type != ParamTypeInt || p.Value != "-3" {
		t.Fatalf("unexpected int64 param %+v", p)
	}
}
