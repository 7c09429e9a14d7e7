package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if c.Sim != "life" || c.Size != 100 || c.Mode != "random" || c.Interval != 50*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestConfigEnvThenFlags(t *testing.T) {
	t.Setenv("LIFEGRID_SIM", "briansbrain")
	t.Setenv("LIFEGRID_N", "64")
	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	c.BindRun(fs)
	if err := fs.Parse([]string{"-n", "80", "-mode", "glider", "-generations", "3"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Sim != "briansbrain" {
		t.Fatalf("env should set sim, got %q", c.Sim)
	}
	if c.Size != 80 || c.Mode != "glider" || c.Generations != 3 {
		t.Fatalf("flags should override env, got %+v", c)
	}
}

func TestSimConfig(t *testing.T) {
	c := &Config{Size: 40, Mode: "gun", Orientation: "right", Eater: true}
	m := c.SimConfig(7)
	want := map[string]string{"n": "40", "mode": "gun", "orientation": "right", "eater": "true", "seed": "7"}
	if len(m) != len(want) {
		t.Fatalf("unexpected keys %v", m)
	}
	for k, v := range want {
		if m[k] != v {
			t.Fatalf("%s=%q, want %q", k, m[k], v)
		}
	}
	c.Density = 0.35
	c.Rule = "B36/S23"
	m = c.SimConfig(7)
	if m["density"] != "0.35" || m["rule"] != "B36/S23" {
		t.Fatalf("density/rule not forwarded: %v", m)
	}
}
