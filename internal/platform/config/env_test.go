package config

import "testing"

type sample struct {
	Size    int     `env:"LIFEGRID_TEST_N" envDefault:"100"`
	Density float64 `env:"LIFEGRID_TEST_DENSITY" envDefault:"0.2"`
}

func TestParseEnvDefaults(t *testing.T) {
	var s sample
	if err := ParseEnv(&s); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if s.Size != 100 || s.Density != 0.2 {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("LIFEGRID_TEST_N", "64")
	var s sample
	if err := ParseEnv(&s); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if s.Size != 64 {
		t.Fatalf("expected 64, got %d", s.Size)
	}
}

func TestParseEnvRejectsMalformed(t *testing.T) {
	t.Setenv("LIFEGRID_TEST_N", "many")
	var s sample
	if err := ParseEnv(&s); err == nil {
		t.Fatal("expected parse error")
	}
}
