package main

import (
	"io"
	"testing"

	"arena/internal/sim"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseOptionsDefaults(t *testing.T) {
	o, err := parseOptions(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if o.variant != sim.VariantTilt {
		t.Errorf("Expected tilt variant by default, got %v", o.variant)
	}
	if o.frontend != frontendGL {
		t.Errorf("Expected gl frontend by default, got %q", o.frontend)
	}
	if o.colors != sim.ColorSolid || o.smoothing != sim.SmoothLerp {
		t.Errorf("Expected solid/lerp defaults, got %v/%v", o.colors, o.smoothing)
	}
	if o.mute || o.showFPS {
		t.Error("Expected sound on and fps off by default")
	}
}

func TestParseOptionsFlags(t *testing.T) {
	args := []string{"-variant", "1", "-frontend", "term", "-color", "speed",
		"-smoothing", "spring", "-seed", "42", "-mute", "-fps"}
	o, err := parseOptions(args, env(map[string]string{"ARENA_SEED": "7"}), io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	want := options{
		variant:   sim.VariantGravity,
		frontend:  frontendTerm,
		colors:    sim.ColorSpeed,
		smoothing: sim.SmoothSpring,
		seed:      42,
		mute:      true,
		showFPS:   true,
	}
	if o != want {
		t.Errorf("Expected %+v, got %+v", want, o)
	}
}

func TestParseOptionsSeedFromEnv(t *testing.T) {
	o, err := parseOptions(nil, env(map[string]string{"ARENA_SEED": "1234"}), io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if o.seed != 1234 {
		t.Errorf("Expected seed 1234 from ARENA_SEED, got %d", o.seed)
	}

	// Explicit zero still wins over the environment.
	o, err = parseOptions([]string{"-seed", "0"}, env(map[string]string{"ARENA_SEED": "1234"}), io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if o.seed != 0 {
		t.Errorf("Expected explicit seed 0, got %d", o.seed)
	}
}

func TestParseOptionsRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-variant", "3"},
		{"-frontend", "web"},
		{"-color", "rainbow"},
		{"-smoothing", "cubic"},
		{"-seed", "-1"},
		{"-bogus"},
	} {
		if _, err := parseOptions(args, env(nil), io.Discard); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}
