// Command arena runs the circular particle arena in a desktop window or a
// terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"arena/internal/audio"
	"arena/internal/desktop"
	"arena/internal/sim"
	"arena/internal/term"
)

type frontend string

const (
	frontendGL   frontend = "gl"
	frontendTerm frontend = "term"
)

type options struct {
	variant   sim.Variant
	frontend  frontend
	colors    sim.ColorMode
	smoothing sim.Smoothing
	seed      uint64
	mute      bool
	showFPS   bool
}

// parseOptions reads flags from args. ARENA_SEED seeds the run when -seed is
// absent; an unparsable value falls back to the clock.
func parseOptions(args []string, getenv func(string) string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("arena", flag.ContinueOnError)
	fs.SetOutput(stderr)
	variantStr := fs.String("variant", "2", "Variant: 1 (gravity) or 2 (tilt)")
	frontendStr := fs.String("frontend", "gl", "Frontend: gl or term")
	colorStr := fs.String("color", "solid", "Particle colour: solid or speed")
	smoothStr := fs.String("smoothing", "lerp", "Tilt smoothing: lerp or spring")
	seed := fs.Uint64("seed", 0, "RNG seed (default: ARENA_SEED or clock)")
	mute := fs.Bool("mute", false, "Disable sound")
	showFPS := fs.Bool("fps", false, "Report frames per second every 5s")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var (
		o   options
		err error
	)
	if o.variant, err = sim.ParseVariant(*variantStr); err != nil {
		return options{}, err
	}
	if o.colors, err = sim.ParseColorMode(*colorStr); err != nil {
		return options{}, err
	}
	if o.smoothing, err = sim.ParseSmoothing(*smoothStr); err != nil {
		return options{}, err
	}
	switch f := frontend(*frontendStr); f {
	case frontendGL, frontendTerm:
		o.frontend = f
	default:
		return options{}, fmt.Errorf("unknown frontend %q (want gl or term)", *frontendStr)
	}
	o.mute = *mute
	o.showFPS = *showFPS

	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	switch {
	case seedSet:
		o.seed = *seed
	default:
		o.seed = uint64(time.Now().UnixNano())
		if s := getenv("ARENA_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				o.seed = v
			}
		}
	}
	return o, nil
}

func run(o options) error {
	bus := sim.NewEventBus()
	s, err := sim.New(sim.DefaultParams(o.variant), o.seed, o.smoothing, bus)
	if err != nil {
		return err
	}

	if !o.mute {
		if p, err := audio.New(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			p.Attach(bus)
		}
	}

	switch o.frontend {
	case frontendTerm:
		return term.Run(s, term.Options{Colors: o.colors, ShowFPS: o.showFPS})
	default:
		return desktop.Run(s, desktop.Options{Colors: o.colors, ShowFPS: o.showFPS})
	}
}

func main() {
	o, err := parseOptions(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}
