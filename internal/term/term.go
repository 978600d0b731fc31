// Package term runs the arena in a terminal through tcell, shading each cell
// by how many particles fall inside it.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"arena/internal/sim"
)

type Options struct {
	Colors  sim.ColorMode
	ShowFPS bool
}

// cellWriter is the subset of tcell.Screen the frame drawer needs.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// frame accumulates particle counts per cell and paints them.
type frame struct {
	view   viewport
	counts []int
	speeds []float64
	status string
}

func (f *frame) resize(width, height int, p sim.Params) {
	f.view = newViewport(width, height, p.CenterX, p.CenterY, p.Radius)
	if n := f.view.size(); cap(f.counts) < n {
		f.counts = make([]int, n)
		f.speeds = make([]float64, n)
	} else {
		f.counts = f.counts[:n]
		f.speeds = f.speeds[:n]
	}
}

func rgbStyle(c sim.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
}

// cellColor shades a cell: solid mode brightens toward white as particles
// pile up, speed mode uses the mean speed of the cell.
func cellColor(n int, speedSum float64, mode sim.ColorMode, maxSpeed float64) sim.RGB {
	if mode == sim.ColorSpeed {
		return sim.SpeedColor(speedSum/float64(n), maxSpeed)
	}
	return sim.Palette.Particle.Blend(sim.Palette.Highlight, float64(n-1)/12)
}

// draw paints boundary, particles and status line. The caller clears and
// shows the screen.
func (f *frame) draw(w cellWriter, s *sim.Simulation, mode sim.ColorMode) {
	v := f.view
	for i := range f.counts {
		f.counts[i] = 0
		f.speeds[i] = 0
	}

	p := s.Params
	ring := rgbStyle(sim.Palette.Boundary)
	for i := 0; i < sim.RingPoints; i++ {
		x, y := sim.RingPoint(p.CenterX, p.CenterY, p.Radius, i)
		if c, r, ok := v.cell(x, y); ok {
			w.SetContent(c, r, '·', nil, ring)
		}
	}

	for i := range s.Store.P {
		q := &s.Store.P[i]
		if !q.Active {
			continue
		}
		if c, r, ok := v.cell(q.X, q.Y); ok {
			f.counts[r*v.cols+c]++
			f.speeds[r*v.cols+c] += q.Speed()
		}
	}
	maxSpeed := p.SpeedScale()
	for idx, n := range f.counts {
		if n == 0 {
			continue
		}
		col := cellColor(n, f.speeds[idx], mode, maxSpeed)
		w.SetContent(idx%v.cols, idx/v.cols, densityGlyph(n), nil, rgbStyle(col))
	}

	f.drawStatus(w, s)
}

func (f *frame) drawStatus(w cellWriter, s *sim.Simulation) {
	line := fmt.Sprintf(" %s  [q] quit", s.Params.Variant)
	if s.ShowIndicator() {
		a := s.Accel
		nx, ny := a.Normalized()
		line = fmt.Sprintf(" %s %c  tilt %+.2f %+.2f  target %+.2f %+.2f  [arrows] tilt [space] level [r] shake [q] quit",
			s.Params.Variant, needleGlyph(nx, ny), a.X, a.Y, a.TargetX, a.TargetY)
	}
	if f.status != "" {
		line += "  " + f.status
	}

	style := rgbStyle(sim.Palette.Highlight)
	row := f.view.rows
	col := 0
	for _, ch := range line {
		if col >= f.view.cols {
			break
		}
		w.SetContent(col, row, ch, nil, style)
		col++
	}
}

// keyControls translates one key event into controls held for the next
// tick. quit is true for Escape, Ctrl-C and q.
func keyControls(ev *tcell.EventKey) (c sim.Controls, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return c, true
	case tcell.KeyLeft:
		c.Left = true
	case tcell.KeyRight:
		c.Right = true
	case tcell.KeyUp:
		c.Up = true
	case tcell.KeyDown:
		c.Down = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return c, true
		case ' ':
			c.Level = true
		case 'r', 'R':
			c.Shake = true
		}
	}
	return c, false
}

// advance runs the ticks owed for dt seconds of wall time. Pending presses
// apply to the first tick only and carry over when no tick is due.
func advance(s *sim.Simulation, c *sim.Clock, dt float64, pending sim.Controls) sim.Controls {
	for n := c.Advance(dt); n > 0; n-- {
		if pending.Any() {
			s.Apply(pending)
			pending = sim.Controls{}
		}
		s.Tick()
	}
	return pending
}

// Run takes over the terminal and drives s until the user quits. The ticker
// paces redraws; physics follows wall time through a sim.Clock.
func Run(s *sim.Simulation, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var (
		f       frame
		clock   sim.Clock
		meter   sim.FrameMeter
		pending sim.Controls
		start   = time.Now()
		last    = start
	)
	w, h := screen.Size()
	f.resize(w, h, s.Params)

	ticker := time.NewTicker(time.Second / sim.TickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				c, quit := keyControls(ev)
				if quit {
					return nil
				}
				pending = pending.Merge(c)
			case *tcell.EventResize:
				screen.Sync()
				w, h := screen.Size()
				f.resize(w, h, s.Params)
			}

		case now := <-ticker.C:
			pending = advance(s, &clock, now.Sub(last).Seconds(), pending)
			last = now

			if opts.ShowFPS {
				if fps, ok := meter.Frame(now.Sub(start).Seconds()); ok {
					f.status = fmt.Sprintf("%.0f fps", fps)
				}
			}

			screen.Clear()
			f.draw(screen, s, opts.Colors)
			screen.Show()
		}
	}
}
