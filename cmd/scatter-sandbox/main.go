package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/scatter"
)

const (
	replayTickMs = 400
	blipFreqHz   = 880
	blipMs       = 40
)

// Viewer replays a finished scatter run placement by placement.
type Viewer struct {
	screen tcell.Screen
	cfg    scatter.Config
	res    scatter.Result

	shown  int    // placements currently visible, initial point included
	paused bool
	note   string // transient status-bar message, e.g. a failed reseed

	audioInit bool
}

func NewViewer() (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen: screen,
		cfg:    scatter.DefaultConfig(),
	}

	// Audio is a nicety; the viewer runs fine without it
	if err := v.initAudio(); err == nil {
		v.audioInit = true
	}

	if err := v.rerun(v.cfg.Seed); err != nil {
		screen.Fini()
		return nil, err
	}
	return v, nil
}

func (v *Viewer) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
}

// playBlip sounds a short sine ping for each placement that appears.
func (v *Viewer) playBlip() {
	if !v.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, blipFreqHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipMs*time.Millisecond), sine))
}

// rerun executes a fresh silent run with the given seed and rewinds the
// replay to the initial point.
func (v *Viewer) rerun(seed uint32) error {
	cfg := v.cfg
	cfg.Seed = seed
	res, err := scatter.New(cfg, io.Discard).Run()
	if err != nil {
		return err
	}
	v.cfg = cfg
	v.res = res
	v.shown = 1
	v.note = ""
	return nil
}

func (v *Viewer) advance() {
	if v.shown < len(v.res.Points) {
		v.shown++
		v.playBlip()
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()

	sw, sh := v.screen.Size()
	offX := (sw - v.cfg.Width) / 2
	offY := (sh - v.cfg.Height) / 2
	if offX < 1 {
		offX = 1
	}
	if offY < 2 {
		offY = 2
	}

	// Domain border
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := -1; x <= v.cfg.Width; x++ {
		v.setCell(offX+x, offY-1, '─', borderStyle)
		v.setCell(offX+x, offY+v.cfg.Height, '─', borderStyle)
	}
	for y := -1; y <= v.cfg.Height; y++ {
		v.setCell(offX-1, offY+y, '│', borderStyle)
		v.setCell(offX+v.cfg.Width, offY+y, '│', borderStyle)
	}
	v.setCell(offX-1, offY-1, '┌', borderStyle)
	v.setCell(offX+v.cfg.Width, offY-1, '┐', borderStyle)
	v.setCell(offX-1, offY+v.cfg.Height, '└', borderStyle)
	v.setCell(offX+v.cfg.Width, offY+v.cfg.Height, '┘', borderStyle)

	// Exclusion zones
	zoneStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for _, z := range v.cfg.Zones {
		v.drawZone(offX, offY, z, zoneStyle)
	}

	// Placed points; the most recent one is highlighted
	pointStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	latestStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i := 0; i < v.shown && i < len(v.res.Points); i++ {
		p := v.res.Points[i]
		style := pointStyle
		if i == v.shown-1 {
			style = latestStyle
		}
		v.setCell(offX+p.X, offY+p.Y, '●', style)
	}

	v.drawStatus(sw)
	v.screen.Show()
}

// drawZone shades every integer cell strictly inside the zone circle.
func (v *Viewer) drawZone(offX, offY int, z scatter.Zone, style tcell.Style) {
	minX := int(z.X - z.Radius)
	maxX := int(z.X + z.Radius)
	minY := int(z.Y - z.Radius)
	maxY := int(z.Y + z.Radius)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= v.cfg.Width || y < 0 || y >= v.cfg.Height {
				continue
			}
			dx := float64(x) - z.X
			dy := float64(y) - z.Y
			if dx*dx+dy*dy < z.Radius*z.Radius {
				v.setCell(offX+x, offY+y, '░', style)
			}
		}
	}
}

// statusLine builds the status-bar text, including any transient note.
func (v *Viewer) statusLine() string {
	state := "playing"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" seed=%d  placed %d/%d  %s  [space] pause  [n] step  [r] reseed  [q] quit ",
		v.cfg.Seed, v.shown, len(v.res.Points), state)
	if v.note != "" {
		status += fmt.Sprintf(" !! %s ", v.note)
	}
	return status
}

func (v *Viewer) drawStatus(sw int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, r := range v.statusLine() {
		if i >= sw {
			break
		}
		v.screen.SetContent(i, 0, r, nil, style)
	}
}

func (v *Viewer) setCell(x, y int, r rune, style tcell.Style) {
	sw, sh := v.screen.Size()
	if x < 0 || x >= sw || y < 0 || y >= sh {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

// handleInput returns false when the viewer should exit.
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n', 'N':
				if v.paused {
					v.advance()
				}
			case 'r', 'R':
				// Time-derived seed: the sandbox trades determinism for
				// variety, unlike cmd/scatter
				if err := v.rerun(uint32(time.Now().UnixNano())); err != nil {
					v.note = "reseed failed"
				} else {
					v.paused = false
				}
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) run() {
	ticker := time.NewTicker(replayTickMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
			v.draw()

		case <-ticker.C:
			if !v.paused {
				v.advance()
			}
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}

func main() {
	viewer, err := NewViewer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
