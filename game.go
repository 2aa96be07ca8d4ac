package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"colorpicker/eui"
	"colorpicker/hsb"
	"colorpicker/picker"
)

// Game hosts one picker in the window and watches its change events.
type Game struct {
	widget   *eui.Picker
	handler  *picker.EventHandler
	settings *Settings

	title, shownTitle string
	dirty             bool
}

func newGame(s *Settings) *Game {
	initial := picker.DefaultHSB
	if c, err := hsb.HexToHSB(s.Color); err == nil {
		initial = c
	} else if s.Color != "" {
		logError("ignoring saved color %q: %v", s.Color, err)
	}
	h := picker.NewHandler()
	st := picker.New(picker.WithHandler(h), picker.WithInitial(initial))
	w := eui.NewPicker(st)
	w.SetScale(s.Scale)
	return &Game{
		widget:   w,
		handler:  h,
		settings: s,
		title:    windowTitle(st.Color()),
	}
}

func windowTitle(c picker.Snapshot) string {
	return fmt.Sprintf("Color Picker - #%s  hsb(%d, %d%%, %d%%)", c.Hex, c.HSB.H, c.HSB.S, c.HSB.B)
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if err := g.widget.Update(); err != nil {
		return err
	}
	g.drainEvents()
	if g.title != g.shownTitle {
		ebiten.SetWindowTitle(g.title)
		g.shownTitle = g.title
	}
	return nil
}

func (g *Game) drainEvents() {
	for {
		select {
		case ev := <-g.handler.Events:
			g.observe(ev)
		default:
			return
		}
	}
}

// observe reacts to one picker event. Events carry no color, so the current
// color is read back from the state.
func (g *Game) observe(ev picker.Event) {
	switch ev.Type {
	case picker.EventColorChanged:
		c := g.widget.State().Color()
		g.title = windowTitle(c)
		if g.settings.Color != c.Hex {
			g.settings.Color = c.Hex
			g.dirty = true
		}
	case picker.EventDragStart, picker.EventDragEnd:
		logDebug("%v at #%s", ev.Type, g.widget.State().Color().Hex)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(eui.CurrentTheme().Background)
	g.widget.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.widget.Size()
}
