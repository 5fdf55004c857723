package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-sim/audio"
	"github.com/lixenwraith/solar-sim/engine"
	"github.com/lixenwraith/solar-sim/render/cellscreen"
)

type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionLabels
	actionOrbits
)

// keyAction maps a key press to a loop action
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit
		case ' ', 'p', 'P':
			return actionPause
		case 'l', 'L':
			return actionLabels
		case 'o', 'O':
			return actionOrbits
		}
	}
	return actionNone
}

// controller applies actions to the running simulation
type controller struct {
	sim *engine.Simulation
	hum *audio.Hum // nil when sound is off
}

// apply returns false when the loop should exit
func (c *controller) apply(a action) bool {
	switch a {
	case actionQuit:
		log.Printf("quit requested at frame %d", c.sim.Scene.Frame())
		return false
	case actionPause:
		paused := c.sim.TogglePause()
		if c.hum != nil {
			c.hum.SetPaused(paused)
		}
		log.Printf("paused=%v", paused)
	case actionLabels:
		log.Printf("labels=%v", c.sim.ToggleLabels())
	case actionOrbits:
		log.Printf("orbits=%v", c.sim.ToggleOrbits())
	}
	return true
}

// parseColorMode resolves the -color flag
func parseColorMode(s string) (cellscreen.ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return cellscreen.ColorModeAuto, nil
	case "truecolor", "true", "24bit":
		return cellscreen.ColorModeTrueColor, nil
	case "256":
		return cellscreen.ColorMode256, nil
	}
	return cellscreen.ColorModeAuto, fmt.Errorf("unknown color mode %q (want auto, truecolor or 256)", s)
}
