package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-sim/audio"
	"github.com/lixenwraith/solar-sim/constants"
	"github.com/lixenwraith/solar-sim/core"
	"github.com/lixenwraith/solar-sim/engine"
	"github.com/lixenwraith/solar-sim/render/cellscreen"
	"github.com/lixenwraith/solar-sim/scene"
	"github.com/lixenwraith/solar-sim/vmath"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	seedFlag      = flag.Uint64("seed", 0, "Scene seed (0 = wall clock)")
	soundFlag     = flag.Bool("sound", false, "Play the sun hum")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := parseColorMode(*colorModeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -color: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = vmath.WallClockSeed()
	}
	log.Printf("starting, seed=%d color=%s sound=%v", seed, *colorModeFlag, *soundFlag)

	screen, err := cellscreen.Open(colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetResetFunc(screen.Fini)
	defer screen.Fini()

	sc := scene.New(scene.DefaultConfig(), vmath.NewSeededRand(seed))
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	sim := engine.NewSimulation(sc, clock, cellscreen.New(screen, constants.ViewWidth, constants.ViewHeight))
	ctl := &controller{sim: sim}

	if *soundFlag {
		// Non-fatal, the scene runs silent without audio
		if hum, err := audio.NewHum(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else if err := hum.Start(); err != nil {
			log.Printf("audio start failed: %v", err)
		} else {
			ctl.hum = hum
			defer hum.Stop()
		}
	}

	run(screen, ctl)
	log.Printf("exiting after %d frames", sc.Frame())
}

// run owns the frame loop: input is drained between frames, each tick is update then draw
func run(screen tcell.Screen, ctl *controller) {
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !ctl.apply(keyAction(ev.Key(), ev.Rune())) {
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				log.Printf("resize %dx%d", w, h)
				screen.Sync()
			}

		case <-frameTicker.C:
			ctl.sim.Frame()
		}
	}
}
