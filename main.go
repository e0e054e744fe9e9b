package main

import (
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilenav/sim"
)

func main() {
	debug := flag.Bool("debug", false, "draw explored cells, corridors, portals and waypoints")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level file (defaults to navigation.yaml)")
	cost := flag.String("cost", "", "octile or uniform")
	scenario := flag.String("scenario", "", "tengo scenario script")
	watch := flag.Bool("watch", true, "reload levels, specs and scripts on change")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal("bad log level", "err", err)
	}
	log.SetLevel(lvl)
	logger := log.WithPrefix("demo")

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("tilenav")
	ebiten.SetTPS(ebiten.DefaultTPS)

	s, err := sim.New(sim.Config{
		Level:     *levelName,
		CostModel: *cost,
		Scenario:  *scenario,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("start simulation", "err", err)
	}

	game, err := NewGame(s, *debug, *watch, logger)
	if err != nil {
		logger.Fatal("start game", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}
