package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adammck/spider/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	configPath = flag.String("config", "", "path to a YAML config file (default: built in)")
	appName    = flag.String("app", "spider", "name of the directory to keep tuning in")
	tilt       = flag.Float64("tilt", 55, "camera tilt, in degrees down from horizontal")
	scale      = flag.Float64("scale", 90, "pixels per unit")
	debugLog   = flag.Bool("debug", false, "log every tick")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	flag.Parse()

	if *debugLog {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("error loading config: %s\n", err)
			os.Exit(1)
		}
	}

	// Tuning is optional; without a data dir, changes just aren't kept.
	store, err := config.OpenStore(*appName, cfg.Tuning())
	if err != nil {
		log.Warnf("%s (tuning won't be saved)", err)
		store = config.NewStore(nil, cfg.Tuning())
	}

	g, err := newGame(cfg, store)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("spider")

	if err := ebiten.RunGame(g); err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
}
