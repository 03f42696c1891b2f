package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/adammck/spider/config"
	"github.com/adammck/spider/math3d"
	"github.com/sirupsen/logrus"
)

const (

	// How long to keep ticking after a shutdown is requested, so that a step
	// in progress can land.
	shutdownGrace = 3 * time.Second
)

var (
	configPath = flag.String("config", "", "path to a YAML config file (default: built in)")
	route      = flag.String("route", "3,0 3,3 0,3 0,0", "waypoints to walk between, as space separated x,z pairs")
	loop       = flag.Bool("loop", false, "start the route again after the last waypoint")
	fps        = flag.Int("fps", 60, "ticks per second")
	duration   = flag.Duration("duration", 0, "stop after this much simulated time (default: forever)")
	realtime   = flag.Bool("realtime", true, "tick in real time, rather than as fast as possible")
	debug      = flag.Bool("debug", false, "log every tick")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	interval, err := tickInterval(*fps)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("error loading config: %s\n", err)
			os.Exit(1)
		}
	}

	points, err := parseRoute(*route)
	if err != nil {
		fmt.Printf("error parsing route: %s\n", err)
		os.Exit(1)
	}

	w := &walker{points: points, loop: *loop}
	r, err := config.Build(cfg, w)
	if err != nil {
		fmt.Printf("error building spider: %s\n", err)
		os.Exit(1)
	}
	w.state = r.Spider.State

	log.Infof("booting")
	if err := r.Spider.Boot(); err != nil {
		fmt.Printf("error while booting: %s\n", err)
		os.Exit(1)
	}

	dt := 1.0 / float64(*fps)
	var ticks <-chan time.Time
	if *realtime {
		t := time.NewTicker(interval)
		defer t.Stop()
		ticks = t.C
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to allow the spider
	// to put its feet down before exiting.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	st := r.Spider.State
	elapsed, stopping := 0.0, 0.0
	nextReport := 1.0

	log.Infof("starting loop")
	for {
		if ticks != nil {
			select {
			case <-ticks:
			case <-sig:
				log.Infof("caught signal, shutting down")
				st.Shutdown = true
				continue
			}
		} else {
			select {
			case <-sig:
				log.Infof("caught signal, shutting down")
				st.Shutdown = true
			default:
			}
		}

		r.Spider.Tick(dt)
		elapsed += dt

		if elapsed >= nextReport {
			log.Infof("t=%.1f body=%s target=%s", elapsed, st.Body.Pose, st.Target)
			nextReport += 1
		}

		if *duration > 0 && elapsed >= duration.Seconds() {
			st.Shutdown = true
		}

		if st.Shutdown {
			stopping += dt

			// Wait for the feet to land, but not forever.
			_, stepping := r.Gait.Stepping()
			if !stepping || stopping >= shutdownGrace.Seconds() {
				break
			}
		}
	}

	for _, f := range st.Feet {
		log.Infof("%s at %s (drift=%.3f)", f.Name, f.Position, f.Drift())
	}
}

// parseRoute parses "x,z x,z ..." into points on the ground.
func parseRoute(s string) ([]math3d.Vector3, error) {
	var ps []math3d.Vector3

	for _, f := range strings.Fields(s) {
		xz := strings.Split(f, ",")
		if len(xz) != 2 {
			return nil, fmt.Errorf("expected x,z, got %q", f)
		}

		x, err := strconv.ParseFloat(xz[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x in %q: %w", f, err)
		}

		z, err := strconv.ParseFloat(xz[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad z in %q: %w", f, err)
		}

		ps = append(ps, math3d.Vector3{X: x, Z: z})
	}

	return ps, nil
}

// tickInterval returns the time between ticks at the given rate.
func tickInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("-fps must be positive, got %d", fps)
	}
	return time.Second / time.Duration(fps), nil
}
