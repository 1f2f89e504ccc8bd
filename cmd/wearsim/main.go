// Command wearsim runs a watch face in a terminal. The 240x240
// framebuffer is shown with half-block cells (two vertical pixels per
// cell), mouse clicks become touch events and a few keys drive the
// simulated sensors:
//
//	+/-    battery level up/down
//	c      toggle charging
//	b      toggle the radio link
//	n      toggle pending notifications
//	p      hardware button press
//	arrows swipes
//	q/Esc  quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/wear/pkg/errors"
	"github.com/go-drift/wear/pkg/faces"
	"github.com/go-drift/wear/pkg/host"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
	"github.com/go-drift/wear/pkg/widgets"
)

func main() {
	var (
		faceName    = flag.String("face", "clock", "screen to run: clock, stopwatch or demo")
		palettePath = flag.String("palette", "", "palette YAML file (default: built-in palette)")
		fontPath    = flag.String("font", "", "TTF file for the watch fonts (default: built-in bitmap font)")
		logPath     = flag.String("log", "wearsim.log", "log file (the terminal itself shows the watch)")
	)
	flag.Parse()

	if err := run(*faceName, *palettePath, *fontPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "wearsim: %v\n", err)
		os.Exit(1)
	}
}

func run(faceName, palettePath, fontPath, logPath string) error {
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log := slog.New(slog.NewTextHandler(logFile, nil))
	slog.SetDefault(log)

	th := theme.Theme(theme.Default())
	if palettePath != "" {
		p, err := theme.LoadPalette(palettePath)
		if err != nil {
			errors.Report(&errors.HostError{Op: "wearsim.run", Kind: errors.KindTheme, Err: err})
			return err
		}
		th = p
		log.Info("palette loaded", "path", palettePath, "name", p.Name)
	}

	// dirty flags that the framebuffer changed since the last present.
	var dirty atomic.Bool
	fb := surface.NewImageSurface(widgets.ScreenWidth, widgets.ScreenHeight, func() {
		dirty.Store(true)
	})
	if fontPath != "" {
		if err := loadFaces(fb, fontPath); err != nil {
			return err
		}
	}

	rtc := sensors.NewSystemClock()
	power := &simBattery{}
	power.level.Store(80)
	conn := &simConnectivity{}
	conn.link.Store(true)

	screen, err := buildScreen(faceName, fb, th, rtc, power, conn, log)
	if err != nil {
		return err
	}

	tty, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := tty.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer tty.Fini()
	tty.EnableMouse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan input.Event, 8)
	go pollInput(tty, events, power, conn, cancel, log)

	loop := host.NewLoop(screen, events, log)
	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx)
	}()

	present(ctx, tty, fb, &dirty)
	cancel()
	err = <-done
	if err == context.Canceled {
		err = nil
	}
	log.Info("simulator exiting")
	return err
}

func buildScreen(name string, fb *surface.ImageSurface, th theme.Theme,
	rtc sensors.Clock, power sensors.Battery, conn sensors.Connectivity,
	log *slog.Logger) (host.Screen, error) {
	switch name {
	case "clock":
		return faces.NewClockFace(fb, th, rtc, power, conn), nil
	case "stopwatch":
		return faces.NewStopwatchFace(fb, th, rtc, power, conn), nil
	case "demo":
		return newDemoScreen(fb, th, rtc, power, conn, log), nil
	default:
		return nil, fmt.Errorf("unknown face %q (want clock, stopwatch or demo)", name)
	}
}

// simBattery is a lock-free settable Battery; the key handler and the
// host loop live on different goroutines.
type simBattery struct {
	level    atomic.Int32
	charging atomic.Bool
}

func (b *simBattery) Level() int     { return int(b.level.Load()) }
func (b *simBattery) Charging() bool { return b.charging.Load() }

func (b *simBattery) adjust(delta int) {
	for {
		old := b.level.Load()
		next := old + int32(delta)
		if next < 0 {
			next = 0
		} else if next > 100 {
			next = 100
		}
		if b.level.CompareAndSwap(old, next) {
			return
		}
	}
}

type simConnectivity struct {
	link    atomic.Bool
	pending atomic.Bool
}

func (c *simConnectivity) Connected() bool            { return c.link.Load() }
func (c *simConnectivity) NotificationsPending() bool { return c.pending.Load() }

// pollInput translates terminal events into watch input and sensor
// changes until the user quits.
func pollInput(tty tcell.Screen, events chan<- input.Event,
	power *simBattery, conn *simConnectivity, quit func(), log *slog.Logger) {
	defer close(events)
	var mouseDown bool
	for {
		ev := tty.PollEvent()
		if ev == nil {
			// The terminal was finalized under us.
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			tty.Sync()
		case *tcell.EventMouse:
			pressed := ev.Buttons()&tcell.Button1 != 0
			if pressed && !mouseDown {
				cx, cy := ev.Position()
				// One cell is one pixel wide and two pixels tall.
				events <- input.Touch(cx, cy*2)
			}
			mouseDown = pressed
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC,
				ev.Rune() == 'q':
				quit()
				return
			case ev.Key() == tcell.KeyUp:
				events <- input.Event{Kind: input.KindSwipeUp}
			case ev.Key() == tcell.KeyDown:
				events <- input.Event{Kind: input.KindSwipeDown}
			case ev.Key() == tcell.KeyLeft:
				events <- input.Event{Kind: input.KindSwipeLeft}
			case ev.Key() == tcell.KeyRight:
				events <- input.Event{Kind: input.KindSwipeRight}
			case ev.Rune() == 'p':
				events <- input.Event{Kind: input.KindButton}
			case ev.Rune() == '+':
				power.adjust(+5)
				log.Info("battery level", "level", power.Level())
			case ev.Rune() == '-':
				power.adjust(-5)
				log.Info("battery level", "level", power.Level())
			case ev.Rune() == 'c':
				power.charging.Store(!power.charging.Load())
				log.Info("charging toggled", "charging", power.Charging())
			case ev.Rune() == 'b':
				conn.link.Store(!conn.link.Load())
				log.Info("link toggled", "connected", conn.Connected())
			case ev.Rune() == 'n':
				conn.pending.Store(!conn.pending.Load())
				log.Info("notifications toggled", "pending", conn.NotificationsPending())
			}
		}
	}
}
