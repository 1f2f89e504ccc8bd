package main

import (
	"log/slog"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/host"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
	"github.com/go-drift/wear/pkg/widgets"
)

// demoScreen crams one of every interactive widget onto the screen so
// the toolkit can be poked at with the mouse.
type demoScreen struct {
	draw surface.Display
	th   theme.Theme
	log  *slog.Logger

	bar      *widgets.StatusBar
	spinner  *widgets.Spinner
	checkbox *widgets.Checkbox
	button   *widgets.Button
	card     *widgets.Card
	cardRect graphics.Rect
	slider   *widgets.Slider
	scroll   *widgets.ScrollIndicator
	confirm  *widgets.ConfirmationView
}

func newDemoScreen(d surface.Display, th theme.Theme,
	rtc sensors.Clock, power sensors.Battery, conn sensors.Connectivity,
	log *slog.Logger) *demoScreen {
	cardRect := graphics.RectXYWH(90, 95, 140, 70)
	return &demoScreen{
		draw:     d,
		th:       th,
		log:      log,
		bar:      widgets.NewStatusBar(d, th, rtc, power, conn),
		spinner:  widgets.NewSpinner(d, th, 10, 45, 0, 60, 2),
		checkbox: widgets.NewCheckbox(d, th, 90, 45, ""),
		button:   widgets.NewButton(d, th, graphics.RectXYWH(140, 45, 90, 45), "Reset"),
		card:     widgets.NewCard(d, th, cardRect, "Lamp", icons.LightOn, icons.LightOff),
		cardRect: cardRect,
		slider:   widgets.NewSlider(d, th, 5, 10, 175, 0),
		scroll:   widgets.NewScrollIndicator(d, th),
		confirm:  widgets.NewConfirmationView(d, th),
	}
}

func (s *demoScreen) Name() string {
	return "demo"
}

func (s *demoScreen) TickMS() int {
	return 1000
}

func (s *demoScreen) Draw() {
	s.draw.Fill(graphics.ColorBlack, 0, 0, widgets.ScreenWidth, widgets.ScreenHeight)
	s.bar.Draw()
	s.spinner.Draw()
	s.checkbox.Draw()
	s.button.Draw()
	s.card.Draw()
	s.slider.Draw()
	s.scroll.Draw()
}

func (s *demoScreen) Update() {
	s.bar.Update()
}

func (s *demoScreen) Touch(ev input.Event) bool {
	// While the prompt is up it owns the screen; misses keep it up.
	if s.confirm.Active {
		if s.confirm.Touch(ev) {
			s.log.Info("confirmation answered", "value", s.confirm.Value)
			if s.confirm.Value {
				s.spinner.Value = 0
				s.slider.Value = 0
				s.checkbox.State = false
				s.card.State = false
			}
			s.Draw()
		}
		return true
	}
	if ev.Kind != input.KindTouch {
		return false
	}
	// The card has no hit test of its own.
	if s.cardRect.Contains(ev.X, ev.Y) {
		consumed := s.card.Touch(ev)
		s.log.Info("card toggled", "state", s.card.State)
		return consumed
	}
	if s.button.Touch(ev) {
		s.confirm.Draw("Reset all controls?")
		return true
	}
	// The checkbox goes last: its hit test is a y band only, so anything
	// with a real rectangle must get first refusal.
	return host.DispatchTouch(ev, s.spinner, s.slider, s.checkbox)
}
