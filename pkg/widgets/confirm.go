package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// ConfirmationView is a modal yes/no prompt.
//
// It cycles inactive -> active -> inactive: Draw activates it, a tap on
// either button deactivates it and records the answer in Value. While
// inactive it refuses every touch so the host screen keeps receiving
// them.
type ConfirmationView struct {
	draw surface.Display
	th   theme.Theme
	yes  *Button
	no   *Button

	// Active reports whether the prompt is on screen awaiting an answer.
	Active bool
	// Value is the last answer: true for Yes, false for No.
	Value bool
}

// NewConfirmationView constructs the prompt with its fixed button layout.
func NewConfirmationView(d surface.Display, th theme.Theme) *ConfirmationView {
	return &ConfirmationView{
		draw: d,
		th:   th,
		yes:  NewButton(d, th, graphics.RectXYWH(20, 140, 90, 45), "Yes"),
		no:   NewButton(d, th, graphics.RectXYWH(130, 140, 90, 45), "No"),
	}
}

// Draw activates the prompt and paints it over the whole screen. The
// display is muted for the duration so the clear and the widgets arrive
// as one frame.
func (v *ConfirmationView) Draw(message string) {
	v.draw.Mute(true)
	v.draw.SetColor(v.th.Color(theme.RoleBright), graphics.ColorBlack)
	v.draw.Fill(graphics.ColorBlack, 0, 0, ScreenWidth, ScreenHeight)
	v.draw.SetFont(surface.Sans24)
	v.draw.String(message, 0, 60, ScreenWidth)
	v.yes.Draw()
	v.no.Draw()
	v.draw.Mute(false)
	v.Active = true
}

// Touch routes to the Yes/No buttons. While inactive nothing is consumed
// and Value is untouched. A hit records the answer and deactivates; a
// miss is not consumed but the prompt stays up.
func (v *ConfirmationView) Touch(ev input.Event) bool {
	if !v.Active {
		return false
	}
	if v.yes.Touch(ev) {
		v.Value = true
		v.Active = false
		return true
	}
	if v.no.Touch(ev) {
		v.Value = false
		v.Active = false
		return true
	}
	return false
}
