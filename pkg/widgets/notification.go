package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// NotificationIndicator shows the connectivity glyph and whether there
// are pending notifications.
//
// It keeps no dirty state: its region is small enough that repainting
// both slots unconditionally is cheaper than tracking them, and the
// container already rations how often it is called.
type NotificationIndicator struct {
	draw surface.Surface
	th   theme.Theme
	conn sensors.Connectivity
	x    int
	y    int
}

// NewNotificationIndicator constructs the indicator at (x, y).
func NewNotificationIndicator(d surface.Surface, th theme.Theme, conn sensors.Connectivity, x, y int) *NotificationIndicator {
	return &NotificationIndicator{draw: d, th: th, conn: conn, x: x, y: y}
}

// Draw is a synonym for Update; the widget always paints from scratch.
func (n *NotificationIndicator) Draw() {
	n.Update()
}

// Update repaints both icon slots from the current sensor state.
func (n *NotificationIndicator) Update() {
	x, y := n.x, n.y

	switch {
	case n.conn.Connected():
		n.draw.Blit(icons.Bluetooth, x+5, y+5,
			n.th.Color(theme.RoleBLE), graphics.ColorBlack, graphics.ColorBlack)
		if n.conn.NotificationsPending() {
			n.draw.Blit(icons.Alert, x+22+5, y+5,
				n.th.Color(theme.RoleNotifyIcon), graphics.ColorBlack, graphics.ColorBlack)
		} else {
			n.draw.Fill(graphics.ColorBlack, x+22+5, y+5, 30, 32)
		}
	case n.conn.NotificationsPending():
		n.draw.Blit(icons.Alert, x, y,
			n.th.Color(theme.RoleNotifyIcon), graphics.ColorBlack, graphics.ColorBlack)
		n.draw.Fill(graphics.ColorBlack, x+30, y, 22, 32)
	default:
		n.draw.Fill(graphics.ColorBlack, x, y, 52, 32)
	}
}
