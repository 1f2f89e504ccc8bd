// Package theme provides the color-lookup capability widgets draw with.
//
// A theme maps semantic role names to pixel colors. Widgets query the
// theme on every draw and update and never cache the result, so swapping
// the active palette between calls takes effect on the next repaint.
package theme

import "github.com/go-drift/wear/pkg/graphics"

// Role names used by the built-in widgets.
const (
	RoleBright          = "bright"
	RoleMid             = "mid"
	RoleUI              = "ui"
	RoleBattery         = "battery"
	RoleBLE             = "ble"
	RoleNotifyIcon      = "notify-icon"
	RoleStatusClock     = "status-clock"
	RoleScrollIndicator = "scroll-indicator"
)

// Theme is the lookup capability handed to widgets at construction.
type Theme interface {
	// Color resolves a semantic role name to a pixel color. Unknown
	// roles resolve to the default palette's value for that role.
	Color(role string) graphics.Color

	// Contrast is the lighten amount used to derive highlight shades
	// (checked checkbox marks, slider lowlights, spinner arrows).
	Contrast() uint8
}
