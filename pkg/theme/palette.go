package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/wear/pkg/errors"
	"github.com/go-drift/wear/pkg/graphics"
)

// Palette is a concrete Theme backed by a role -> color map. Roles absent
// from the map fall back to the built-in defaults, so a palette file only
// needs to list the roles it changes.
type Palette struct {
	Name     string
	Roles    map[string]graphics.Color
	contrast uint8
}

var _ Theme = (*Palette)(nil)

// defaultRoles is the stock watch look: white foreground text, grey
// structure, grey status icons and a warm status clock.
var defaultRoles = map[string]graphics.Color{
	RoleBright:          0xFFFF,
	RoleMid:             0x7BEF,
	RoleUI:              0x7BEF,
	RoleBattery:         0x7BEF,
	RoleBLE:             0x7BEF,
	RoleNotifyIcon:      0x7BEF,
	RoleStatusClock:     0xE73C,
	RoleScrollIndicator: 0x7BEF,
}

const defaultContrast = 12

// Default returns the built-in palette.
func Default() *Palette {
	roles := make(map[string]graphics.Color, len(defaultRoles))
	for k, v := range defaultRoles {
		roles[k] = v
	}
	return &Palette{Name: "default", Roles: roles, contrast: defaultContrast}
}

// Color implements Theme.
func (p *Palette) Color(role string) graphics.Color {
	if c, ok := p.Roles[role]; ok {
		return c
	}
	return defaultRoles[role]
}

// Contrast implements Theme.
func (p *Palette) Contrast() uint8 {
	if p.contrast == 0 {
		return defaultContrast
	}
	return p.contrast
}

// paletteFile is the YAML on-disk shape. Colors are written as "#RRGGBB"
// (8-bit channels, quantized to RGB565 on load) or as raw 16-bit values
// like "0x7bef".
type paletteFile struct {
	Name     string            `yaml:"name,omitempty"`
	Contrast int               `yaml:"contrast,omitempty"`
	Colors   map[string]string `yaml:"colors"`
}

// LoadPalette reads a palette YAML file. Missing roles fall back to the
// defaults at lookup time.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ThemeError{Path: path, Err: err}
	}
	return parsePalette(data, path)
}

// ParsePalette decodes palette YAML.
func ParsePalette(data []byte) (*Palette, error) {
	return parsePalette(data, "")
}

func parsePalette(data []byte, path string) (*Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.ThemeError{Path: path, Err: err}
	}

	p := &Palette{
		Name:  f.Name,
		Roles: make(map[string]graphics.Color, len(f.Colors)),
	}
	if f.Contrast < 0 || f.Contrast > 63 {
		return nil, &errors.ThemeError{Path: path, Field: "contrast",
			Err: fmt.Errorf("value %d out of range 0..63", f.Contrast)}
	}
	p.contrast = uint8(f.Contrast)

	for role, spec := range f.Colors {
		c, err := parseColor(spec)
		if err != nil {
			return nil, &errors.ThemeError{Path: path, Field: role, Err: err}
		}
		p.Roles[role] = c
	}
	return p, nil
}

func parseColor(spec string) (graphics.Color, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case strings.HasPrefix(spec, "#") && len(spec) == 7:
		v, err := strconv.ParseUint(spec[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", spec)
		}
		return graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case strings.HasPrefix(spec, "0x") || strings.HasPrefix(spec, "0X"):
		v, err := strconv.ParseUint(spec[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", spec)
		}
		return graphics.Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q (want #RRGGBB or 0xNNNN)", spec)
	}
}
