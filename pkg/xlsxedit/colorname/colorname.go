// Package colorname maps RGB colors to the nearest of the sixteen basic
// named colors used as AsciiDoc roles.
package colorname

import (
	"strconv"
	"strings"
)

// Color is a named RGB color.
type Color struct {
	Name    string
	R, G, B uint8
}

// Basic is the list of names Nearest chooses from.
var Basic = []Color{
	{"aqua", 0, 255, 255},
	{"black", 0, 0, 0},
	{"blue", 0, 0, 255},
	{"fuchsia", 255, 0, 255},
	{"gray", 128, 128, 128},
	{"green", 0, 255, 0},
	{"lime", 50, 205, 50},
	{"maroon", 128, 0, 0},
	{"navy", 0, 0, 128},
	{"olive", 186, 184, 108},
	{"purple", 128, 0, 128},
	{"red", 255, 0, 0},
	{"silver", 192, 192, 192},
	{"teal", 0, 128, 128},
	{"white", 255, 255, 255},
	{"yellow", 255, 255, 0},
}

// Nearest returns the name of the basic color with the smallest squared
// RGB distance to (r, g, b). Ties go to the color listed first.
func Nearest(r, g, b uint8) string {
	best, name := -1, ""
	for _, c := range Basic {
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)
		if d := dr*dr + dg*dg + db*db; best < 0 || d < best {
			best, name = d, c.Name
		}
	}
	return name
}

// NearestHex is Nearest for a six-digit hex color such as "FF0000". An
// eight-digit ARGB value has its alpha byte ignored.
func NearestHex(rgb string) (string, bool) {
	rgb = strings.TrimPrefix(rgb, "#")
	if len(rgb) == 8 {
		rgb = rgb[2:]
	}
	if len(rgb) != 6 {
		return "", false
	}
	v, err := strconv.ParseUint(rgb, 16, 32)
	if err != nil {
		return "", false
	}
	return Nearest(uint8(v>>16), uint8(v>>8), uint8(v)), true
}
