package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor indicates a color string that ParseColor cannot read.
var ErrInvalidColor = errors.New("invalid color")

// ColorKind tells how a Color is specified.
type ColorKind uint8

const (
	// ColorAuto leaves the color to the application.
	ColorAuto ColorKind = iota
	// ColorRGB is an explicit RRGGBB value.
	ColorRGB
	// ColorIndexed refers to the legacy indexed palette.
	ColorIndexed
	// ColorTheme refers to a theme color with an optional tint.
	ColorTheme
)

// Color is a font, fill or border color.
type Color struct {
	Kind ColorKind
	// RGB holds six upper case hex digits for ColorRGB.
	RGB string
	// Index is the palette index for ColorIndexed or the theme index for ColorTheme.
	Index int
	// Tint lightens (positive) or darkens (negative) a theme color, in [-1, 1].
	Tint float64
}

// RGBColor returns an explicit color from "RRGGBB", "#RRGGBB" or "AARRGGBB".
func RGBColor(hex string) Color {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		hex = hex[2:]
	}
	return Color{Kind: ColorRGB, RGB: hex}
}

// ThemeColor returns a theme color reference.
func ThemeColor(index int, tint float64) Color {
	return Color{Kind: ColorTheme, Index: index, Tint: tint}
}

// IndexedColor returns a legacy palette reference.
func IndexedColor(index int) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// IsAuto reports whether the color is left to the application.
func (c Color) IsAuto() bool {
	return c.Kind == ColorAuto
}

// String formats the color in the syntax accepted by ParseColor.
func (c Color) String() string {
	switch c.Kind {
	case ColorRGB:
		return "#" + c.RGB
	case ColorIndexed:
		return "indexed:" + strconv.Itoa(c.Index)
	case ColorTheme:
		if c.Tint == 0 {
			return "theme:" + strconv.Itoa(c.Index)
		}
		return fmt.Sprintf("theme:%d:%s", c.Index, strconv.FormatFloat(c.Tint, 'f', -1, 64))
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor reads a color written as "" or "auto", "#RRGGBB", "RRGGBB",
// "AARRGGBB", "indexed:N" or "theme:N[:tint]".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "" || lower == "auto":
		return Color{}, nil
	case strings.HasPrefix(lower, "indexed:"):
		idx, err := strconv.Atoi(s[len("indexed:"):])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return IndexedColor(idx), nil
	case strings.HasPrefix(lower, "theme:"):
		parts := strings.Split(s[len("theme:"):], ":")
		if len(parts) > 2 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		idx, err := strconv.Atoi(parts[0])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		var tint float64
		if len(parts) == 2 {
			if tint, err = strconv.ParseFloat(parts[1], 64); err != nil {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
		}
		return ThemeColor(idx, tint), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGBColor(hex), nil
}
