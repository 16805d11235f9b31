package styles

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

// tintScale quantizes theme tints to five decimal places.
const tintScale = 100000

// maxIndexedColor is the last legacy palette entry (system background).
const maxIndexedColor = 65

// maxThemeColor is the last theme color slot (followed hyperlink).
const maxThemeColor = 11

// ColorRecord is the canonical form of a models.Color.
type ColorRecord struct {
	Kind  models.ColorKind
	RGB   string
	Index int
	Tint  int
}

func colorRecord(c models.Color) ColorRecord {
	switch c.Kind {
	case models.ColorRGB:
		return ColorRecord{Kind: c.Kind, RGB: strings.ToUpper(c.RGB)}
	case models.ColorIndexed:
		return ColorRecord{Kind: c.Kind, Index: c.Index}
	case models.ColorTheme:
		return ColorRecord{Kind: c.Kind, Index: c.Index, Tint: int(math.Round(c.Tint * tintScale))}
	}
	return ColorRecord{}
}

func colorFormat(r ColorRecord) models.Color {
	switch r.Kind {
	case models.ColorRGB:
		return models.Color{Kind: r.Kind, RGB: r.RGB}
	case models.ColorIndexed:
		return models.Color{Kind: r.Kind, Index: r.Index}
	case models.ColorTheme:
		return models.Color{Kind: r.Kind, Index: r.Index, Tint: float64(r.Tint) / tintScale}
	}
	return models.Color{}
}

func validateColor(field string, c models.Color) error {
	switch c.Kind {
	case models.ColorAuto:
		return nil
	case models.ColorRGB:
		if len(c.RGB) != 6 {
			return NewFormatError(field, c.RGB, "RGB color must have six hex digits")
		}
		if _, err := strconv.ParseUint(c.RGB, 16, 32); err != nil {
			return NewFormatError(field, c.RGB, "RGB color must have six hex digits")
		}
	case models.ColorIndexed:
		if c.Index < 0 || c.Index > maxIndexedColor {
			return NewFormatError(field, c.Index, "indexed color out of range")
		}
	case models.ColorTheme:
		if c.Index < 0 || c.Index > maxThemeColor {
			return NewFormatError(field, c.Index, "theme color out of range")
		}
		if c.Tint < -1 || c.Tint > 1 || math.IsNaN(c.Tint) {
			return NewFormatError(field, c.Tint, "tint must be within [-1, 1]")
		}
	default:
		return NewFormatError(field, c.Kind, "unknown color kind")
	}
	return nil
}

// validateRGBColor accepts only colors that fills and borders can store.
func validateRGBColor(field string, c models.Color) error {
	if c.Kind != models.ColorAuto && c.Kind != models.ColorRGB {
		return NewFormatError(field, c.String(), "only RGB colors are supported here")
	}
	return validateColor(field, c)
}
