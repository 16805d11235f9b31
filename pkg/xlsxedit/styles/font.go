package styles

import (
	"math"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/excelize/v2"
)

// twipsPerPoint quantizes font sizes to 1/20 pt.
const twipsPerPoint = 20

var underlineStyles = map[string]bool{"single": true, "double": true}

var vertAlignValues = map[string]bool{"superscript": true, "subscript": true}

// FontRecord is the canonical font category.
type FontRecord struct {
	Name      string
	SizeTwips int
	Bold      bool
	Italic    bool
	Strike    bool
	Underline string
	VertAlign string
	Color     ColorRecord
}

// textColor is theme slot 1 (dark 1), the color Excel uses for automatic
// text. A font in that color without tint is stored as automatic.
var textColor = ColorRecord{Kind: models.ColorTheme, Index: 1}

var defaultFontRecord = FontRecord{
	Name:      models.DefaultFontName,
	SizeTwips: models.DefaultFontSize * twipsPerPoint,
}

func validateFont(f models.Font) error {
	if len(f.Name) > excelize.MaxFontFamilyLength {
		return NewFormatError("font.name", f.Name, "font name too long")
	}
	if f.Size != 0 && (f.Size < excelize.MinFontSize || f.Size > excelize.MaxFontSize || math.IsNaN(f.Size)) {
		return NewFormatError("font.size", f.Size, "font size out of range")
	}
	if f.Underline != "" && f.Underline != "none" && !underlineStyles[f.Underline] {
		return NewFormatError("font.underline", f.Underline, "unknown underline style")
	}
	if f.VertAlign != "" && f.VertAlign != "baseline" && !vertAlignValues[f.VertAlign] {
		return NewFormatError("font.vert_align", f.VertAlign, "unknown vertical alignment")
	}
	return validateColor("font.color", f.Color)
}

// fontRecord returns nil when the font equals the default font.
func fontRecord(f models.Font) *FontRecord {
	r := FontRecord{
		Name:      f.Name,
		SizeTwips: int(math.Round(f.Size * twipsPerPoint)),
		Bold:      f.Bold,
		Italic:    f.Italic,
		Strike:    f.Strike,
		Underline: f.Underline,
		VertAlign: f.VertAlign,
		Color:     colorRecord(f.Color),
	}
	if r.Name == "" {
		r.Name = defaultFontRecord.Name
	}
	if r.SizeTwips == 0 {
		r.SizeTwips = defaultFontRecord.SizeTwips
	}
	if r.Underline == "none" {
		r.Underline = ""
	}
	if r.VertAlign == "baseline" {
		r.VertAlign = ""
	}
	if r.Color == textColor {
		r.Color = ColorRecord{}
	}
	if r == defaultFontRecord {
		return nil
	}
	return &r
}

func fontFormat(r *FontRecord) models.Font {
	if r == nil {
		r = &defaultFontRecord
	}
	return models.Font{
		Name:      r.Name,
		Size:      float64(r.SizeTwips) / twipsPerPoint,
		Bold:      r.Bold,
		Italic:    r.Italic,
		Strike:    r.Strike,
		Underline: r.Underline,
		VertAlign: r.VertAlign,
		Color:     colorFormat(r.Color),
	}
}
