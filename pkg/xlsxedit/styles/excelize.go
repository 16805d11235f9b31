package styles

import (
	"slices"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/excelize/v2"
)

// FormatFromStyle converts a style definition read by excelize to a format.
// Gradient fills are not represented and read as no fill.
func FormatFromStyle(s *excelize.Style) models.Format {
	var f models.Format
	if s == nil {
		return f
	}
	if s.Font != nil {
		f.Font = models.Font{
			Name:      s.Font.Family,
			Size:      s.Font.Size,
			Bold:      s.Font.Bold,
			Italic:    s.Font.Italic,
			Strike:    s.Font.Strike,
			Underline: s.Font.Underline,
			VertAlign: s.Font.VertAlign,
		}
		switch {
		case s.Font.Color != "":
			f.Font.Color = models.RGBColor(s.Font.Color)
		case s.Font.ColorTheme != nil:
			f.Font.Color = models.ThemeColor(*s.Font.ColorTheme, s.Font.ColorTint)
		case s.Font.ColorIndexed > 0:
			f.Font.Color = models.IndexedColor(s.Font.ColorIndexed)
		}
	}
	if s.Fill.Type == "pattern" && s.Fill.Pattern > 0 && s.Fill.Pattern < len(fillPatterns) {
		f.Fill.Pattern = fillPatterns[s.Fill.Pattern]
		if len(s.Fill.Color) > 0 && s.Fill.Color[0] != "" {
			f.Fill.Foreground = models.RGBColor(s.Fill.Color[0])
		}
	}
	for _, b := range s.Border {
		if b.Style <= 0 || b.Style >= len(borderStyles) {
			continue
		}
		side := models.BorderSide{Style: borderStyles[b.Style]}
		if b.Color != "" {
			side.Color = models.RGBColor(b.Color)
		}
		switch b.Type {
		case "left":
			f.Border.Left = side
		case "right":
			f.Border.Right = side
		case "top":
			f.Border.Top = side
		case "bottom":
			f.Border.Bottom = side
		case "diagonalUp":
			f.Border.Diagonal, f.Border.DiagonalUp = side, true
		case "diagonalDown":
			f.Border.Diagonal, f.Border.DiagonalDown = side, true
		}
	}
	if a := s.Alignment; a != nil {
		f.Alignment = models.Alignment{
			Horizontal:      a.Horizontal,
			Vertical:        a.Vertical,
			WrapText:        a.WrapText,
			ShrinkToFit:     a.ShrinkToFit,
			JustifyLastLine: a.JustifyLastLine,
			Indent:          a.Indent,
			TextRotation:    a.TextRotation,
			ReadingOrder:    int(a.ReadingOrder),
		}
	}
	if s.CustomNumFmt != nil {
		f.NumberFormat.Code = *s.CustomNumFmt
	} else {
		f.NumberFormat.ID = s.NumFmt
	}
	if p := s.Protection; p != nil {
		f.Protection = models.Protection{Unlocked: !p.Locked, Hidden: p.Hidden}
	}
	return f
}

// Style converts the record to an excelize style definition for NewStyle.
// The font is always spelled out so new styles do not inherit a theme font.
func (r Record) Style() *excelize.Style {
	f := r.Format()
	s := &excelize.Style{
		Font: &excelize.Font{
			Family:    f.Font.Name,
			Size:      f.Font.Size,
			Bold:      f.Font.Bold,
			Italic:    f.Font.Italic,
			Strike:    f.Font.Strike,
			Underline: f.Font.Underline,
			VertAlign: f.Font.VertAlign,
		},
	}
	switch c := f.Font.Color; c.Kind {
	case models.ColorRGB:
		s.Font.Color = c.RGB
	case models.ColorTheme:
		theme := c.Index
		s.Font.ColorTheme = &theme
		s.Font.ColorTint = c.Tint
	case models.ColorIndexed:
		s.Font.ColorIndexed = c.Index
	}
	if r.Fill != nil {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: slices.Index(fillPatterns, f.Fill.Pattern)}
		if f.Fill.Foreground.Kind == models.ColorRGB {
			s.Fill.Color = []string{f.Fill.Foreground.RGB}
		}
	}
	if r.Border != nil {
		add := func(kind string, side models.BorderSide) {
			if side.Style == "" {
				return
			}
			s.Border = append(s.Border, excelize.Border{
				Type:  kind,
				Color: side.Color.RGB,
				Style: slices.Index(borderStyles, side.Style),
			})
		}
		add("left", f.Border.Left)
		add("right", f.Border.Right)
		add("top", f.Border.Top)
		add("bottom", f.Border.Bottom)
		if f.Border.DiagonalUp {
			add("diagonalUp", f.Border.Diagonal)
		}
		if f.Border.DiagonalDown {
			add("diagonalDown", f.Border.Diagonal)
		}
	}
	if r.Alignment != nil {
		a := f.Alignment
		s.Alignment = &excelize.Alignment{
			Horizontal:      a.Horizontal,
			Vertical:        a.Vertical,
			WrapText:        a.WrapText,
			ShrinkToFit:     a.ShrinkToFit,
			JustifyLastLine: a.JustifyLastLine,
			Indent:          a.Indent,
			TextRotation:    a.TextRotation,
			ReadingOrder:    uint64(a.ReadingOrder),
		}
	}
	if r.NumFmt != nil {
		if r.NumFmt.Code != "" {
			code := r.NumFmt.Code
			s.CustomNumFmt = &code
		} else {
			s.NumFmt = r.NumFmt.ID
		}
	}
	if r.Protection != nil {
		s.Protection = &excelize.Protection{Locked: !r.Protection.Unlocked, Hidden: r.Protection.Hidden}
	}
	return s
}
