package plan

import "github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"

// FormatTemplate is the YAML form of a cell format. Unset parts keep the
// default.
type FormatTemplate struct {
	Font         *FontTemplate      `yaml:"font"`
	Fill         *FillTemplate      `yaml:"fill"`
	Border       *BorderTemplate    `yaml:"border"`
	Alignment    *AlignmentTemplate `yaml:"alignment"`
	NumberFormat string             `yaml:"number_format"`
	Locked       *bool              `yaml:"locked"`
}

type FontTemplate struct {
	Name      string  `yaml:"name"`
	Size      float64 `yaml:"size" validate:"omitempty,gte=1,lte=409"`
	Bold      bool    `yaml:"bold"`
	Italic    bool    `yaml:"italic"`
	Strike    bool    `yaml:"strike"`
	Underline string  `yaml:"underline" validate:"omitempty,oneof=single double"`
	Color     string  `yaml:"color" validate:"omitempty,len=6,hexadecimal"` // Hex color
}

type FillTemplate struct {
	Color   string `yaml:"color" validate:"required,len=6,hexadecimal"` // Hex color
	Pattern string `yaml:"pattern"`                                     // solid when empty
}

// BorderTemplate draws the same line on all four edges.
type BorderTemplate struct {
	Style string `yaml:"style" validate:"required,oneof=thin medium dashed dotted thick double hair"`
	Color string `yaml:"color" validate:"omitempty,len=6,hexadecimal"`
}

type AlignmentTemplate struct {
	Horizontal string `yaml:"horizontal" validate:"omitempty,oneof=left center right fill justify centerContinuous distributed"`
	Vertical   string `yaml:"vertical" validate:"omitempty,oneof=top center bottom justify distributed"`
	Wrap       bool   `yaml:"wrap"`
	Indent     int    `yaml:"indent" validate:"gte=0,lte=250"`
}

// Format converts the template to a format.
func (t *FormatTemplate) Format() models.Format {
	var f models.Format
	if t == nil {
		return f
	}
	if font := t.Font; font != nil {
		f.Font = models.Font{
			Name:      font.Name,
			Size:      font.Size,
			Bold:      font.Bold,
			Italic:    font.Italic,
			Strike:    font.Strike,
			Underline: font.Underline,
		}
		if font.Color != "" {
			f.Font.Color = models.RGBColor(font.Color)
		}
	}
	if fill := t.Fill; fill != nil {
		f.Fill.Pattern = fill.Pattern
		if f.Fill.Pattern == "" {
			f.Fill.Pattern = "solid"
		}
		f.Fill.Foreground = models.RGBColor(fill.Color)
	}
	if b := t.Border; b != nil {
		side := models.BorderSide{Style: b.Style}
		if b.Color != "" {
			side.Color = models.RGBColor(b.Color)
		}
		f.Border.Left, f.Border.Right, f.Border.Top, f.Border.Bottom = side, side, side, side
	}
	if a := t.Alignment; a != nil {
		f.Alignment = models.Alignment{
			Horizontal: a.Horizontal,
			Vertical:   a.Vertical,
			WrapText:   a.Wrap,
			Indent:     a.Indent,
		}
	}
	f.NumberFormat.Code = t.NumberFormat
	if t.Locked != nil {
		f.Protection.Unlocked = !*t.Locked
	}
	return f
}
