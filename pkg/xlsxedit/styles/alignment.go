package styles

import "github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"

const (
	maxIndent = 250
	// stackedRotation is the text rotation value for vertically stacked text.
	stackedRotation = 255
)

var horizontalValues = map[string]bool{
	"left":             true,
	"center":           true,
	"right":            true,
	"fill":             true,
	"justify":          true,
	"centerContinuous": true,
	"distributed":      true,
}

var verticalValues = map[string]bool{
	"top":         true,
	"center":      true,
	"justify":     true,
	"distributed": true,
}

// AlignmentRecord is the canonical alignment category.
type AlignmentRecord struct {
	Horizontal      string
	Vertical        string
	WrapText        bool
	ShrinkToFit     bool
	JustifyLastLine bool
	Indent          int
	TextRotation    int
	ReadingOrder    int
}

func validateAlignment(a models.Alignment) error {
	if a.Horizontal != "" && a.Horizontal != "general" && !horizontalValues[a.Horizontal] {
		return NewFormatError("alignment.horizontal", a.Horizontal, "unknown horizontal alignment")
	}
	if a.Vertical != "" && a.Vertical != "bottom" && !verticalValues[a.Vertical] {
		return NewFormatError("alignment.vertical", a.Vertical, "unknown vertical alignment")
	}
	if a.Indent < 0 || a.Indent > maxIndent {
		return NewFormatError("alignment.indent", a.Indent, "indent out of range")
	}
	if (a.TextRotation < 0 || a.TextRotation > 180) && a.TextRotation != stackedRotation {
		return NewFormatError("alignment.text_rotation", a.TextRotation, "rotation must be 0-180 or 255")
	}
	if a.ReadingOrder < 0 || a.ReadingOrder > 2 {
		return NewFormatError("alignment.reading_order", a.ReadingOrder, "reading order must be 0, 1 or 2")
	}
	return nil
}

// alignmentRecord returns nil for default alignment ("general", "bottom").
func alignmentRecord(a models.Alignment) *AlignmentRecord {
	r := AlignmentRecord{
		Horizontal:      a.Horizontal,
		Vertical:        a.Vertical,
		WrapText:        a.WrapText,
		ShrinkToFit:     a.ShrinkToFit,
		JustifyLastLine: a.JustifyLastLine,
		Indent:          a.Indent,
		TextRotation:    a.TextRotation,
		ReadingOrder:    a.ReadingOrder,
	}
	if r.Horizontal == "general" {
		r.Horizontal = ""
	}
	if r.Vertical == "bottom" {
		r.Vertical = ""
	}
	if r == (AlignmentRecord{}) {
		return nil
	}
	return &r
}

func alignmentFormat(r *AlignmentRecord) models.Alignment {
	if r == nil {
		return models.Alignment{}
	}
	return models.Alignment{
		Horizontal:      r.Horizontal,
		Vertical:        r.Vertical,
		WrapText:        r.WrapText,
		ShrinkToFit:     r.ShrinkToFit,
		JustifyLastLine: r.JustifyLastLine,
		Indent:          r.Indent,
		TextRotation:    r.TextRotation,
		ReadingOrder:    r.ReadingOrder,
	}
}
