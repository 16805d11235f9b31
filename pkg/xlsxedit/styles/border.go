package styles

import (
	"slices"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

// borderStyles are the line styles in the order used by excelize.Border.Style.
var borderStyles = []string{
	"none",
	"thin",
	"medium",
	"dashed",
	"dotted",
	"thick",
	"double",
	"hair",
	"mediumDashed",
	"dashDot",
	"mediumDashDot",
	"dashDotDot",
	"mediumDashDotDot",
	"slantDashDot",
}

// SideRecord is one canonical border edge.
type SideRecord struct {
	Style string
	Color ColorRecord
}

// BorderRecord is the canonical border category.
type BorderRecord struct {
	Left         SideRecord
	Right        SideRecord
	Top          SideRecord
	Bottom       SideRecord
	Diagonal     SideRecord
	DiagonalUp   bool
	DiagonalDown bool
}

func validateBorder(b models.Border) error {
	sides := []struct {
		field string
		side  models.BorderSide
	}{
		{"border.left", b.Left},
		{"border.right", b.Right},
		{"border.top", b.Top},
		{"border.bottom", b.Bottom},
		{"border.diagonal", b.Diagonal},
	}
	for _, s := range sides {
		if s.side.Style != "" && !slices.Contains(borderStyles, s.side.Style) {
			return NewFormatError(s.field+".style", s.side.Style, "unknown border style")
		}
		if err := validateRGBColor(s.field+".color", s.side.Color); err != nil {
			return err
		}
	}
	return nil
}

func sideRecord(s models.BorderSide) SideRecord {
	if s.Style == "" || s.Style == "none" {
		return SideRecord{}
	}
	return SideRecord{Style: s.Style, Color: colorRecord(s.Color)}
}

func sideFormat(r SideRecord) models.BorderSide {
	return models.BorderSide{Style: r.Style, Color: colorFormat(r.Color)}
}

// borderRecord returns nil when no edge has a line. The diagonal line only
// counts when one of its directions is set.
func borderRecord(b models.Border) *BorderRecord {
	r := BorderRecord{
		Left:   sideRecord(b.Left),
		Right:  sideRecord(b.Right),
		Top:    sideRecord(b.Top),
		Bottom: sideRecord(b.Bottom),
	}
	if diagonal := sideRecord(b.Diagonal); diagonal.Style != "" && (b.DiagonalUp || b.DiagonalDown) {
		r.Diagonal = diagonal
		r.DiagonalUp = b.DiagonalUp
		r.DiagonalDown = b.DiagonalDown
	}
	if r == (BorderRecord{}) {
		return nil
	}
	return &r
}

func borderFormat(r *BorderRecord) models.Border {
	if r == nil {
		return models.Border{}
	}
	return models.Border{
		Left:         sideFormat(r.Left),
		Right:        sideFormat(r.Right),
		Top:          sideFormat(r.Top),
		Bottom:       sideFormat(r.Bottom),
		Diagonal:     sideFormat(r.Diagonal),
		DiagonalUp:   r.DiagonalUp,
		DiagonalDown: r.DiagonalDown,
	}
}
