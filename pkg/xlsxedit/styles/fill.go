package styles

import (
	"slices"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

// fillPatterns are the pattern types in the order used by excelize.Fill.Pattern.
var fillPatterns = []string{
	"none",
	"solid",
	"mediumGray",
	"darkGray",
	"lightGray",
	"darkHorizontal",
	"darkVertical",
	"darkDown",
	"darkUp",
	"darkGrid",
	"darkTrellis",
	"lightHorizontal",
	"lightVertical",
	"lightDown",
	"lightUp",
	"lightGrid",
	"lightTrellis",
	"gray125",
	"gray0625",
}

// FillRecord is the canonical fill category.
type FillRecord struct {
	Pattern    string
	Foreground ColorRecord
}

func validateFill(f models.Fill) error {
	if f.Pattern != "" && !slices.Contains(fillPatterns, f.Pattern) {
		return NewFormatError("fill.pattern", f.Pattern, "unknown fill pattern")
	}
	return validateRGBColor("fill.foreground", f.Foreground)
}

// fillRecord returns nil for an empty fill; the color of an empty fill is ignored.
func fillRecord(f models.Fill) *FillRecord {
	if f.Pattern == "" || f.Pattern == "none" {
		return nil
	}
	return &FillRecord{
		Pattern:    f.Pattern,
		Foreground: colorRecord(f.Foreground),
	}
}

func fillFormat(r *FillRecord) models.Fill {
	if r == nil {
		return models.Fill{}
	}
	return models.Fill{
		Pattern:    r.Pattern,
		Foreground: colorFormat(r.Foreground),
	}
}
