package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/excelize/v2"
)

func TestStyleRoundTripThroughExcelize(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	formats := []models.Format{
		{Font: models.Font{Name: "Arial", Size: 14, Bold: true, Color: models.RGBColor("1F497D")}},
		{Fill: models.Fill{Pattern: "solid", Foreground: models.RGBColor("FFFF00")}},
		{Border: models.Border{
			Top:    models.BorderSide{Style: "thin", Color: models.RGBColor("FF0000")},
			Bottom: models.BorderSide{Style: "double", Color: models.RGBColor("0000FF")},
		}},
		{Alignment: models.Alignment{Horizontal: "center", Vertical: "top", WrapText: true, Indent: 2}},
		{NumberFormat: models.NumberFormat{ID: 14}},
		{NumberFormat: models.NumberFormat{Code: "0.000"}},
	}

	for _, format := range formats {
		record := NewRecord(format)
		id, err := f.NewStyle(record.Style())
		require.NoError(t, err)

		style, err := f.GetStyle(id)
		require.NoError(t, err)
		got := Normalize(FormatFromStyle(style))
		assert.Equal(t, Normalize(format), got)
	}
}

func TestFormatFromStyleProtection(t *testing.T) {
	got := FormatFromStyle(&excelize.Style{Protection: &excelize.Protection{Locked: false, Hidden: true}})
	assert.Equal(t, models.Protection{Unlocked: true, Hidden: true}, got.Protection)

	got = FormatFromStyle(&excelize.Style{Protection: &excelize.Protection{Locked: true}})
	assert.Equal(t, models.Protection{}, got.Protection)
	assert.Equal(t, models.Format{}, FormatFromStyle(nil))
}
