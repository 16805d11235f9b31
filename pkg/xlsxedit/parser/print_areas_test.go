package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		areas []models.PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3,'My Sheet'!$F$1:$G$4", "My Sheet", []models.PrintArea{
			{R1: 2, C1: 2, R2: 3, C2: 3},
			{R1: 1, C1: 6, R2: 4, C2: 7},
		}},
		{"'Bob''s'!$A$1", "Bob's", []models.PrintArea{{R1: 1, C1: 1, R2: 1, C2: 1}}},
		{"Sheet1!#REF!", "Sheet1", nil},
		{"'My!Sheet'!$A$1:$B$2", "My!Sheet", []models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 2}}},
		{"'a,b'!$A$1,'a,b'!$C$3", "a,b", []models.PrintArea{
			{R1: 1, C1: 1, R2: 1, C2: 1},
			{R1: 3, C1: 3, R2: 3, C2: 3},
		}},
		{"'It''s!'!$B$1", "It's!", []models.PrintArea{{R1: 1, C1: 2, R2: 1, C2: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			sheet, areas := parsePrintAreaReference(tt.ref)
			assert.Equal(t, tt.sheet, sheet)
			assert.Equal(t, tt.areas, areas)
		})
	}
}

func TestReadPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$5",
		Scope:    "Sheet1",
	}))

	areas := ReadPrintAreas(f)
	assert.Equal(t, []models.PrintArea{{R1: 1, C1: 1, R2: 5, C2: 3}}, areas["Sheet1"])
}
