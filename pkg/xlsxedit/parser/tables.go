package parser

import (
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	CoverageMin      float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(sheet *sheetdata.Sheet, params TableDetectionParams) []string {
	var candidates []string
	var block []*sheetdata.Row

	flush := func() {
		if area, ok := detectBlock(block, params); ok {
			candidates = append(candidates, area.String())
		}
		block = block[:0]
	}

	// Blocks are separated by at least one row without values.
	prev := 0
	for _, row := range sheet.Rows() {
		if countValues(row.Cells()) == 0 {
			continue
		}
		if prev != 0 && row.Num() > prev+1 {
			flush()
		}
		block = append(block, row)
		prev = row.Num()
	}
	flush()

	return candidates
}

// detectBlock returns the bounding box of a block of rows when it is dense
// enough to be a table.
func detectBlock(rows []*sheetdata.Row, params TableDetectionParams) (address.Area, bool) {
	if len(rows) == 0 {
		return address.Area{}, false
	}
	area := address.Area{Top: rows[0].Num(), Bottom: rows[len(rows)-1].Num()}
	nonEmpty, wideRows := 0, 0
	for _, row := range rows {
		n := 0
		for _, c := range row.Cells() {
			if c.Value().IsEmpty() {
				continue
			}
			if area.Left == 0 || c.Col() < area.Left {
				area.Left = c.Col()
			}
			area.Right = max(area.Right, c.Col())
			n++
		}
		nonEmpty += n
		if n > 1 {
			wideRows++
		}
	}

	if nonEmpty < params.MinNonemptyCells {
		return address.Area{}, false
	}
	total := area.Rows().Len() * area.Columns().Len()
	if float64(nonEmpty)/float64(total) < params.DensityMin {
		return address.Area{}, false
	}
	// A single column of values is a list, not a table.
	if area.Left == area.Right {
		return address.Area{}, false
	}
	if float64(wideRows)/float64(len(rows)) < params.CoverageMin {
		return address.Area{}, false
	}
	return area, true
}

func countValues(cells []*sheetdata.Cell) int {
	n := 0
	for _, c := range cells {
		if !c.Value().IsEmpty() {
			n++
		}
	}
	return n
}
