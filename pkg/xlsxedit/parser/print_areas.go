package parser

import (
	"strings"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/excelize/v2"
)

// ReadPrintAreas returns the print areas of a workbook keyed by sheet name.
func ReadPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && !strings.EqualFold(dn.Scope, "Workbook") {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10,'Sheet Name'!$F$1:$G$4.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string

	for _, part := range splitReferenceList(ref) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sheet, rangeStr, ok := splitSheetReference(part)
		if ok && sheetName == "" {
			sheetName = sheet
		}
		if area, err := address.DecodeArea(rangeStr); err == nil {
			areas = append(areas, models.PrintArea{
				R1: area.Top,
				C1: area.Left,
				R2: area.Bottom,
				C2: area.Right,
			})
		}
	}

	return sheetName, areas
}

// splitReferenceList splits on commas outside quoted sheet names.
func splitReferenceList(ref string) []string {
	var parts []string
	quoted := false
	start := 0
	for i := 0; i < len(ref); i++ {
		switch ref[i] {
		case '\'':
			quoted = !quoted
		case ',':
			if !quoted {
				parts = append(parts, ref[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, ref[start:])
}

// splitSheetReference separates the sheet qualifier from the cell part of a
// reference. A quoted name ends at its closing quote, so '!' inside it is
// part of the name; an unquoted name ends at the first '!'.
func splitSheetReference(part string) (sheet, rest string, ok bool) {
	if strings.HasPrefix(part, "'") {
		for i := 1; i < len(part); i++ {
			if part[i] != '\'' {
				continue
			}
			if i+1 < len(part) && part[i+1] == '\'' {
				i++
				continue
			}
			if i+1 < len(part) && part[i+1] == '!' {
				return strings.ReplaceAll(part[1:i], "''", "'"), part[i+2:], true
			}
			return "", part, false
		}
		return "", part, false
	}
	if idx := strings.Index(part, "!"); idx >= 0 {
		return part[:idx], part[idx+1:], true
	}
	return "", part, false
}
