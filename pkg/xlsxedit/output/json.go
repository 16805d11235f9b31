// Package output renders exported workbook data as JSON and sheets as
// AsciiDoc tables.
package output

import (
	"encoding/json"
	"strconv"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToJSON serializes a whole workbook export.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes one sheet of an export.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// PrintAreaViewToJSON serializes a print area view.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

// CreatePrintAreaView restricts a sheet export to the cells, columns and
// table candidates inside area.
func CreatePrintAreaView(bookName, sheetName string, sheet models.SheetData, area models.PrintArea) models.PrintAreaView {
	view := models.PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}

	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		trimmed := models.CellRow{R: row.R, H: row.H, C: make(map[string]interface{})}
		for key, v := range row.C {
			if inColumns(key, area) {
				trimmed.C[key] = v
			}
		}
		for key, s := range row.S {
			if inColumns(key, area) {
				if trimmed.S == nil {
					trimmed.S = make(map[string]int)
				}
				trimmed.S[key] = s
			}
		}
		for key, link := range row.Links {
			if inColumns(key, area) {
				if trimmed.Links == nil {
					trimmed.Links = make(map[string]string)
				}
				trimmed.Links[key] = link
			}
		}
		if len(trimmed.C) > 0 || trimmed.H != nil {
			view.Rows = append(view.Rows, trimmed)
		}
	}

	for _, col := range sheet.Columns {
		if col.Max >= area.C1 && col.Min <= area.C2 {
			view.Columns = append(view.Columns, col)
		}
	}

	for _, ref := range sheet.TableCandidates {
		table, err := address.DecodeArea(ref)
		if err != nil {
			continue
		}
		if table.Top <= area.R2 && table.Bottom >= area.R1 && table.Left <= area.C2 && table.Right >= area.C1 {
			view.TableCandidates = append(view.TableCandidates, ref)
		}
	}

	return view
}

func inColumns(key string, area models.PrintArea) bool {
	col, err := strconv.Atoi(key)
	return err == nil && col >= area.C1 && col <= area.C2
}
