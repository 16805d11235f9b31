package xlsxedit

import (
	"strconv"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/parser"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
)

// Export returns a serializable snapshot of the workbook's current
// in-memory content. Edits that have not been saved are included.
func (wb *Workbook) Export(opts Options) (*models.WorkbookData, error) {
	if err := wb.check(); err != nil {
		return nil, err
	}

	var printAreas map[string][]models.PrintArea
	if opts.ShouldIncludePrintAreas() {
		printAreas = parser.ReadPrintAreas(wb.file)
	}

	sheets := make(map[string]models.SheetData, len(wb.sheets))
	for _, s := range wb.sheets {
		data, err := wb.exportSheet(s, opts)
		if err != nil {
			return nil, err
		}
		data.PrintAreas = printAreas[s.name]
		sheets[s.name] = data
	}

	result := &models.WorkbookData{
		BookName:   wb.name,
		SheetNames: wb.SheetNames(),
		Sheets:     sheets,
	}
	if opts.ShouldIncludeStyles() {
		for _, r := range wb.table.Records() {
			result.Styles = append(result.Styles, r.Format())
		}
	}
	return result, nil
}

func (wb *Workbook) exportSheet(s *Sheet, opts Options) (models.SheetData, error) {
	data := models.SheetData{
		MaxRow: s.data.MaxRow(),
		MaxCol: s.data.MaxCol(),
	}

	for _, r := range s.data.Rows() {
		row, err := wb.exportRow(s.name, r, opts)
		if err != nil {
			return data, err
		}
		if row != nil {
			data.Rows = append(data.Rows, *row)
		}
	}

	if opts.ShouldIncludeLayout() {
		for _, span := range s.data.Columns().Spans() {
			info := models.ColumnInfo{
				Min:    span.Min,
				Max:    span.Max,
				Width:  span.Props.Width,
				Hidden: span.Props.Hidden,
				Style:  span.Props.Style,
			}
			if info.Width > 0 {
				info.WidthPx = parser.ColumnWidthToPixels(info.Width)
			}
			data.Columns = append(data.Columns, info)
		}
	}
	data.TableCandidates = parser.DetectTables(s.data, parser.DefaultTableParams())
	return data, nil
}

// exportRow returns nil for a row without values or a custom height.
func (wb *Workbook) exportRow(sheetName string, r *sheetdata.Row, opts Options) (*models.CellRow, error) {
	row := models.CellRow{R: r.Num(), C: make(map[string]interface{})}
	if h, ok := r.Height(); ok && opts.ShouldIncludeLayout() {
		height := h
		row.H = &height
	}

	for _, c := range r.Cells() {
		key := strconv.Itoa(c.Col())
		if !c.Value().IsEmpty() {
			row.C[key] = c.Value().Interface()
		}
		if opts.ShouldIncludeStyles() && c.Style() != 0 {
			if row.S == nil {
				row.S = make(map[string]int)
			}
			row.S[key] = c.Style()
		}
		if !opts.ShouldIncludeLinks() {
			continue
		}
		ref, err := address.EncodeAddress(r.Num(), c.Col())
		if err != nil {
			return nil, NewExportError(sheetName, "links", err)
		}
		ok, target, err := wb.file.GetCellHyperLink(sheetName, ref)
		if err != nil {
			return nil, NewExportError(sheetName, "links", err)
		}
		if ok && target != "" {
			if row.Links == nil {
				row.Links = make(map[string]string)
			}
			row.Links[key] = target
		}
	}

	if len(row.C) == 0 && row.H == nil && len(row.S) == 0 {
		return nil, nil
	}
	return &row, nil
}
