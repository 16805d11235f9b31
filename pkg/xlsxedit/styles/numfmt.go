package styles

import (
	"strings"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/nfp"
)

// maxNumFmtSections is the number of ';' separated sections a code may have
// (positive, negative, zero, text).
const maxNumFmtSections = 4

// builtInNumFmt holds the language independent built-in number formats.
var builtInNumFmt = map[int]string{
	0:  "general",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "hh:mm",
	21: "hh:mm:ss",
	22: "m/d/yy hh:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[red](#,##0)",
	39: "#,##0.00 ;(#,##0.00)",
	40: "#,##0.00 ;[red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
}

// isLangNumFmt reports whether id is a built-in format whose code depends on
// the application language.
func isLangNumFmt(id int) bool {
	return (id >= 27 && id <= 36) || (id >= 50 && id <= 81)
}

// BuiltInNumFmtCode returns the code of a language independent built-in format.
func BuiltInNumFmtCode(id int) (string, bool) {
	code, ok := builtInNumFmt[id]
	return code, ok
}

func builtInNumFmtID(code string) (int, bool) {
	for id, builtIn := range builtInNumFmt {
		if strings.EqualFold(code, builtIn) {
			return id, true
		}
	}
	return 0, false
}

// NumFmtRecord is the canonical number format category. Built-in formats are
// kept by ID; custom ones by code.
type NumFmtRecord struct {
	ID   int
	Code string
}

func validateNumberFormat(n models.NumberFormat) error {
	if n.Code != "" {
		p := nfp.NumberFormatParser()
		sections := p.Parse(n.Code)
		if len(sections) == 0 || len(sections) > maxNumFmtSections {
			return NewFormatError("number_format.code", n.Code, "number format must have one to four sections")
		}
		return nil
	}
	if _, ok := builtInNumFmt[n.ID]; !ok && !isLangNumFmt(n.ID) {
		return NewFormatError("number_format.id", n.ID, "unknown built-in number format")
	}
	return nil
}

// numFmtRecord returns nil for "General". A code matching a built-in format
// is stored as that built-in ID.
func numFmtRecord(n models.NumberFormat) *NumFmtRecord {
	if n.Code != "" {
		if id, ok := builtInNumFmtID(n.Code); ok {
			n = models.NumberFormat{ID: id}
		} else {
			return &NumFmtRecord{Code: n.Code}
		}
	}
	if n.ID == 0 {
		return nil
	}
	return &NumFmtRecord{ID: n.ID}
}

func numFmtFormat(r *NumFmtRecord) models.NumberFormat {
	if r == nil {
		return models.NumberFormat{}
	}
	return models.NumberFormat{ID: r.ID, Code: r.Code}
}
