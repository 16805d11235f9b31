package styles

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

// Record is the canonical, quantized encoding of one format. A nil category
// means the category's defaults. Records are immutable once stored.
type Record struct {
	Font       *FontRecord
	Fill       *FillRecord
	Border     *BorderRecord
	Alignment  *AlignmentRecord
	NumFmt     *NumFmtRecord
	Protection *ProtectionRecord
}

// NewRecord maps each category of f to its record. f is not validated.
func NewRecord(f models.Format) Record {
	return Record{
		Font:       fontRecord(f.Font),
		Fill:       fillRecord(f.Fill),
		Border:     borderRecord(f.Border),
		Alignment:  alignmentRecord(f.Alignment),
		NumFmt:     numFmtRecord(f.NumberFormat),
		Protection: protectionRecord(f.Protection),
	}
}

// Format maps the record back to a format, filling absent categories with
// their defaults.
func (r Record) Format() models.Format {
	return models.Format{
		Font:         fontFormat(r.Font),
		Fill:         fillFormat(r.Fill),
		Border:       borderFormat(r.Border),
		Alignment:    alignmentFormat(r.Alignment),
		NumberFormat: numFmtFormat(r.NumFmt),
		Protection:   protectionFormat(r.Protection),
	}
}

// IsDefault reports whether every category is absent.
func (r Record) IsDefault() bool {
	return r == Record{}
}

// Key returns the canonical key used for interning. Equal formats produce
// equal keys.
func (r Record) Key() string {
	var b strings.Builder
	writeKey(&b, "font", r.Font)
	writeKey(&b, "fill", r.Fill)
	writeKey(&b, "border", r.Border)
	writeKey(&b, "alignment", r.Alignment)
	writeKey(&b, "numfmt", r.NumFmt)
	writeKey(&b, "protection", r.Protection)
	return b.String()
}

func writeKey[T any](b *strings.Builder, name string, rec *T) {
	b.WriteString(name)
	b.WriteByte('=')
	if rec == nil {
		b.WriteByte('-')
	} else {
		fmt.Fprintf(b, "%#v", *rec)
	}
	b.WriteByte(';')
}

// Validate checks every category of f and returns the first *FormatError.
func Validate(f models.Format) error {
	if err := validateFont(f.Font); err != nil {
		return err
	}
	if err := validateFill(f.Fill); err != nil {
		return err
	}
	if err := validateBorder(f.Border); err != nil {
		return err
	}
	if err := validateAlignment(f.Alignment); err != nil {
		return err
	}
	return validateNumberFormat(f.NumberFormat)
}

// Normalize returns the format a style table would resolve f to.
func Normalize(f models.Format) models.Format {
	return NewRecord(f).Format()
}
