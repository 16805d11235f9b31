// Package plan reads edit plans from YAML and applies them to a workbook.
//
// A plan is a list of steps. Each step targets exactly one of a cell, a
// column range, a row range or a cell block:
//
//	sheet: Sheet1
//	steps:
//	  - cell: B2
//	    value: 12
//	    format:
//	      font: {bold: true, color: "FF0000"}
//	  - columns: "B:D"
//	    width: 20
//	  - rows: "1"
//	    height: 30
//	    format:
//	      fill: {color: "FFFF00"}
//	  - area: "A1:D1"
//	    format:
//	      border: {style: thin}
package plan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is returned when a plan fails validation.
var ErrInvalidPlan = errors.New("invalid plan")

// Plan is a sequence of edits.
type Plan struct {
	// Sheet is the sheet used by steps that do not name one. Empty means
	// the first sheet.
	Sheet string `yaml:"sheet"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one edit. Exactly one of Cell, Columns, Rows and Area is set.
type Step struct {
	Sheet string `yaml:"sheet"`

	Cell    string `yaml:"cell"`
	Columns string `yaml:"columns"`
	Rows    string `yaml:"rows"`
	Area    string `yaml:"area"`

	// Value is written to Cell.
	Value interface{} `yaml:"value"`
	// Clear empties Cell and resets its format before anything else.
	Clear bool `yaml:"clear"`

	Width  *float64 `yaml:"width" validate:"omitempty,gt=0,lte=255"`
	Height *float64 `yaml:"height" validate:"omitempty,gte=0,lte=409"`
	Hidden *bool    `yaml:"hidden"`

	Format *FormatTemplate `yaml:"format"`
}

func (s Step) target() string {
	switch {
	case s.Cell != "":
		return "cell"
	case s.Columns != "":
		return "columns"
	case s.Rows != "":
		return "rows"
	case s.Area != "":
		return "area"
	}
	return ""
}

func (s Step) targets() int {
	n := 0
	for _, t := range []string{s.Cell, s.Columns, s.Rows, s.Area} {
		if t != "" {
			n++
		}
	}
	return n
}

// stepValidation checks the combinations the field tags cannot express.
func stepValidation(sl validator.StructLevel) {
	s := sl.Current().Interface().(Step)

	if s.targets() != 1 {
		sl.ReportError(s.Cell, "cell", "Cell", "one_target", "")
		return
	}
	target := s.target()
	if (s.Value != nil || s.Clear) && target != "cell" {
		sl.ReportError(s.Value, "value", "Value", "cell_only", "")
	}
	if s.Width != nil && target != "columns" {
		sl.ReportError(s.Width, "width", "Width", "columns_only", "")
	}
	if s.Height != nil && target != "rows" {
		sl.ReportError(s.Height, "height", "Height", "rows_only", "")
	}
	if s.Hidden != nil && target != "columns" && target != "rows" {
		sl.ReportError(s.Hidden, "hidden", "Hidden", "columns_or_rows", "")
	}
	if s.Value == nil && !s.Clear && s.Width == nil && s.Height == nil && s.Hidden == nil && s.Format == nil {
		sl.ReportError(s.Format, "format", "Format", "no_edit", "")
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(stepValidation, Step{})
	return v
}

// Validate checks the plan without touching any workbook.
func (p *Plan) Validate() error {
	if err := newValidator().Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return nil
}

// Load decodes and validates a plan. Unknown keys are rejected.
func Load(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPlan)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a plan from path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
