package plan

import (
	"fmt"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

// Apply runs every step against wb. When a step fails, the sheets are
// left as they were before Apply.
func (p *Plan) Apply(wb *xlsxedit.Workbook) error {
	return wb.Batch(func() error {
		for i, step := range p.Steps {
			if err := p.applyStep(wb, step); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.target(), err)
			}
		}
		return nil
	})
}

func (p *Plan) sheet(wb *xlsxedit.Workbook, step Step) (*xlsxedit.Sheet, error) {
	name := step.Sheet
	if name == "" {
		name = p.Sheet
	}
	if name == "" {
		return wb.SheetAt(1)
	}
	return wb.Sheet(name)
}

func (p *Plan) applyStep(wb *xlsxedit.Workbook, step Step) error {
	s, err := p.sheet(wb, step)
	if err != nil {
		return err
	}
	format := step.Format.Format()

	switch step.target() {
	case "cell":
		return applyCell(s, step, format)
	case "columns":
		return applyColumns(s, step, format)
	case "rows":
		return applyRows(s, step, format)
	case "area":
		if step.Format == nil {
			return nil
		}
		return s.SetAreaFormat(step.Area, format)
	}
	return fmt.Errorf("%w: step has no target", ErrInvalidPlan)
}

func applyCell(s *xlsxedit.Sheet, step Step, format models.Format) error {
	if step.Clear {
		if err := s.Clear(step.Cell); err != nil {
			return err
		}
	}
	switch {
	case step.Value != nil && step.Format != nil:
		return s.WriteWithFormat(step.Cell, step.Value, format)
	case step.Value != nil:
		return s.Write(step.Cell, step.Value)
	case step.Format != nil:
		return s.SetFormat(step.Cell, format)
	}
	return nil
}

func applyColumns(s *xlsxedit.Sheet, step Step, format models.Format) error {
	switch {
	case step.Width != nil && step.Format != nil:
		if err := s.SetColumnsWidthWithFormat(step.Columns, *step.Width, format); err != nil {
			return err
		}
	case step.Width != nil:
		if err := s.SetColumnsWidth(step.Columns, *step.Width); err != nil {
			return err
		}
	case step.Format != nil:
		if err := s.SetColumnsFormat(step.Columns, format); err != nil {
			return err
		}
	}
	if step.Hidden != nil {
		return s.SetColumnsHidden(step.Columns, *step.Hidden)
	}
	return nil
}

func applyRows(s *xlsxedit.Sheet, step Step, format models.Format) error {
	if step.Height != nil {
		if err := s.SetRowsHeight(step.Rows, *step.Height); err != nil {
			return err
		}
	}
	if step.Format != nil {
		if err := s.SetRowsFormat(step.Rows, format); err != nil {
			return err
		}
	}
	if step.Hidden != nil {
		return s.SetRowsHidden(step.Rows, *step.Hidden)
	}
	return nil
}
