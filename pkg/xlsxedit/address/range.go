package address

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is an inclusive, zero-based span of columns or rows. It is empty
// when Hi < Lo.
type Interval struct {
	Lo int
	Hi int
}

// Len returns the number of members in the interval.
func (iv Interval) Len() int {
	if iv.Hi < iv.Lo {
		return 0
	}
	return iv.Hi - iv.Lo + 1
}

// Empty reports whether the interval has no members.
func (iv Interval) Empty() bool {
	return iv.Hi < iv.Lo
}

// Contains reports whether the zero-based offset i lies in the interval.
func (iv Interval) Contains(i int) bool {
	return i >= iv.Lo && i <= iv.Hi
}

// First returns the 1-based number of the first member.
func (iv Interval) First() int { return iv.Lo + 1 }

// Last returns the 1-based number of the last member.
func (iv Interval) Last() int { return iv.Hi + 1 }

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi)
}

// clamp converts 1-based lo..hi to an Interval whose high end is at most bound.
func clamp(lo, hi, bound int) Interval {
	if hi > bound {
		hi = bound
	}
	return Interval{Lo: lo - 1, Hi: hi - 1}
}

// DecodeRange is DecodeColumnRange: "A:ZZZ" with bound 10 yields [0,9].
func DecodeRange(text string, bound int) (Interval, error) {
	return DecodeColumnRange(text, bound)
}

// DecodeColumnRange decodes a column range ("B:D", "C", "A1:C3") into a
// zero-based interval whose high end is clamped to bound columns.
func DecodeColumnRange(text string, bound int) (Interval, error) {
	lo, hi, err := ParseColumnRange(text)
	if err != nil {
		return Interval{}, err
	}
	return clamp(lo, hi, min(bound, MaxColumns)), nil
}

// ParseColumnRange returns the unclamped 1-based ends of a column range. A
// high end past the worksheet limit is reported as MaxColumns+1 so that
// oversized ranges can be clamped by the caller; the low end may not exceed
// MaxColumns.
func ParseColumnRange(text string) (lo, hi int, err error) {
	first, second, err := splitRange(text)
	if err != nil {
		return 0, 0, err
	}
	if lo, err = columnToken(first); err != nil {
		return 0, 0, err
	}
	if hi, err = columnToken(second); err != nil {
		return 0, 0, err
	}
	if lo > MaxColumns {
		return 0, 0, NewError(text, "column out of range")
	}
	if lo > hi {
		return 0, 0, NewError(text, "range start after range end")
	}
	return lo, hi, nil
}

// columnToken accepts bare letters or a cell reference and returns its column.
func columnToken(token string) (int, error) {
	token = strings.ReplaceAll(token, "$", "")
	i := 0
	for i < len(token) && isLetter(token[i]) {
		i++
	}
	if i < len(token) && !isDigits(token[i:]) {
		return 0, NewError(token, "invalid column token")
	}
	return columnNumber(token[:i])
}

// DecodeRowRange decodes a row range ("2:5", "7") into a zero-based interval
// whose high end is clamped to bound rows.
func DecodeRowRange(text string, bound int) (Interval, error) {
	lo, hi, err := ParseRowRange(text)
	if err != nil {
		return Interval{}, err
	}
	return clamp(lo, hi, min(bound, MaxRows)), nil
}

// ParseRowRange returns the unclamped 1-based ends of a row range.
func ParseRowRange(text string) (lo, hi int, err error) {
	first, second, err := splitRange(text)
	if err != nil {
		return 0, 0, err
	}
	if lo, err = rowToken(first); err != nil {
		return 0, 0, err
	}
	if hi, err = rowToken(second); err != nil {
		return 0, 0, err
	}
	if lo > MaxRows {
		return 0, 0, NewError(text, "row out of range")
	}
	if lo > hi {
		return 0, 0, NewError(text, "range start after range end")
	}
	return lo, hi, nil
}

func rowToken(token string) (int, error) {
	token = strings.ReplaceAll(token, "$", "")
	if !isDigits(token) {
		return 0, NewError(token, "row must contain digits only")
	}
	row, err := strconv.Atoi(token)
	if err != nil || row < 1 {
		return 0, NewError(token, "row out of range")
	}
	return row, nil
}

// splitRange splits "X:Y" into its tokens; a single token is a one-member range.
func splitRange(text string) (string, string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", NewError(text, "empty range")
	}
	parts := strings.Split(text, ":")
	switch len(parts) {
	case 1:
		return parts[0], parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", NewError(text, "empty range bound")
		}
		return parts[0], parts[1], nil
	default:
		return "", "", NewError(text, "too many range separators")
	}
}

// Area is a rectangular block of cells with 1-based inclusive corners.
type Area struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// String returns the area in "A1:D10" form.
func (a Area) String() string {
	return columnName(a.Left) + strconv.Itoa(a.Top) + ":" + columnName(a.Right) + strconv.Itoa(a.Bottom)
}

// Rows returns the zero-based row interval covered by the area.
func (a Area) Rows() Interval { return Interval{Lo: a.Top - 1, Hi: a.Bottom - 1} }

// Columns returns the zero-based column interval covered by the area.
func (a Area) Columns() Interval { return Interval{Lo: a.Left - 1, Hi: a.Right - 1} }

// DecodeArea decodes "A1:D10" (or a single cell) into an Area. Corners given
// in reverse order are normalized.
func DecodeArea(text string) (Area, error) {
	first, second, err := splitRange(text)
	if err != nil {
		return Area{}, err
	}
	r1, c1, err := DecodeAddress(first)
	if err != nil {
		return Area{}, err
	}
	r2, c2, err := DecodeAddress(second)
	if err != nil {
		return Area{}, err
	}
	return Area{
		Top:    min(r1, r2),
		Left:   min(c1, c2),
		Bottom: max(r1, r2),
		Right:  max(c1, c2),
	}, nil
}
