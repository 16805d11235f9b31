package sheetdata

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrUnsupportedValue indicates a Go value that cannot be stored in a cell.
var ErrUnsupportedValue = errors.New("unsupported cell value")

// ValueKind is the type of a cell value.
type ValueKind uint8

const (
	// KindEmpty is a cell without a value.
	KindEmpty ValueKind = iota
	// KindString is text.
	KindString
	// KindNumber is a number kept in its document text form.
	KindNumber
	// KindBool is TRUE or FALSE, stored as "1" or "0".
	KindBool
	// KindError is an error literal such as "#N/A".
	KindError
)

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is a cell value. Numbers keep their document text so that values
// read from a file are written back unchanged.
type Value struct {
	Kind ValueKind
	Text string
}

// StringValue returns a text value.
func StringValue(s string) Value { return Value{Kind: KindString, Text: s} }

// NumberValue returns a numeric value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	if b {
		return Value{Kind: KindBool, Text: "1"}
	}
	return Value{Kind: KindBool, Text: "0"}
}

// ErrorValue returns an error literal value.
func ErrorValue(s string) Value { return Value{Kind: KindError, Text: s} }

// IsEmpty reports whether the value is empty.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Float returns the numeric value.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	return f, err == nil
}

// Bool returns the boolean value.
func (v Value) Bool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.Text == "1" || v.Text == "true" || v.Text == "TRUE", true
}

// String returns the value as displayed without number formatting.
func (v Value) String() string {
	if v.Kind == KindBool {
		if b, _ := v.Bool(); b {
			return "TRUE"
		}
		return "FALSE"
	}
	return v.Text
}

// Interface returns the value as a Go value: nil, string, int64, float64 or bool.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindEmpty:
		return nil
	case KindNumber:
		if i, err := strconv.ParseInt(v.Text, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(v.Text, 64); err == nil {
			return f
		}
		return v.Text
	case KindBool:
		b, _ := v.Bool()
		return b
	default:
		return v.Text
	}
}

// ValueOf converts a Go value to a cell value. Times are stored as text in
// RFC 3339 form.
func ValueOf(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return v, nil
	case string:
		return StringValue(v), nil
	case []byte:
		return StringValue(string(v)), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return Value{Kind: KindNumber, Text: strconv.FormatInt(int64(v), 10)}, nil
	case int8:
		return Value{Kind: KindNumber, Text: strconv.FormatInt(int64(v), 10)}, nil
	case int16:
		return Value{Kind: KindNumber, Text: strconv.FormatInt(int64(v), 10)}, nil
	case int32:
		return Value{Kind: KindNumber, Text: strconv.FormatInt(int64(v), 10)}, nil
	case int64:
		return Value{Kind: KindNumber, Text: strconv.FormatInt(v, 10)}, nil
	case uint:
		return Value{Kind: KindNumber, Text: strconv.FormatUint(uint64(v), 10)}, nil
	case uint8:
		return Value{Kind: KindNumber, Text: strconv.FormatUint(uint64(v), 10)}, nil
	case uint16:
		return Value{Kind: KindNumber, Text: strconv.FormatUint(uint64(v), 10)}, nil
	case uint32:
		return Value{Kind: KindNumber, Text: strconv.FormatUint(uint64(v), 10)}, nil
	case uint64:
		return Value{Kind: KindNumber, Text: strconv.FormatUint(v, 10)}, nil
	case float32:
		return Value{Kind: KindNumber, Text: strconv.FormatFloat(float64(v), 'f', -1, 32)}, nil
	case float64:
		return NumberValue(v), nil
	case time.Time:
		return StringValue(v.Format(time.RFC3339)), nil
	case fmt.Stringer:
		return StringValue(v.String()), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}
