package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRangeClampsToBound(t *testing.T) {
	iv, err := DecodeRange("A:ZZZ", 10)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lo: 0, Hi: 9}, iv)
	assert.Equal(t, 10, iv.Len())
}

func TestParseColumnRangeBeyondLimit(t *testing.T) {
	tests := []struct {
		input string
		lo    int
		hi    int
	}{
		{"A:XFD", 1, MaxColumns},
		{"A:XFE", 1, MaxColumns + 1},
		{"B:zzz", 2, MaxColumns + 1},
		{"C1:AAAA9", 3, MaxColumns + 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lo, hi, err := ParseColumnRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}

	_, _, err := ParseColumnRange("A:ABCDEFGHIJKLMNOP")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeColumnRange(t *testing.T) {
	tests := []struct {
		input    string
		bound    int
		expected Interval
		wantErr  bool
	}{
		{"B:D", MaxColumns, Interval{1, 3}, false},
		{"C", MaxColumns, Interval{2, 2}, false},
		{"A1:C3", MaxColumns, Interval{0, 2}, false},
		{"$B:$C", MaxColumns, Interval{1, 2}, false},
		{"A:XFD", 4, Interval{0, 3}, false},
		{"A:XFD", 100000, Interval{0, MaxColumns - 1}, false},
		{"E:G", 2, Interval{4, 1}, false},
		{"D:B", MaxColumns, Interval{}, true},
		{"B:", MaxColumns, Interval{}, true},
		{"A:B:C", MaxColumns, Interval{}, true},
		{"1:2", MaxColumns, Interval{}, true},
		{"XFE:XFF", MaxColumns, Interval{}, true},
		{"", MaxColumns, Interval{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			iv, err := DecodeColumnRange(tt.input, tt.bound)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, iv)
		})
	}
}

func TestDecodeRangeBeyondBoundIsEmpty(t *testing.T) {
	iv, err := DecodeColumnRange("E:G", 2)
	require.NoError(t, err)
	assert.True(t, iv.Empty())
	assert.Equal(t, 0, iv.Len())
}

func TestDecodeRowRange(t *testing.T) {
	iv, err := DecodeRowRange("2:5", MaxRows)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lo: 1, Hi: 4}, iv)
	assert.Equal(t, 2, iv.First())
	assert.Equal(t, 5, iv.Last())

	iv, err = DecodeRowRange("1:1048576", 20)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lo: 0, Hi: 19}, iv)

	_, err = DecodeRowRange("0:3", MaxRows)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	_, err = DecodeRowRange("A:B", MaxRows)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	_, err = DecodeRowRange("5:2", MaxRows)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeArea(t *testing.T) {
	area, err := DecodeArea("$A$1:$D$10")
	require.NoError(t, err)
	assert.Equal(t, Area{Top: 1, Left: 1, Bottom: 10, Right: 4}, area)
	assert.Equal(t, "A1:D10", area.String())
	assert.Equal(t, Interval{Lo: 0, Hi: 9}, area.Rows())
	assert.Equal(t, Interval{Lo: 0, Hi: 3}, area.Columns())

	area, err = DecodeArea("D10:A1")
	require.NoError(t, err)
	assert.Equal(t, Area{Top: 1, Left: 1, Bottom: 10, Right: 4}, area)

	area, err = DecodeArea("B2")
	require.NoError(t, err)
	assert.Equal(t, Area{Top: 2, Left: 2, Bottom: 2, Right: 2}, area)

	_, err = DecodeArea("A1:")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Lo: 2, Hi: 4}
	assert.False(t, iv.Contains(1))
	assert.True(t, iv.Contains(2))
	assert.True(t, iv.Contains(4))
	assert.False(t, iv.Contains(5))
	assert.Equal(t, "[2,4]", iv.String())
}
