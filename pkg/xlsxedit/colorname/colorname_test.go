package colorname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearest(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{0, 0, 0, "black"},
		{255, 255, 255, "white"},
		{250, 10, 5, "red"},
		{200, 200, 190, "silver"},
		{40, 200, 60, "lime"},
		{0, 0, 100, "navy"},
		{130, 120, 130, "gray"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Nearest(tt.r, tt.g, tt.b), "(%d,%d,%d)", tt.r, tt.g, tt.b)
	}
}

func TestNearestExactMatches(t *testing.T) {
	for _, c := range Basic {
		assert.Equal(t, c.Name, Nearest(c.R, c.G, c.B))
	}
}

func TestNearestHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"FF0000", "red", true},
		{"#ffff00", "yellow", true},
		{"FF0000FF", "blue", true},
		{"XYZ", "", false},
		{"GG0000", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NearestHex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
