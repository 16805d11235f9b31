package sheetdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds(c *Columns) [][2]int {
	var out [][2]int
	for _, sp := range c.Spans() {
		out = append(out, [2]int{sp.Min, sp.Max})
	}
	return out
}

func TestColumnsLaterWriteWins(t *testing.T) {
	var c Columns
	c.Set(2, 4, func(p *ColumnProps) { p.Style = 1 })
	c.Set(3, 3, func(p *ColumnProps) { p.Style = 2 })

	for col, want := range map[int]int{2: 1, 3: 2, 4: 1} {
		props, ok := c.Get(col)
		require.True(t, ok, "column %d", col)
		assert.Equal(t, want, props.Style, "column %d", col)
	}
	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(5)
	assert.False(t, ok)

	assert.Equal(t, [][2]int{{2, 2}, {3, 3}, {4, 4}}, bounds(&c))
}

func TestColumnsFillGaps(t *testing.T) {
	var c Columns
	c.Restore(2, 2, ColumnProps{Width: 5})
	c.Restore(6, 7, ColumnProps{Width: 8})

	c.Set(1, 9, func(p *ColumnProps) { p.Hidden = true })

	for col := 1; col <= 9; col++ {
		props, ok := c.Get(col)
		require.True(t, ok, "column %d", col)
		assert.True(t, props.Hidden, "column %d", col)
	}
	props, _ := c.Get(2)
	assert.Equal(t, 5.0, props.Width)
	props, _ = c.Get(7)
	assert.Equal(t, 8.0, props.Width)
	assert.Equal(t, [][2]int{{1, 1}, {2, 2}, {3, 5}, {6, 7}, {8, 9}}, bounds(&c))
	assert.Equal(t, 9, c.Max())
}

func TestColumnsSplitAndMerge(t *testing.T) {
	var c Columns
	c.Restore(1, 10, ColumnProps{Width: 9})

	c.Set(4, 5, func(p *ColumnProps) { p.Width = 20 })
	assert.Equal(t, [][2]int{{1, 3}, {4, 5}, {6, 10}}, bounds(&c))
	assert.True(t, c.Dirty())
	assert.Equal(t, Change(0), c.Spans()[0].Changes())
	assert.True(t, c.Spans()[1].Changes().Has(ChangeWidth))

	c.Set(4, 5, func(p *ColumnProps) { p.Width = 9 })
	c.MarkClean()
	assert.False(t, c.Dirty())
	assert.Equal(t, [][2]int{{1, 10}}, bounds(&c))
}
