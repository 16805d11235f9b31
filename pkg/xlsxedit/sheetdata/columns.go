package sheetdata

import "sort"

// ColumnProps are the settings shared by a run of columns. A zero Width
// means the default width.
type ColumnProps struct {
	Width        float64
	Style        int
	Hidden       bool
	OutlineLevel uint8
	Collapsed    bool
}

// ColumnSpan is a run of columns min..max (1-based, inclusive) with equal
// settings, as stored in a worksheet's <cols> element.
type ColumnSpan struct {
	Min     int
	Max     int
	Props   ColumnProps
	changes Change
}

// Changes reports what changed in the span since the last MarkClean.
func (sp ColumnSpan) Changes() Change { return sp.changes }

// Columns keeps ordered, non-overlapping column spans. Setting a range
// splits the spans it cuts so that later writes win per column.
type Columns struct {
	spans []ColumnSpan
}

// Spans returns the spans in ascending order. The slice must not be modified.
func (c *Columns) Spans() []ColumnSpan { return c.spans }

// Max returns the last column with a setting, or 0.
func (c *Columns) Max() int {
	if len(c.spans) == 0 {
		return 0
	}
	return c.spans[len(c.spans)-1].Max
}

// Get returns the settings of col.
func (c *Columns) Get(col int) (ColumnProps, bool) {
	i := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].Max >= col })
	if i < len(c.spans) && c.spans[i].Min <= col {
		return c.spans[i].Props, true
	}
	return ColumnProps{}, false
}

// Restore records a span read from a document without marking it changed.
// Spans must be restored in ascending, non-overlapping order.
func (c *Columns) Restore(lo, hi int, props ColumnProps) {
	c.spans = append(c.spans, ColumnSpan{Min: lo, Max: hi, Props: props})
}

// Set applies fn to the settings of every column in lo..hi (1-based,
// inclusive), creating settings for columns that had none.
func (c *Columns) Set(lo, hi int, fn func(*ColumnProps)) {
	apply := func(sp ColumnSpan) ColumnSpan {
		before := sp.Props
		fn(&sp.Props)
		sp.changes |= diffProps(before, sp.Props)
		return sp
	}

	i := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].Max >= lo })
	out := make([]ColumnSpan, 0, len(c.spans)+2)
	out = append(out, c.spans[:i]...)

	var tail []ColumnSpan
	next := lo
	for ; i < len(c.spans) && c.spans[i].Min <= hi; i++ {
		sp := c.spans[i]
		if sp.Min < lo {
			left := sp
			left.Max = lo - 1
			out = append(out, left)
			sp.Min = lo
		}
		if sp.Min > next {
			out = append(out, apply(ColumnSpan{Min: next, Max: sp.Min - 1}))
		}
		if sp.Max > hi {
			right := sp
			right.Min = hi + 1
			tail = append(tail, right)
			sp.Max = hi
		}
		out = append(out, apply(sp))
		next = sp.Max + 1
	}
	if next <= hi {
		out = append(out, apply(ColumnSpan{Min: next, Max: hi}))
	}
	out = append(out, tail...)
	out = append(out, c.spans[i:]...)
	c.spans = mergeSpans(out)
}

// diffProps returns the change flags between two settings.
func diffProps(a, b ColumnProps) Change {
	var ch Change
	if a.Width != b.Width {
		ch |= ChangeWidth
	}
	if a.Style != b.Style {
		ch |= ChangeStyle
	}
	if a.Hidden != b.Hidden {
		ch |= ChangeHidden
	}
	if a.OutlineLevel != b.OutlineLevel || a.Collapsed != b.Collapsed {
		ch |= ChangeOutline
	}
	return ch
}

// mergeSpans joins adjacent spans with equal settings and change flags.
func mergeSpans(spans []ColumnSpan) []ColumnSpan {
	if len(spans) < 2 {
		return spans
	}
	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if last.Max+1 == sp.Min && last.Props == sp.Props && last.changes == sp.changes {
			last.Max = sp.Max
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// Dirty reports whether any span changed.
func (c *Columns) Dirty() bool {
	for _, sp := range c.spans {
		if sp.changes != 0 {
			return true
		}
	}
	return false
}

// MarkClean forgets recorded changes and joins spans that only differed by them.
func (c *Columns) MarkClean() {
	for i := range c.spans {
		c.spans[i].changes = 0
	}
	c.spans = mergeSpans(c.spans)
}
