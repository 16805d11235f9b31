package models

const (
	// DefaultFontName is the font family of the default format.
	DefaultFontName = "Calibri"
	// DefaultFontSize is the font size in points of the default format.
	DefaultFontSize = 11.0
)

// Format is the logical description of how a cell, row or column looks.
// The zero value is equivalent to DefaultFormat. Formats are comparable with ==.
type Format struct {
	Font         Font         `json:"font"`
	Fill         Fill         `json:"fill"`
	Border       Border       `json:"border"`
	Alignment    Alignment    `json:"alignment"`
	NumberFormat NumberFormat `json:"number_format"`
	Protection   Protection   `json:"protection"`
}

// DefaultFormat returns the format of style index 0 with its defaults spelled out.
func DefaultFormat() Format {
	return Format{
		Font: Font{Name: DefaultFontName, Size: DefaultFontSize},
	}
}

// Font describes the font category. An empty Name or zero Size means the default.
type Font struct {
	Name      string  `json:"name,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Strike    bool    `json:"strike,omitempty"`
	Underline string  `json:"underline,omitempty"`  // single, double
	VertAlign string  `json:"vert_align,omitempty"` // baseline, superscript, subscript
	Color     Color   `json:"color"`
}

// Fill describes the cell background. An empty Pattern means no fill.
type Fill struct {
	Pattern    string `json:"pattern,omitempty"` // solid, gray125, darkGrid, ...
	Foreground Color  `json:"foreground"`
}

// BorderSide is one edge of a Border. An empty Style means no line.
type BorderSide struct {
	Style string `json:"style,omitempty"` // thin, medium, dashed, ...
	Color Color  `json:"color"`
}

// Border describes the cell edges.
type Border struct {
	Left         BorderSide `json:"left"`
	Right        BorderSide `json:"right"`
	Top          BorderSide `json:"top"`
	Bottom       BorderSide `json:"bottom"`
	Diagonal     BorderSide `json:"diagonal"`
	DiagonalUp   bool       `json:"diagonal_up,omitempty"`
	DiagonalDown bool       `json:"diagonal_down,omitempty"`
}

// Alignment describes text placement inside the cell.
type Alignment struct {
	Horizontal      string `json:"horizontal,omitempty"`
	Vertical        string `json:"vertical,omitempty"`
	WrapText        bool   `json:"wrap_text,omitempty"`
	ShrinkToFit     bool   `json:"shrink_to_fit,omitempty"`
	JustifyLastLine bool   `json:"justify_last_line,omitempty"`
	Indent          int    `json:"indent,omitempty"`
	TextRotation    int    `json:"text_rotation,omitempty"`
	ReadingOrder    int    `json:"reading_order,omitempty"` // 0 context, 1 left-to-right, 2 right-to-left
}

// NumberFormat selects how numbers are displayed. Code takes precedence
// over ID; the zero value is "General".
type NumberFormat struct {
	ID   int    `json:"id,omitempty"`
	Code string `json:"code,omitempty"`
}

// Protection describes cell protection. Cells are locked unless Unlocked is set.
type Protection struct {
	Unlocked bool `json:"unlocked,omitempty"`
	Hidden   bool `json:"hidden,omitempty"`
}
