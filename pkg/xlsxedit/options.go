// Package xlsxedit opens xlsx workbooks, edits cell values, formats, column
// widths and row heights in memory, and writes the workbook back leaving
// everything that was not edited as it was.
package xlsxedit

import "log/slog"

// Mode represents the export mode.
type Mode string

const (
	// ModeLight exports cell values and table candidates only.
	ModeLight Mode = "light"
	// ModeStandard also exports column settings, row heights and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose exports everything including cell hyperlinks, cell style
	// indices and the resolved style table.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, true
	}
	return "", false
}

// Options configures workbook loading and export.
type Options struct {
	// Mode specifies the export mode (light, standard, verbose).
	Mode Mode
	// IncludeLinks specifies whether to include cell hyperlinks.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeLinks *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
	// Logger receives debug and warning records. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeLinks returns whether to include cell hyperlinks.
func (o Options) ShouldIncludeLinks() bool {
	if o.IncludeLinks != nil {
		return *o.IncludeLinks
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

// ShouldIncludeLayout returns whether to include column settings and row heights.
func (o Options) ShouldIncludeLayout() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeStyles returns whether to include cell style indices and the
// style table.
func (o Options) ShouldIncludeStyles() bool {
	return o.Mode == ModeVerbose
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
