// Package sheetcard loads workbooks into merge-aware grids and presents
// sheets as flat tables or pivoted per-record cards.
package sheetcard

import "runtime"

// Default ceilings applied when Limits fields are zero.
const (
	DefaultMaxFileSize int64 = 10 << 20
	DefaultMaxRows           = 10000
	DefaultMaxCols           = 100
)

// Limits bounds what Load accepts. Zero fields use the defaults;
// negative fields disable the check.
type Limits struct {
	MaxFileSize int64
	MaxRows     int
	MaxCols     int
}

// DefaultLimits returns the default ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxFileSize: DefaultMaxFileSize,
		MaxRows:     DefaultMaxRows,
		MaxCols:     DefaultMaxCols,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxFileSize == 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	if l.MaxRows == 0 {
		l.MaxRows = d.MaxRows
	}
	if l.MaxCols == 0 {
		l.MaxCols = d.MaxCols
	}
	return l
}

// Options configures loading.
type Options struct {
	// BookName names the workbook in the result (e.g. the uploaded file name).
	BookName string
	// Sheets restricts loading to the named sheets. Empty loads every sheet.
	Sheets []string
	// Range restricts every loaded sheet to an A1 range such as "B2:F20".
	Range string
	// UsePrintArea restricts each sheet to its defined print area, if any.
	// Range takes precedence.
	UsePrintArea bool
	// RawValues reads cell values without number formats applied.
	RawValues bool
	// Limits bounds file size and sheet dimensions.
	Limits Limits
	// Concurrency bounds how many sheets are normalized in parallel.
	// If zero, defaults to GOMAXPROCS.
	Concurrency int
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Limits: DefaultLimits(),
	}
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
