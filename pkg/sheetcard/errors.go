package sheetcard

import (
	stderrors "errors"
	"fmt"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
)

// Error kinds returned by Load, for use with errors.Is.
var (
	ErrParse     = errors.ErrParse
	ErrConfig    = errors.ErrConfig
	ErrSizeLimit = errors.ErrSizeLimit
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = stderrors.New("file not found")

// SheetError reports a failure while loading one sheet.
type SheetError struct {
	SheetName string
	Stage     string // "rows", "merges", "limits"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// newSheetError creates a new SheetError.
func newSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = stderrors.New("sheet not found")
