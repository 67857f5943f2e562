package sheetcard

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/parser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// rawSheet is a sheet as read from excelize, before cleaning.
type rawSheet struct {
	name   string
	values [][]models.Value
	merges []models.Merge
	area   *models.Area
}

// LoadFile loads a workbook from a local file.
// The book name defaults to the file's base name.
func LoadFile(ctx context.Context, path string, opts Options) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.KindParse, ErrFileNotFound, path)
		}
		return nil, errors.Wrap(errors.KindParse, err, "failed to open workbook")
	}
	defer f.Close()

	if opts.BookName == "" {
		opts.BookName = filepath.Base(path)
	}
	return Load(ctx, f, opts)
}

// Load reads a workbook and decodes the selected sheets into cleaned,
// merge-annotated grids.
//
// Errors:
//   - ErrSizeLimit when the data exceeds Limits.MaxFileSize or a cleaned sheet
//     exceeds Limits.MaxRows or Limits.MaxCols
//   - ErrParse when the data is not a workbook, the workbook has no sheets,
//     a requested sheet does not exist or a sheet cannot be decoded
//   - ErrConfig when Options.Range is not a valid A1 range
func Load(ctx context.Context, r io.Reader, opts Options) (wb *models.Workbook, err error) {
	limits := opts.Limits.withDefaults()

	var area *models.Area
	if opts.Range != "" {
		a, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, errors.Wrap(errors.KindConfig, err, "invalid range option")
		}
		area = &a
	}

	data, err := readLimited(r, limits.MaxFileSize)
	if err != nil {
		return nil, err
	}

	f, e := excelize.OpenReader(bytes.NewReader(data))
	if e != nil {
		return nil, errors.Wrap(errors.KindParse, e, "unreadable workbook")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = stderrors.Join(err, cerr)
		}
	}()

	names, err := selectSheets(f, opts.Sheets)
	if err != nil {
		return nil, err
	}

	var printAreas map[string][]models.Area
	if area == nil && opts.UsePrintArea {
		printAreas = parser.ExtractPrintAreas(f)
	}

	raws := make([]rawSheet, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := readRawSheet(f, name, opts.RawValues)
		if err != nil {
			return nil, err
		}
		raw.area = area
		if pa := printAreas[name]; len(pa) > 0 {
			raw.area = &pa[0]
		}
		raws[i] = raw
	}

	sheets := make([]models.Sheet, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sheet, err := normalizeSheet(raws[i], limits)
			if err != nil {
				return err
			}
			sheets[i] = sheet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.Workbook{
		BookName: opts.BookName,
		Sheets:   sheets,
	}, nil
}

// readLimited reads all of r, failing once more than limit bytes arrive.
// A negative limit disables the check.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit < 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(errors.KindParse, err, "failed to read workbook")
		}
		return data, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(errors.KindParse, err, "failed to read workbook")
	}
	if int64(len(data)) > limit {
		return nil, errors.SizeLimit("file exceeds the maximum size of %d bytes", limit)
	}
	return data, nil
}

func selectSheets(f *excelize.File, wanted []string) ([]string, error) {
	all := f.GetSheetList()
	if len(all) == 0 {
		return nil, errors.Parse("workbook contains no sheets")
	}
	if len(wanted) == 0 {
		return all, nil
	}

	known := make(map[string]bool, len(all))
	for _, name := range all {
		known[name] = true
	}
	for _, name := range wanted {
		if !known[name] {
			return nil, errors.Parse("sheet %q not found", name)
		}
	}
	return wanted, nil
}

func readRawSheet(f *excelize.File, name string, raw bool) (rawSheet, error) {
	values, err := parser.ReadSheet(f, name, raw)
	if err != nil {
		return rawSheet{}, errors.Wrap(errors.KindParse, newSheetError(name, "rows", err), "cannot decode workbook")
	}
	merges, err := parser.ReadMerges(f, name)
	if err != nil {
		return rawSheet{}, errors.Wrap(errors.KindParse, newSheetError(name, "merges", err), "cannot decode workbook")
	}
	return rawSheet{name: name, values: values, merges: merges}, nil
}

// normalizeSheet crops, cleans and merge-annotates one sheet.
func normalizeSheet(raw rawSheet, limits Limits) (models.Sheet, error) {
	values, merges := raw.values, raw.merges
	origin := models.Area{R1: 1, C1: 1}
	if raw.area != nil {
		values, merges = parser.Crop(values, merges, *raw.area)
		origin = *raw.area
	}

	values = parser.TrimValues(values)
	rows, cols := len(values), 0
	if rows > 0 {
		cols = len(values[0])
	}
	if limits.MaxRows > 0 && rows > limits.MaxRows {
		return models.Sheet{}, newSheetError(raw.name, "limits",
			errors.SizeLimit("%d rows exceed the maximum of %d", rows, limits.MaxRows))
	}
	if limits.MaxCols > 0 && cols > limits.MaxCols {
		return models.Sheet{}, newSheetError(raw.name, "limits",
			errors.SizeLimit("%d columns exceed the maximum of %d", cols, limits.MaxCols))
	}

	grid, applied, skipped := parser.BuildGrid(values, merges)
	return models.Sheet{
		Name:          raw.name,
		Grid:          grid,
		Merges:        applied,
		SkippedMerges: skipped,
		Dimension:     parser.Dimension(origin, rows, cols),
	}, nil
}
