package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "sheetreport/internal/errors"
)

const meterName = "sheetreport/spreadsheet"

// Workbook is an excelize backed Gateway for one record type.
type Workbook[T any] struct {
	schema  Schema[T]
	logger  *slog.Logger
	written metric.Int64Counter
	read    metric.Int64Counter
}

var _ Gateway[struct{}] = (*Workbook[struct{}])(nil)

// NewWorkbook creates a gateway for schema. A nil logger falls back to slog.Default.
// It panics on a malformed schema, which is a programming error.
func NewWorkbook[T any](schema Schema[T], logger *slog.Logger) *Workbook[T] {
	if err := schema.check(); err != nil {
		panic(fmt.Sprintf("spreadsheet: %v", err))
	}
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter(meterName)
	written, _ := meter.Int64Counter("spreadsheet_rows_written_total",
		metric.WithDescription("Rows written to workbooks"),
		metric.WithUnit("{row}"))
	read, _ := meter.Int64Counter("spreadsheet_rows_read_total",
		metric.WithDescription("Rows decoded from workbooks"),
		metric.WithUnit("{row}"))

	return &Workbook[T]{
		schema:  schema,
		logger:  logger.With(slog.String("component", "workbook"), slog.String("sheet", schema.SheetName)),
		written: written,
		read:    read,
	}
}

// Schema returns the layout this workbook reads and writes.
func (w *Workbook[T]) Schema() Schema[T] {
	return w.schema
}

// Write replaces the file at path with a single sheet holding a bold header row
// and one row per record. The parent directory is created when missing and the
// file is swapped in atomically.
func (w *Workbook[T]) Write(ctx context.Context, records []T, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := w.schema.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return apperrors.NewSerializationError("failed to name sheet", err).WithContext("sheet", sheet)
	}

	if err := w.writeHeader(f); err != nil {
		return err
	}

	for i, record := range records {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := w.writeRow(f, i+2, record); err != nil {
			return err
		}
	}

	if err := w.save(f, path); err != nil {
		return err
	}

	w.written.Add(ctx, int64(len(records)), metric.WithAttributes(attribute.String("sheet", sheet)))
	w.logger.DebugContext(ctx, "workbook written",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return nil
}

func (w *Workbook[T]) writeRow(f *excelize.File, rowNum int, record T) error {
	sheet := w.schema.SheetName
	row := make([]any, len(w.schema.Columns))
	numeric := make(map[int]NumericText)
	for j, c := range w.schema.Columns {
		v := c.Get(record)
		if n, ok := v.(NumericText); ok {
			numeric[j] = n
			v = nil
		}
		row[j] = v
	}

	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return apperrors.NewSerializationError("failed to address row", err)
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return apperrors.NewSerializationError(fmt.Sprintf("failed to write row %d", rowNum), err).
			WithContext("sheet", sheet).WithContext("row", rowNum)
	}

	// SetCellDefault stores numeric text verbatim as a number cell.
	for j, n := range numeric {
		if cell, err = excelize.CoordinatesToCellName(j+1, rowNum); err == nil {
			err = f.SetCellDefault(sheet, cell, string(n))
		}
		if err != nil {
			return apperrors.NewSerializationError(fmt.Sprintf("failed to write row %d", rowNum), err).
				WithContext("sheet", sheet).WithContext("row", rowNum).
				WithContext("column", w.schema.Columns[j].Header)
		}
	}
	return nil
}

func (w *Workbook[T]) writeHeader(f *excelize.File) error {
	sheet := w.schema.SheetName
	row := w.schema.headerRow()
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return apperrors.NewSerializationError("failed to write header row", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return apperrors.NewSerializationError("failed to create header style", err)
	}
	lastCell, err := excelize.CoordinatesToCellName(len(row), 1)
	if err != nil {
		return apperrors.NewSerializationError("failed to address header row", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCell, style); err != nil {
		return apperrors.NewSerializationError("failed to style header row", err)
	}

	for i, c := range w.schema.Columns {
		if c.Width <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return apperrors.NewSerializationError("failed to address column", err)
		}
		if err := f.SetColWidth(sheet, col, col, c.Width); err != nil {
			return apperrors.NewSerializationError("failed to set column width", err).WithContext("column", c.Header)
		}
	}
	return nil
}

func (w *Workbook[T]) save(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewIOError("failed to create output directory", err).WithContext("path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.xlsx")
	if err != nil {
		return apperrors.NewIOError("failed to create temporary workbook", err).WithContext("path", dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return apperrors.NewIOError("failed to write workbook", err).WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewIOError("failed to flush workbook", err).WithContext("path", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return apperrors.NewIOError("failed to replace workbook", err).WithContext("path", path)
	}
	return nil
}

// Read decodes every non-empty data row of the schema's sheet, falling back to
// the first sheet when no sheet carries the schema's name. Headers are matched
// case-insensitively and in any order.
func (w *Workbook[T]) Read(ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		// Failures opening the file itself surface as *fs.PathError; anything
		// else means the bytes on disk are not an xlsx package.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, apperrors.NewIOError("failed to open workbook", err).WithContext("path", path)
		}
		return nil, apperrors.NewSerializationError("file is not a valid workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheet, ok := w.resolveSheet(f)
	if !ok {
		return nil, apperrors.NewSerializationError("workbook has no sheets", nil).WithContext("path", path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewIOError("failed to read rows", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}

	records := make([]T, 0, max(len(rows)-1, 0))
	if len(rows) == 0 {
		return records, nil
	}

	index, err := w.schema.columnIndex(rows[0])
	if err != nil {
		return nil, apperrors.NewSerializationError("unexpected header layout", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}

	for i, row := range rows[1:] {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if isEmptyRow(row) {
			continue
		}
		rowNum := i + 2
		record, err := w.decodeRow(row, index)
		if err != nil {
			return nil, apperrors.NewSerializationError(fmt.Sprintf("failed to decode row %d", rowNum), err).
				WithContext("path", path).
				WithContext("row", rowNum)
		}
		records = append(records, record)
	}

	w.read.Add(ctx, int64(len(records)), metric.WithAttributes(attribute.String("sheet", sheet)))
	w.logger.DebugContext(ctx, "workbook read",
		slog.String("path", path),
		slog.String("resolved_sheet", sheet),
		slog.Int("rows", len(records)))
	return records, nil
}

func (w *Workbook[T]) resolveSheet(f *excelize.File) (string, bool) {
	if idx, err := f.GetSheetIndex(w.schema.SheetName); err == nil && idx >= 0 {
		return w.schema.SheetName, true
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", false
	}
	w.logger.Debug("sheet not found, using first sheet", slog.String("first_sheet", sheets[0]))
	return sheets[0], true
}

func (w *Workbook[T]) decodeRow(row []string, index []int) (T, error) {
	var record T
	for i, c := range w.schema.Columns {
		raw := ""
		if pos := index[i]; pos >= 0 && pos < len(row) {
			raw = strings.TrimSpace(row[pos])
		}
		if raw == "" {
			raw = c.Default
		}
		if err := c.Set(&record, raw); err != nil {
			return record, fmt.Errorf("column %q: %w", c.Header, err)
		}
	}
	if w.schema.Validate != nil {
		if err := w.schema.Validate(record); err != nil {
			return record, apperrors.FromDomain(err)
		}
	}
	return record, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// IsMissing reports whether err was caused by a workbook file that does not exist.
func IsMissing(err error) bool {
	return apperrors.IsType(err, apperrors.ErrTypeIO) && errors.Is(err, os.ErrNotExist)
}
