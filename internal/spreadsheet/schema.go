package spreadsheet

import (
	"context"
	"fmt"
	"strings"
)

// Gateway persists records of one type to a spreadsheet file.
type Gateway[T any] interface {
	Write(ctx context.Context, records []T, path string) error
	Read(ctx context.Context, path string) ([]T, error)
}

// Column maps one record field onto one sheet column.
type Column[T any] struct {
	Header string
	Width  float64

	// Default is substituted for empty cells and for an Optional column whose
	// header is absent from the sheet.
	Default  string
	Optional bool

	// Get returns the cell value written for a record.
	Get func(T) any
	// Set parses a raw cell value into the record.
	Set func(*T, string) error
}

// Schema describes the sheet layout of a record type. Column order is write order.
type Schema[T any] struct {
	SheetName string
	Columns   []Column[T]
	// Validate, when set, runs on every decoded record.
	Validate func(T) error
}

// Headers returns the header row in column order.
func (s Schema[T]) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Header
	}
	return headers
}

func (s Schema[T]) check() error {
	if s.SheetName == "" {
		return fmt.Errorf("schema has no sheet name")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("schema %q has no columns", s.SheetName)
	}
	seen := make(map[string]struct{}, len(s.Columns))
	for _, c := range s.Columns {
		key := normalizeHeader(c.Header)
		if key == "" {
			return fmt.Errorf("schema %q has a column without header", s.SheetName)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("schema %q has duplicate header %q", s.SheetName, c.Header)
		}
		if c.Get == nil || c.Set == nil {
			return fmt.Errorf("schema %q column %q needs both Get and Set", s.SheetName, c.Header)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// columnIndex maps each schema column to its position in the header row, or -1
// for an absent optional column.
func (s Schema[T]) columnIndex(headerRow []string) ([]int, error) {
	positions := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		key := normalizeHeader(h)
		if _, ok := positions[key]; !ok && key != "" {
			positions[key] = i
		}
	}

	index := make([]int, len(s.Columns))
	var missing []string
	for i, c := range s.Columns {
		pos, ok := positions[normalizeHeader(c.Header)]
		switch {
		case ok:
			index[i] = pos
		case c.Optional:
			index[i] = -1
		default:
			missing = append(missing, c.Header)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required headers: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func (s Schema[T]) headerRow() []any {
	row := make([]any, len(s.Columns))
	for i, c := range s.Columns {
		row[i] = c.Header
	}
	return row
}
