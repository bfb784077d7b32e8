package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cell layouts for temporal values. Stored as text so they survive a round trip
// without serial-date conversion.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = time.DateOnly
)

// ParseInt parses an integer cell. Numeric cells written by spreadsheet tools
// may carry a ".0" suffix, which is accepted.
func ParseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return int(f), nil
}

// ParseOptionalID parses an identifier cell; an empty cell yields nil.
func ParseOptionalID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := ParseInt(raw)
	if err != nil {
		return nil, err
	}
	id := int64(v)
	return &id, nil
}

// FormatOptionalID is the cell value for an optional identifier.
func FormatOptionalID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// ParseFloat parses a floating point cell.
func ParseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}

// ParseDecimal parses a monetary cell exactly from its raw text.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a decimal: %q", raw)
	}
	return v, nil
}

// NumericText is a cell value written as a numeric cell holding the exact
// decimal text, so no digits are lost to float64 conversion.
type NumericText string

// FormatDecimal is the numeric cell value for a monetary amount.
func FormatDecimal(d decimal.Decimal) any {
	return NumericText(d.String())
}

// ParseBool accepts 1/0 raw boolean cells as well as true/false text.
func ParseBool(raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("not a boolean: %q", raw)
	}
	return v, nil
}

// ParseTimestamp parses a TimestampLayout cell; an empty cell is the zero time.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	v, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a timestamp: %q", raw)
	}
	return v, nil
}

// FormatTimestamp is the cell value for a timestamp; the zero time is an empty cell.
func FormatTimestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(TimestampLayout)
}

// ParseDate parses a DateLayout cell; an empty cell is the zero time.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	v, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a date: %q", raw)
	}
	return v, nil
}

// FormatDate is the cell value for a date; the zero time is an empty cell.
func FormatDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(DateLayout)
}
