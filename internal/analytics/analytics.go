// Package analytics holds the aggregation engine: pure filters, groupings and
// statistics over product, student and employee records.
//
// Every function is deterministic and never mutates its input. Filters return a
// new slice in input order (empty, never nil). Groupings return maps; use
// SortedKeys when a stable presentation order is needed.
package analytics

import (
	"cmp"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the scale monetary averages are rounded to.
const moneyPlaces = 2

func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// averageMoney divides sum by count rounding half-up to two places; zero when count is zero.
func averageMoney(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(count)), moneyPlaces)
}

// SortedKeys returns the keys of a grouping in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}
