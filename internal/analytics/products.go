package analytics

import (
	"github.com/shopspring/decimal"

	apperrors "sheetreport/internal/errors"
	"sheetreport/pkg/contracts/domain"
)

// ProductStats summarizes a product sequence.
type ProductStats struct {
	TotalProducts       int             `json:"total_products"`
	TotalValue          decimal.Decimal `json:"total_value"`
	AveragePrice        decimal.Decimal `json:"average_price"`
	TotalStock          int             `json:"total_stock"`
	ActiveProducts      int             `json:"active_products"`
	LowStockCount       int             `json:"low_stock_count"`
	PremiumProductCount int             `json:"premium_product_count"`
}

// CategoryStats summarizes the products of one category.
type CategoryStats struct {
	Count         int             `json:"count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	AveragePrice  decimal.Decimal `json:"average_price"`
	TotalStock    int             `json:"total_stock"`
	LowStockCount int             `json:"low_stock_count"`
}

// FilterLowStock returns the products with fewer than domain.LowStockThreshold units.
func FilterLowStock(products []domain.Product) []domain.Product {
	return filter(products, domain.Product.IsLowStock)
}

// FilterByPriceRange returns the products priced within [minPrice, maxPrice].
// Both bounds are inclusive; minPrice greater than maxPrice is an INVALID_RANGE error.
func FilterByPriceRange(products []domain.Product, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error) {
	if minPrice.GreaterThan(maxPrice) {
		return nil, apperrors.NewInvalidRangeError(minPrice.String(), maxPrice.String())
	}
	return filter(products, func(p domain.Product) bool {
		return p.Price.GreaterThanOrEqual(minPrice) && p.Price.LessThanOrEqual(maxPrice)
	}), nil
}

// FilterPremium returns the products in the Premium price category.
func FilterPremium(products []domain.Product) []domain.Product {
	return filter(products, func(p domain.Product) bool {
		return p.PriceCategory() == domain.PriceCategoryPremium
	})
}

// ProductStatistics aggregates a product sequence. Empty input yields all zeros.
func ProductStatistics(products []domain.Product) ProductStats {
	stats := ProductStats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	priceSum := decimal.Zero
	for _, p := range products {
		stats.TotalValue = stats.TotalValue.Add(p.TotalValue())
		priceSum = priceSum.Add(p.Price)
		stats.TotalStock += p.StockQuantity
		if p.IsActive {
			stats.ActiveProducts++
		}
		if p.IsLowStock() {
			stats.LowStockCount++
		}
		if p.PriceCategory() == domain.PriceCategoryPremium {
			stats.PremiumProductCount++
		}
	}
	stats.AveragePrice = averageMoney(priceSum, len(products))
	return stats
}

// CategoryStatistics groups products by category.
func CategoryStatistics(products []domain.Product) map[string]CategoryStats {
	groups := make(map[string][]domain.Product)
	for _, p := range products {
		groups[p.Category] = append(groups[p.Category], p)
	}

	result := make(map[string]CategoryStats, len(groups))
	for category, members := range groups {
		stats := ProductStatistics(members)
		result[category] = CategoryStats{
			Count:         stats.TotalProducts,
			TotalValue:    stats.TotalValue,
			AveragePrice:  stats.AveragePrice,
			TotalStock:    stats.TotalStock,
			LowStockCount: stats.LowStockCount,
		}
	}
	return result
}
