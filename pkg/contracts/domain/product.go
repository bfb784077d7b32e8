package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock quantity below which a product counts as low stock.
const LowStockThreshold = 10

// PriceCategory buckets a product by unit price.
type PriceCategory string

const (
	PriceCategoryBudget   PriceCategory = "Budget"
	PriceCategoryMidRange PriceCategory = "Mid-range"
	PriceCategoryPremium  PriceCategory = "Premium"
)

var (
	budgetCeiling   = decimal.NewFromInt(100)
	midRangeCeiling = decimal.NewFromInt(1000)
)

// Product is an inventory item. Values are treated as immutable once built;
// derived properties are pure functions of the stored fields.
type Product struct {
	ID            *int64          `json:"id,omitempty"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewProduct builds a validated product without an ID.
func NewProduct(name, category string, price decimal.Decimal, stockQuantity int, isActive bool, createdAt time.Time) (Product, error) {
	p := Product{
		Name:          name,
		Category:      category,
		Price:         price,
		StockQuantity: stockQuantity,
		IsActive:      isActive,
		CreatedAt:     createdAt,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// WithID returns a copy of the product carrying the given identifier.
func (p Product) WithID(id int64) Product {
	p.ID = &id
	return p
}

// Validate rejects products with an empty name, a negative price or a negative stock quantity.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return newFieldError("name", "must not be empty")
	}
	if p.Price.IsNegative() {
		return newFieldError("price", fmt.Sprintf("must not be negative, got %s", p.Price.String()))
	}
	if p.StockQuantity < 0 {
		return newFieldError("stock_quantity", fmt.Sprintf("must not be negative, got %d", p.StockQuantity))
	}
	return nil
}

// IsLowStock reports whether fewer than LowStockThreshold units remain.
func (p Product) IsLowStock() bool {
	return p.StockQuantity < LowStockThreshold
}

// TotalValue is price × stock quantity, exact and unrounded.
func (p Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}

// DisplayName renders "[category] name".
func (p Product) DisplayName() string {
	return fmt.Sprintf("[%s] %s", p.Category, p.Name)
}

// PriceCategory classifies the unit price.
func (p Product) PriceCategory() PriceCategory {
	switch {
	case p.Price.LessThan(budgetCeiling):
		return PriceCategoryBudget
	case p.Price.LessThan(midRangeCeiling):
		return PriceCategoryMidRange
	default:
		return PriceCategoryPremium
	}
}

// Equal compares products field by field, prices by numeric value.
func (p Product) Equal(o Product) bool {
	if (p.ID == nil) != (o.ID == nil) || (p.ID != nil && *p.ID != *o.ID) {
		return false
	}
	return p.Name == o.Name &&
		p.Category == o.Category &&
		p.Price.Equal(o.Price) &&
		p.StockQuantity == o.StockQuantity &&
		p.IsActive == o.IsActive &&
		p.CreatedAt.Equal(o.CreatedAt)
}
