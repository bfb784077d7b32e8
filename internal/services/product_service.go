package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"sheetreport/internal/analytics"
	"sheetreport/internal/spreadsheet"
	"sheetreport/pkg/contracts/domain"
)

// ProductService persists product inventories and reports on them.
type ProductService struct {
	store  workbookStore[domain.Product]
	logger *slog.Logger
}

// NewProductService creates a product service on top of gateway.
func NewProductService(gateway spreadsheet.Gateway[domain.Product], logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("service", "product"))
	return &ProductService{
		store:  newWorkbookStore(gateway, "products", logger),
		logger: logger,
	}
}

// SaveProducts writes products to the workbook at path.
func (s *ProductService) SaveProducts(ctx context.Context, products []domain.Product, path string) error {
	return s.store.save(ctx, products, path)
}

// ReadProducts loads every product from the workbook at path.
func (s *ProductService) ReadProducts(ctx context.Context, path string) ([]domain.Product, error) {
	return s.store.read(ctx, path)
}

// LowStockProducts returns the products with fewer than ten units left.
func (s *ProductService) LowStockProducts(products []domain.Product) []domain.Product {
	return analytics.FilterLowStock(products)
}

// ProductsInPriceRange returns the products priced within [minPrice, maxPrice].
func (s *ProductService) ProductsInPriceRange(products []domain.Product, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error) {
	result, err := analytics.FilterByPriceRange(products, minPrice, maxPrice)
	if err != nil {
		s.logger.Warn("Rejected price range",
			slog.String("min_price", minPrice.String()),
			slog.String("max_price", maxPrice.String()))
		return nil, err
	}
	return result, nil
}

// PremiumProducts returns the products in the Premium price band.
func (s *ProductService) PremiumProducts(products []domain.Product) []domain.Product {
	return analytics.FilterPremium(products)
}

// Statistics summarizes the whole inventory.
func (s *ProductService) Statistics(products []domain.Product) analytics.ProductStats {
	return analytics.ProductStatistics(products)
}

// CategoryStatistics summarizes the inventory per category.
func (s *ProductService) CategoryStatistics(products []domain.Product) map[string]analytics.CategoryStats {
	return analytics.CategoryStatistics(products)
}
