package exporter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetreport/internal/analytics"
	"sheetreport/internal/shared/testutil"
	"sheetreport/pkg/contracts/domain"
)

func newTestExporter(t *testing.T) (*StatisticsExporter, *testutil.BufferedSlogHandler) {
	t.Helper()
	writer, _ := setupTestEnv(t)
	logger, logs := testutil.NewTestLogger(t)
	return NewStatisticsExporter(writer, logger), logs
}

func TestExportProductStatistics(t *testing.T) {
	exp, logs := newTestExporter(t)

	path, err := exp.ExportProductStatistics(context.Background(), "product_statistics.csv",
		analytics.ProductStatistics(testutil.Products()))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		ProductStatisticsHeaders,
		{"5", "57572.52", "925.59", "65", "4", "2", "2"},
	}, readCSV(t, path))
	testutil.AssertLogAttr(t, logs, "path", path)
	testutil.AssertLogAttr(t, logs, "component", "statistics_exporter")
}

func TestExportCategoryStatistics_SortedByCategory(t *testing.T) {
	exp, _ := newTestExporter(t)

	path, err := exp.ExportCategoryStatistics(context.Background(), "categories.csv",
		analytics.CategoryStatistics(testutil.Products()))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		CategoryStatisticsHeaders,
		{"Accessory", "1", "639.92", "79.99", "8", "1"},
		{"Audio", "1", "6249.75", "249.99", "25", "0"},
		{"Laptop", "1", "37499.85", "2499.99", "15", "0"},
		{"Smartphone", "1", "5995.00", "1199.00", "5", "1"},
		{"Tablet", "1", "7188.00", "599.00", "12", "0"},
	}, readCSV(t, path))
}

func TestExportMajorStatistics(t *testing.T) {
	exp, _ := newTestExporter(t)

	path, err := exp.ExportMajorStatistics(context.Background(), "majors.csv",
		analytics.MajorStatistics(testutil.Students()))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		MajorStatisticsHeaders,
		{"Biology", "1", "3.60", "1", "0"},
		{"Computer Science", "2", "3.85", "2", "2"},
		{"Mechanical Engineering", "2", "3.30", "0", "1"},
	}, readCSV(t, path))
}

func TestExportDepartmentStatistics(t *testing.T) {
	exp, _ := newTestExporter(t)

	path, err := exp.ExportDepartmentStatistics(context.Background(), "departments.csv",
		analytics.DepartmentStatistics(testutil.Employees()))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		DepartmentStatisticsHeaders,
		{"BRM", "2", "86000.38", "172000.75", "0"},
		{"Card", "3", "81000.08", "243000.25", "0"},
		{"Remittance", "1", "65000.00", "65000.00", "0"},
		{"UI/UX", "1", "72000.50", "72000.50", "0"},
	}, readCSV(t, path))
}

func TestExportSalaryGradeDistribution(t *testing.T) {
	exp, _ := newTestExporter(t)

	path, err := exp.ExportSalaryGradeDistribution(context.Background(), "grades.csv",
		analytics.SalaryGradeDistribution(testutil.Employees()))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		SalaryGradeHeaders,
		{"Senior", "0"},
		{"Mid", "6"},
		{"Junior", "1"},
	}, readCSV(t, path))
}

func TestExportGroupedStatistics_Empty(t *testing.T) {
	exp, _ := newTestExporter(t)
	ctx := context.Background()

	path, err := exp.ExportCategoryStatistics(ctx, "empty.csv", analytics.CategoryStatistics(nil))
	require.NoError(t, err)
	assert.Equal(t, [][]string{CategoryStatisticsHeaders}, readCSV(t, path))

	path, err = exp.ExportProductStatistics(ctx, "empty_products.csv", analytics.ProductStatistics(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0.00", "0.00", "0", "0", "0", "0"}, readCSV(t, path)[1])
}

func TestExportProducts(t *testing.T) {
	exp, _ := newTestExporter(t)

	products := analytics.FilterLowStock(testutil.Products())
	products = append(products, domain.Product{Name: "Unsaved", Category: "Misc", StockQuantity: 10})

	path, err := exp.ExportProducts(context.Background(), "output/low_stock.csv", products)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		ProductListingHeaders,
		{"2", "iPhone 15 Pro", "Smartphone", "1199.00", "5", "Premium", "true", "5995.00"},
		{"4", "Magic Mouse", "Accessory", "79.99", "8", "Budget", "true", "639.92"},
		{"", "Unsaved", "Misc", "0.00", "10", "Budget", "false", "0.00"},
	}, readCSV(t, path))
}

func TestExportProducts_Canceled(t *testing.T) {
	exp, _ := newTestExporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exp.ExportProducts(ctx, "canceled.csv", testutil.Products())
	assert.ErrorIs(t, err, context.Canceled)
}
