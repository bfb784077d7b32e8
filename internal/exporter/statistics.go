package exporter

import (
	"context"
	"log/slog"

	"sheetreport/internal/analytics"
	"sheetreport/pkg/contracts/domain"
)

// Column layouts of the exported reports.
var (
	ProductStatisticsHeaders = []string{
		"Total Products", "Total Value", "Average Price", "Total Stock",
		"Active Products", "Low Stock Count", "Premium Products",
	}
	CategoryStatisticsHeaders = []string{
		"Category", "Count", "Total Value", "Average Price", "Total Stock", "Low Stock Count",
	}
	MajorStatisticsHeaders = []string{
		"Major", "Count", "Average GPA", "Honor Students", "Scholarship Students",
	}
	DepartmentStatisticsHeaders = []string{
		"Department", "Count", "Average Salary", "Total Salary", "Senior Count",
	}
	SalaryGradeHeaders = []string{"Salary Grade", "Employees"}
	ProductListingHeaders = []string{
		"Product ID", "Product Name", "Category", "Price", "Stock Quantity",
		"Price Category", "Low Stock", "Total Value",
	}
)

// StatisticsExporter renders analytics results as CSV reports.
type StatisticsExporter struct {
	writer *CSVWriter
	logger *slog.Logger
}

// NewStatisticsExporter creates an exporter writing through writer.
func NewStatisticsExporter(writer *CSVWriter, logger *slog.Logger) *StatisticsExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatisticsExporter{
		writer: writer,
		logger: logger.With(slog.String("component", "statistics_exporter")),
	}
}

// ExportProductStatistics writes the overall product summary as a single row.
func (e *StatisticsExporter) ExportProductStatistics(ctx context.Context, name string, stats analytics.ProductStats) (string, error) {
	return e.write(ctx, name, ProductStatisticsHeaders, [][]string{{
		formatInt(stats.TotalProducts),
		formatDecimal(stats.TotalValue),
		formatDecimal(stats.AveragePrice),
		formatInt(stats.TotalStock),
		formatInt(stats.ActiveProducts),
		formatInt(stats.LowStockCount),
		formatInt(stats.PremiumProductCount),
	}})
}

// ExportCategoryStatistics writes one row per category.
func (e *StatisticsExporter) ExportCategoryStatistics(ctx context.Context, name string, stats map[string]analytics.CategoryStats) (string, error) {
	rows := make([][]string, 0, len(stats))
	for _, category := range analytics.SortedKeys(stats) {
		s := stats[category]
		rows = append(rows, []string{
			category,
			formatInt(s.Count),
			formatDecimal(s.TotalValue),
			formatDecimal(s.AveragePrice),
			formatInt(s.TotalStock),
			formatInt(s.LowStockCount),
		})
	}
	return e.write(ctx, name, CategoryStatisticsHeaders, rows)
}

// ExportMajorStatistics writes one row per major.
func (e *StatisticsExporter) ExportMajorStatistics(ctx context.Context, name string, stats map[string]analytics.MajorStats) (string, error) {
	rows := make([][]string, 0, len(stats))
	for _, major := range analytics.SortedKeys(stats) {
		s := stats[major]
		rows = append(rows, []string{
			major,
			formatInt(s.Count),
			formatFloat(s.AverageGPA),
			formatInt(s.HonorStudents),
			formatInt(s.ScholarshipStudents),
		})
	}
	return e.write(ctx, name, MajorStatisticsHeaders, rows)
}

// ExportDepartmentStatistics writes one row per department.
func (e *StatisticsExporter) ExportDepartmentStatistics(ctx context.Context, name string, stats map[string]analytics.DepartmentStats) (string, error) {
	rows := make([][]string, 0, len(stats))
	for _, department := range analytics.SortedKeys(stats) {
		s := stats[department]
		rows = append(rows, []string{
			department,
			formatInt(s.Count),
			formatDecimal(s.AverageSalary),
			formatDecimal(s.TotalSalary),
			formatInt(s.SeniorCount),
		})
	}
	return e.write(ctx, name, DepartmentStatisticsHeaders, rows)
}

// ExportSalaryGradeDistribution writes the grade counts from Senior down to Junior.
func (e *StatisticsExporter) ExportSalaryGradeDistribution(ctx context.Context, name string, distribution map[domain.SalaryGrade]int) (string, error) {
	rows := make([][]string, 0, len(domain.SalaryGrades))
	for _, grade := range domain.SalaryGrades {
		rows = append(rows, []string{string(grade), formatInt(distribution[grade])})
	}
	return e.write(ctx, name, SalaryGradeHeaders, rows)
}

// ExportProducts streams a product listing with derived columns, in input order.
func (e *StatisticsExporter) ExportProducts(ctx context.Context, name string, products []domain.Product) (string, error) {
	stream, err := e.writer.CreateStreamWriter(ctx, name, ProductListingHeaders)
	if err != nil {
		return "", err
	}

	for _, p := range products {
		if err := ctx.Err(); err != nil {
			stream.Close()
			return stream.Path(), err
		}
		if err := stream.WriteRecord([]string{
			formatID(p.ID),
			p.Name,
			p.Category,
			formatDecimal(p.Price),
			formatInt(p.StockQuantity),
			string(p.PriceCategory()),
			formatBool(p.IsLowStock()),
			formatDecimal(p.TotalValue()),
		}); err != nil {
			stream.Close()
			return stream.Path(), err
		}
	}

	if err := stream.Close(); err != nil {
		return stream.Path(), err
	}

	e.logger.InfoContext(ctx, "product listing exported",
		slog.String("path", stream.Path()),
		slog.Int("rows", len(products)))
	return stream.Path(), nil
}

func (e *StatisticsExporter) write(ctx context.Context, name string, headers []string, rows [][]string) (string, error) {
	path, err := e.writer.WriteSimpleCSV(ctx, name, headers, rows)
	if err != nil {
		e.logger.ErrorContext(ctx, "statistics export failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return path, err
	}

	e.logger.InfoContext(ctx, "statistics exported",
		slog.String("path", path),
		slog.Int("rows", len(rows)))
	return path, nil
}
