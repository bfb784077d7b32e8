package http

import (
	"context"

	"github.com/shopspring/decimal"

	"sheetreport/internal/analytics"
	"sheetreport/pkg/contracts/domain"
)

// ProductReportService is the part of services.ProductService the report API uses.
type ProductReportService interface {
	ReadProducts(ctx context.Context, path string) ([]domain.Product, error)
	LowStockProducts(products []domain.Product) []domain.Product
	ProductsInPriceRange(products []domain.Product, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error)
	PremiumProducts(products []domain.Product) []domain.Product
	Statistics(products []domain.Product) analytics.ProductStats
	CategoryStatistics(products []domain.Product) map[string]analytics.CategoryStats
}

// StudentReportService is the part of services.StudentService the report API uses.
type StudentReportService interface {
	ReadStudents(ctx context.Context, path string) ([]domain.Student, error)
	StudentsByMajor(students []domain.Student, major string) []domain.Student
	HonorStudents(students []domain.Student) []domain.Student
	ScholarshipStudents(students []domain.Student) []domain.Student
	StudentsByGrade(students []domain.Student, grade int) []domain.Student
	MajorStatistics(students []domain.Student) map[string]analytics.MajorStats
}

// EmployeeReportService is the part of services.EmployeeService the report API uses.
type EmployeeReportService interface {
	ReadEmployees(ctx context.Context, path string) ([]domain.Employee, error)
	HighSalaryEmployees(employees []domain.Employee, threshold decimal.Decimal) []domain.Employee
	DepartmentStatistics(employees []domain.Employee) map[string]analytics.DepartmentStats
	SalaryGradeDistribution(employees []domain.Employee) map[domain.SalaryGrade]int
	TotalAnnualSalaryExpense(employees []domain.Employee) decimal.Decimal
}
