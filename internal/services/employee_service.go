package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"sheetreport/internal/analytics"
	"sheetreport/internal/spreadsheet"
	"sheetreport/pkg/contracts/domain"
)

// EmployeeService persists employee lists and reports on them.
type EmployeeService struct {
	store  workbookStore[domain.Employee]
	logger *slog.Logger
}

// NewEmployeeService creates an employee service on top of gateway.
func NewEmployeeService(gateway spreadsheet.Gateway[domain.Employee], logger *slog.Logger) *EmployeeService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("service", "employee"))
	return &EmployeeService{
		store:  newWorkbookStore(gateway, "employees", logger),
		logger: logger,
	}
}

// SaveEmployees writes employees to the workbook at path.
func (s *EmployeeService) SaveEmployees(ctx context.Context, employees []domain.Employee, path string) error {
	return s.store.save(ctx, employees, path)
}

// ReadEmployees loads every employee from the workbook at path.
func (s *EmployeeService) ReadEmployees(ctx context.Context, path string) ([]domain.Employee, error) {
	return s.store.read(ctx, path)
}

// SaveByDepartment writes the employees of one department to path. Nothing is
// written when the department has no employees and saved is false.
func (s *EmployeeService) SaveByDepartment(ctx context.Context, employees []domain.Employee, department, path string) (bool, error) {
	return s.saveSubset(ctx, analytics.FilterByDepartment(employees, department), path,
		slog.String("department", department))
}

// SaveBySalaryGrade writes the employees of one salary grade to path. Nothing
// is written when the grade has no employees and saved is false.
func (s *EmployeeService) SaveBySalaryGrade(ctx context.Context, employees []domain.Employee, grade domain.SalaryGrade, path string) (bool, error) {
	return s.saveSubset(ctx, analytics.FilterBySalaryGrade(employees, grade), path,
		slog.String("salary_grade", string(grade)))
}

func (s *EmployeeService) saveSubset(ctx context.Context, subset []domain.Employee, path string, filter slog.Attr) (bool, error) {
	if len(subset) == 0 {
		s.logger.InfoContext(ctx, "No employees matched, skipping workbook",
			filter,
			slog.String("path", path))
		return false, nil
	}
	if err := s.store.save(ctx, subset, path); err != nil {
		return false, err
	}
	return true, nil
}

// HighSalaryEmployees returns employees earning at least threshold per month.
func (s *EmployeeService) HighSalaryEmployees(employees []domain.Employee, threshold decimal.Decimal) []domain.Employee {
	return analytics.FilterHighSalary(employees, threshold)
}

// DepartmentStatistics summarizes headcount and salaries per department.
func (s *EmployeeService) DepartmentStatistics(employees []domain.Employee) map[string]analytics.DepartmentStats {
	return analytics.DepartmentStatistics(employees)
}

// SalaryGradeDistribution counts employees per salary grade.
func (s *EmployeeService) SalaryGradeDistribution(employees []domain.Employee) map[domain.SalaryGrade]int {
	return analytics.SalaryGradeDistribution(employees)
}

// TotalAnnualSalaryExpense is twelve months of every salary combined.
func (s *EmployeeService) TotalAnnualSalaryExpense(employees []domain.Employee) decimal.Decimal {
	return analytics.TotalAnnualSalaryExpense(employees)
}
