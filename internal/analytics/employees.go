package analytics

import (
	"github.com/shopspring/decimal"

	"sheetreport/pkg/contracts/domain"
)

// DepartmentStats summarizes the employees of one department.
type DepartmentStats struct {
	Count         int             `json:"count"`
	AverageSalary decimal.Decimal `json:"average_salary"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	SeniorCount   int             `json:"senior_count"`
}

// FilterByDepartment returns the employees of the given department.
func FilterByDepartment(employees []domain.Employee, department string) []domain.Employee {
	return filter(employees, func(e domain.Employee) bool { return e.Department == department })
}

// FilterBySalaryGrade returns the employees in the given salary grade.
func FilterBySalaryGrade(employees []domain.Employee, grade domain.SalaryGrade) []domain.Employee {
	return filter(employees, func(e domain.Employee) bool { return e.SalaryGrade() == grade })
}

// FilterHighSalary returns the employees earning at least threshold per month.
func FilterHighSalary(employees []domain.Employee, threshold decimal.Decimal) []domain.Employee {
	return filter(employees, func(e domain.Employee) bool { return e.Salary.GreaterThanOrEqual(threshold) })
}

// DepartmentStatistics groups employees by department.
func DepartmentStatistics(employees []domain.Employee) map[string]DepartmentStats {
	result := make(map[string]DepartmentStats)
	for _, e := range employees {
		stats, ok := result[e.Department]
		if !ok {
			stats.TotalSalary = decimal.Zero
		}
		stats.Count++
		stats.TotalSalary = stats.TotalSalary.Add(e.Salary)
		if e.SalaryGrade() == domain.SalaryGradeSenior {
			stats.SeniorCount++
		}
		result[e.Department] = stats
	}

	for department, stats := range result {
		stats.AverageSalary = averageMoney(stats.TotalSalary, stats.Count)
		result[department] = stats
	}
	return result
}

// TotalAnnualSalaryExpense sums twelve months of salary over all employees.
func TotalAnnualSalaryExpense(employees []domain.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.AnnualSalary())
	}
	return total
}

// SalaryGradeDistribution counts employees per salary grade. Every grade is present.
func SalaryGradeDistribution(employees []domain.Employee) map[domain.SalaryGrade]int {
	dist := make(map[domain.SalaryGrade]int, len(domain.SalaryGrades))
	for _, g := range domain.SalaryGrades {
		dist[g] = 0
	}
	for _, e := range employees {
		dist[e.SalaryGrade()]++
	}
	return dist
}
