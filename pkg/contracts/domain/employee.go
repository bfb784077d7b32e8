package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SalaryGrade buckets an employee by monthly salary.
type SalaryGrade string

const (
	SalaryGradeSenior SalaryGrade = "Senior"
	SalaryGradeMid    SalaryGrade = "Mid"
	SalaryGradeJunior SalaryGrade = "Junior"
)

// SalaryGrades lists every grade from highest to lowest.
var SalaryGrades = []SalaryGrade{SalaryGradeSenior, SalaryGradeMid, SalaryGradeJunior}

var (
	seniorSalaryFloor = decimal.NewFromInt(100000)
	midSalaryFloor    = decimal.NewFromInt(70000)
	monthsPerYear     = decimal.NewFromInt(12)
	salaryPrinter     = message.NewPrinter(language.English)
)

// Employee is a staff record with a monthly salary.
type Employee struct {
	ID          *int64          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Department  string          `json:"department"`
	Salary      decimal.Decimal `json:"salary"`
	HireDate    time.Time       `json:"hire_date"`
	LastUpdated time.Time       `json:"last_updated"`
}

// NewEmployee builds a validated employee without an ID.
func NewEmployee(name, department string, salary decimal.Decimal, hireDate, lastUpdated time.Time) (Employee, error) {
	e := Employee{
		Name:        name,
		Department:  department,
		Salary:      salary,
		HireDate:    hireDate,
		LastUpdated: lastUpdated,
	}
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// WithID returns a copy of the employee carrying the given identifier.
func (e Employee) WithID(id int64) Employee {
	e.ID = &id
	return e
}

// Validate rejects employees with an empty name or a negative salary.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return newFieldError("name", "must not be empty")
	}
	if e.Salary.IsNegative() {
		return newFieldError("salary", fmt.Sprintf("must not be negative, got %s", e.Salary.String()))
	}
	return nil
}

// AnnualSalary is twelve months of salary, exact.
func (e Employee) AnnualSalary() decimal.Decimal {
	return e.Salary.Mul(monthsPerYear)
}

// SalaryGrade classifies the monthly salary.
func (e Employee) SalaryGrade() SalaryGrade {
	switch {
	case e.Salary.GreaterThanOrEqual(seniorSalaryFloor):
		return SalaryGradeSenior
	case e.Salary.GreaterThanOrEqual(midSalaryFloor):
		return SalaryGradeMid
	default:
		return SalaryGradeJunior
	}
}

// ServiceYears counts completed years between the hire date and now.
func (e Employee) ServiceYears(now time.Time) int {
	years := now.Year() - e.HireDate.Year()
	if now.Month() < e.HireDate.Month() ||
		(now.Month() == e.HireDate.Month() && now.Day() < e.HireDate.Day()) {
		years--
	}
	return years
}

// FormattedSalary renders the whole part of the salary as "$85,000".
func (e Employee) FormattedSalary() string {
	return salaryPrinter.Sprintf("$%d", e.Salary.IntPart())
}

// Equal compares employees field by field, salaries by numeric value.
func (e Employee) Equal(o Employee) bool {
	if (e.ID == nil) != (o.ID == nil) || (e.ID != nil && *e.ID != *o.ID) {
		return false
	}
	return e.Name == o.Name &&
		e.Department == o.Department &&
		e.Salary.Equal(o.Salary) &&
		e.HireDate.Equal(o.HireDate) &&
		e.LastUpdated.Equal(o.LastUpdated)
}
