package spreadsheet

import "sheetreport/pkg/contracts/domain"

// Sheet names of the built-in schemas.
const (
	ProductSheet  = "Product Inventory"
	StudentSheet  = "Student Records"
	EmployeeSheet = "Employee List"
)

// ProductSchema lays out products on the "Product Inventory" sheet.
func ProductSchema() Schema[domain.Product] {
	return Schema[domain.Product]{
		SheetName: ProductSheet,
		Columns: []Column[domain.Product]{
			{
				Header:   "Product ID",
				Optional: true,
				Get:      func(p domain.Product) any { return FormatOptionalID(p.ID) },
				Set: func(p *domain.Product, raw string) (err error) {
					p.ID, err = ParseOptionalID(raw)
					return err
				},
			},
			{
				Header: "Product Name",
				Width:  19.5,
				Get:    func(p domain.Product) any { return p.Name },
				Set:    func(p *domain.Product, raw string) error { p.Name = raw; return nil },
			},
			{
				Header: "Category",
				Width:  11.7,
				Get:    func(p domain.Product) any { return p.Category },
				Set:    func(p *domain.Product, raw string) error { p.Category = raw; return nil },
			},
			{
				Header:  "Price",
				Default: "0",
				Get:     func(p domain.Product) any { return FormatDecimal(p.Price) },
				Set: func(p *domain.Product, raw string) (err error) {
					p.Price, err = ParseDecimal(raw)
					return err
				},
			},
			{
				Header:  "Stock Quantity",
				Default: "0",
				Get:     func(p domain.Product) any { return p.StockQuantity },
				Set: func(p *domain.Product, raw string) (err error) {
					p.StockQuantity, err = ParseInt(raw)
					return err
				},
			},
			{
				Header:  "Is Active",
				Default: "true",
				Get:     func(p domain.Product) any { return p.IsActive },
				Set: func(p *domain.Product, raw string) (err error) {
					p.IsActive, err = ParseBool(raw)
					return err
				},
			},
			{
				Header:   "Created At",
				Optional: true,
				Get:      func(p domain.Product) any { return FormatTimestamp(p.CreatedAt) },
				Set: func(p *domain.Product, raw string) (err error) {
					p.CreatedAt, err = ParseTimestamp(raw)
					return err
				},
			},
		},
		Validate: domain.Product.Validate,
	}
}

// StudentSchema lays out students on the "Student Records" sheet. Missing grade
// and GPA cells read as 1 and 0.0.
func StudentSchema() Schema[domain.Student] {
	return Schema[domain.Student]{
		SheetName: StudentSheet,
		Columns: []Column[domain.Student]{
			{
				Header: "Student ID",
				Get:    func(s domain.Student) any { return s.StudentID },
				Set:    func(s *domain.Student, raw string) error { s.StudentID = raw; return nil },
			},
			{
				Header: "Name",
				Get:    func(s domain.Student) any { return s.Name },
				Set:    func(s *domain.Student, raw string) error { s.Name = raw; return nil },
			},
			{
				Header: "Email",
				Get:    func(s domain.Student) any { return s.Email },
				Set:    func(s *domain.Student, raw string) error { s.Email = raw; return nil },
			},
			{
				Header: "Major",
				Get:    func(s domain.Student) any { return s.Major },
				Set:    func(s *domain.Student, raw string) error { s.Major = raw; return nil },
			},
			{
				Header:   "Grade",
				Default:  "1",
				Optional: true,
				Get:      func(s domain.Student) any { return s.Grade },
				Set: func(s *domain.Student, raw string) (err error) {
					s.Grade, err = ParseInt(raw)
					return err
				},
			},
			{
				Header:   "GPA",
				Default:  "0.0",
				Optional: true,
				Get:      func(s domain.Student) any { return s.GPA },
				Set: func(s *domain.Student, raw string) (err error) {
					s.GPA, err = ParseFloat(raw)
					return err
				},
			},
			{
				Header:  "Has Scholarship",
				Default: "false",
				Get:     func(s domain.Student) any { return s.HasScholarship },
				Set: func(s *domain.Student, raw string) (err error) {
					s.HasScholarship, err = ParseBool(raw)
					return err
				},
			},
		},
		Validate: domain.Student.Validate,
	}
}

// EmployeeSchema lays out employees on the "Employee List" sheet.
func EmployeeSchema() Schema[domain.Employee] {
	return Schema[domain.Employee]{
		SheetName: EmployeeSheet,
		Columns: []Column[domain.Employee]{
			{
				Header:   "Employee ID",
				Optional: true,
				Get:      func(e domain.Employee) any { return FormatOptionalID(e.ID) },
				Set: func(e *domain.Employee, raw string) (err error) {
					e.ID, err = ParseOptionalID(raw)
					return err
				},
			},
			{
				Header: "Name",
				Width:  15.6,
				Get:    func(e domain.Employee) any { return e.Name },
				Set:    func(e *domain.Employee, raw string) error { e.Name = raw; return nil },
			},
			{
				Header: "Department",
				Width:  11.7,
				Get:    func(e domain.Employee) any { return e.Department },
				Set:    func(e *domain.Employee, raw string) error { e.Department = raw; return nil },
			},
			{
				Header:  "Salary",
				Width:   15.6,
				Default: "0",
				Get:     func(e domain.Employee) any { return FormatDecimal(e.Salary) },
				Set: func(e *domain.Employee, raw string) (err error) {
					e.Salary, err = ParseDecimal(raw)
					return err
				},
			},
			{
				Header: "Hire Date",
				Get:    func(e domain.Employee) any { return FormatDate(e.HireDate) },
				Set: func(e *domain.Employee, raw string) (err error) {
					e.HireDate, err = ParseDate(raw)
					return err
				},
			},
			{
				Header:   "Last Updated",
				Width:    19.5,
				Optional: true,
				Get:      func(e domain.Employee) any { return FormatTimestamp(e.LastUpdated) },
				Set: func(e *domain.Employee, raw string) (err error) {
					e.LastUpdated, err = ParseTimestamp(raw)
					return err
				},
			},
		},
		Validate: domain.Employee.Validate,
	}
}
