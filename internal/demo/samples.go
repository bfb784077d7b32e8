package demo

import (
	"time"

	"github.com/shopspring/decimal"

	"sheetreport/pkg/contracts/domain"
)

func mustTime(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleProducts returns the inventory used by the product demo.
func SampleProducts() []domain.Product {
	ts := func(s string) time.Time { return mustTime("2006-01-02T15:04:05", s) }
	price := decimal.RequireFromString
	return []domain.Product{
		domain.Product{Name: "MacBook Pro M3", Category: "Laptop", Price: price("2499.00"), StockQuantity: 15, IsActive: true, CreatedAt: ts("2024-01-15T10:30:00")}.WithID(1),
		domain.Product{Name: "iPhone 15 Pro", Category: "Smartphone", Price: price("1199.00"), StockQuantity: 5, IsActive: true, CreatedAt: ts("2024-02-20T14:00:00")}.WithID(2),
		domain.Product{Name: "AirPods Pro", Category: "Audio", Price: price("249.00"), StockQuantity: 25, IsActive: true, CreatedAt: ts("2024-03-10T09:45:00")}.WithID(3),
		domain.Product{Name: "Magic Mouse", Category: "Accessory", Price: price("79.00"), StockQuantity: 8, IsActive: false, CreatedAt: ts("2024-01-05T16:20:00")}.WithID(4),
		domain.Product{Name: "iPad Air", Category: "Tablet", Price: price("599.00"), StockQuantity: 12, IsActive: true, CreatedAt: ts("2024-02-28T11:15:00")}.WithID(5),
	}
}

// SampleStudents returns the students used by the student demo.
func SampleStudents() []domain.Student {
	return []domain.Student{
		{StudentID: "CS001", Name: "Hyunsoo Jo", Email: "hynsoo@university.edu", Major: "Computer Science", Grade: 3, GPA: 3.8, HasScholarship: true},
		{StudentID: "ME002", Name: "Eunmi Lee", Email: "eunmi@university.edu", Major: "Mechanical Engineering", Grade: 2, GPA: 3.2},
		{StudentID: "CS003", Name: "Changhee Lee", Email: "changhee@university.edu", Major: "Computer Science", Grade: 4, GPA: 3.9, HasScholarship: true},
		{StudentID: "BIO004", Name: "Wanjoo Kim", Email: "wanjoo@university.edu", Major: "Biology", Grade: 1, GPA: 3.6},
		{StudentID: "ME005", Name: "Daejoon Kim", Email: "daejoon@university.edu", Major: "Mechanical Engineering", Grade: 3, GPA: 3.4, HasScholarship: true},
	}
}

// SampleEmployees returns the staff used by the employee demo, last updated at now.
func SampleEmployees(now time.Time) []domain.Employee {
	day := func(s string) time.Time { return mustTime(time.DateOnly, s) }
	salary := decimal.RequireFromString
	// Workbooks store timestamps to the second.
	now = now.UTC().Truncate(time.Second)
	return []domain.Employee{
		domain.Employee{Name: "Hyunsoo", Department: "Card", Salary: salary("85000.00"), HireDate: day("2020-03-15"), LastUpdated: now}.WithID(1),
		domain.Employee{Name: "Eunmi", Department: "UI/UX", Salary: salary("72000.50"), HireDate: day("2019-07-20"), LastUpdated: now}.WithID(2),
		domain.Employee{Name: "Changhee", Department: "BRM", Salary: salary("80000.00"), HireDate: day("2021-01-10"), LastUpdated: now}.WithID(3),
		domain.Employee{Name: "Wanjoo", Department: "BRM", Salary: salary("92000.75"), HireDate: day("2018-11-05"), LastUpdated: now}.WithID(4),
		domain.Employee{Name: "Daejoon", Department: "Remittance", Salary: salary("65000.00"), HireDate: day("2022-06-01"), LastUpdated: now}.WithID(5),
		domain.Employee{Name: "Ilchan", Department: "Card", Salary: salary("88000.25"), HireDate: day("2020-09-23"), LastUpdated: now}.WithID(6),
		domain.Employee{Name: "Jonghyun", Department: "Card", Salary: salary("70000.00"), HireDate: day("2023-02-14"), LastUpdated: now}.WithID(7),
	}
}
