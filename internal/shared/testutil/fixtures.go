package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"sheetreport/pkg/contracts/domain"
)

// FixedNow is the reference clock used by fixtures.
var FixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// Products returns five products: two low stock, one inactive, two premium.
func Products() []domain.Product {
	ts := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02T15:04:05", s)
		return t
	}
	price := decimal.RequireFromString
	return []domain.Product{
		domain.Product{Name: "MacBook Pro M3", Category: "Laptop", Price: price("2499.99"), StockQuantity: 15, IsActive: true, CreatedAt: ts("2024-01-15T10:30:00")}.WithID(1),
		domain.Product{Name: "iPhone 15 Pro", Category: "Smartphone", Price: price("1199.00"), StockQuantity: 5, IsActive: true, CreatedAt: ts("2024-02-20T14:00:00")}.WithID(2),
		domain.Product{Name: "AirPods Pro", Category: "Audio", Price: price("249.99"), StockQuantity: 25, IsActive: true, CreatedAt: ts("2024-03-10T09:45:00")}.WithID(3),
		domain.Product{Name: "Magic Mouse", Category: "Accessory", Price: price("79.99"), StockQuantity: 8, IsActive: false, CreatedAt: ts("2024-01-05T16:20:00")}.WithID(4),
		domain.Product{Name: "iPad Air", Category: "Tablet", Price: price("599.00"), StockQuantity: 12, IsActive: true, CreatedAt: ts("2024-02-28T11:15:00")}.WithID(5),
	}
}

// Students returns five students across three majors; three are honor students.
func Students() []domain.Student {
	return []domain.Student{
		{StudentID: "CS001", Name: "Hyunsoo Jo", Email: "hynsoo@university.edu", Major: "Computer Science", Grade: 3, GPA: 3.8, HasScholarship: true},
		{StudentID: "ME002", Name: "Eunmi Lee", Email: "eunmi@university.edu", Major: "Mechanical Engineering", Grade: 2, GPA: 3.2},
		{StudentID: "CS003", Name: "Changhee Lee", Email: "changhee@university.edu", Major: "Computer Science", Grade: 4, GPA: 3.9, HasScholarship: true},
		{StudentID: "BIO004", Name: "Wanjoo Kim", Email: "wanjoo@university.edu", Major: "Biology", Grade: 1, GPA: 3.6},
		{StudentID: "ME005", Name: "Daejoon Kim", Email: "daejoon@university.edu", Major: "Mechanical Engineering", Grade: 3, GPA: 3.4, HasScholarship: true},
	}
}

// Employees returns seven employees in four departments, none of them Senior.
func Employees() []domain.Employee {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	salary := decimal.RequireFromString
	return []domain.Employee{
		domain.Employee{Name: "Hyunsoo", Department: "Card", Salary: salary("85000.00"), HireDate: day(2020, 3, 15), LastUpdated: FixedNow}.WithID(1),
		domain.Employee{Name: "Eunmi", Department: "UI/UX", Salary: salary("72000.50"), HireDate: day(2019, 7, 20), LastUpdated: FixedNow}.WithID(2),
		domain.Employee{Name: "Changhee", Department: "BRM", Salary: salary("80000.00"), HireDate: day(2021, 1, 10), LastUpdated: FixedNow}.WithID(3),
		domain.Employee{Name: "Wanjoo", Department: "BRM", Salary: salary("92000.75"), HireDate: day(2018, 11, 5), LastUpdated: FixedNow}.WithID(4),
		domain.Employee{Name: "Daejoon", Department: "Remittance", Salary: salary("65000.00"), HireDate: day(2022, 6, 1), LastUpdated: FixedNow}.WithID(5),
		domain.Employee{Name: "Ilchan", Department: "Card", Salary: salary("88000.25"), HireDate: day(2020, 9, 23), LastUpdated: FixedNow}.WithID(6),
		domain.Employee{Name: "Jonghyun", Department: "Card", Salary: salary("70000.00"), HireDate: day(2023, 2, 14), LastUpdated: FixedNow}.WithID(7),
	}
}
