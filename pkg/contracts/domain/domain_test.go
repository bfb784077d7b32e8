package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validation(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		prodName  string
		price     string
		stock     int
		wantErr   bool
		wantField string
	}{
		{"valid", "Laptop", "2499.99", 15, false, ""},
		{"zero price and stock", "Sample", "0", 0, false, ""},
		{"negative price", "Laptop", "-0.01", 1, true, "price"},
		{"negative stock", "Laptop", "10", -1, true, "stock_quantity"},
		{"empty name", "  ", "10", 1, true, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(tt.prodName, "Electronics", decimal.RequireFromString(tt.price), tt.stock, true, now)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.prodName, p.Name)
				assert.Nil(t, p.ID)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestProduct_DerivedProperties(t *testing.T) {
	tests := []struct {
		name          string
		price         string
		stock         int
		wantLowStock  bool
		wantTotal     string
		wantPriceBand PriceCategory
	}{
		{"budget boundary below", "99.99", 9, true, "899.91", PriceCategoryBudget},
		{"mid-range lower bound", "100", 10, false, "1000", PriceCategoryMidRange},
		{"mid-range upper", "999.99", 0, true, "0", PriceCategoryMidRange},
		{"premium lower bound", "1000", 3, true, "3000", PriceCategoryPremium},
		{"premium laptop", "2499.99", 15, false, "37499.85", PriceCategoryPremium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Name: "Item", Category: "Cat", Price: decimal.RequireFromString(tt.price), StockQuantity: tt.stock}
			assert.Equal(t, tt.wantLowStock, p.IsLowStock())
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(p.TotalValue()), "total value %s", p.TotalValue())
			assert.Equal(t, tt.wantPriceBand, p.PriceCategory())
		})
	}
}

func TestProduct_DisplayNameAndEqual(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := Product{Name: "Mouse", Category: "Accessories", Price: decimal.RequireFromString("79.990"), StockQuantity: 8, CreatedAt: created}

	assert.Equal(t, "[Accessories] Mouse", p.DisplayName())

	same := Product{Name: "Mouse", Category: "Accessories", Price: decimal.RequireFromString("79.99"), StockQuantity: 8, CreatedAt: created}
	assert.True(t, p.Equal(same), "prices compare by value")

	assert.False(t, p.Equal(same.WithID(1)))
	assert.True(t, p.WithID(1).Equal(same.WithID(1)))
	assert.False(t, p.WithID(1).Equal(same.WithID(2)))
}

func TestStudent_DerivedProperties(t *testing.T) {
	tests := []struct {
		grade     int
		wantLevel string
	}{
		{1, "Freshman"},
		{2, "Sophomore"},
		{3, "Junior"},
		{4, "Senior"},
		{5, "Graduate"},
		{0, "Graduate"},
	}
	for _, tt := range tests {
		s := Student{StudentID: "S1", Grade: tt.grade}
		assert.Equal(t, tt.wantLevel, s.GradeLevel(), "grade %d", tt.grade)
	}

	assert.True(t, Student{GPA: 3.5}.IsHonorStudent())
	assert.False(t, Student{GPA: 3.49}.IsHonorStudent())

	assert.Equal(t, "university.edu", Student{Email: "alice@university.edu"}.EmailDomain())
	assert.Equal(t, "b@c", Student{Email: "a@b@c"}.EmailDomain())
	assert.Equal(t, "unknown", Student{Email: "no-at-sign"}.EmailDomain())
}

func TestNewStudent(t *testing.T) {
	s, err := NewStudent("S2024001", "Alice Johnson", "alice@university.edu", "Computer Science", 3, 3.8, true)
	require.NoError(t, err)
	assert.Equal(t, "Junior", s.GradeLevel())

	_, err = NewStudent("", "Nobody", "", "", 1, 0, false)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestEmployee_DerivedProperties(t *testing.T) {
	hire := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		salary     string
		wantGrade  SalaryGrade
		wantAnnual string
		wantFormat string
	}{
		{"senior boundary", "100000", SalaryGradeSenior, "1200000", "$100,000"},
		{"mid", "85000", SalaryGradeMid, "1020000", "$85,000"},
		{"mid boundary", "70000", SalaryGradeMid, "840000", "$70,000"},
		{"junior", "69999.99", SalaryGradeJunior, "839999.88", "$69,999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Employee{Name: "Jane", Department: "IT", Salary: decimal.RequireFromString(tt.salary), HireDate: hire}
			assert.Equal(t, tt.wantGrade, e.SalaryGrade())
			assert.True(t, decimal.RequireFromString(tt.wantAnnual).Equal(e.AnnualSalary()), "annual %s", e.AnnualSalary())
			assert.Equal(t, tt.wantFormat, e.FormattedSalary())
		})
	}
}

func TestEmployee_ServiceYears(t *testing.T) {
	e := Employee{Name: "Jane", HireDate: time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2021, 6, 14, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), 3},
		{time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.ServiceYears(tt.now), "now %s", tt.now.Format(time.DateOnly))
	}
}

func TestNewEmployee_Validation(t *testing.T) {
	day := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := NewEmployee("Jane", "IT", decimal.NewFromInt(-1), day, day)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "salary", fieldErr.Field)

	e, err := NewEmployee("Jane", "IT", decimal.NewFromInt(95000), day, day)
	require.NoError(t, err)
	assert.True(t, e.Equal(e))
	assert.False(t, e.Equal(e.WithID(7)))
}

func TestFieldError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"direct", newFieldError("price", "must not be negative"), "price: must not be negative"},
		{"wrapped", fmt.Errorf("row 3: %w", newFieldError("name", "must not be empty")), "row 3: name: must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.wantMsg)
			assert.ErrorIs(t, tt.err, ErrInvalidRecord)
		})
	}

	assert.NotErrorIs(t, errors.New("price: must not be negative"), ErrInvalidRecord)
}
