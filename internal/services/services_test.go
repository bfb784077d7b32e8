package services

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sheetreport/internal/errors"
	"sheetreport/internal/shared/testutil"
	"sheetreport/pkg/contracts/domain"
)

// MockGateway is a testify mock of spreadsheet.Gateway.
type MockGateway[T any] struct {
	mock.Mock
}

func (m *MockGateway[T]) Write(ctx context.Context, records []T, path string) error {
	args := m.Called(records, path)
	return args.Error(0)
}

func (m *MockGateway[T]) Read(ctx context.Context, path string) ([]T, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func TestProductService_SaveAndRead(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	gateway := new(MockGateway[domain.Product])
	products := testutil.Products()
	path := filepath.Join(t.TempDir(), "products.xlsx")

	gateway.On("Write", products, path).Return(nil)
	gateway.On("Read", path).Return(products, nil)

	svc := NewProductService(gateway, logger)
	require.NoError(t, svc.SaveProducts(context.Background(), products, path))

	got, err := svc.ReadProducts(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	gateway.AssertExpectations(t)
	testutil.AssertLogContains(t, logs, slog.LevelInfo, "Saved workbook")
	testutil.AssertLogContains(t, logs, slog.LevelInfo, "Read workbook")
	testutil.AssertLogAttr(t, logs, "service", "product")
	testutil.AssertLogAttr(t, logs, "count", int64(5))
}

func TestProductService_GatewayErrorsPropagate(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	gateway := new(MockGateway[domain.Product])
	missing := apperrors.NewIOError("failed to open workbook", os.ErrNotExist)
	broken := apperrors.NewSerializationError("unexpected header layout", nil)

	gateway.On("Read", "missing.xlsx").Return(nil, missing)
	gateway.On("Write", mock.Anything, "broken.xlsx").Return(broken)

	svc := NewProductService(gateway, logger)

	_, err := svc.ReadProducts(context.Background(), "missing.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, missing)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
	assert.Contains(t, err.Error(), "missing.xlsx")

	err = svc.SaveProducts(context.Background(), testutil.Products(), "broken.xlsx")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSerialization))

	assert.Len(t, logs.GetRecordsByLevel(slog.LevelError), 2)
}

func TestProductService_Reports(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	svc := NewProductService(new(MockGateway[domain.Product]), logger)
	products := testutil.Products()

	lowStock := svc.LowStockProducts(products)
	require.Len(t, lowStock, 2)
	assert.Equal(t, "iPhone 15 Pro", lowStock[0].Name)
	assert.Equal(t, "Magic Mouse", lowStock[1].Name)

	premium := svc.PremiumProducts(products)
	assert.Len(t, premium, 2)

	inRange, err := svc.ProductsInPriceRange(products, decimal.NewFromInt(100), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	_, err = svc.ProductsInPriceRange(products, decimal.NewFromInt(500), decimal.NewFromInt(100))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidRange))

	stats := svc.Statistics(products)
	assert.Equal(t, 5, stats.TotalProducts)
	assert.Equal(t, 2, stats.PremiumProductCount)

	categories := svc.CategoryStatistics(products)
	assert.Len(t, categories, 5)
}

func TestStudentService_SaveLogsCreatedDirectory(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	gateway := new(MockGateway[domain.Student])
	students := testutil.Students()
	dir := filepath.Join(t.TempDir(), "new", "dir")
	path := filepath.Join(dir, "students.xlsx")

	gateway.On("Write", students, path).Run(func(args mock.Arguments) {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}).Return(nil)

	svc := NewStudentService(gateway, logger)
	require.NoError(t, svc.SaveStudents(context.Background(), students, path))

	testutil.AssertLogContains(t, logs, slog.LevelInfo, "Created directory")
	testutil.AssertLogAttr(t, logs, "path", dir)
	assert.True(t, logs.ContainsMessage("Saved workbook"))

	logs.Clear()
	require.NoError(t, svc.SaveStudents(context.Background(), students, path))
	assert.False(t, logs.ContainsMessage("Created directory"), "existing directory is not reported")
}

func TestStudentService_Reports(t *testing.T) {
	svc := NewStudentService(new(MockGateway[domain.Student]), nil)
	students := testutil.Students()

	assert.Len(t, svc.StudentsByMajor(students, "Computer Science"), 2)
	assert.Len(t, svc.HonorStudents(students), 3)
	assert.Len(t, svc.ScholarshipStudents(students), 3)
	assert.Len(t, svc.StudentsByGrade(students, 3), 2)
	assert.Empty(t, svc.StudentsByMajor(students, "Physics"))

	majors := svc.MajorStatistics(students)
	require.Contains(t, majors, "Computer Science")
	assert.Equal(t, 2, majors["Computer Science"].Count)
	assert.Equal(t, 2, majors["Computer Science"].HonorStudents)
}

func TestEmployeeService_SaveSubsets(t *testing.T) {
	employees := testutil.Employees()

	tests := []struct {
		name      string
		save      func(*EmployeeService) (bool, error)
		wantSaved bool
		wantCount int
	}{
		{
			name: "department with employees",
			save: func(s *EmployeeService) (bool, error) {
				return s.SaveByDepartment(context.Background(), employees, "Card", "card.xlsx")
			},
			wantSaved: true,
			wantCount: 3,
		},
		{
			name: "unknown department",
			save: func(s *EmployeeService) (bool, error) {
				return s.SaveByDepartment(context.Background(), employees, "Legal", "legal.xlsx")
			},
		},
		{
			name: "mid grade",
			save: func(s *EmployeeService) (bool, error) {
				return s.SaveBySalaryGrade(context.Background(), employees, domain.SalaryGradeMid, "mid.xlsx")
			},
			wantSaved: true,
			wantCount: 6,
		},
		{
			name: "no senior employees",
			save: func(s *EmployeeService) (bool, error) {
				return s.SaveBySalaryGrade(context.Background(), employees, domain.SalaryGradeSenior, "senior.xlsx")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewTestLogger(t)
			gateway := new(MockGateway[domain.Employee])
			gateway.On("Write", mock.Anything, mock.Anything).Return(nil)

			saved, err := tt.save(NewEmployeeService(gateway, logger))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)

			if !tt.wantSaved {
				gateway.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
				assert.True(t, logs.ContainsMessage("No employees matched, skipping workbook"))
				return
			}
			gateway.AssertNumberOfCalls(t, "Write", 1)
			written := gateway.Calls[0].Arguments.Get(0).([]domain.Employee)
			assert.Len(t, written, tt.wantCount)
		})
	}
}

func TestEmployeeService_SaveSubsetError(t *testing.T) {
	gateway := new(MockGateway[domain.Employee])
	gateway.On("Write", mock.Anything, "card.xlsx").Return(apperrors.NewIOError("disk full", nil))

	saved, err := NewEmployeeService(gateway, nil).SaveByDepartment(context.Background(), testutil.Employees(), "Card", "card.xlsx")
	assert.False(t, saved)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
}

func TestEmployeeService_Reports(t *testing.T) {
	svc := NewEmployeeService(new(MockGateway[domain.Employee]), nil)
	employees := testutil.Employees()

	high := svc.HighSalaryEmployees(employees, decimal.NewFromInt(80000))
	assert.Len(t, high, 4)

	departments := svc.DepartmentStatistics(employees)
	assert.Len(t, departments, 4)
	assert.Equal(t, 3, departments["Card"].Count)

	assert.Equal(t, map[domain.SalaryGrade]int{
		domain.SalaryGradeSenior: 0,
		domain.SalaryGradeMid:    6,
		domain.SalaryGradeJunior: 1,
	}, svc.SalaryGradeDistribution(employees))

	// 552001.50 per month across seven employees.
	assert.True(t, decimal.RequireFromString("6624018").Equal(svc.TotalAnnualSalaryExpense(employees)))
}
