package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sheetreport/internal/config"
	apierrors "sheetreport/internal/errors"
	"sheetreport/internal/services"
	"sheetreport/internal/shared/testutil"
	"sheetreport/internal/spreadsheet"
	"sheetreport/pkg/contracts/domain"
)

// MockGateway is a testify mock of spreadsheet.Gateway.
type MockGateway[T any] struct {
	mock.Mock
}

func (m *MockGateway[T]) Write(ctx context.Context, records []T, path string) error {
	return m.Called(records, path).Error(0)
}

func (m *MockGateway[T]) Read(ctx context.Context, path string) ([]T, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

type reportFixture struct {
	router    chi.Router
	paths     *config.Paths
	products  *MockGateway[domain.Product]
	students  *MockGateway[domain.Student]
	employees *MockGateway[domain.Employee]
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	paths := &config.Paths{DataDir: t.TempDir()}

	f := &reportFixture{
		paths:     paths,
		products:  new(MockGateway[domain.Product]),
		students:  new(MockGateway[domain.Student]),
		employees: new(MockGateway[domain.Employee]),
	}

	handler := NewReportHandler(ReportServices{
		Products:  services.NewProductService(f.products, logger),
		Students:  services.NewStudentService(f.students, logger),
		Employees: services.NewEmployeeService(f.employees, logger),
	}, paths, config.Default().Report, nil, apierrors.NewErrorHandler(logger, false), logger)

	f.router = chi.NewRouter()
	f.router.Mount("/api", handler.Routes())
	return f
}

func (f *reportFixture) get(t *testing.T, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func (f *reportFixture) dataPath(name string) string {
	return filepath.Join(f.paths.DataDir, name)
}

func TestReportHandler_ProductRoutes(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCount float64
		check     func(t *testing.T, data interface{})
	}{
		{
			name:      "statistics",
			target:    "/api/products/statistics",
			wantCount: 5,
			check: func(t *testing.T, data interface{}) {
				stats := data.(map[string]interface{})
				assert.Equal(t, float64(5), stats["total_products"])
				assert.Equal(t, float64(2), stats["premium_product_count"])
				assert.Equal(t, float64(2), stats["low_stock_count"])
			},
		},
		{
			name:      "categories",
			target:    "/api/products/categories",
			wantCount: 5,
			check: func(t *testing.T, data interface{}) {
				assert.Contains(t, data.(map[string]interface{}), "Laptop")
			},
		},
		{
			name:      "low stock",
			target:    "/api/products/low-stock",
			wantCount: 2,
		},
		{
			name:      "premium",
			target:    "/api/products/premium",
			wantCount: 2,
		},
		{
			name:      "price range",
			target:    "/api/products?min_price=100&max_price=1000",
			wantCount: 2,
		},
		{
			name:      "lower bound only",
			target:    "/api/products?min_price=1000",
			wantCount: 2,
		},
		{
			name:      "no bounds",
			target:    "/api/products",
			wantCount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportFixture(t)
			f.products.On("Read", f.dataPath("products.xlsx")).Return(testutil.Products(), nil)

			rec, body := f.get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "success", body["status"])
			assert.Equal(t, tt.wantCount, body["count"])
			if tt.check != nil {
				tt.check(t, body["data"])
			}
			f.products.AssertExpectations(t)
		})
	}
}

func TestReportHandler_StudentRoutes(t *testing.T) {
	tests := []struct {
		target    string
		wantCount float64
	}{
		{"/api/students/majors", 3},
		{"/api/students/honor", 3},
		{"/api/students/scholarship", 3},
		{"/api/students?major=Computer%20Science", 2},
		{"/api/students?major=Computer%20Science&grade=4", 1},
		{"/api/students?grade=2", 1},
		{"/api/students", 5},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			f := newReportFixture(t)
			f.students.On("Read", f.dataPath("students.xlsx")).Return(testutil.Students(), nil)

			rec, body := f.get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCount, body["count"])
		})
	}
}

func TestReportHandler_EmployeeRoutes(t *testing.T) {
	tests := []struct {
		target    string
		wantCount float64
	}{
		{"/api/employees/departments", 4},
		{"/api/employees/high-salary", 4},
		{"/api/employees/high-salary?threshold=88000", 2},
		{"/api/employees/salary-grades", 7},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			f := newReportFixture(t)
			f.employees.On("Read", f.dataPath("employees.xlsx")).Return(testutil.Employees(), nil)

			rec, body := f.get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCount, body["count"])
		})
	}
}

func TestReportHandler_SalaryGradesBody(t *testing.T) {
	f := newReportFixture(t)
	f.employees.On("Read", f.dataPath("employees.xlsx")).Return(testutil.Employees(), nil)

	_, body := f.get(t, "/api/employees/salary-grades")
	data := body["data"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"Senior": float64(0), "Mid": float64(6), "Junior": float64(1)}, data["distribution"])
	assert.Equal(t, "6624018", data["total_annual_salary_expense"])
}

func TestReportHandler_FileParameter(t *testing.T) {
	f := newReportFixture(t)
	f.products.On("Read", f.dataPath("archive.xlsx")).Return(testutil.Products()[:1], nil)

	rec, body := f.get(t, "/api/products/statistics?file=archive.xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestReportHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(f *reportFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "path traversal",
			target:     "/api/products/statistics?file=../secrets.xlsx",
			wantStatus: http.StatusBadRequest,
			wantCode:   string(apierrors.ErrTypeValidation),
		},
		{
			name:       "not a workbook",
			target:     "/api/students/majors?file=students.csv",
			wantStatus: http.StatusBadRequest,
			wantCode:   string(apierrors.ErrTypeValidation),
		},
		{
			name:       "non numeric price",
			target:     "/api/products?min_price=cheap",
			wantStatus: http.StatusBadRequest,
			wantCode:   string(apierrors.ErrTypeValidation),
		},
		{
			name:       "inverted range",
			target:     "/api/products?min_price=500&max_price=100",
			setup:      func(f *reportFixture) { f.products.On("Read", mock.Anything).Return(testutil.Products(), nil) },
			wantStatus: http.StatusBadRequest,
			wantCode:   string(apierrors.ErrTypeInvalidRange),
		},
		{
			name:       "negative grade",
			target:     "/api/students?grade=-1",
			wantStatus: http.StatusBadRequest,
			wantCode:   string(apierrors.ErrTypeValidation),
		},
		{
			name:   "missing workbook",
			target: "/api/employees/departments",
			setup: func(f *reportFixture) {
				f.employees.On("Read", mock.Anything).Return(nil, apierrors.NewIOError("failed to open workbook", os.ErrNotExist))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   string(apierrors.ErrTypeIO),
		},
		{
			name:   "unreadable workbook",
			target: "/api/employees/departments",
			setup: func(f *reportFixture) {
				f.employees.On("Read", mock.Anything).Return(nil, apierrors.NewIOError("failed to open workbook",
					&os.PathError{Op: "open", Path: f.dataPath("employees.xlsx"), Err: os.ErrPermission}))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   string(apierrors.ErrTypeIO),
		},
		{
			name:   "bad header layout",
			target: "/api/students/honor",
			setup: func(f *reportFixture) {
				f.students.On("Read", mock.Anything).Return(nil, apierrors.NewSerializationError("unexpected header layout", nil))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   string(apierrors.ErrTypeSerialization),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec, body := f.get(t, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCode, body["error_code"])
		})
	}
}

func TestReportHandler_WorkbooksOnDisk(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	paths := &config.Paths{DataDir: t.TempDir()}

	employees := spreadsheet.NewWorkbook(spreadsheet.EmployeeSchema(), logger)
	require.NoError(t, employees.Write(context.Background(), testutil.Employees(), filepath.Join(paths.DataDir, "employees.xlsx")))
	require.NoError(t, os.WriteFile(filepath.Join(paths.DataDir, "products.xlsx"), []byte("not a zip at all"), 0o644))

	handler := NewReportHandler(ReportServices{
		Products:  services.NewProductService(spreadsheet.NewWorkbook(spreadsheet.ProductSchema(), logger), logger),
		Students:  services.NewStudentService(spreadsheet.NewWorkbook(spreadsheet.StudentSchema(), logger), logger),
		Employees: services.NewEmployeeService(employees, logger),
	}, paths, config.Default().Report, nil, apierrors.NewErrorHandler(logger, false), logger)
	router := chi.NewRouter()
	router.Mount("/api", handler.Routes())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   interface{}
	}{
		{"corrupt workbook", "/api/products/statistics", http.StatusUnprocessableEntity, string(apierrors.ErrTypeSerialization)},
		{"missing workbook", "/api/students/majors", http.StatusNotFound, string(apierrors.ErrTypeIO)},
		{"valid workbook", "/api/employees/departments", http.StatusOK, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), paths.DataDir)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["error_code"])
		})
	}
}
