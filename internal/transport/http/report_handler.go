package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"sheetreport/internal/config"
	apierrors "sheetreport/internal/errors"
	"sheetreport/internal/infrastructure"
	appmiddleware "sheetreport/internal/middleware"
	"sheetreport/pkg/contracts/domain"
)

// ReportServices are the record services behind the report API.
type ReportServices struct {
	Products  ProductReportService
	Students  StudentReportService
	Employees EmployeeReportService
}

// ReportHandler serves statistics computed from workbooks in the data directory.
type ReportHandler struct {
	services     ReportServices
	paths        *config.Paths
	report       config.ReportConfig
	validator    *appmiddleware.QueryValidator
	metrics      *infrastructure.BusinessMetrics
	errorHandler *apierrors.ErrorHandler
	logger       *slog.Logger
}

// NewReportHandler creates a report handler. Workbook names default to the
// files named in report.
func NewReportHandler(
	services ReportServices,
	paths *config.Paths,
	report config.ReportConfig,
	metrics *infrastructure.BusinessMetrics,
	errorHandler *apierrors.ErrorHandler,
	logger *slog.Logger,
) *ReportHandler {
	return &ReportHandler{
		services:     services,
		paths:        paths,
		report:       report,
		validator:    appmiddleware.NewQueryValidator(),
		metrics:      metrics,
		errorHandler: errorHandler,
		logger:       logger.With(slog.String("component", "report_handler")),
	}
}

type fileQuery struct {
	File string `query:"file" validate:"omitempty,workbook"`
}

type priceRangeQuery struct {
	File     string `query:"file" validate:"omitempty,workbook"`
	MinPrice string `query:"min_price" validate:"omitempty,numeric"`
	MaxPrice string `query:"max_price" validate:"omitempty,numeric"`
}

type studentQuery struct {
	File  string `query:"file" validate:"omitempty,workbook"`
	Major string `query:"major" validate:"omitempty,max=100"`
	Grade string `query:"grade" validate:"omitempty,number"`
}

type thresholdQuery struct {
	File      string `query:"file" validate:"omitempty,workbook"`
	Threshold string `query:"threshold" validate:"omitempty,numeric"`
}

// Routes returns the report routes, meant to be mounted under /api.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/statistics", h.ProductStatistics)
		r.Get("/categories", h.CategoryStatistics)
		r.Get("/low-stock", h.LowStockProducts)
		r.Get("/premium", h.PremiumProducts)
	})

	r.Route("/students", func(r chi.Router) {
		r.Get("/", h.ListStudents)
		r.Get("/majors", h.MajorStatistics)
		r.Get("/honor", h.HonorStudents)
		r.Get("/scholarship", h.ScholarshipStudents)
	})

	r.Route("/employees", func(r chi.Router) {
		r.Get("/departments", h.DepartmentStatistics)
		r.Get("/high-salary", h.HighSalaryEmployees)
		r.Get("/salary-grades", h.SalaryGrades)
	})

	return r
}

// ListProducts handles GET /api/products?min_price&max_price. Without bounds
// every product is returned.
func (h *ReportHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var q priceRangeQuery
	if err := h.validator.Bind(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.serve(w, r, "products", func(ctx context.Context) (any, int, error) {
		products, err := h.readProducts(ctx, q.File)
		if err != nil {
			return nil, 0, err
		}
		if q.MinPrice == "" && q.MaxPrice == "" {
			return products, len(products), nil
		}

		minPrice, maxPrice := decimal.Zero, decimal.Zero
		if q.MinPrice != "" {
			minPrice = decimal.RequireFromString(q.MinPrice)
		}
		if q.MaxPrice != "" {
			maxPrice = decimal.RequireFromString(q.MaxPrice)
		} else {
			// Open upper bound: the highest price present, never below the lower bound.
			maxPrice = minPrice
			for _, p := range products {
				maxPrice = decimal.Max(maxPrice, p.Price)
			}
		}

		filtered, err := h.services.Products.ProductsInPriceRange(products, minPrice, maxPrice)
		return filtered, len(filtered), err
	})
}

// ProductStatistics handles GET /api/products/statistics
func (h *ReportHandler) ProductStatistics(w http.ResponseWriter, r *http.Request) {
	h.serveProducts(w, r, "product_statistics", func(products []domain.Product) (any, int) {
		return h.services.Products.Statistics(products), len(products)
	})
}

// CategoryStatistics handles GET /api/products/categories
func (h *ReportHandler) CategoryStatistics(w http.ResponseWriter, r *http.Request) {
	h.serveProducts(w, r, "category_statistics", func(products []domain.Product) (any, int) {
		stats := h.services.Products.CategoryStatistics(products)
		return stats, len(stats)
	})
}

// LowStockProducts handles GET /api/products/low-stock
func (h *ReportHandler) LowStockProducts(w http.ResponseWriter, r *http.Request) {
	h.serveProducts(w, r, "low_stock_products", func(products []domain.Product) (any, int) {
		lowStock := h.services.Products.LowStockProducts(products)
		return lowStock, len(lowStock)
	})
}

// PremiumProducts handles GET /api/products/premium
func (h *ReportHandler) PremiumProducts(w http.ResponseWriter, r *http.Request) {
	h.serveProducts(w, r, "premium_products", func(products []domain.Product) (any, int) {
		premium := h.services.Products.PremiumProducts(products)
		return premium, len(premium)
	})
}

// ListStudents handles GET /api/students?major&grade. Both filters are optional
// and combine.
func (h *ReportHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	var q studentQuery
	if err := h.validator.Bind(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.serve(w, r, "students", func(ctx context.Context) (any, int, error) {
		students, err := h.readStudents(ctx, q.File)
		if err != nil {
			return nil, 0, err
		}
		if q.Major != "" {
			students = h.services.Students.StudentsByMajor(students, q.Major)
		}
		if q.Grade != "" {
			grade, err := strconv.Atoi(q.Grade)
			if err != nil {
				return nil, 0, apierrors.NewValidationError("grade", "grade is out of range")
			}
			students = h.services.Students.StudentsByGrade(students, grade)
		}
		return students, len(students), nil
	})
}

// MajorStatistics handles GET /api/students/majors
func (h *ReportHandler) MajorStatistics(w http.ResponseWriter, r *http.Request) {
	h.serveStudents(w, r, "major_statistics", func(students []domain.Student) (any, int) {
		stats := h.services.Students.MajorStatistics(students)
		return stats, len(stats)
	})
}

// HonorStudents handles GET /api/students/honor
func (h *ReportHandler) HonorStudents(w http.ResponseWriter, r *http.Request) {
	h.serveStudents(w, r, "honor_students", func(students []domain.Student) (any, int) {
		honor := h.services.Students.HonorStudents(students)
		return honor, len(honor)
	})
}

// ScholarshipStudents handles GET /api/students/scholarship
func (h *ReportHandler) ScholarshipStudents(w http.ResponseWriter, r *http.Request) {
	h.serveStudents(w, r, "scholarship_students", func(students []domain.Student) (any, int) {
		scholarship := h.services.Students.ScholarshipStudents(students)
		return scholarship, len(scholarship)
	})
}

// DepartmentStatistics handles GET /api/employees/departments
func (h *ReportHandler) DepartmentStatistics(w http.ResponseWriter, r *http.Request) {
	h.serveEmployees(w, r, "department_statistics", func(employees []domain.Employee) (any, int) {
		stats := h.services.Employees.DepartmentStatistics(employees)
		return stats, len(stats)
	})
}

// HighSalaryEmployees handles GET /api/employees/high-salary?threshold. The
// threshold defaults to the configured one.
func (h *ReportHandler) HighSalaryEmployees(w http.ResponseWriter, r *http.Request) {
	var q thresholdQuery
	if err := h.validator.Bind(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if q.Threshold == "" {
		q.Threshold = h.report.HighSalaryThreshold
	}
	threshold, err := decimal.NewFromString(q.Threshold)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewValidationError("threshold", "threshold must be a number"))
		return
	}

	h.serve(w, r, "high_salary_employees", func(ctx context.Context) (any, int, error) {
		employees, err := h.readEmployees(ctx, q.File)
		if err != nil {
			return nil, 0, err
		}
		high := h.services.Employees.HighSalaryEmployees(employees, threshold)
		return high, len(high), nil
	})
}

// SalaryGrades handles GET /api/employees/salary-grades
func (h *ReportHandler) SalaryGrades(w http.ResponseWriter, r *http.Request) {
	h.serveEmployees(w, r, "salary_grades", func(employees []domain.Employee) (any, int) {
		return map[string]interface{}{
			"distribution":                h.services.Employees.SalaryGradeDistribution(employees),
			"total_annual_salary_expense": h.services.Employees.TotalAnnualSalaryExpense(employees),
		}, len(employees)
	})
}

func (h *ReportHandler) serveProducts(w http.ResponseWriter, r *http.Request, report string, compute func([]domain.Product) (any, int)) {
	var q fileQuery
	if err := h.validator.Bind(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.serve(w, r, report, func(ctx context.Context) (any, int, error) {
		products, err := h.readProducts(ctx, q.File)
		if err != nil {
			return nil, 0, err
		}
		data, count := compute(products)
		return data, count, nil
	})
}

func (h *ReportHandler) serveStudents(w http.ResponseWriter, r *http.Request, report string, compute func([]domain.Student) (any, int)) {
	var q fileQuery
	if err := h.validator.Bind(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.serve(w, r, report, func(ctx context.Context) (any, int, error) {
		students, err := h.readStudents(ctx, q.File)
		if err != nil {
			return nil, 0, err
		}
		data, count := compute(students)
		return data, count, nil
	})
}

func (h *ReportHandler) serveEmployees(w http.ResponseWriter, r *http.Request, report string, compute func([]domain.Employee) (any, int)) {
	var q fileQuery
	if err := h.validator.Bind(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.serve(w, r, report, func(ctx context.Context) (any, int, error) {
		employees, err := h.readEmployees(ctx, q.File)
		if err != nil {
			return nil, 0, err
		}
		data, count := compute(employees)
		return data, count, nil
	})
}

// serve runs compute, records the report metrics and renders either the
// result or an RFC 7807 problem.
func (h *ReportHandler) serve(w http.ResponseWriter, r *http.Request, report string, compute func(context.Context) (any, int, error)) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	h.logger.InfoContext(ctx, "computing report",
		slog.String("report", report),
		slog.String("request_id", reqID))

	start := time.Now()
	data, count, err := compute(ctx)
	infrastructure.RecordReportMetrics(ctx, h.metrics, report, count, time.Since(start), err)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"report": report,
		"data":   data,
		"count":  count,
	})
}

func (h *ReportHandler) readProducts(ctx context.Context, name string) ([]domain.Product, error) {
	path, err := h.resolve(name, h.report.ProductsFile)
	if err != nil {
		return nil, err
	}
	return h.services.Products.ReadProducts(ctx, path)
}

func (h *ReportHandler) readStudents(ctx context.Context, name string) ([]domain.Student, error) {
	path, err := h.resolve(name, h.report.StudentsFile)
	if err != nil {
		return nil, err
	}
	return h.services.Students.ReadStudents(ctx, path)
}

func (h *ReportHandler) readEmployees(ctx context.Context, name string) ([]domain.Employee, error) {
	path, err := h.resolve(name, h.report.EmployeesFile)
	if err != nil {
		return nil, err
	}
	return h.services.Employees.ReadEmployees(ctx, path)
}

func (h *ReportHandler) resolve(name, fallback string) (string, error) {
	if name == "" {
		name = fallback
	}
	return h.paths.ResolveDataFile(name)
}
