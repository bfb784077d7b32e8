// Package demo runs the sample records through the workbook gateway and the
// analytics engine, the way a first-time user would explore the module.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"sheetreport/internal/analytics"
	"sheetreport/internal/events"
	"sheetreport/internal/exporter"
	"sheetreport/internal/files"
	"sheetreport/internal/infrastructure"
	"sheetreport/internal/services"
	"sheetreport/pkg/contracts/domain"
)

const eventSource = "demo"

// HighSalaryThreshold is the monthly salary the salary analysis reports on.
var HighSalaryThreshold = decimal.NewFromInt(80000)

// Dependencies are the collaborators of a Runner.
type Dependencies struct {
	Products  *services.ProductService
	Students  *services.StudentService
	Employees *services.EmployeeService
	Exporter  *exporter.StatisticsExporter
	Publisher events.Publisher
	Files     *files.Manager
	Metrics   *infrastructure.BusinessMetrics
	Logger    *slog.Logger
}

// Options tune a run.
type Options struct {
	// KeepOutput leaves generated workbooks and reports on disk.
	KeepOutput bool
	// Now is the clock used for sample timestamps and events.
	Now func() time.Time
}

// Runner executes the product, student and employee demos in order.
type Runner struct {
	deps   Dependencies
	opts   Options
	logger *slog.Logger
}

// NewRunner creates a demo runner.
func NewRunner(deps Dependencies, opts Options) *Runner {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NewNopPublisher(deps.Logger)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		deps:   deps,
		opts:   opts,
		logger: deps.Logger.With(slog.String("component", "demo")),
	}
}

// Run executes every demo. A failing demo does not stop the ones after it;
// all failures are returned together. Generated files are removed at the end
// unless KeepOutput is set.
func (r *Runner) Run(ctx context.Context) (err error) {
	r.logger.InfoContext(ctx, "Demo started")

	if err := r.deps.Files.EnsureDirectory("."); err != nil {
		return err
	}

	defer func() {
		if r.opts.KeepOutput {
			r.logger.InfoContext(ctx, "Keeping generated files",
				slog.Int("files", len(r.deps.Files.TrackedFiles())))
			return
		}
		// Cleanup runs even when the run was canceled.
		if cleanupErr := r.deps.Files.Cleanup(context.WithoutCancel(ctx)); cleanupErr != nil {
			err = errors.Join(err, cleanupErr)
		}
	}()

	demos := []struct {
		name string
		run  func(context.Context) error
	}{
		{"products", r.runProductDemo},
		{"students", r.runStudentDemo},
		{"employees", r.runEmployeeDemo},
	}

	var errs []error
	for _, d := range demos {
		if ctxErr := ctx.Err(); ctxErr != nil {
			errs = append(errs, ctxErr)
			break
		}
		if demoErr := d.run(ctx); demoErr != nil {
			r.logger.ErrorContext(ctx, "Demo failed",
				slog.String("demo", d.name),
				slog.String("error", demoErr.Error()))
			errs = append(errs, fmt.Errorf("%s demo: %w", d.name, demoErr))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	r.logger.InfoContext(ctx, "All demos completed successfully")
	return nil
}

func (r *Runner) runProductDemo(ctx context.Context) error {
	svc := r.deps.Products
	products := SampleProducts()
	path := r.deps.Files.ResolvePath("products.xlsx")

	if err := r.saveWorkbook(ctx, "products", path, len(products), func(ctx context.Context) error {
		return svc.SaveProducts(ctx, products, path)
	}); err != nil {
		return err
	}
	for _, p := range products {
		r.logger.InfoContext(ctx, "Sample product saved",
			slog.String("product", p.DisplayName()),
			slog.String("price", p.Price.StringFixed(2)),
			slog.Int("stock", p.StockQuantity),
			slog.String("total_value", p.TotalValue().StringFixed(2)))
	}

	stored, err := svc.ReadProducts(ctx, path)
	if err != nil {
		return err
	}

	lowStock := svc.LowStockProducts(stored)
	for _, p := range lowStock {
		r.logger.InfoContext(ctx, "Low stock product",
			slog.String("name", p.Name),
			slog.Int("stock", p.StockQuantity))
	}
	if len(lowStock) > 0 {
		lowStockPath := r.deps.Files.ResolvePath("low_stock_products.xlsx")
		if err := r.saveWorkbook(ctx, "low_stock_products", lowStockPath, len(lowStock), func(ctx context.Context) error {
			return svc.SaveProducts(ctx, lowStock, lowStockPath)
		}); err != nil {
			return err
		}
	}

	stats := svc.Statistics(stored)
	r.logger.InfoContext(ctx, "Product statistics",
		slog.Int("total_products", stats.TotalProducts),
		slog.String("total_value", stats.TotalValue.StringFixed(2)),
		slog.String("average_price", stats.AveragePrice.StringFixed(2)),
		slog.Int("low_stock_count", stats.LowStockCount),
		slog.Int("premium_products", stats.PremiumProductCount))

	categories := svc.CategoryStatistics(stored)
	return errors.Join(
		r.exportReport(ctx, "product_statistics", 1, func(ctx context.Context) (string, error) {
			return r.deps.Exporter.ExportProductStatistics(ctx, "product_statistics.csv", stats)
		}),
		r.exportReport(ctx, "category_statistics", len(categories), func(ctx context.Context) (string, error) {
			return r.deps.Exporter.ExportCategoryStatistics(ctx, "category_statistics.csv", categories)
		}),
		r.exportReport(ctx, "product_listing", len(stored), func(ctx context.Context) (string, error) {
			return r.deps.Exporter.ExportProducts(ctx, "product_listing.csv", stored)
		}),
	)
}

func (r *Runner) runStudentDemo(ctx context.Context) error {
	svc := r.deps.Students
	students := SampleStudents()
	path := r.deps.Files.ResolvePath("students.xlsx")

	if err := r.saveWorkbook(ctx, "students", path, len(students), func(ctx context.Context) error {
		return svc.SaveStudents(ctx, students, path)
	}); err != nil {
		return err
	}
	for _, s := range students {
		r.logger.InfoContext(ctx, "Sample student saved",
			slog.String("name", s.Name),
			slog.String("major", s.Major),
			slog.String("grade_level", s.GradeLevel()),
			slog.Float64("gpa", s.GPA))
	}

	stored, err := svc.ReadStudents(ctx, path)
	if err != nil {
		return err
	}

	honor := svc.HonorStudents(stored)
	for _, s := range honor {
		r.logger.InfoContext(ctx, "Honor student", slog.String("name", s.Name), slog.Float64("gpa", s.GPA))
	}
	scholarship := svc.ScholarshipStudents(stored)
	for _, s := range scholarship {
		r.logger.InfoContext(ctx, "Scholarship student", slog.String("name", s.Name), slog.String("major", s.Major))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, subset := range []struct {
		report   string
		students []domain.Student
	}{
		{"honor_students", honor},
		{"scholarship_students", scholarship},
	} {
		g.Go(func() error {
			subsetPath := r.deps.Files.ResolvePath(subset.report + ".xlsx")
			return r.saveWorkbook(gctx, subset.report, subsetPath, len(subset.students), func(ctx context.Context) error {
				return svc.SaveStudents(ctx, subset.students, subsetPath)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	majors := svc.MajorStatistics(stored)
	for _, major := range analytics.SortedKeys(majors) {
		m := majors[major]
		r.logger.InfoContext(ctx, "Major statistics",
			slog.String("major", major),
			slog.Int("count", m.Count),
			slog.String("average_gpa", fmt.Sprintf("%.2f", m.AverageGPA)),
			slog.Int("honor_students", m.HonorStudents),
			slog.Int("scholarship_students", m.ScholarshipStudents))
	}

	return r.exportReport(ctx, "major_statistics", len(majors), func(ctx context.Context) (string, error) {
		return r.deps.Exporter.ExportMajorStatistics(ctx, "major_statistics.csv", majors)
	})
}

func (r *Runner) runEmployeeDemo(ctx context.Context) error {
	svc := r.deps.Employees
	now := r.opts.Now()
	employees := SampleEmployees(now)
	path := r.deps.Files.ResolvePath("employees.xlsx")

	if err := r.saveWorkbook(ctx, "employees", path, len(employees), func(ctx context.Context) error {
		return svc.SaveEmployees(ctx, employees, path)
	}); err != nil {
		return err
	}

	stored, err := svc.ReadEmployees(ctx, path)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		return nil
	}

	total := svc.TotalAnnualSalaryExpense(stored)
	count := decimal.NewFromInt(int64(len(stored)))
	r.logger.InfoContext(ctx, "Employees read",
		slog.Int("total_employees", len(stored)),
		slog.Int64("total_annual_salary_expense", total.IntPart()),
		slog.Int64("average_monthly_salary", total.Div(decimal.NewFromInt(12)).DivRound(count, 2).IntPart()))

	// Department and grade workbooks are independent, so they are written concurrently.
	type subset struct {
		report  string
		records int
		save    func(ctx context.Context, path string) (bool, error)
	}
	department := func(name string) subset {
		return subset{
			report:  strings.ToLower(name) + "_team",
			records: len(analytics.FilterByDepartment(stored, name)),
			save: func(ctx context.Context, p string) (bool, error) {
				return svc.SaveByDepartment(ctx, stored, name, p)
			},
		}
	}
	grade := func(report string, g domain.SalaryGrade) subset {
		return subset{
			report:  report,
			records: len(analytics.FilterBySalaryGrade(stored, g)),
			save: func(ctx context.Context, p string) (bool, error) {
				return svc.SaveBySalaryGrade(ctx, stored, g, p)
			},
		}
	}
	subsets := []subset{
		department("Card"),
		department("BRM"),
		grade("senior_employees", domain.SalaryGradeSenior),
		grade("mid_level_employees", domain.SalaryGradeMid),
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range subsets {
		g.Go(func() error {
			subsetPath := r.deps.Files.ResolvePath(s.report + ".xlsx")
			start := time.Now()
			saved, err := s.save(gctx, subsetPath)
			infrastructure.RecordReportMetrics(gctx, r.deps.Metrics, s.report, s.records, time.Since(start), err)
			if err != nil || !saved {
				return err
			}
			r.deps.Files.Track(subsetPath)
			r.logger.InfoContext(gctx, "File created and tracked", slog.String("path", subsetPath))
			r.publish(gctx, s.report, s.records, subsetPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	departments := svc.DepartmentStatistics(stored)
	for _, dept := range analytics.SortedKeys(departments) {
		d := departments[dept]
		r.logger.InfoContext(ctx, "Department statistics",
			slog.String("department", dept),
			slog.Int("count", d.Count),
			slog.Int64("average_salary", d.AverageSalary.IntPart()),
			slog.Int("senior_count", d.SeniorCount))
	}

	for _, e := range svc.HighSalaryEmployees(stored, HighSalaryThreshold) {
		r.logger.InfoContext(ctx, "High salary employee",
			slog.String("name", e.Name),
			slog.String("department", e.Department),
			slog.String("salary", e.FormattedSalary()),
			slog.Int("service_years", e.ServiceYears(now)))
	}

	distribution := svc.SalaryGradeDistribution(stored)
	for _, grade := range domain.SalaryGrades {
		r.logger.InfoContext(ctx, "Salary grade distribution",
			slog.String("grade", string(grade)),
			slog.Int("employees", distribution[grade]))
	}

	r.logger.InfoContext(ctx, "Company financial overview",
		slog.Int64("total_annual_salary_expense", total.IntPart()),
		slog.Int64("average_annual_salary", total.DivRound(count, 2).IntPart()),
		slog.Int64("monthly_payroll", total.DivRound(decimal.NewFromInt(12), 2).IntPart()))

	return errors.Join(
		r.exportReport(ctx, "department_statistics", len(departments), func(ctx context.Context) (string, error) {
			return r.deps.Exporter.ExportDepartmentStatistics(ctx, "department_statistics.csv", departments)
		}),
		r.exportReport(ctx, "salary_grades", len(distribution), func(ctx context.Context) (string, error) {
			return r.deps.Exporter.ExportSalaryGradeDistribution(ctx, "salary_grades.csv", distribution)
		}),
	)
}

// saveWorkbook runs save, then tracks path and announces the workbook.
func (r *Runner) saveWorkbook(ctx context.Context, report, path string, records int, save func(context.Context) error) error {
	start := time.Now()
	err := save(ctx)
	infrastructure.RecordReportMetrics(ctx, r.deps.Metrics, report, records, time.Since(start), err)
	if err != nil {
		return err
	}

	r.deps.Files.Track(path)
	r.logger.InfoContext(ctx, "File created and tracked", slog.String("path", path))
	r.publish(ctx, report, records, path)
	return nil
}

// exportReport writes a CSV report, then tracks and announces it.
func (r *Runner) exportReport(ctx context.Context, report string, records int, export func(context.Context) (string, error)) error {
	start := time.Now()
	path, err := export(ctx)
	infrastructure.RecordReportMetrics(ctx, r.deps.Metrics, report, records, time.Since(start), err)
	if err != nil {
		return err
	}

	r.deps.Files.Track(path)
	r.publish(ctx, report, records, path)
	return nil
}

// publish announces a report. Delivery failures are logged and never fail the demo.
func (r *Runner) publish(ctx context.Context, report string, records int, path string) {
	event := events.NewReportGeneratedEvent(report, eventSource, records, path, r.opts.Now())
	if err := r.deps.Publisher.PublishReportGenerated(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "Failed to publish report event",
			slog.String("report", report),
			slog.String("error", err.Error()))
	}
}
