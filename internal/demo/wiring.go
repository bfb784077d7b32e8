package demo

import (
	"log/slog"

	"sheetreport/internal/config"
	"sheetreport/internal/events"
	"sheetreport/internal/exporter"
	"sheetreport/internal/files"
	"sheetreport/internal/infrastructure"
	"sheetreport/internal/services"
	"sheetreport/internal/spreadsheet"
)

// NewDependencies wires excelize workbooks, the record services, the CSV
// exporter and a file manager rooted at paths.
func NewDependencies(paths *config.Paths, publisher events.Publisher, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) Dependencies {
	if logger == nil {
		logger = slog.Default()
	}
	return Dependencies{
		Products:  services.NewProductService(spreadsheet.NewWorkbook(spreadsheet.ProductSchema(), logger), logger),
		Students:  services.NewStudentService(spreadsheet.NewWorkbook(spreadsheet.StudentSchema(), logger), logger),
		Employees: services.NewEmployeeService(spreadsheet.NewWorkbook(spreadsheet.EmployeeSchema(), logger), logger),
		Exporter:  exporter.NewStatisticsExporter(exporter.NewCSVWriter(paths, logger), logger),
		Publisher: publisher,
		Files:     files.NewManager(paths, logger),
		Metrics:   metrics,
		Logger:    logger,
	}
}
