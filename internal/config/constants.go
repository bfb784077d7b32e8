package config

// Application constants
const (
	AppName = "sheetreport"

	// EnvPrefix namespaces every environment variable, e.g. SHEETREPORT_SERVER_PORT.
	EnvPrefix      = "SHEETREPORT"
	DefaultEnvFile = ".env"

	DefaultDataDir   = "data"
	DefaultOutputDir = "output"
	DefaultLogsDir   = "logs"
	ReportsSubdir    = "reports"

	DefaultProductsFile  = "products.xlsx"
	DefaultStudentsFile  = "students.xlsx"
	DefaultEmployeesFile = "employees.xlsx"

	DefaultEventsTopic = "report-events"
)
