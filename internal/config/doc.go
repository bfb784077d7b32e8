// Package config provides configuration management for sheetreport.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (SHEETREPORT_CONFIG_FILE or sheetreport.yaml)
//	3. Default values from struct tags (lowest priority)
//
// A .env file in the working directory is loaded into the environment first;
// variables already set in the process environment win.
//
// # Environment Variables
//
// All environment variables follow the pattern SHEETREPORT_<SECTION>_<FIELD>:
//
//	SHEETREPORT_SERVER_PORT=8080
//	SHEETREPORT_PATHS_DATA_DIR=/srv/workbooks
//	SHEETREPORT_LOGGING_LEVEL=debug
//	SHEETREPORT_EVENTS_BROKERS=kafka-1:9092,kafka-2:9092
//
// # Path Management
//
// Paths resolves the data, output, reports and logs directories:
//
//	paths, err := config.NewPaths(cfg.Paths)
//	workbook, err := paths.ResolveDataFile("products.xlsx")
//	report := paths.GetReportPath("product_statistics.csv")
package config
