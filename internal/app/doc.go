// Package app wires the report API server: configuration, logging,
// OpenTelemetry, the workbook-backed services, the chi router and the HTTP
// server lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration from .env, the config file and environment
//	2. Initialize logging and observability
//	3. Resolve and create the data, output and logs directories
//	4. Build one service per record kind over an excelize workbook
//	5. Set up handlers and middleware
//	6. Create the HTTP server
//
// # Usage
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    return err
//	}
//	return application.Run()
//
// Run serves until SIGINT or SIGTERM and then shuts down within the configured
// shutdown timeout. Initialization errors are returned to the caller; the
// package never calls os.Exit.
package app
