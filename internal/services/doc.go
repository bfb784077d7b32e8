// Package services composes the spreadsheet gateway with the analytics engine.
//
// Each record type has its own service: ProductService, StudentService and
// EmployeeService. Services own the boundary concerns of a report run. They
// open a span around every workbook read or write, log the outcome with its
// duration and wrap gateway errors with the path involved. The filter and
// statistics methods delegate to package analytics unchanged, so they stay
// pure and safe for concurrent use.
//
// HealthService backs the liveness, readiness and version endpoints of the
// report API.
package services
