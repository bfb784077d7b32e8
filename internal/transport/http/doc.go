// Package http implements the HTTP handlers of the report API.
//
// Handlers stay thin. They bind and validate query parameters, resolve the
// requested workbook inside the data directory, call a record service and
// render the result as JSON. Failures are rendered as RFC 7807 problem
// details through the shared ErrorHandler:
//
//	VALIDATION, INVALID_RANGE  400 Bad Request
//	IO, NOT_FOUND              404 Not Found
//	SERIALIZATION              422 Unprocessable Entity
//
// Successful responses share one envelope:
//
//	{"status": "success", "report": "<name>", "count": n, "data": ...}
//
// Every workbook endpoint accepts an optional file parameter naming an .xlsx
// file in the data directory. Without it the configured default workbook for
// the record type is read.
package http
