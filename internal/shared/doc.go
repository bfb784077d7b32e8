// Package shared is the home of helpers used across layers of sheetreport.
//
// The testutil subpackage provides a capturing slog handler with assertion
// helpers and the sample product, student and employee records that tests
// across the codebase share:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    svc := services.NewProductService(gateway, logger)
//	    ...
//	    testutil.AssertLogContains(t, logs, slog.LevelInfo, "products saved")
//	}
package shared
