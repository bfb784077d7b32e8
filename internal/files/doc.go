// Package files provides file discovery and generated-file bookkeeping.
//
// Discovery lists the workbooks and CSV reports in a directory in name order.
// Manager resolves names against the configured data, output and reports
// directories and tracks generated files so a run can delete them again,
// removing output directories that end up empty.
package files
