// Package exporter writes aggregation results as CSV reports.
//
// CSVWriter is the low-level writer: it resolves names against the configured
// report and output directories, optionally prefixes a UTF-8 BOM so Excel
// detects the encoding, and supports appending and streaming.
//
// StatisticsExporter turns analytics results into CSV files. Grouped
// statistics are written one row per group in ascending key order so reports
// are stable across runs.
//
//	writer := exporter.NewCSVWriter(paths, logger)
//	stats := exporter.NewStatisticsExporter(writer, logger)
//	path, err := stats.ExportCategoryStatistics(ctx, "categories.csv", analytics.CategoryStatistics(products))
package exporter
