package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sheetreport/internal/infrastructure"
	"sheetreport/internal/spreadsheet"
)

// workbookStore wraps a gateway with the tracing and logging shared by every
// record service. kind names the records in spans and log lines.
type workbookStore[T any] struct {
	gateway spreadsheet.Gateway[T]
	logger  *slog.Logger
	tracer  trace.Tracer
	kind    string
}

func newWorkbookStore[T any](gateway spreadsheet.Gateway[T], kind string, logger *slog.Logger) workbookStore[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return workbookStore[T]{
		gateway: gateway,
		logger:  logger,
		tracer:  infrastructure.Tracer(),
		kind:    kind,
	}
}

func (s workbookStore[T]) save(ctx context.Context, records []T, path string) error {
	ctx, span := s.tracer.Start(ctx, s.kind+".save",
		trace.WithAttributes(
			attribute.String("workbook.path", path),
			attribute.Int("workbook.records", len(records)),
		))
	defer span.End()

	dir := filepath.Dir(path)
	_, statErr := os.Stat(dir)
	dirMissing := os.IsNotExist(statErr)

	start := time.Now()
	if err := s.gateway.Write(ctx, records, path); err != nil {
		infrastructure.RecordError(ctx, err, "workbook write failed")
		s.logger.ErrorContext(ctx, "Failed to save workbook",
			slog.String("records", s.kind),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("save %s to %s: %w", s.kind, path, err)
	}

	if dirMissing {
		s.logger.InfoContext(ctx, "Created directory", slog.String("path", dir))
	}
	s.logger.InfoContext(ctx, "Saved workbook",
		slog.String("records", s.kind),
		slog.String("path", path),
		slog.Int("count", len(records)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (s workbookStore[T]) read(ctx context.Context, path string) ([]T, error) {
	ctx, span := s.tracer.Start(ctx, s.kind+".read",
		trace.WithAttributes(attribute.String("workbook.path", path)))
	defer span.End()

	start := time.Now()
	records, err := s.gateway.Read(ctx, path)
	if err != nil {
		infrastructure.RecordError(ctx, err, "workbook read failed")
		s.logger.ErrorContext(ctx, "Failed to read workbook",
			slog.String("records", s.kind),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("read %s from %s: %w", s.kind, path, err)
	}

	span.SetAttributes(attribute.Int("workbook.records", len(records)))
	s.logger.InfoContext(ctx, "Read workbook",
		slog.String("records", s.kind),
		slog.String("path", path),
		slog.Int("count", len(records)),
		slog.Duration("duration", time.Since(start)))
	return records, nil
}
