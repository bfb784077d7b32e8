// Package events publishes notifications about generated reports.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportGeneratedEvent announces that a report or workbook was produced.
type ReportGeneratedEvent struct {
	EventID     string    `json:"event_id"`
	Report      string    `json:"report"`
	Source      string    `json:"source"`
	RecordCount int       `json:"record_count"`
	OutputPath  string    `json:"output_path,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewReportGeneratedEvent stamps a new event with a UUID and the given time.
func NewReportGeneratedEvent(report, source string, recordCount int, outputPath string, now time.Time) ReportGeneratedEvent {
	return ReportGeneratedEvent{
		EventID:     uuid.New().String(),
		Report:      report,
		Source:      source,
		RecordCount: recordCount,
		OutputPath:  outputPath,
		Timestamp:   now.UTC(),
	}
}

// Publisher delivers report events.
type Publisher interface {
	PublishReportGenerated(ctx context.Context, event ReportGeneratedEvent) error
	Close() error
}
