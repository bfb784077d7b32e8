package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"sheetreport/internal/config"
	apperrors "sheetreport/internal/errors"
	"sheetreport/internal/infrastructure"
)

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes report events as JSON messages keyed by event ID.
type KafkaPublisher struct {
	writer       MessageWriter
	topic        string
	writeTimeout time.Duration
	metrics      *infrastructure.BusinessMetrics
	logger       *slog.Logger
}

// NewKafkaPublisher creates a publisher for the configured brokers and topic.
func NewKafkaPublisher(cfg config.EventsConfig, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return newKafkaPublisher(writer, cfg, metrics, logger)
}

func newKafkaPublisher(writer MessageWriter, cfg config.EventsConfig, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &KafkaPublisher{
		writer:       writer,
		topic:        cfg.Topic,
		writeTimeout: timeout,
		metrics:      metrics,
		logger:       logger.With(slog.String("component", "kafka_publisher"), slog.String("topic", cfg.Topic)),
	}
}

// PublishReportGenerated sends one event, bounded by the configured write timeout.
func (p *KafkaPublisher) PublishReportGenerated(ctx context.Context, event ReportGeneratedEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal event",
			slog.String("event_id", event.EventID),
			slog.String("error", err.Error()))
		return apperrors.NewSerializationError("failed to marshal report event", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "report", Value: []byte(event.Report)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish message",
			slog.String("event_id", event.EventID),
			slog.String("report", event.Report),
			slog.String("error", err.Error()))
		return apperrors.NewIOError("failed to publish report event", err).
			WithContext("event_id", event.EventID)
	}

	if p.metrics != nil {
		p.metrics.ReportEventsPublished.Add(ctx, 1, metric.WithAttributes(attribute.String("report", event.Report)))
	}

	p.logger.InfoContext(ctx, "Event published successfully",
		slog.String("event_id", event.EventID),
		slog.String("report", event.Report),
		slog.Int("record_count", event.RecordCount))
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// NopPublisher drops events. It is used when no brokers are configured.
type NopPublisher struct {
	logger *slog.Logger
}

// NewNopPublisher creates a publisher that only logs at debug level.
func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NopPublisher{logger: logger.With(slog.String("component", "nop_publisher"))}
}

// PublishReportGenerated implements Publisher.
func (p *NopPublisher) PublishReportGenerated(ctx context.Context, event ReportGeneratedEvent) error {
	p.logger.DebugContext(ctx, "event publishing disabled, dropping event",
		slog.String("event_id", event.EventID),
		slog.String("report", event.Report))
	return nil
}

// Close implements Publisher.
func (p *NopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher when brokers are configured and a
// NopPublisher otherwise.
func NewPublisher(cfg config.EventsConfig, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) Publisher {
	if !cfg.Enabled() {
		return NewNopPublisher(logger)
	}
	return NewKafkaPublisher(cfg, metrics, logger)
}
