package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"sheetreport/internal/config"
	"sheetreport/internal/files"
	"sheetreport/pkg/contracts"
)

// HealthService provides health check functionality
type HealthService struct {
	paths         *config.Paths
	discovery     *files.Discovery
	eventsEnabled bool
	startTime     time.Time
	logger        *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SystemStats represents system statistics
type SystemStats struct {
	UptimeSeconds  float64          `json:"uptime_seconds"`
	WorkbookCount  int              `json:"workbook_count"`
	TotalSizeBytes int64            `json:"total_size_bytes"`
	Workbooks      []files.FileInfo `json:"workbooks"`
	GoVersion      string           `json:"go_version"`
	OS             string           `json:"os"`
	Arch           string           `json:"arch"`
}

// NewHealthService creates a health service reporting on the data directory.
func NewHealthService(paths *config.Paths, eventsEnabled bool, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", contracts.Version),
		slog.String("data_dir", paths.DataDir),
		slog.Bool("events_enabled", eventsEnabled))

	return &HealthService{
		paths:         paths,
		discovery:     files.NewDiscovery(paths.DataDir),
		eventsEnabled: eventsEnabled,
		startTime:     time.Now(),
		logger:        logger,
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   contracts.Version,
	}
}

// ReadinessCheck returns readiness status. Event publishing is reported but
// never blocks readiness.
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Services: map[string]ServiceHealth{
			"data":   hs.checkDataHealth(),
			"events": hs.checkEventsHealth(),
		},
	}

	if status.Services["data"].Status != "ready" {
		status.Status = "not_ready"
		hs.logger.WarnContext(ctx, "Readiness check failed",
			slog.String("reason", status.Services["data"].Message))
	}
	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() contracts.VersionInfo {
	return contracts.GetVersionInfo()
}

// SystemStats lists the workbooks available in the data directory.
func (hs *HealthService) SystemStats(ctx context.Context) (SystemStats, error) {
	workbooks, err := hs.discovery.FindWorkbooks(".")
	if err != nil {
		return SystemStats{}, err
	}

	var totalSize int64
	for _, wb := range workbooks {
		totalSize += wb.Size
	}

	return SystemStats{
		UptimeSeconds:  time.Since(hs.startTime).Seconds(),
		WorkbookCount:  len(workbooks),
		TotalSizeBytes: totalSize,
		Workbooks:      workbooks,
		GoVersion:      runtime.Version(),
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
	}, nil
}

func (hs *HealthService) checkDataHealth() ServiceHealth {
	info, err := os.Stat(hs.paths.DataDir)
	switch {
	case os.IsNotExist(err):
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("Data directory not found: %s", hs.paths.DataDir),
		}
	case err != nil:
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("Cannot access data directory: %v", err),
		}
	case !info.IsDir():
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("Data path is not a directory: %s", hs.paths.DataDir),
		}
	}

	return ServiceHealth{
		Status:  "ready",
		Message: "Data directory is accessible",
	}
}

func (hs *HealthService) checkEventsHealth() ServiceHealth {
	if !hs.eventsEnabled {
		return ServiceHealth{Status: "disabled", Message: "No brokers configured"}
	}
	return ServiceHealth{Status: "ready", Message: "Kafka publisher configured"}
}
