package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "sheetreport/internal/errors"
)

// Paths contains all the application paths, resolved to absolute form.
type Paths struct {
	DataDir    string
	OutputDir  string
	ReportsDir string
	LogsDir    string
}

// NewPaths resolves cfg against the working directory.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	resolve := func(dir string) (string, error) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %q: %w", dir, err)
		}
		return abs, nil
	}

	dataDir, err := resolve(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	outputDir, err := resolve(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	logsDir, err := resolve(cfg.LogsDir)
	if err != nil {
		return nil, err
	}

	return &Paths{
		DataDir:    dataDir,
		OutputDir:  outputDir,
		ReportsDir: filepath.Join(outputDir, ReportsSubdir),
		LogsDir:    logsDir,
	}, nil
}

// GetPaths resolves the default directory layout.
func GetPaths() (*Paths, error) {
	return NewPaths(Default().Paths)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.OutputDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Debug("Ensured directory exists", slog.String("directory", dir))
	}
	return nil
}

// GetDataPath returns the path of a workbook in the data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// GetOutputPath returns the path of a generated workbook
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// GetReportPath returns the path of an exported statistics report
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path of a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// ResolveDataFile maps a client supplied workbook name onto the data directory.
// Only plain .xlsx file names are accepted.
func (p *Paths) ResolveDataFile(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", apperrors.NewValidationError("file", "must not be empty")
	case name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == "..":
		return "", apperrors.NewValidationError("file", "must be a file name without directories")
	case !strings.EqualFold(filepath.Ext(name), ".xlsx"):
		return "", apperrors.NewValidationError("file", "must be an .xlsx workbook")
	}
	return p.GetDataPath(name), nil
}

// LogPathResolution logs the resolved directories
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("data", p.DataDir),
			slog.String("output", p.OutputDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
