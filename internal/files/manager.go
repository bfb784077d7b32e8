package files

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"sheetreport/internal/config"
	apperrors "sheetreport/internal/errors"
)

// Manager resolves names against the configured directories and keeps track
// of generated files so a run can remove what it produced.
type Manager struct {
	paths  *config.Paths
	logger *slog.Logger

	mu      sync.Mutex
	tracked []string
}

// NewManager creates a new file manager instance
func NewManager(paths *config.Paths, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		paths:  paths,
		logger: logger.With(slog.String("component", "file_manager")),
	}
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	fullPath := m.ResolvePath(path)
	_, err := os.Stat(fullPath)
	exists := err == nil

	m.logger.Debug("FileExists check",
		slog.String("path", path),
		slog.String("full_path", fullPath),
		slog.Bool("exists", exists))

	return exists
}

// EnsureDirectory creates a directory if it doesn't exist
func (m *Manager) EnsureDirectory(path string) error {
	fullPath := m.ResolvePath(path)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return apperrors.NewIOError("failed to create directory", err).WithContext("path", fullPath)
	}
	return nil
}

// Track records a generated file for later cleanup. Tracking the same path
// twice keeps a single entry.
func (m *Manager) Track(path string) string {
	fullPath := m.ResolvePath(path)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.Contains(m.tracked, fullPath) {
		m.tracked = append(m.tracked, fullPath)
	}
	return fullPath
}

// TrackedFiles returns the tracked paths in tracking order.
func (m *Manager) TrackedFiles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.tracked)
}

// Cleanup deletes every tracked file, then removes the directories that held
// them and the output directory itself when they are left empty. Missing
// files are not an error.
func (m *Manager) Cleanup(ctx context.Context) error {
	m.mu.Lock()
	tracked := m.tracked
	m.tracked = nil
	m.mu.Unlock()

	var errs []error
	dirs := make([]string, 0, len(tracked))
	for _, path := range tracked {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.logger.WarnContext(ctx, "Failed to delete file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}
		m.logger.InfoContext(ctx, "Deleted file", slog.String("path", path))
		if dir := filepath.Dir(path); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	if !slices.Contains(dirs, m.paths.OutputDir) {
		dirs = append(dirs, m.paths.OutputDir)
	}

	// Deepest first so a nested reports directory goes before its parent.
	slices.SortFunc(dirs, func(a, b string) int { return len(b) - len(a) })
	for _, dir := range dirs {
		for d := dir; m.isManaged(d); d = filepath.Dir(d) {
			removed, err := RemoveIfEmpty(d)
			if err != nil {
				errs = append(errs, err)
			}
			if !removed {
				break
			}
			m.logger.InfoContext(ctx, "Removed empty directory", slog.String("path", d))
		}
	}

	if len(errs) > 0 {
		return apperrors.NewIOError("cleanup incomplete", errors.Join(errs...))
	}
	return nil
}

// isManaged reports whether dir is the output directory or below it.
func (m *Manager) isManaged(dir string) bool {
	rel, err := filepath.Rel(m.paths.OutputDir, dir)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// RemoveIfEmpty deletes dir when it has no entries and reports whether it did.
func RemoveIfEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewIOError("failed to read directory", err).WithContext("path", dir)
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(dir); err != nil {
		return false, apperrors.NewIOError("failed to remove directory", err).WithContext("path", dir)
	}
	return true, nil
}

// ResolvePath maps "reports/..." and "data/..." onto the configured
// directories and any other relative name onto the output directory.
// Absolute paths are returned unchanged.
func (m *Manager) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	slashed := filepath.ToSlash(path)
	switch {
	case strings.HasPrefix(slashed, "reports/"):
		return m.paths.GetReportPath(filepath.FromSlash(strings.TrimPrefix(slashed, "reports/")))
	case strings.HasPrefix(slashed, "data/"):
		return m.paths.GetDataPath(filepath.FromSlash(strings.TrimPrefix(slashed, "data/")))
	default:
		return m.paths.GetOutputPath(path)
	}
}
