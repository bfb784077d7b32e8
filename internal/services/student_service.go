package services

import (
	"context"
	"log/slog"

	"sheetreport/internal/analytics"
	"sheetreport/internal/spreadsheet"
	"sheetreport/pkg/contracts/domain"
)

// StudentService persists student records and reports on them.
type StudentService struct {
	store workbookStore[domain.Student]
}

// NewStudentService creates a student service on top of gateway.
func NewStudentService(gateway spreadsheet.Gateway[domain.Student], logger *slog.Logger) *StudentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentService{
		store: newWorkbookStore(gateway, "students", logger.With(slog.String("service", "student"))),
	}
}

// SaveStudents writes students to the workbook at path. A missing parent
// directory is created and logged.
func (s *StudentService) SaveStudents(ctx context.Context, students []domain.Student, path string) error {
	return s.store.save(ctx, students, path)
}

// ReadStudents loads every student from the workbook at path.
func (s *StudentService) ReadStudents(ctx context.Context, path string) ([]domain.Student, error) {
	return s.store.read(ctx, path)
}

// StudentsByMajor returns the students enrolled in major.
func (s *StudentService) StudentsByMajor(students []domain.Student, major string) []domain.Student {
	return analytics.FilterByMajor(students, major)
}

// HonorStudents returns the students at or above the honor GPA.
func (s *StudentService) HonorStudents(students []domain.Student) []domain.Student {
	return analytics.FilterHonorStudents(students)
}

// ScholarshipStudents returns the students holding a scholarship.
func (s *StudentService) ScholarshipStudents(students []domain.Student) []domain.Student {
	return analytics.FilterScholarshipStudents(students)
}

// StudentsByGrade returns the students in the given year of study.
func (s *StudentService) StudentsByGrade(students []domain.Student, grade int) []domain.Student {
	return analytics.FilterByGrade(students, grade)
}

// MajorStatistics summarizes students per major.
func (s *StudentService) MajorStatistics(students []domain.Student) map[string]analytics.MajorStats {
	return analytics.MajorStatistics(students)
}
