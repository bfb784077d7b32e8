package analytics

import "sheetreport/pkg/contracts/domain"

// MajorStats summarizes the students of one major.
type MajorStats struct {
	Count               int     `json:"count"`
	AverageGPA          float64 `json:"average_gpa"`
	HonorStudents       int     `json:"honor_students"`
	ScholarshipStudents int     `json:"scholarship_students"`
}

// FilterByMajor returns the students whose major equals major exactly.
func FilterByMajor(students []domain.Student, major string) []domain.Student {
	return filter(students, func(s domain.Student) bool { return s.Major == major })
}

// FilterHonorStudents returns the students with a GPA of at least 3.5.
func FilterHonorStudents(students []domain.Student) []domain.Student {
	return filter(students, domain.Student.IsHonorStudent)
}

// FilterScholarshipStudents returns the students holding a scholarship.
func FilterScholarshipStudents(students []domain.Student) []domain.Student {
	return filter(students, func(s domain.Student) bool { return s.HasScholarship })
}

// FilterByGrade returns the students in the given year of study.
func FilterByGrade(students []domain.Student, grade int) []domain.Student {
	return filter(students, func(s domain.Student) bool { return s.Grade == grade })
}

// MajorStatistics groups students by major. AverageGPA is a plain float mean.
func MajorStatistics(students []domain.Student) map[string]MajorStats {
	result := make(map[string]MajorStats)
	gpaSums := make(map[string]float64)

	for _, s := range students {
		stats := result[s.Major]
		stats.Count++
		if s.IsHonorStudent() {
			stats.HonorStudents++
		}
		if s.HasScholarship {
			stats.ScholarshipStudents++
		}
		result[s.Major] = stats
		gpaSums[s.Major] += s.GPA
	}

	for major, stats := range result {
		stats.AverageGPA = gpaSums[major] / float64(stats.Count)
		result[major] = stats
	}
	return result
}
