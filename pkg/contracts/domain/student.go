package domain

import "strings"

// HonorGPAThreshold is the minimum GPA of an honor student.
const HonorGPAThreshold = 3.5

// Student is a university student record.
type Student struct {
	StudentID      string  `json:"student_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Major          string  `json:"major"`
	Grade          int     `json:"grade"`
	GPA            float64 `json:"gpa"`
	HasScholarship bool    `json:"has_scholarship"`
}

// NewStudent builds a validated student.
func NewStudent(studentID, name, email, major string, grade int, gpa float64, hasScholarship bool) (Student, error) {
	s := Student{
		StudentID:      studentID,
		Name:           name,
		Email:          email,
		Major:          major,
		Grade:          grade,
		GPA:            gpa,
		HasScholarship: hasScholarship,
	}
	if err := s.Validate(); err != nil {
		return Student{}, err
	}
	return s, nil
}

// Validate requires a student identifier. Grade and GPA ranges are not enforced.
func (s Student) Validate() error {
	if strings.TrimSpace(s.StudentID) == "" {
		return newFieldError("student_id", "must not be empty")
	}
	return nil
}

// GradeLevel maps the year of study to its name; anything past 4 is Graduate.
func (s Student) GradeLevel() string {
	switch s.Grade {
	case 1:
		return "Freshman"
	case 2:
		return "Sophomore"
	case 3:
		return "Junior"
	case 4:
		return "Senior"
	default:
		return "Graduate"
	}
}

// IsHonorStudent reports whether the GPA reaches HonorGPAThreshold.
func (s Student) IsHonorStudent() bool {
	return s.GPA >= HonorGPAThreshold
}

// EmailDomain returns everything after the first "@", or "unknown".
func (s Student) EmailDomain() string {
	_, domain, found := strings.Cut(s.Email, "@")
	if !found {
		return "unknown"
	}
	return domain
}
