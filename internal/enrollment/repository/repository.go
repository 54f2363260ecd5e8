package repository

import "edclass-backend/internal/enrollment/domain"

// EnrollmentRepository is the ledger that owns enrollment rows.
type EnrollmentRepository interface {
	// Enroll writes the pair unless it already exists. created reports
	// whether a new row was inserted; an existing pair is returned with
	// created=false and no error.
	Enroll(courseID, studentID string) (*domain.Enrollment, bool, error)

	Exists(courseID, studentID string) (bool, error)

	FindByCourse(courseID string) ([]domain.Enrollment, error)

	CountByCourse(courseID string) (int64, error)
}
