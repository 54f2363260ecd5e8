package repository

import (
	"time"

	"edclass-backend/internal/enrollment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEnrollmentRepository implements EnrollmentRepository using GORM
type gormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GORM-based EnrollmentRepository
func NewGormEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &gormEnrollmentRepository{db: db}
}

func (r *gormEnrollmentRepository) Enroll(courseID, studentID string) (*domain.Enrollment, bool, error) {
	var existing []domain.Enrollment
	err := r.db.Where("course_id = ? AND student_id = ?", courseID, studentID).Find(&existing).Error
	if err != nil {
		return nil, false, err
	}

	if len(existing) > 0 {
		return &existing[0], false, nil
	}

	enrollment := &domain.Enrollment{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		StudentID: studentID,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(enrollment).Error; err != nil {
		return nil, false, err
	}
	return enrollment, true, nil
}

func (r *gormEnrollmentRepository) Exists(courseID, studentID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Enrollment{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormEnrollmentRepository) FindByCourse(courseID string) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.Where("course_id = ?", courseID).Order("created_at ASC").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) CountByCourse(courseID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
