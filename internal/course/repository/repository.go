package repository

import (
	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/course/domain"
)

// CourseRepository reads the course catalogue and resolves course teachers.
type CourseRepository interface {
	FindAll() ([]domain.Course, error)

	FindByID(id string) (*domain.Course, error)

	FindByTeacherID(teacherID string) ([]domain.Course, error)

	// FindTeacher resolves the owning teacher of a course; nil when the
	// course or its teacher is absent.
	FindTeacher(courseID string) (*authdomain.User, error)
}
