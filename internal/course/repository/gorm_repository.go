package repository

import (
	"errors"

	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/course/domain"

	"gorm.io/gorm"
)

// gormCourseRepository implements CourseRepository using GORM
type gormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository creates a new GORM-based CourseRepository
func NewGormCourseRepository(db *gorm.DB) CourseRepository {
	return &gormCourseRepository{db: db}
}

func (r *gormCourseRepository) FindAll() ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.db.Order("created_at ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *gormCourseRepository) FindByID(id string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *gormCourseRepository) FindByTeacherID(teacherID string) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.Where("teacher_id = ?", teacherID).Order("created_at ASC").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *gormCourseRepository) FindTeacher(courseID string) (*authdomain.User, error) {
	course, err := r.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	var teacher authdomain.User
	err = r.db.Where("id = ?", course.TeacherID).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &teacher, nil
}
