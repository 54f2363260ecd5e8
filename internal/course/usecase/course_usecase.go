package usecase

import (
	authdomain "edclass-backend/internal/auth/domain"
	authrepo "edclass-backend/internal/auth/repository"
	"edclass-backend/internal/course/domain"
	"edclass-backend/internal/course/repository"
	enrollrepo "edclass-backend/internal/enrollment/repository"
	"edclass-backend/pkg/apperr"
)

// CourseWithEnrollment decorates a course with the caller's enrollment flag.
type CourseWithEnrollment struct {
	Course   domain.Course `json:"course"`
	Enrolled bool          `json:"enrolled"`
}

// CourseDetail is a course with its teacher and enrolled students.
type CourseDetail struct {
	Course   domain.Course     `json:"course"`
	Teacher  *authdomain.User  `json:"teacher"`
	Students []authdomain.User `json:"students"`
	Enrolled bool              `json:"enrolled"`
}

// TeacherCourse is a course of the calling teacher with its student count.
type TeacherCourse struct {
	Course   domain.Course `json:"course"`
	Students int64         `json:"students"`
}

// CourseUsecase defines the interface for course reads
type CourseUsecase interface {
	// List returns every course; for students each carries their
	// enrollment flag.
	List(user *authdomain.User) ([]CourseWithEnrollment, error)

	// Get returns one course with teacher and enrolled students.
	Get(user *authdomain.User, courseID string) (*CourseDetail, error)

	// Mine returns the calling teacher's courses with student counts.
	Mine(user *authdomain.User) ([]TeacherCourse, error)
}

// courseUsecase implements CourseUsecase interface
type courseUsecase struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo enrollrepo.EnrollmentRepository
	userRepo       authrepo.UserRepository
}

// NewCourseUsecase creates a new instance of courseUsecase
func NewCourseUsecase(courseRepo repository.CourseRepository, enrollmentRepo enrollrepo.EnrollmentRepository, userRepo authrepo.UserRepository) CourseUsecase {
	return &courseUsecase{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
	}
}

func (u *courseUsecase) List(user *authdomain.User) ([]CourseWithEnrollment, error) {
	courses, err := u.courseRepo.FindAll()
	if err != nil {
		return nil, apperr.NewStore("list courses", err)
	}

	out := make([]CourseWithEnrollment, 0, len(courses))
	for _, course := range courses {
		enrolled := false
		if user.Role == authdomain.RoleStudent {
			enrolled, err = u.enrollmentRepo.Exists(course.ID, user.ID)
			if err != nil {
				return nil, apperr.NewStore("check enrollment", err)
			}
		}
		out = append(out, CourseWithEnrollment{Course: course, Enrolled: enrolled})
	}
	return out, nil
}

func (u *courseUsecase) Get(user *authdomain.User, courseID string) (*CourseDetail, error) {
	course, err := u.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, apperr.NewStore("load course", err)
	}
	if course == nil {
		return nil, apperr.NewNotFound("course")
	}

	teacher, err := u.courseRepo.FindTeacher(courseID)
	if err != nil {
		return nil, apperr.NewStore("load teacher", err)
	}
	if teacher == nil {
		return nil, apperr.NewNotFound("teacher")
	}

	students, err := u.enrolledStudents(courseID)
	if err != nil {
		return nil, err
	}

	enrolled := false
	if user.Role == authdomain.RoleStudent {
		for _, student := range students {
			if student.ID == user.ID {
				enrolled = true
				break
			}
		}
	}

	return &CourseDetail{
		Course:   *course,
		Teacher:  teacher,
		Students: students,
		Enrolled: enrolled,
	}, nil
}

func (u *courseUsecase) Mine(user *authdomain.User) ([]TeacherCourse, error) {
	courses, err := u.courseRepo.FindByTeacherID(user.ID)
	if err != nil {
		return nil, apperr.NewStore("list courses", err)
	}

	out := make([]TeacherCourse, 0, len(courses))
	for _, course := range courses {
		count, err := u.enrollmentRepo.CountByCourse(course.ID)
		if err != nil {
			return nil, apperr.NewStore("count enrollments", err)
		}
		out = append(out, TeacherCourse{Course: course, Students: count})
	}
	return out, nil
}

func (u *courseUsecase) enrolledStudents(courseID string) ([]authdomain.User, error) {
	enrollments, err := u.enrollmentRepo.FindByCourse(courseID)
	if err != nil {
		return nil, apperr.NewStore("list enrollments", err)
	}

	students := make([]authdomain.User, 0, len(enrollments))
	for _, enrollment := range enrollments {
		student, err := u.userRepo.FindByID(enrollment.StudentID)
		if err != nil {
			return nil, apperr.NewStore("load student", err)
		}
		if student != nil {
			students = append(students, *student)
		}
	}
	return students, nil
}
