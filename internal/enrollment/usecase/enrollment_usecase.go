package usecase

import (
	"context"
	"fmt"
	"log"

	authdomain "edclass-backend/internal/auth/domain"
	authrepo "edclass-backend/internal/auth/repository"
	courserepo "edclass-backend/internal/course/repository"
	"edclass-backend/internal/enrollment/domain"
	"edclass-backend/internal/enrollment/repository"
	messageusecase "edclass-backend/internal/message/usecase"
	"edclass-backend/pkg/apperr"
)

// enrollmentUsecase implements EnrollmentUsecase interface
type enrollmentUsecase struct {
	enrollmentRepo repository.EnrollmentRepository
	guardianRepo   authrepo.GuardianRepository
	courseRepo     courserepo.CourseRepository
	userRepo       authrepo.UserRepository
	messageUsecase messageusecase.MessageUsecase
}

// NewEnrollmentUsecase creates a new instance of enrollmentUsecase
func NewEnrollmentUsecase(
	enrollmentRepo repository.EnrollmentRepository,
	guardianRepo authrepo.GuardianRepository,
	courseRepo courserepo.CourseRepository,
	userRepo authrepo.UserRepository,
	messageUsecase messageusecase.MessageUsecase,
) EnrollmentUsecase {
	return &enrollmentUsecase{
		enrollmentRepo: enrollmentRepo,
		guardianRepo:   guardianRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		messageUsecase: messageUsecase,
	}
}

func (u *enrollmentUsecase) EnrollAndNotify(ctx context.Context, caller *authdomain.User, courseID string) (*domain.Enrollment, error) {
	if caller.Role != authdomain.RoleStudent {
		return nil, apperr.NewPolicy("only students can enroll in a course")
	}

	enrollment, created, err := u.enrollmentRepo.Enroll(courseID, caller.ID)
	if err != nil {
		return nil, apperr.NewStore("write enrollment", err)
	}
	if !created {
		// Re-enrollment is not an error and still notifies.
		log.Printf("[Enroll] Student %s already enrolled in course %s", caller.ID, courseID)
	}

	u.notifyEnrollment(ctx, caller, enrollment)

	return enrollment, nil
}

// notifyEnrollment resolves the interested parties and sends the system
// message plus push alerts. Nothing here can undo the enrollment; every
// failure is logged and swallowed.
func (u *enrollmentUsecase) notifyEnrollment(ctx context.Context, student *authdomain.User, enrollment *domain.Enrollment) {
	var recipients []string

	guardians, err := u.guardianRepo.GuardiansOf(student.ID)
	if err != nil {
		log.Printf("[Enroll] Failed to resolve guardians of %s: %v", student.ID, err)
	}
	for _, guardian := range guardians {
		recipients = append(recipients, guardian.Email)
	}

	teacher, err := u.courseRepo.FindTeacher(enrollment.CourseID)
	if err != nil {
		log.Printf("[Enroll] Failed to resolve teacher of course %s: %v", enrollment.CourseID, err)
	} else if teacher == nil {
		log.Printf("[Enroll] Course %s has no teacher on record", enrollment.CourseID)
	} else {
		recipients = append(recipients, teacher.Email)
	}

	sender, err := u.userRepo.FindByRole(authdomain.RoleSystem)
	if err != nil {
		log.Printf("[Enroll] Failed to resolve system user: %v", err)
		return
	}
	if sender == nil {
		log.Printf("[Enroll] No system user configured, skipping notification")
		return
	}

	subject := "Enrollment"
	content := fmt.Sprintf("%s is now enrolled in course %s", student.Name, enrollment.CourseID)
	if _, err := u.messageUsecase.Send(ctx, sender, recipients, &subject, content); err != nil {
		log.Printf("[Enroll] Enrollment notification failed: %v", err)
	}
}
