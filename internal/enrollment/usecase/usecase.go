package usecase

import (
	"context"

	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/enrollment/domain"
)

// EnrollmentUsecase composes the enroll-then-notify workflow.
type EnrollmentUsecase interface {
	// EnrollAndNotify records the caller's enrollment in the course, then
	// messages the student's guardians and the course teacher and pushes
	// alerts to their devices. Only the ledger write can fail the call;
	// every notification step is best effort.
	EnrollAndNotify(ctx context.Context, caller *authdomain.User, courseID string) (*domain.Enrollment, error)
}
