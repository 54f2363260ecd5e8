package usecase

import (
	"context"
	"errors"
	"testing"

	authdomain "edclass-backend/internal/auth/domain"
	authrepo "edclass-backend/internal/auth/repository"
	coursedomain "edclass-backend/internal/course/domain"
	courserepo "edclass-backend/internal/course/repository"
	enrollmentdomain "edclass-backend/internal/enrollment/domain"
	enrollmentrepo "edclass-backend/internal/enrollment/repository"
	messagedomain "edclass-backend/internal/message/domain"
	messagerepo "edclass-backend/internal/message/repository"
	messageusecase "edclass-backend/internal/message/usecase"
	"edclass-backend/internal/notification"
	"edclass-backend/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingGateway struct {
	batches [][]string
	fail    bool
}

func (g *recordingGateway) Send(_ context.Context, tokens []string, title, body string) error {
	batch := make([]string, len(tokens))
	copy(batch, tokens)
	g.batches = append(g.batches, batch)
	if g.fail {
		return errors.New("gateway down")
	}
	return nil
}

type fixture struct {
	db      *gorm.DB
	gateway *recordingGateway
	usecase EnrollmentUsecase

	student *authdomain.User
	parent  *authdomain.User
	teacher *authdomain.User
	system  *authdomain.User
	course  *coursedomain.Course
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role authdomain.Role) *authdomain.User {
	t.Helper()
	user := &authdomain.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: "hash",
		Name:     name,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// withSystemUser controls whether the distinguished sender account exists.
func setupFixture(t *testing.T, withSystemUser bool) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.DeviceToken{},
		&authdomain.GuardianLink{},
		&coursedomain.Course{},
		&enrollmentdomain.Enrollment{},
		&messagedomain.Message{},
		&messagedomain.MessageRecipient{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db, gateway: &recordingGateway{}}
	f.student = seedUser(t, db, "Kid One", "kid@example.com", authdomain.RoleStudent)
	f.parent = seedUser(t, db, "Parent One", "parent@example.com", authdomain.RoleParent)
	f.teacher = seedUser(t, db, "Teacher One", "teacher@example.com", authdomain.RoleTeacher)
	if withSystemUser {
		f.system = seedUser(t, db, "EdClass", "system@example.com", authdomain.RoleSystem)
	}

	f.course = &coursedomain.Course{
		ID:        uuid.New().String(),
		Title:     "Algebra",
		Content:   "Linear equations",
		TeacherID: f.teacher.ID,
	}
	if err := db.Create(f.course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	guardianRepo := authrepo.NewGuardianRepository(db)
	if err := guardianRepo.Link(f.student.ID, f.parent.ID); err != nil {
		t.Fatalf("link guardian: %v", err)
	}

	deviceRepo := authrepo.NewDeviceTokenRepository(db)
	for _, token := range []string{"parent-phone", "parent-tablet"} {
		if err := deviceRepo.SaveToken(f.parent.ID, token); err != nil {
			t.Fatalf("save token: %v", err)
		}
	}

	userRepo := authrepo.NewUserRepository(db)
	notifier := notification.NewService(userRepo, deviceRepo, f.gateway)
	messageUc := messageusecase.NewMessageUsecase(messagerepo.NewGormMessageRepository(db), notifier)

	f.usecase = NewEnrollmentUsecase(
		enrollmentrepo.NewGormEnrollmentRepository(db),
		guardianRepo,
		courserepo.NewGormCourseRepository(db),
		userRepo,
		messageUc,
	)
	return f
}

func (f *fixture) enrollmentCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(&enrollmentdomain.Enrollment{}).Count(&count).Error; err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	return count
}

func (f *fixture) messages(t *testing.T) []messagedomain.Message {
	t.Helper()
	var messages []messagedomain.Message
	if err := f.db.Preload("Recipients", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Order("created_at ASC").Find(&messages).Error; err != nil {
		t.Fatalf("load messages: %v", err)
	}
	return messages
}

func TestEnrollAndNotifyHappyPath(t *testing.T) {
	f := setupFixture(t, true)

	enrollment, err := f.usecase.EnrollAndNotify(context.Background(), f.student, f.course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if enrollment.CourseID != f.course.ID || enrollment.StudentID != f.student.ID {
		t.Fatalf("unexpected enrollment pair %s/%s", enrollment.CourseID, enrollment.StudentID)
	}
	if f.enrollmentCount(t) != 1 {
		t.Fatalf("expected exactly one enrollment row")
	}

	messages := f.messages(t)
	if len(messages) != 1 {
		t.Fatalf("expected one system message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.SenderID != f.system.ID {
		t.Fatalf("expected system sender, got %s", msg.SenderID)
	}
	if msg.State != messagedomain.StatePending {
		t.Fatalf("expected pending state, got %s", msg.State)
	}
	emails := msg.ReceiverEmails()
	if len(emails) != 2 || emails[0] != f.parent.Email || emails[1] != f.teacher.Email {
		t.Fatalf("expected guardian then teacher recipients, got %v", emails)
	}

	if len(f.gateway.batches) != 1 {
		t.Fatalf("expected one push batch, got %d", len(f.gateway.batches))
	}
	batch := f.gateway.batches[0]
	if len(batch) != 2 || batch[0] != "parent-phone" || batch[1] != "parent-tablet" {
		t.Fatalf("expected parent device tokens in registration order, got %v", batch)
	}
}

func TestEnrollRejectsNonStudents(t *testing.T) {
	f := setupFixture(t, true)

	for _, caller := range []*authdomain.User{f.parent, f.teacher} {
		_, err := f.usecase.EnrollAndNotify(context.Background(), caller, f.course.ID)
		if err == nil {
			t.Fatalf("expected policy error for role %s", caller.Role)
		}
		if !apperr.IsPolicy(err) {
			t.Fatalf("expected policy error, got %v", err)
		}
	}
	if f.enrollmentCount(t) != 0 {
		t.Fatalf("expected no enrollment rows after rejections")
	}
	if len(f.messages(t)) != 0 {
		t.Fatalf("expected no messages after rejections")
	}
}

func TestReEnrollNotifiesAgainWithoutNewRow(t *testing.T) {
	f := setupFixture(t, true)

	if _, err := f.usecase.EnrollAndNotify(context.Background(), f.student, f.course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if _, err := f.usecase.EnrollAndNotify(context.Background(), f.student, f.course.ID); err != nil {
		t.Fatalf("second enroll: %v", err)
	}

	if f.enrollmentCount(t) != 1 {
		t.Fatalf("expected single enrollment row after re-enroll")
	}
	if len(f.messages(t)) != 2 {
		t.Fatalf("expected a notification per call, got %d messages", len(f.messages(t)))
	}
}

func TestEnrollWithoutSystemUserSkipsNotification(t *testing.T) {
	f := setupFixture(t, false)

	enrollment, err := f.usecase.EnrollAndNotify(context.Background(), f.student, f.course.ID)
	if err != nil {
		t.Fatalf("expected enrollment success without system user, got %v", err)
	}
	if enrollment == nil || f.enrollmentCount(t) != 1 {
		t.Fatalf("expected the enrollment row to exist")
	}
	if len(f.messages(t)) != 0 {
		t.Fatalf("expected no message without a system sender")
	}
	if len(f.gateway.batches) != 0 {
		t.Fatalf("expected no push batches without a system sender")
	}
}

func TestEnrollSucceedsWhenPushFails(t *testing.T) {
	f := setupFixture(t, true)
	f.gateway.fail = true

	if _, err := f.usecase.EnrollAndNotify(context.Background(), f.student, f.course.ID); err != nil {
		t.Fatalf("expected success despite push failure, got %v", err)
	}
	if f.enrollmentCount(t) != 1 {
		t.Fatalf("expected the enrollment row to exist")
	}
	// The message outlives the failed fan-out.
	if len(f.messages(t)) != 1 {
		t.Fatalf("expected the message to be persisted")
	}
	if len(f.gateway.batches) != 1 {
		t.Fatalf("expected the batch to have been attempted")
	}
}

func TestEnrollUnknownCourseStillEnrolls(t *testing.T) {
	f := setupFixture(t, true)

	enrollment, err := f.usecase.EnrollAndNotify(context.Background(), f.student, "no-such-course")
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if enrollment.CourseID != "no-such-course" {
		t.Fatalf("unexpected course id %s", enrollment.CourseID)
	}

	// Teacher resolution came up empty, so only the guardian is addressed.
	messages := f.messages(t)
	if len(messages) != 1 {
		t.Fatalf("expected one message, got %d", len(messages))
	}
	emails := messages[0].ReceiverEmails()
	if len(emails) != 1 || emails[0] != f.parent.Email {
		t.Fatalf("expected guardian-only recipients, got %v", emails)
	}
}
