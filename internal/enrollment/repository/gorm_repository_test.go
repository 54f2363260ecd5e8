package repository

import (
	"sync"
	"testing"

	"edclass-backend/internal/enrollment/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEnrollmentDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Enrollment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEnrollCreatesOnce(t *testing.T) {
	repo := NewGormEnrollmentRepository(setupEnrollmentDB(t))

	enrollment, created, err := repo.Enroll("course-1", "student-1")
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if !created {
		t.Fatalf("expected first enroll to create a row")
	}
	if enrollment.CourseID != "course-1" || enrollment.StudentID != "student-1" {
		t.Fatalf("unexpected pair: %s/%s", enrollment.CourseID, enrollment.StudentID)
	}
	if enrollment.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestEnrollExistingPairIsNoop(t *testing.T) {
	db := setupEnrollmentDB(t)
	repo := NewGormEnrollmentRepository(db)

	first, created, err := repo.Enroll("course-1", "student-1")
	if err != nil || !created {
		t.Fatalf("first enroll: created=%v err=%v", created, err)
	}

	second, created, err := repo.Enroll("course-1", "student-1")
	if err != nil {
		t.Fatalf("second enroll: %v", err)
	}
	if created {
		t.Fatalf("expected second enroll to be a no-op")
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing row back, got %s want %s", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&domain.Enrollment{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 enrollment row, got %d", count)
	}
}

func TestEnrollConcurrentSamePair(t *testing.T) {
	db := setupEnrollmentDB(t)
	// A single connection keeps sqlite happy under concurrent writers;
	// the check and the insert are still separate statements, so calls
	// interleave freely.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	repo := NewGormEnrollmentRepository(db)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = repo.Enroll("course-1", "student-1")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}

	// Without a unique index the ledger may end up with one row or
	// several; every row must carry the requested pair.
	var rows []domain.Enrollment
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) < 1 || len(rows) > callers {
		t.Fatalf("expected between 1 and %d rows, got %d", callers, len(rows))
	}
	for _, row := range rows {
		if row.CourseID != "course-1" || row.StudentID != "student-1" {
			t.Fatalf("unexpected pair in ledger: %s/%s", row.CourseID, row.StudentID)
		}
	}
}

func TestEnrollDistinctPairs(t *testing.T) {
	repo := NewGormEnrollmentRepository(setupEnrollmentDB(t))

	pairs := [][2]string{
		{"course-1", "student-1"},
		{"course-1", "student-2"},
		{"course-2", "student-1"},
	}
	for _, pair := range pairs {
		if _, created, err := repo.Enroll(pair[0], pair[1]); err != nil || !created {
			t.Fatalf("enroll %v: created=%v err=%v", pair, created, err)
		}
	}

	count, err := repo.CountByCourse("course-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 enrollments for course-1, got %d", count)
	}

	exists, err := repo.Exists("course-2", "student-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected pair to exist")
	}
	exists, err = repo.Exists("course-2", "student-2")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("did not expect pair to exist")
	}
}
