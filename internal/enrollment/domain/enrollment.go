package domain

import "time"

// Enrollment records that a student joined a course. At most one row per
// (course, student) pair; the pair is checked before insert rather than
// enforced by a database constraint, so two concurrent enrolls for the same
// pair can both pass the check and both write.
type Enrollment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"index;not null"`
	StudentID string    `json:"student_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
