package domain

import "time"

// GuardianLink ties a student to one parent. Many-to-many: a student can
// have several guardians and a parent several kids.
type GuardianLink struct {
	StudentID string    `json:"student_id" gorm:"primaryKey"`
	ParentID  string    `json:"parent_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
