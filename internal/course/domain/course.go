package domain

import "time"

// Course is read-only from the enrollment core's perspective; rows are
// seeded by administrators.
type Course struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TeacherID string    `json:"teacher_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
