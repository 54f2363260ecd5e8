package domain

import "time"

// DeviceToken represents one FCM registration token for a user's device.
// A user registers the same token at most once; the same physical token may
// legitimately appear under two users (a shared tablet), so uniqueness is
// scoped to the (user, token) pair.
type DeviceToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index:idx_user_device,unique;not null"`
	Token     string    `json:"-" gorm:"index:idx_user_device,unique;not null"` // Don't expose token in JSON
	CreatedAt time.Time `json:"created_at"`
}
