package repository

import (
	"time"

	authdomain "edclass-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceTokenRepository implements DeviceTokenRepository interface
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new instance of deviceTokenRepository
func NewDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// SaveToken appends a token for the user (append-if-absent: a duplicate
// registration of the same token for the same user is a no-op).
func (r *deviceTokenRepository) SaveToken(userID, token string) error {
	deviceToken := &authdomain.DeviceToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now(),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoNothing: true,
	}).Create(deviceToken).Error
}

// TokensByUserID returns the user's tokens in registration order.
func (r *deviceTokenRepository) TokensByUserID(userID string) ([]string, error) {
	var records []authdomain.DeviceToken
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(records))
	for _, record := range records {
		tokens = append(tokens, record.Token)
	}
	return tokens, nil
}
