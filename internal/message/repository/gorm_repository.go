package repository

import (
	"errors"

	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/message/domain"

	"gorm.io/gorm"
)

// gormMessageRepository implements MessageRepository using GORM
type gormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM-based MessageRepository
func NewGormMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(message *domain.Message) error {
	return r.db.Create(message).Error
}

func (r *gormMessageRepository) FindByID(id string) (*domain.Message, error) {
	var message domain.Message
	err := r.db.Preload("Recipients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *gormMessageRepository) ListForUser(user *authdomain.User, scope domain.ListScope) ([]domain.Message, error) {
	query := r.db.Preload("Recipients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})

	const received = "id IN (SELECT message_id FROM message_recipients WHERE email = ?)"
	switch scope {
	case domain.ScopeInbox:
		query = query.Where(received, user.Email)
	case domain.ScopeSent:
		query = query.Where("sender_id = ?", user.ID)
	case domain.ScopeAll:
		query = query.Where("sender_id = ? OR "+received, user.ID, user.Email)
	}

	var messages []domain.Message
	err := query.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *gormMessageRepository) UpdateState(id string, state domain.MessageState) error {
	return r.db.Model(&domain.Message{}).Where("id = ?", id).Update("state", state).Error
}
