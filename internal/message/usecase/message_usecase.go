package usecase

import (
	"context"
	"time"

	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/message/domain"
	"edclass-backend/internal/message/repository"
	"edclass-backend/pkg/apperr"

	"github.com/google/uuid"
)

// messageUsecase implements MessageUsecase interface
type messageUsecase struct {
	messageRepo repository.MessageRepository
	notifier    Notifier
}

// NewMessageUsecase creates a new instance of messageUsecase
func NewMessageUsecase(messageRepo repository.MessageRepository, notifier Notifier) MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

func (u *messageUsecase) Send(ctx context.Context, sender *authdomain.User, receiverIDs []string, subject *string, content string) (*domain.Message, error) {
	message := &domain.Message{
		ID:        uuid.New().String(),
		SenderID:  sender.ID,
		Subject:   subject,
		Content:   content,
		State:     domain.StatePending,
		CreatedAt: time.Now(),
	}
	for i, email := range receiverIDs {
		message.Recipients = append(message.Recipients, domain.MessageRecipient{
			Email:    email,
			Position: i,
		})
	}

	if err := u.messageRepo.Create(message); err != nil {
		return nil, apperr.NewStore("create message", err)
	}

	// The message is persisted at this point and is not rolled back by
	// anything below.
	title := ""
	if subject != nil {
		title = *subject
	}
	if err := u.notifier.Notify(ctx, receiverIDs, title, content); err != nil {
		return message, err
	}
	return message, nil
}

func (u *messageUsecase) Get(id string) (*domain.Message, error) {
	message, err := u.messageRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NewStore("load message", err)
	}
	if message == nil {
		return nil, apperr.NewNotFound("message")
	}
	return message, nil
}

func (u *messageUsecase) SetState(id string, state domain.MessageState) error {
	message, err := u.messageRepo.FindByID(id)
	if err != nil {
		return apperr.NewStore("load message", err)
	}
	if message == nil {
		return apperr.NewNotFound("message")
	}

	if err := u.messageRepo.UpdateState(id, state); err != nil {
		return apperr.NewStore("update message state", err)
	}
	return nil
}

func (u *messageUsecase) List(user *authdomain.User, scope domain.ListScope) ([]domain.Message, error) {
	messages, err := u.messageRepo.ListForUser(user, scope)
	if err != nil {
		return nil, apperr.NewStore("list messages", err)
	}
	return messages, nil
}
