package delivery

import (
	"net/http"

	authdelivery "edclass-backend/internal/auth/delivery"
	"edclass-backend/internal/message/domain"
	messagedto "edclass-backend/internal/message/dto"
	"edclass-backend/internal/message/usecase"
	"edclass-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles message HTTP requests
type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageUsecase usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
	}
}

// Send persists a message and fans out push notifications
// POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req messagedto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageUsecase.Send(c.Request.Context(), user, req.ReceiverIDs, req.Subject, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messagedto.FromMessage(message))
}

// Get returns one message
// GET /api/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	message, err := h.messageUsecase.Get(c.Param("id"))
	if err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messagedto.FromMessage(message))
}

// UpdateState overwrites the message state
// POST /api/messages/:id/state
func (h *MessageHandler) UpdateState(c *gin.Context) {
	var req messagedto.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.State.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown message state"})
		return
	}

	if err := h.messageUsecase.SetState(c.Param("id"), req.State); err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List returns the caller's messages for a scope
// GET /api/messages/list/:scope  (inbox | sent | all)
func (h *MessageHandler) List(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	scope, ok := domain.ParseScope(c.Param("scope"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be inbox, sent or all"})
		return
	}

	messages, err := h.messageUsecase.List(user, scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messagedto.FromMessages(messages))
}
