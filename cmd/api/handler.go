package api

import (
	authDelivery "edclass-backend/internal/auth/delivery"
	authUsecase "edclass-backend/internal/auth/usecase"
	courseDelivery "edclass-backend/internal/course/delivery"
	courseUsecase "edclass-backend/internal/course/usecase"
	enrollmentDelivery "edclass-backend/internal/enrollment/delivery"
	enrollmentUsecase "edclass-backend/internal/enrollment/usecase"
	messageDelivery "edclass-backend/internal/message/delivery"
	messageUsecase "edclass-backend/internal/message/usecase"

	authRepo "edclass-backend/internal/auth/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase       authUsecase.AuthUsecase
	authHandler       *authDelivery.AuthHandler
	courseHandler     *courseDelivery.CourseHandler
	enrollmentHandler *enrollmentDelivery.EnrollmentHandler
	messageHandler    *messageDelivery.MessageHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	guardianRepo authRepo.GuardianRepository,
	courseUc courseUsecase.CourseUsecase,
	enrollmentUc enrollmentUsecase.EnrollmentUsecase,
	messageUc messageUsecase.MessageUsecase,
) *Handler {
	return &Handler{
		authUsecase:       authUc,
		authHandler:       authDelivery.NewAuthHandler(authUc, guardianRepo),
		courseHandler:     courseDelivery.NewCourseHandler(courseUc),
		enrollmentHandler: enrollmentDelivery.NewEnrollmentHandler(enrollmentUc),
		messageHandler:    messageDelivery.NewMessageHandler(messageUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.courseHandler, h.enrollmentHandler, h.messageHandler)

	return r.Run(addr)
}
