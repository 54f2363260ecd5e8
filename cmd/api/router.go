package api

import (
	"net/http"

	"edclass-backend/internal/auth/delivery"
	authUsecase "edclass-backend/internal/auth/usecase"
	courseDelivery "edclass-backend/internal/course/delivery"
	enrollmentDelivery "edclass-backend/internal/enrollment/delivery"
	messageDelivery "edclass-backend/internal/message/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, courseHandler *courseDelivery.CourseHandler, enrollmentHandler *enrollmentDelivery.EnrollmentHandler, messageHandler *messageDelivery.MessageHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(delivery.AuthMiddleware(authUc))
		{
			fcm.POST("/register", authHandler.RegisterDevice)
		}

		// Course routes (protected)
		courses := api.Group("/courses")
		courses.Use(delivery.AuthMiddleware(authUc))
		{
			courses.GET("", courseHandler.List)
			courses.GET("/mine", courseHandler.Mine)
			courses.GET("/:id", courseHandler.Get)
		}

		// Enrollment routes (protected)
		enrollments := api.Group("/enrollments")
		enrollments.Use(delivery.AuthMiddleware(authUc))
		{
			enrollments.POST("", enrollmentHandler.Enroll)
		}

		// Message routes (protected)
		messages := api.Group("/messages")
		messages.Use(delivery.AuthMiddleware(authUc))
		{
			messages.POST("", messageHandler.Send)
			messages.GET("/list/:scope", messageHandler.List)
			messages.GET("/:id", messageHandler.Get)
			messages.POST("/:id/state", messageHandler.UpdateState)
		}

		// Guardian routes (protected)
		api.GET("/kids", delivery.AuthMiddleware(authUc), authHandler.Kids)
	}
}
