package main

import (
	"log"

	api "edclass-backend/cmd/api"
	authdomain "edclass-backend/internal/auth/domain"
	authRepo "edclass-backend/internal/auth/repository"
	authUsecase "edclass-backend/internal/auth/usecase"
	coursedomain "edclass-backend/internal/course/domain"
	courseRepo "edclass-backend/internal/course/repository"
	courseUsecase "edclass-backend/internal/course/usecase"
	enrollmentdomain "edclass-backend/internal/enrollment/domain"
	enrollmentRepo "edclass-backend/internal/enrollment/repository"
	enrollmentUsecase "edclass-backend/internal/enrollment/usecase"
	messagedomain "edclass-backend/internal/message/domain"
	messageRepo "edclass-backend/internal/message/repository"
	messageUsecase "edclass-backend/internal/message/usecase"
	"edclass-backend/internal/notification"
	"edclass-backend/pkg/config"
	"edclass-backend/pkg/database"
	"edclass-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.DeviceToken{},
		&authdomain.GuardianLink{},
		&coursedomain.Course{},
		&enrollmentdomain.Enrollment{},
		&messagedomain.Message{},
		&messagedomain.MessageRecipient{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	deviceRepository := authRepo.NewDeviceTokenRepository(db)
	guardianRepository := authRepo.NewGuardianRepository(db)
	courseRepository := courseRepo.NewGormCourseRepository(db)
	enrollmentRepository := enrollmentRepo.NewGormEnrollmentRepository(db)
	messageRepository := messageRepo.NewGormMessageRepository(db)

	// Select the push gateway: Admin SDK when credentials are configured,
	// the legacy HTTP API when only a server key is, disabled otherwise.
	var gateway notification.Gateway
	if cfg.FirebaseCredentials != "" {
		client, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			gateway = client
		}
	} else if cfg.FCMServerKey != "" {
		gateway = fcm.NewLegacyClient(cfg.FCMServerKey)
	} else {
		log.Printf("[WARN] No FCM credentials configured, push notifications disabled")
	}

	notifyService := notification.NewService(userRepository, deviceRepository, gateway)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, deviceRepository, guardianRepository, cfg)
	messageUsecaseInstance := messageUsecase.NewMessageUsecase(messageRepository, notifyService)
	courseUsecaseInstance := courseUsecase.NewCourseUsecase(courseRepository, enrollmentRepository, userRepository)
	enrollmentUsecaseInstance := enrollmentUsecase.NewEnrollmentUsecase(enrollmentRepository, guardianRepository, courseRepository, userRepository, messageUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, guardianRepository, courseUsecaseInstance, enrollmentUsecaseInstance, messageUsecaseInstance)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
