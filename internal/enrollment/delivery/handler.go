package delivery

import (
	"net/http"

	authdelivery "edclass-backend/internal/auth/delivery"
	"edclass-backend/internal/enrollment/usecase"
	"edclass-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler handles enrollment HTTP requests
type EnrollmentHandler struct {
	enrollmentUsecase usecase.EnrollmentUsecase
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(enrollmentUsecase usecase.EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUsecase: enrollmentUsecase,
	}
}

// EnrollRequest represents the request body for enrolling in a course
type EnrollRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// Enroll records the caller's enrollment and triggers guardian notification
// POST /api/enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enrollment, err := h.enrollmentUsecase.EnrollAndNotify(c.Request.Context(), user, req.CourseID)
	if err != nil {
		if apperr.IsPolicy(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enrollment)
}
