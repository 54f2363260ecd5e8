package delivery

import (
	"net/http"

	authdelivery "edclass-backend/internal/auth/delivery"
	"edclass-backend/internal/course/usecase"
	"edclass-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// CourseHandler handles course HTTP requests
type CourseHandler struct {
	courseUsecase usecase.CourseUsecase
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseUsecase usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{
		courseUsecase: courseUsecase,
	}
}

// List returns all courses with the caller's enrollment flags
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	courses, err := h.courseUsecase.List(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// Get returns one course with teacher and students
// GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	detail, err := h.courseUsecase.Get(user, c.Param("id"))
	if err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Mine returns the calling teacher's courses with student counts
// GET /api/courses/mine
func (h *CourseHandler) Mine(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	courses, err := h.courseUsecase.Mine(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}
