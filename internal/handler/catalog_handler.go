package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/response"
	"github.com/coursebay/coursebay-backend/internal/service"
)

// CatalogHandler handles the public course browsing endpoints.
type CatalogHandler struct {
	courseService *service.CourseService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(courseService *service.CourseService) *CatalogHandler {
	return &CatalogHandler{courseService: courseService}
}

// ListCourses godoc
// GET /courses
// An empty catalog is a 200, not an error.
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}

	message := "Courses fetched successfully"
	if len(courses) == 0 {
		message = "No courses available"
	}
	response.Success(c, http.StatusOK, message, gin.H{"courses": courses})
}

// GetCourse godoc
// GET /courses/:id
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidID)
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "Course fetched successfully", gin.H{"course": course})
}
